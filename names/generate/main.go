package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"net/http"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"charrnn"
	"charrnn/names"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	dataDir    = flag.String("data", "data/names", "directory of <language>.txt name lists")
	hidden     = flag.Int("hidden", charrnn.DefaultHidden, "width of the hidden state")
	iters      = flag.Int("iters", 100000, "number of training examples")
	lr         = flag.Float64("lr", charrnn.GeneratorLearningRate, "learning rate")
	seed       = flag.Uint64("seed", 1, "random seed")
	printEvery = flag.Int("printEvery", 5000, "log progress every n iterations")
	plotEvery  = flag.Int("plotEvery", 500, "average the loss over n iterations")
	maxLength  = flag.Int("maxLength", charrnn.DefaultMaxLength, "maximum number of generated characters")
	samples    = flag.String("samples", "Russian:RUS,German:GER,Spanish:SPA,Chinese:CHI", "comma separated category:startLetters pairs to generate after training")
	port       = flag.Int("port", 8087, "port of the debug server")

	lossChan       = make(chan chan []float64)
	printDebugChan = make(chan struct{})
)

func main() {
	flag.Parse()
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	http.HandleFunc("/Loss", func(w http.ResponseWriter, r *http.Request) {
		c := make(chan []float64)
		lossChan <- c
		json.NewEncoder(w).Encode(<-c)
	})
	http.HandleFunc("/PrintDebug", func(w http.ResponseWriter, r *http.Request) {
		printDebugChan <- struct{}{}
	})
	go func() {
		log.Printf("Listening on port %d", *port)
		if err := http.ListenAndServe(fmt.Sprintf(":%d", *port), nil); err != nil {
			log.Fatalf("%v", err)
		}
	}()

	rng := rand.New(rand.NewPCG(*seed, *seed))
	log.Printf("seed: %d", *seed)

	dataset, err := names.Load(*dataDir, charrnn.DefaultLetters)
	if err != nil {
		log.Fatalf("%v", err)
	}
	sampler, err := names.NewSampler(dataset, rng)
	if err != nil {
		log.Fatalf("%v", err)
	}
	codec, err := dataset.Codec(charrnn.DefaultLetters)
	if err != nil {
		log.Fatalf("%v", err)
	}
	c := charrnn.NewGeneratorCell(codec, *hidden, rand.NewPCG(*seed, *seed+1))
	log.Printf("categories: %d, names: %d, numweights: %d", codec.NumCategories(), sampler.Len(), c.NumWeights())

	losses := make([]float64, 0)
	doPrint := false
	var totalLoss float64
	start := time.Now()
	for i := 1; i <= *iters; i++ {
		ex := sampler.RandomExample()
		l, err := charrnn.TrainGenerator(c, ex, *lr)
		if err != nil {
			log.Fatalf("%v", err)
		}
		// Report the loss per character, as the sum grows with the name.
		l = l / float64(len([]rune(ex.Word)))
		totalLoss += l

		if i%*printEvery == 0 {
			pct := i * 100 / *iters
			log.Printf("%d %d%% (%s) %.4f", i, pct, time.Since(start).Round(time.Second), l)
		}
		if i%*plotEvery == 0 {
			losses = append(losses, totalLoss/float64(*plotEvery))
			totalLoss = 0
		}

		handleHTTP(losses, &doPrint)

		if i%*printEvery == 0 && doPrint {
			printDebug(c, ex)
		}
	}

	for _, pair := range strings.Split(*samples, ",") {
		category, startLetters, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok {
			log.Printf("bad sample %q, expected category:startLetters", pair)
			continue
		}
		words, err := c.Samples(category, startLetters, *maxLength)
		if err != nil {
			log.Printf("%s: %v", category, err)
			continue
		}
		log.Printf("%s: %s", category, strings.Join(words, " "))
	}
}

func handleHTTP(losses []float64, doPrint *bool) {
	select {
	case cn := <-lossChan:
		cn <- append([]float64(nil), losses...)
	case <-printDebugChan:
		*doPrint = !*doPrint
	default:
		return
	}
}

func printDebug(c *charrnn.GeneratorCell, ex charrnn.Example) {
	first := string([]rune(ex.Word)[:1])
	word, err := c.Generate(ex.Category, first, *maxLength)
	if err != nil {
		log.Printf("%v", err)
		return
	}
	log.Printf("%s (%s): %s", ex.Word, ex.Category, word)
}
