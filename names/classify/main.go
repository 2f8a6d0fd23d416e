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
	lr         = flag.Float64("lr", charrnn.ClassifierLearningRate, "learning rate")
	seed       = flag.Uint64("seed", 1, "random seed")
	printEvery = flag.Int("printEvery", 5000, "log a sample every n iterations")
	plotEvery  = flag.Int("plotEvery", 1000, "average the loss over n iterations")
	testFrac   = flag.Float64("testFrac", 0, "fraction of names held out for the confusion matrix")
	confusionN = flag.Int("confusion", 10000, "number of examples in the confusion matrix")
	predict    = flag.String("predict", "Dovesky,Jackson,Satoshi", "comma separated names to classify after training")
	port       = flag.Int("port", 8086, "port of the debug server")

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
	train, test := dataset, dataset
	if *testFrac > 0 {
		train, test = dataset.Split(*testFrac, rng)
	}
	sampler, err := names.NewSampler(train, rng)
	if err != nil {
		log.Fatalf("%v", err)
	}
	codec, err := dataset.Codec(charrnn.DefaultLetters)
	if err != nil {
		log.Fatalf("%v", err)
	}
	c := charrnn.NewClassifierCell(codec, *hidden, rand.NewPCG(*seed, *seed+1))
	log.Printf("categories: %d, names: %d, numweights: %d", codec.NumCategories(), sampler.Len(), c.NumWeights())

	losses := make([]float64, 0)
	doPrint := false
	var currentLoss float64
	start := time.Now()
	for i := 1; i <= *iters; i++ {
		ex := sampler.RandomExample()
		output, l, err := charrnn.TrainClassifier(c, ex, *lr)
		if err != nil {
			log.Fatalf("%v", err)
		}
		currentLoss += l

		if i%*printEvery == 0 {
			guess, _ := c.CategoryFromOutput(output)
			mark := "✓"
			if guess != ex.Category {
				mark = fmt.Sprintf("✗ (%s)", ex.Category)
			}
			pct := i * 100 / *iters
			log.Printf("%d %d%% (%s) %.4f %s / %s %s", i, pct, time.Since(start).Round(time.Second), l, ex.Word, guess, mark)
		}
		if i%*plotEvery == 0 {
			losses = append(losses, currentLoss/float64(*plotEvery))
			currentLoss = 0
		}

		handleHTTP(losses, &doPrint)

		if i%*printEvery == 0 && doPrint {
			printDebug(c, ex)
		}
	}

	m, err := charrnn.NewConfusion(c, randomExamples(test, rng, *confusionN))
	if err != nil {
		log.Fatalf("%v", err)
	}
	log.Printf("accuracy: %.4f\n%s", m.Accuracy(), m)

	for _, word := range strings.Split(*predict, ",") {
		word = names.UnicodeToASCII(strings.TrimSpace(word), charrnn.DefaultLetters)
		if word == "" {
			continue
		}
		ps, err := c.Predict(word, 3)
		if err != nil {
			log.Printf("%s: %v", word, err)
			continue
		}
		log.Printf("> %s %v", word, ps)
	}
}

func randomExamples(d *names.Dataset, rng *rand.Rand, n int) []charrnn.Example {
	s, err := names.NewSampler(d, rng)
	if err != nil {
		log.Fatalf("%v", err)
	}
	examples := make([]charrnn.Example, n)
	for i := range examples {
		examples[i] = s.RandomExample()
	}
	return examples
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

func printDebug(c *charrnn.ClassifierCell, ex charrnn.Example) {
	ps, err := c.Predict(ex.Word, 3)
	if err != nil {
		log.Printf("%v", err)
		return
	}
	log.Printf("%s (%s): %v", ex.Word, ex.Category, ps)
}
