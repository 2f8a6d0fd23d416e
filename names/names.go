// Package names loads the names datasets: one text file per language of
// origin, one name per line.
package names

import (
	"bufio"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"charrnn"
)

// UnicodeToASCII strips the accents of s and drops every character that is
// not in letters.
func UnicodeToASCII(s, letters string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(letters, r) {
			return r
		}
		return -1
	}, folded)
}

type Dataset struct {
	Categories []string
	Lines      map[string][]string
}

// Load reads every *.txt file of dir. The category of a file is its base
// name without extension. Names are folded to letters; names and files that
// end up empty are skipped.
func Load(dir, letters string) (*Dataset, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return nil, err
	}
	d := Dataset{Lines: make(map[string][]string)}
	for _, fn := range files {
		lines, err := readLines(fn, letters)
		if err != nil {
			return nil, err
		}
		if len(lines) == 0 {
			continue
		}
		category := strings.TrimSuffix(filepath.Base(fn), filepath.Ext(fn))
		d.Categories = append(d.Categories, category)
		d.Lines[category] = lines
	}
	if len(d.Categories) == 0 {
		return nil, fmt.Errorf("no names found in %s", dir)
	}
	sort.Strings(d.Categories)
	return &d, nil
}

func readLines(fn, letters string) ([]string, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lines := make([]string, 0)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		s := UnicodeToASCII(strings.TrimSpace(scanner.Text()), letters)
		if s != "" {
			lines = append(lines, s)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", fn, err)
	}
	return lines, nil
}

// Codec creates the codec of the dataset categories over letters.
func (d *Dataset) Codec(letters string) (*charrnn.Codec, error) {
	return charrnn.NewCodec(letters, d.Categories)
}

// Examples lists every name of the dataset, category by category.
func (d *Dataset) Examples() []charrnn.Example {
	examples := make([]charrnn.Example, 0)
	for _, c := range d.Categories {
		for _, l := range d.Lines[c] {
			examples = append(examples, charrnn.Example{Word: l, Category: c})
		}
	}
	return examples
}

// Split moves a testFrac fraction of the names of each category into a test
// set. Both sets keep every category.
func (d *Dataset) Split(testFrac float64, rng *rand.Rand) (train, test *Dataset) {
	train = &Dataset{Categories: d.Categories, Lines: make(map[string][]string)}
	test = &Dataset{Categories: d.Categories, Lines: make(map[string][]string)}
	for _, c := range d.Categories {
		lines := d.Lines[c]
		perm := rng.Perm(len(lines))
		n := int(testFrac * float64(len(lines)))
		for i, p := range perm {
			if i < n {
				test.Lines[c] = append(test.Lines[c], lines[p])
			} else {
				train.Lines[c] = append(train.Lines[c], lines[p])
			}
		}
	}
	return train, test
}

// A Sampler draws training examples from a Dataset.
type Sampler struct {
	Dataset *Dataset

	rng        *rand.Rand
	categories []string // categories with at least one name
	examples   []charrnn.Example
	indices    []int
	offset     int
}

func NewSampler(d *Dataset, rng *rand.Rand) (*Sampler, error) {
	s := Sampler{
		Dataset:  d,
		rng:      rng,
		examples: d.Examples(),
	}
	if len(s.examples) == 0 {
		return nil, fmt.Errorf("no examples to sample")
	}
	for _, c := range d.Categories {
		if len(d.Lines[c]) > 0 {
			s.categories = append(s.categories, c)
		}
	}
	s.indices = make([]int, len(s.examples))
	s.resample()
	return &s, nil
}

// RandomExample picks a category uniformly, then one of its names uniformly.
func (s *Sampler) RandomExample() charrnn.Example {
	c := s.categories[s.rng.IntN(len(s.categories))]
	lines := s.Dataset.Lines[c]
	return charrnn.Example{Word: lines[s.rng.IntN(len(lines))], Category: c}
}

// Next walks all examples in a random order, reshuffling once every example
// has been returned.
func (s *Sampler) Next() charrnn.Example {
	ex := s.examples[s.indices[s.offset]]
	s.offset += 1
	if s.offset == len(s.indices) {
		s.resample()
	}
	return ex
}

func (s *Sampler) Len() int {
	return len(s.examples)
}

func (s *Sampler) resample() {
	s.indices = s.rng.Perm(len(s.indices))
	s.offset = 0
}
