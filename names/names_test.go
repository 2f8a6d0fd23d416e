package names

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"charrnn"
)

func TestUnicodeToASCII(t *testing.T) {
	cases := map[string]string{
		"Ślusàrski": "Slusarski",
		"Nguyễn":    "Nguyen",
		"O'Néill":   "O'Neill",
		"Müller-1":  "Muller",
		"":          "",
	}
	for in, want := range cases {
		if got := UnicodeToASCII(in, charrnn.DefaultLetters); got != want {
			t.Errorf("%q: got %q, expected %q", in, got, want)
		}
	}
}

func writeDataset(t *testing.T) string {
	dir := t.TempDir()
	files := map[string]string{
		"Korean.txt":  "Kim\nPark\nLee\n",
		"German.txt":  "Müller\nSchmidt\n\nBraun\nWeber\n",
		"Empty.txt":   "123\n\n",
		"ignored.csv": "Smith\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("%v", err)
		}
	}
	return dir
}

func TestLoad(t *testing.T) {
	d, err := Load(writeDataset(t), charrnn.DefaultLetters)
	if err != nil {
		t.Fatalf("%v", err)
	}
	if len(d.Categories) != 2 || d.Categories[0] != "German" || d.Categories[1] != "Korean" {
		t.Fatalf("categories %v", d.Categories)
	}
	if got := d.Lines["German"]; len(got) != 4 || got[0] != "Muller" {
		t.Errorf("German names %v", got)
	}
	if n := len(d.Examples()); n != 7 {
		t.Errorf("expected 7 examples, got %d", n)
	}

	codec, err := d.Codec(charrnn.DefaultLetters)
	if err != nil {
		t.Fatalf("%v", err)
	}
	if codec.NumCategories() != 2 {
		t.Errorf("expected 2 categories, got %d", codec.NumCategories())
	}

	if _, err := Load(t.TempDir(), charrnn.DefaultLetters); err == nil {
		t.Errorf("empty directory accepted")
	}
}

func TestSplit(t *testing.T) {
	d, err := Load(writeDataset(t), charrnn.DefaultLetters)
	if err != nil {
		t.Fatalf("%v", err)
	}
	train, test := d.Split(0.5, rand.New(rand.NewPCG(1, 2)))
	for _, c := range d.Categories {
		if len(train.Lines[c])+len(test.Lines[c]) != len(d.Lines[c]) {
			t.Errorf("%s: %v + %v != %v", c, train.Lines[c], test.Lines[c], d.Lines[c])
		}
	}
	if len(test.Lines["German"]) != 2 || len(test.Lines["Korean"]) != 1 {
		t.Errorf("test set %v", test.Lines)
	}
}

func TestSampler(t *testing.T) {
	d, err := Load(writeDataset(t), charrnn.DefaultLetters)
	if err != nil {
		t.Fatalf("%v", err)
	}
	s, err := NewSampler(d, rand.New(rand.NewPCG(3, 4)))
	if err != nil {
		t.Fatalf("%v", err)
	}

	seen := make(map[charrnn.Example]int)
	for i := 0; i < 2*s.Len(); i++ {
		seen[s.Next()]++
	}
	if len(seen) != 7 {
		t.Errorf("expected 7 distinct examples, got %v", seen)
	}
	for ex, n := range seen {
		if n != 2 {
			t.Errorf("%v returned %d times", ex, n)
		}
	}

	for i := 0; i < 20; i++ {
		ex := s.RandomExample()
		found := false
		for _, l := range d.Lines[ex.Category] {
			found = found || l == ex.Word
		}
		if !found {
			t.Errorf("%v is not in the dataset", ex)
		}
	}

	empty := &Dataset{Categories: []string{"x"}, Lines: map[string][]string{}}
	if _, err := NewSampler(empty, rand.New(rand.NewPCG(5, 6))); err == nil {
		t.Errorf("empty dataset accepted")
	}
}
