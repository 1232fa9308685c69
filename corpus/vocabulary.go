package corpus

// Vocabulary keeps distinct words in the order they were first seen
type Vocabulary struct {
	words []string
	index map[string]int
}

func NewVocabulary() *Vocabulary {
	return &Vocabulary{index: make(map[string]int)}
}

// add w if unseen and return its id
func (v *Vocabulary) Add(w string) int {
	if id, ok := v.index[w]; ok {
		return id
	}
	id := len(v.words)
	v.words = append(v.words, w)
	v.index[w] = id
	return id
}

// get the id of w
func (v *Vocabulary) Id(w string) (int, bool) {
	id, ok := v.index[w]
	return id, ok
}

// get the word with id
func (v *Vocabulary) Word(id int) string {
	return v.words[id]
}

func (v *Vocabulary) Words() []string {
	return append([]string(nil), v.words...)
}

func (v *Vocabulary) Len() int {
	return len(v.words)
}

// Scan collects the source and target vocabularies of pairs
func Scan(pairs []*SentencePair) (*Vocabulary, *Vocabulary) {
	source, target := NewVocabulary(), NewVocabulary()
	for _, p := range pairs {
		for _, w := range p.Source {
			source.Add(w)
		}
		for _, w := range p.Target {
			target.Add(w)
		}
	}
	return source, target
}

// Positions lists every index of w in words
func Positions(words []string, w string) []int {
	var pos []int
	for i, x := range words {
		if x == w {
			pos = append(pos, i)
		}
	}
	return pos
}

// Distinct returns the words in order of first appearance
func Distinct(words []string) []string {
	seen := make(map[string]bool, len(words))
	var out []string
	for _, w := range words {
		if !seen[w] {
			seen[w] = true
			out = append(out, w)
		}
	}
	return out
}
