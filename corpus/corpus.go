package corpus

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	log "github.com/golang/glog"
	"github.com/pkg/errors"
)

// TextPair is one untokenized training record. The json keys follow the
// data files the corpus is usually distributed in.
type TextPair struct {
	Source string `json:"fr"`
	Target string `json:"en"`
}

// SentencePair holds the tokens of both sides of a record
type SentencePair struct {
	Source []string
	Target []string
}

type Corpus struct {
	Pairs []*SentencePair
}

// split text on whitespace, tokens are compared verbatim
func Tokenize(text string) []string {
	return strings.Fields(text)
}

func NewSentencePair(source, target string) *SentencePair {
	return &SentencePair{
		Source: Tokenize(source),
		Target: Tokenize(target),
	}
}

// New tokenizes every record
func New(texts []TextPair) *Corpus {
	c := &Corpus{Pairs: make([]*SentencePair, 0, len(texts))}
	for _, tp := range texts {
		c.Pairs = append(c.Pairs, NewSentencePair(tp.Source, tp.Target))
	}
	return c
}

// Texts returns the records joined back with single spaces
func (this *Corpus) Texts() []TextPair {
	texts := make([]TextPair, 0, len(this.Pairs))
	for _, p := range this.Pairs {
		texts = append(texts, TextPair{
			Source: strings.Join(p.Source, " "),
			Target: strings.Join(p.Target, " "),
		})
	}
	return texts
}

// load training data from file. A file ending in .json should hold an
// array of {"fr": source, "en": target} records, any other file is read
// line by line as [source TAB target]. Bad lines are logged and skipped.
func (this *Corpus) Load(fn string) error {
	var err error
	if strings.EqualFold(filepath.Ext(fn), ".json") {
		err = this.loadJSON(fn)
	} else {
		err = this.loadLines(fn)
	}
	if err != nil {
		return err
	}

	source, target := Scan(this.Pairs)
	log.Infof("number of sentence pairs %d", len(this.Pairs))
	log.Infof("source vocabulary size %d", source.Len())
	log.Infof("target vocabulary size %d", target.Len())
	return nil
}

func (this *Corpus) loadJSON(fn string) error {
	f, err := os.Open(fn)
	if err != nil {
		return errors.Wrapf(err, "open corpus %s", fn)
	}
	defer f.Close()

	var texts []TextPair
	if err := json.NewDecoder(f).Decode(&texts); err != nil {
		return errors.Wrapf(err, "decode corpus %s", fn)
	}
	this.Pairs = append(this.Pairs, New(texts).Pairs...)
	return nil
}

func (this *Corpus) loadLines(fn string) error {
	f, err := os.Open(fn)
	if err != nil {
		return errors.Wrapf(err, "open corpus %s", fn)
	}
	defer f.Close()

	lineIdx := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineIdx += 1
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		vals := strings.Split(line, "\t")
		if len(vals) != 2 {
			log.Warningf("bad sentence pair, line %d: %s", lineIdx, line)
			continue
		}
		this.Pairs = append(this.Pairs, NewSentencePair(vals[0], vals[1]))
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "read corpus %s", fn)
	}
	return nil
}
