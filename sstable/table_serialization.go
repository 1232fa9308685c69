package sstable

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	log "github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/bobonovski/goibm/corpus"
	"github.com/bobonovski/goibm/table"
)

// serialize the translation table to file. The first line holds the
// shape (target words, source words), the next two lines the target and
// source words separated by tabs, followed by one [targetId,sourceId,value]
// line per nonzero probability.
func SaveTable(t *table.TranslationTable, fn string) error {
	out, err := os.OpenFile(fn, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0644)
	if err != nil {
		return errors.Wrapf(err, "create table %s", fn)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	r, c := t.Target().Len(), t.Source().Len()
	// write the table shape and vocabularies
	fmt.Fprintf(w, "%d,%d\n", r, c)
	fmt.Fprintln(w, strings.Join(t.Target().Words(), "\t"))
	fmt.Fprintln(w, strings.Join(t.Source().Words(), "\t"))

	var val float64
	for ridx := 0; ridx < r; ridx += 1 {
		for cidx := 0; cidx < c; cidx += 1 {
			val = t.Get(ridx, cidx)
			if val > 0 { // only write out nonzero value
				fmt.Fprintf(w, "%d,%d,%s\n", ridx, cidx,
					strconv.FormatFloat(val, 'e', -1, 64))
			}
		}
	}

	if err := w.Flush(); err != nil {
		return errors.Wrapf(err, "write table %s", fn)
	}
	return out.Close()
}

// deserialize a translation table written by SaveTable
func LoadTable(fn string) (*table.TranslationTable, error) {
	file, err := os.Open(fn)
	if err != nil {
		return nil, errors.Wrapf(err, "open table %s", fn)
	}
	defer file.Close()

	lineIdx := 0
	var row, col int
	var target, source *corpus.Vocabulary
	var tmp *table.TranslationTable

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), 64*1024*1024)
	for scanner.Scan() {
		txt := scanner.Text()
		lineIdx += 1
		switch lineIdx {
		case 1:
			shape := strings.Split(txt, ",")
			if len(shape) != 2 {
				return nil, errors.Errorf("model corrupted, shape not found: %s", txt)
			}
			if row, err = strconv.Atoi(shape[0]); err != nil {
				return nil, errors.Wrap(err, "model corrupted, bad row count")
			}
			if col, err = strconv.Atoi(shape[1]); err != nil {
				return nil, errors.Wrap(err, "model corrupted, bad column count")
			}
			if row <= 0 || col <= 0 {
				return nil, errors.Errorf("model corrupted, bad shape: %s", txt)
			}
			continue
		case 2:
			if target, err = vocabulary(txt, row); err != nil {
				return nil, errors.Wrap(err, "target words")
			}
			continue
		case 3:
			if source, err = vocabulary(txt, col); err != nil {
				return nil, errors.Wrap(err, "source words")
			}
			tmp = table.Empty(source, target)
			continue
		}

		value := strings.Split(txt, ",")
		if len(value) != 3 {
			log.Warningf("data corrupted, row %d, data %s", lineIdx, txt)
			continue
		}
		ridx, err := strconv.Atoi(value[0])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineIdx)
		}
		cidx, err := strconv.Atoi(value[1])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineIdx)
		}
		if ridx < 0 || ridx >= row || cidx < 0 || cidx >= col {
			return nil, errors.Errorf("line %d: cell %d,%d outside %dx%d table",
				lineIdx, ridx, cidx, row, col)
		}
		val, err := strconv.ParseFloat(value[2], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineIdx)
		}
		tmp.Set(ridx, cidx, val)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read table %s", fn)
	}
	if tmp == nil {
		return nil, errors.Errorf("model corrupted, %s ends after %d lines", fn, lineIdx)
	}
	return tmp, nil
}

func vocabulary(txt string, size int) (*corpus.Vocabulary, error) {
	v := corpus.NewVocabulary()
	for _, w := range strings.Split(txt, "\t") {
		v.Add(w)
	}
	if v.Len() != size {
		return nil, errors.Errorf("model corrupted, %d distinct words, expected %d", v.Len(), size)
	}
	return v, nil
}
