package sstable

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobonovski/goibm/corpus"
	"github.com/bobonovski/goibm/table"
)

func tempFile(t *testing.T, content string) string {
	dir, err := ioutil.TempDir("", "sstable")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })

	fn := filepath.Join(dir, "model.table")
	if content != "" {
		require.NoError(t, ioutil.WriteFile(fn, []byte(content), 0644))
	}
	return fn
}

func TestTableRoundTrip(t *testing.T) {
	c := corpus.New([]corpus.TextPair{
		{Source: "la maison", Target: "the house"},
		{Source: "la fleur,", Target: "the flower"},
	})
	tt := table.New(corpus.Scan(c.Pairs))
	tt.Set(0, 0, 0.1234567890123456789)
	tt.Set(1, 2, 0)

	fn := tempFile(t, "")
	require.NoError(t, SaveTable(tt, fn))

	loaded, err := LoadTable(fn)
	require.NoError(t, err)
	assert.Equal(t, tt.Target().Words(), loaded.Target().Words())
	assert.Equal(t, tt.Source().Words(), loaded.Source().Words())
	assert.True(t, tt.Equal(loaded, 0))
	assert.Equal(t, 0.0, loaded.Probability("house", "fleur,"))
}

func TestLoadTableSkipsCorruptedLines(t *testing.T) {
	fn := tempFile(t, "1,2\nthe\nla\tle\n0,0,0.75\nbroken\n0,1,2.5e-01\n")

	tt, err := LoadTable(fn)
	require.NoError(t, err)
	assert.Equal(t, 0.75, tt.Probability("the", "la"))
	assert.Equal(t, 0.25, tt.Probability("the", "le"))
}

func TestLoadTableErrors(t *testing.T) {
	for _, content := range []string{
		"1;2\nthe\nla\tle\n",
		"2,2\nthe\nla\tle\n",
		"1,2\nthe\nla\tle\n3,0,1\n",
		"1,2\nthe\nla\tle\n0,0,abc\n",
		"1,2\nthe\n",
	} {
		_, err := LoadTable(tempFile(t, content))
		assert.Error(t, err, content)
	}

	_, err := LoadTable(filepath.Join(os.TempDir(), "no-such-table"))
	assert.Error(t, err)
}
