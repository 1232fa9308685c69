package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobonovski/goibm/alignment"
)

func writeConfig(t *testing.T, content string) string {
	dir, err := ioutil.TempDir("", "config")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })

	fn := filepath.Join(dir, "train.yaml")
	require.NoError(t, ioutil.WriteFile(fn, []byte(content), 0644))
	return fn
}

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, Exhaustive, c.Estimator)
	assert.Equal(t, alignment.FirstOccurrence, c.OccurrenceStrategy())
	assert.Equal(t, 1, c.Workers)
}

func TestLoad(t *testing.T) {
	fn := writeConfig(t, "iterations: 5\nestimator: factored\noccurrence: all\nworkers: 4\n")

	c, err := Load(fn)
	require.NoError(t, err)
	assert.Equal(t, 5, c.Iterations)
	assert.Equal(t, Factored, c.Estimator)
	assert.Equal(t, alignment.AllOccurrences, c.OccurrenceStrategy())
	assert.Equal(t, 4, c.Workers)
	assert.Equal(t, 0, c.MaxAlignments)
}

func TestLoadFrom(t *testing.T) {
	base := Default()
	base.Estimator = Factored
	base.Iterations = 3

	c, err := LoadFrom(writeConfig(t, "iterations: 7\n"), base)
	require.NoError(t, err)
	assert.Equal(t, 7, c.Iterations)
	assert.Equal(t, Factored, c.Estimator)
}

func TestLoadRejects(t *testing.T) {
	_, err := Load(writeConfig(t, "estimator: neural\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "iterations: -1\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "iters: 3\n"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(os.TempDir(), "no-such-config.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	c := Default()
	c.Occurrence = "last"
	assert.Error(t, c.Validate())

	c = Default()
	c.Workers = -2
	assert.Error(t, c.Validate())

	c = Default()
	c.MaxAlignments = -1
	assert.Error(t, c.Validate())
}
