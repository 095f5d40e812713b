//    OCRTopics
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func riverdocs() []string {
	docs := make([]string, 10)
	for i := range docs {
		d := "The common x"
		if i < 6 {
			d += " river river"
		}
		if i%2 == 0 {
			d += " stone"
		}
		if i == 0 {
			d += " rare"
		}
		docs[i] = d
	}
	return docs
}

func smallcfg() Config {
	c := DefaultConfig()
	c.MinDocFreq = 2
	return c
}

func TestFitTransformPrunes(t *testing.T) {
	v := NewVectoriser(smallcfg())
	x, err := v.FitTransform(riverdocs())
	require.NoError(t, err)

	assert.Equal(t, []string{"river", "stone"}, v.Vocabulary)
	r, c := x.Dims()
	assert.Equal(t, 10, r)
	assert.Equal(t, 2, c)

	for i := 0; i < r; i++ {
		row := x.RawRowView(i)
		for _, w := range row {
			assert.GreaterOrEqual(t, w, 0.0)
		}
		if i == 7 || i == 9 {
			assert.Equal(t, 0.0, floats.Norm(row, 2))
			continue
		}
		assert.InDelta(t, 1.0, floats.Norm(row, 2), 1e-9, fmt.Sprintf("row %d", i))
	}
	assert.Equal(t, 0.0, x.At(1, 1))
	assert.Greater(t, x.At(0, 0), 0.0)
}

func TestFitTransformMaxFeatures(t *testing.T) {
	c := smallcfg()
	c.MaxFeatures = 1
	v := NewVectoriser(c)
	x, err := v.FitTransform(riverdocs())
	require.NoError(t, err)
	assert.Equal(t, []string{"river"}, v.Vocabulary)
	_, cols := x.Dims()
	assert.Equal(t, 1, cols)
}

func TestFitTransformTooFewDocuments(t *testing.T) {
	docs := make([]string, 9)
	for i := range docs {
		docs[i] = "river stone"
	}
	_, err := NewVectoriser(DefaultConfig()).FitTransform(docs)
	assert.ErrorIs(t, err, ErrEmptyVocabulary)

	_, err = NewVectoriser(DefaultConfig()).FitTransform(nil)
	assert.ErrorIs(t, err, ErrEmptyVocabulary)
}

func TestFitTransformNothingSurvives(t *testing.T) {
	docs := make([]string, 20)
	for i := range docs {
		docs[i] = fmt.Sprintf("the and of word%c", 'a'+rune(i))
	}
	v := NewVectoriser(DefaultConfig())
	_, err := v.FitTransform(docs)
	assert.ErrorIs(t, err, ErrEmptyVocabulary)
	assert.Empty(t, v.Vocabulary)
}

func TestStopFiles(t *testing.T) {
	assert.Contains(t, EnglishStops(), "the")
	assert.NotContains(t, EnglishStops(), "river")

	fn := filepath.Join(t.TempDir(), "stops.json")
	require.NoError(t, os.WriteFile(fn, []byte(`["zeta", "alpha"]`), 0644))

	got, err := LoadStopFile(fn)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, got)
	assert.Equal(t, []string{"alpha", "zeta"}, ReadStopConfig(fn))

	require.NoError(t, os.WriteFile(fn, []byte(`{"not": "a list"}`), 0644))
	_, err = LoadStopFile(fn)
	assert.Error(t, err)
	assert.Len(t, ReadStopConfig(fn), len(EnglishStops()))
}

func TestReadStopConfigLeavesHomeAlone(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".config"), 0755))
	t.Setenv("HOME", home)

	dflt, err := DefaultStopFile()
	require.NoError(t, err)

	got := ReadStopConfig("")
	assert.Len(t, got, len(EnglishStops()))
	_, err = os.Stat(dflt)
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, WriteStopConfig(dflt))
	assert.Len(t, ReadStopConfig(""), len(EnglishStops()))

	require.NoError(t, os.WriteFile(dflt, []byte(`["custom"]`), 0644))
	assert.Equal(t, []string{"custom"}, ReadStopConfig(""))
}

func TestWordTokeniser(t *testing.T) {
	tk := NewWordTokeniser([]string{"the"})
	assert.Equal(t, []string{"1923", "flood_report", "naïve"}, tk.Tokenise("The 1923 Flood_Report, naïve!"))
	assert.Empty(t, tk.Tokenise("the -- THE"))
}

func TestFitTransformKeepsNumerals(t *testing.T) {
	docs := riverdocs()
	for i := 0; i < 4; i++ {
		docs[i] += " in 1923"
	}
	v := NewVectoriser(smallcfg())
	_, err := v.FitTransform(docs)
	require.NoError(t, err)
	assert.Equal(t, []string{"1923", "river", "stone"}, v.Vocabulary)
}
