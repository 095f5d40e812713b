//    OCRTopics
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/e-gun/OCRTopics/internal/corpus"
	"github.com/e-gun/OCRTopics/internal/nmf"
	"github.com/e-gun/OCRTopics/internal/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	wet = []string{"boat", "fish", "river", "water"}
	dry = []string{"cliff", "mountain", "rock", "stone"}
)

// themed - twelve river documents and eight stone documents, then extras that mention nothing else
func themed(extras int) *corpus.Mapping {
	m := corpus.NewMapping()
	for i := 0; i < 20; i++ {
		txt := "The river water boat fish river, on the river."
		if i >= 12 {
			txt = "A stone mountain: rock and cliff."
		}
		m.Set(fmt.Sprintf("doc%02d", i), txt)
	}
	for i := 0; i < extras; i++ {
		m.Set(fmt.Sprintf("extra%02d", i), "zebra giraffe zebra")
	}
	return m
}

func smallcfg() Config {
	c := DefaultConfig()
	c.MinDocFreq = 2
	c.Topics = 2
	c.TopWords = 4
	c.Alpha = 0
	c.MaxIter = 500
	return c
}

func sorted(ss []string) []string {
	cp := append([]string(nil), ss...)
	sort.Strings(cp)
	return cp
}

func TestRunSeparatesThemes(t *testing.T) {
	res, err := Run(themed(0), smallcfg())
	require.NoError(t, err)

	assert.Len(t, res.Documents, 20)
	assert.Equal(t, sorted(append(append([]string{}, wet...), dry...)), res.Vocabulary)
	require.Len(t, res.Topics, 2)

	got := [][]string{sorted(res.Topics[0].Terms), sorted(res.Topics[1].Terms)}
	assert.ElementsMatch(t, [][]string{wet, dry}, got)

	for _, tp := range res.Topics {
		for i := 1; i < len(tp.Weights); i++ {
			assert.GreaterOrEqual(t, tp.Weights[i-1], tp.Weights[i])
		}
	}

	dom := DominantTopics(res)
	assert.ElementsMatch(t, []int{12, 8}, dom)
}

func TestRunKeepsFirstDocuments(t *testing.T) {
	m := themed(10)
	c := smallcfg()
	c.MaxDocuments = 20

	res, err := Run(m, c)
	require.NoError(t, err)
	assert.Equal(t, m.Keys()[:20], res.Documents)
	assert.NotContains(t, res.Vocabulary, "zebra")

	c.MaxDocuments = 1000
	res, err = Run(m, c)
	require.NoError(t, err)
	assert.Len(t, res.Documents, 30)
	assert.Contains(t, res.Vocabulary, "zebra")
}

func TestRunFailures(t *testing.T) {
	few := corpus.NewMapping()
	for i := 0; i < 9; i++ {
		few.Set(fmt.Sprintf("d%d", i), "river water stone")
	}
	_, err := Run(few, DefaultConfig())
	assert.ErrorIs(t, err, vec.ErrEmptyVocabulary)

	c := DefaultConfig()
	c.MinDocFreq = 2
	_, err = Run(themed(0), c)
	assert.ErrorIs(t, err, nmf.ErrTooManyComponents)
}

func TestPrint(t *testing.T) {
	res := &Result{Topics: []Topic{
		{Index: 0, Terms: []string{"river", "water"}},
		{Index: 1, Terms: []string{"stone"}},
	}}
	var b bytes.Buffer
	require.NoError(t, Print(&b, res))
	assert.Equal(t, "Topic 0:\nriver water\nTopic 1:\nstone\n", b.String())
}

func TestPrintFromRun(t *testing.T) {
	res, err := Run(themed(0), smallcfg())
	require.NoError(t, err)

	var b bytes.Buffer
	require.NoError(t, Print(&b, res))
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Topic 0:", lines[0])
	assert.Equal(t, "Topic 1:", lines[2])
	assert.Len(t, strings.Fields(lines[1]), 4)
}

func TestWriteHTML(t *testing.T) {
	res, err := Run(themed(0), smallcfg())
	require.NoError(t, err)

	var b bytes.Buffer
	require.NoError(t, DefaultReport().WriteHTML(&b, res))
	assert.Contains(t, b.String(), "Documents per dominant topic")
	assert.Contains(t, b.String(), "Topic 1:")
	assert.Contains(t, b.String(), "mountain")

	fn := filepath.Join(t.TempDir(), "report.html")
	assert.NoError(t, DefaultReport().WriteHTMLFile(fn, res))
	assert.Error(t, DefaultReport().WriteHTMLFile(filepath.Join(t.TempDir(), "no", "such", "dir.html"), res))
}
