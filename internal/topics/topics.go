//    OCRTopics
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/e-gun/OCRTopics/internal/corpus"
	"github.com/e-gun/OCRTopics/internal/gen"
	"github.com/e-gun/OCRTopics/internal/lnch"
	"github.com/e-gun/OCRTopics/internal/nmf"
	"github.com/e-gun/OCRTopics/internal/str"
	"github.com/e-gun/OCRTopics/internal/vec"
	"github.com/e-gun/OCRTopics/internal/vv"
	"gonum.org/v1/gonum/mat"
)

var Msg = lnch.NewMessageMakerWithDefaults()

// Config - everything that shapes a topic model run
type Config struct {
	MaxDocuments int
	MaxFeatures  int
	MinDocFreq   int
	MaxDocFrac   float64
	StopWords    []string
	MinTokenLen  int
	Topics       int
	TopWords     int
	Alpha        float64
	L1Ratio      float64
	Seed         uint64
	Init         string
	MaxIter      int
	Tolerance    float64
}

func DefaultConfig() Config {
	return Config{
		MaxDocuments: vv.TFIDFMAXDOCS,
		MaxFeatures:  vv.TFIDFMAXFEAT,
		MinDocFreq:   vv.TFIDFMINDF,
		MaxDocFrac:   vv.TFIDFMAXDF,
		StopWords:    vec.English,
		MinTokenLen:  vv.TFIDFMINTOKEN,
		Topics:       vv.NMFTOPICS,
		TopWords:     vv.NMFTOPWORDS,
		Alpha:        vv.NMFALPHA,
		L1Ratio:      vv.NMFL1RATIO,
		Seed:         vv.NMFSEED,
		Init:         vv.NMFINIT,
		MaxIter:      vv.NMFMAXITER,
		Tolerance:    vv.NMFTOLERANCE,
	}
}

// ConfigFromCurrent - translate the launch configuration; stops are the stop list to use
func ConfigFromCurrent(cc *str.CurrentConfiguration, stops []string) Config {
	return Config{
		MaxDocuments: cc.TfidfMaxDocs,
		MaxFeatures:  cc.TfidfMaxFeat,
		MinDocFreq:   cc.TfidfMinDF,
		MaxDocFrac:   cc.TfidfMaxDF,
		StopWords:    stops,
		MinTokenLen:  cc.TfidfMinToken,
		Topics:       cc.NMFTopics,
		TopWords:     cc.NMFTopWords,
		Alpha:        cc.NMFAlpha,
		L1Ratio:      cc.NMFL1Ratio,
		Seed:         cc.NMFSeed,
		Init:         cc.NMFInit,
		MaxIter:      cc.NMFMaxIter,
		Tolerance:    cc.NMFTolerance,
	}
}

func (c Config) vectorconfig() vec.Config {
	return vec.Config{
		MaxFeatures: c.MaxFeatures,
		MinDocFreq:  c.MinDocFreq,
		MaxDocFrac:  c.MaxDocFrac,
		MinTokenLen: c.MinTokenLen,
		StopWords:   c.StopWords,
	}
}

func (c Config) nmfconfig() nmf.Config {
	return nmf.Config{
		Components: c.Topics,
		Alpha:      c.Alpha,
		L1Ratio:    c.L1Ratio,
		Init:       c.Init,
		Seed:       c.Seed,
		MaxIter:    c.MaxIter,
		Tolerance:  c.Tolerance,
	}
}

// Topic - the highest weighted terms of one H row, heaviest first
type Topic struct {
	Index   int
	Terms   []string
	Weights []float64
}

type Result struct {
	Documents  []string
	Vocabulary []string
	Topics     []Topic
	Model      *nmf.Model
}

// Run - vectorise the first MaxDocuments texts of the mapping and factor them into topics
func Run(m *corpus.Mapping, c Config) (*Result, error) {
	const (
		MSG1 = "modeling %d of %d documents"
		MSG2 = "vectorised: %d terms"
		MSG3 = "*** NMF model with %d components"
	)
	start := time.Now()
	previous := time.Now()

	ids := gen.FirstN(m.Keys(), c.MaxDocuments)
	texts := gen.FirstN(m.Texts(), c.MaxDocuments)
	Msg.PEEK(fmt.Sprintf(MSG1, len(texts), m.Len()))

	vectoriser := vec.NewVectoriser(c.vectorconfig())
	x, err := vectoriser.FitTransform(texts)
	if err != nil {
		return nil, fmt.Errorf("vectorising %d documents: %w", len(texts), err)
	}
	Msg.Timer("T1", fmt.Sprintf(MSG2, len(vectoriser.Vocabulary)), start, previous)
	previous = time.Now()

	model, err := nmf.Fit(x, c.nmfconfig())
	if err != nil {
		return nil, fmt.Errorf("fitting %d topics: %w", c.Topics, err)
	}
	Msg.Timer("T2", "factored", start, previous)
	Msg.NOTE(fmt.Sprintf(MSG3, c.Topics))

	res := &Result{
		Documents:  ids,
		Vocabulary: vectoriser.Vocabulary,
		Model:      model,
	}
	res.Topics = TopTerms(model.H, res.Vocabulary, c.TopWords)
	return res, nil
}

// TopTerms - for each row of h the n heaviest terms; equal weights keep vocabulary order
func TopTerms(h *mat.Dense, vocab []string, n int) []Topic {
	k, _ := h.Dims()
	tt := make([]Topic, k)
	for i := 0; i < k; i++ {
		row := h.RawRowView(i)
		top := gen.TopNIndices(row, n)
		t := Topic{Index: i, Terms: make([]string, len(top)), Weights: make([]float64, len(top))}
		for j, idx := range top {
			t.Terms[j] = vocab[idx]
			t.Weights[j] = row[idx]
		}
		tt[i] = t
	}
	return tt
}

// Print - "Topic i:" and then the space-joined terms, two lines per topic
func Print(w io.Writer, r *Result) error {
	for _, t := range r.Topics {
		if _, err := fmt.Fprintf(w, vv.TOPICHEADERTMPL+"\n", t.Index); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, strings.Join(t.Terms, " ")); err != nil {
			return err
		}
	}
	return nil
}

// DominantTopics - how many documents have each topic as their heaviest W entry; all-zero rows are not counted
func DominantTopics(r *Result) []int {
	n, k := r.Model.W.Dims()
	counts := make([]int, k)
	for i := 0; i < n; i++ {
		row := r.Model.W.RawRowView(i)
		top := gen.TopNIndices(row, 1)
		if len(top) == 0 || row[top[0]] == 0 {
			continue
		}
		counts[top[0]]++
	}
	return counts
}

// LogDominantTopics - DominantTopics() at FYI level
func LogDominantTopics(r *Result) {
	const (
		MSG1 = "Topic %d dominates %d documents"
	)
	for i, c := range DominantTopics(r) {
		Msg.FYI(fmt.Sprintf(MSG1, i, c))
	}
}
