//    OCRTopics
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/e-gun/OCRTopics/internal/gen"
	"github.com/e-gun/OCRTopics/internal/lnch"
	"github.com/e-gun/OCRTopics/internal/vv"
	"github.com/e-gun/nlp"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	Msg = lnch.NewMessageMakerWithDefaults()

	ErrEmptyVocabulary = errors.New("no terms remain after pruning")

	tokenpattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)
)

var _ nlp.Tokeniser = WordTokeniser{}

// Config - vocabulary bounds for the term-document matrix
type Config struct {
	MaxFeatures int
	MinDocFreq  int
	MaxDocFrac  float64
	MinTokenLen int
	StopWords   []string
}

func DefaultConfig() Config {
	return Config{
		MaxFeatures: vv.TFIDFMAXFEAT,
		MinDocFreq:  vv.TFIDFMINDF,
		MaxDocFrac:  vv.TFIDFMAXDF,
		MinTokenLen: vv.TFIDFMINTOKEN,
		StopWords:   English,
	}
}

// Vectoriser - counts terms, prunes the vocabulary, then weights what is left by tf-idf
type Vectoriser struct {
	Cfg Config
	// Vocabulary - the surviving terms; a term's position is its column in the matrix
	Vocabulary []string
}

func NewVectoriser(c Config) *Vectoriser {
	return &Vectoriser{Cfg: c}
}

type termstats struct {
	df    int
	total float64
}

// FitTransform - documents × terms tf-idf weights with every row scaled to unit length
func (v *Vectoriser) FitTransform(docs []string) (*mat.Dense, error) {
	const (
		FAIL1 = "%w: %d documents cannot satisfy min df %d with max df %.2f"
		FAIL2 = "%w: %d candidate terms, none survived"
		MSG1  = "vocabulary pruned from %d to %d terms over %d documents"
	)

	v.Vocabulary = nil
	n := len(docs)
	if n == 0 {
		return nil, fmt.Errorf("%w: no documents", ErrEmptyVocabulary)
	}

	maxdf := v.Cfg.MaxDocFrac * float64(n)
	if maxdf < float64(v.Cfg.MinDocFreq) {
		return nil, fmt.Errorf(FAIL1, ErrEmptyVocabulary, n, v.Cfg.MinDocFreq, v.Cfg.MaxDocFrac)
	}

	counter := nlp.NewCountVectoriser(v.Cfg.StopWords...)
	counter.Tokeniser = NewWordTokeniser(v.Cfg.StopWords)
	counts, err := counter.FitTransform(docs...)
	if err != nil {
		return nil, err
	}

	stats := collectstats(counts, len(counter.Vocabulary))
	kept := v.prune(counter.Vocabulary, stats, maxdf)
	if len(kept) == 0 {
		return nil, fmt.Errorf(FAIL2, ErrEmptyVocabulary, len(counter.Vocabulary))
	}
	Msg.PEEK(fmt.Sprintf(MSG1, len(counter.Vocabulary), len(kept), n))

	sort.Strings(kept)
	pruned := make(map[string]int, len(kept))
	for i, t := range kept {
		pruned[t] = i
	}
	counter.Vocabulary = pruned

	counts, err = counter.Transform(docs...)
	if err != nil {
		return nil, err
	}

	weighted, err := nlp.NewTfidfTransformer().FitTransform(counts)
	if err != nil {
		return nil, err
	}

	// the nlp matrices are terms × docs
	x := mat.DenseCopyOf(weighted.T())
	for i := 0; i < n; i++ {
		row := x.RawRowView(i)
		if nrm := floats.Norm(row, 2); nrm > 0 {
			floats.Scale(1/nrm, row)
		}
	}

	v.Vocabulary = kept
	return x, nil
}

// collectstats - document frequency and corpus frequency of each term row
func collectstats(counts mat.Matrix, nterms int) []termstats {
	stats := make([]termstats, nterms)
	tally := func(i, j int, c float64) {
		if c != 0 {
			stats[i].df++
			stats[i].total += c
		}
	}

	if nz, ok := counts.(mat.NonZeroDoer); ok {
		nz.DoNonZero(tally)
		return stats
	}

	r, c := counts.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			tally(i, j, counts.At(i, j))
		}
	}
	return stats
}

func (v *Vectoriser) prune(vocab map[string]int, stats []termstats, maxdf float64) []string {
	stops := make(map[string]struct{}, len(v.Cfg.StopWords))
	for _, s := range v.Cfg.StopWords {
		stops[s] = struct{}{}
	}

	var kept []string
	for t, i := range vocab {
		if _, bad := stops[t]; bad {
			continue
		}
		if utf8.RuneCountInString(t) < v.Cfg.MinTokenLen {
			continue
		}
		if stats[i].df < v.Cfg.MinDocFreq || float64(stats[i].df) > maxdf {
			continue
		}
		kept = append(kept, t)
	}

	if v.Cfg.MaxFeatures <= 0 || len(kept) <= v.Cfg.MaxFeatures {
		return kept
	}

	sort.Slice(kept, func(a, b int) bool {
		ta, tb := stats[vocab[kept[a]]].total, stats[vocab[kept[b]]].total
		if ta != tb {
			return ta > tb
		}
		return kept[a] < kept[b]
	})
	return kept[:v.Cfg.MaxFeatures]
}

// WordTokeniser - lower-cased [\p{L}\p{N}_]+ runs that are not stop words
type WordTokeniser struct {
	stops map[string]struct{}
}

func NewWordTokeniser(stops []string) WordTokeniser {
	return WordTokeniser{stops: gen.ToSet(stops)}
}

func (t WordTokeniser) ForEachIn(text string, f func(token string)) {
	for _, tok := range tokenpattern.FindAllString(strings.ToLower(text), -1) {
		if _, bad := t.stops[tok]; !bad {
			f(tok)
		}
	}
}

func (t WordTokeniser) Tokenise(text string) []string {
	var tt []string
	t.ForEachIn(text, func(token string) {
		tt = append(tt, token)
	})
	return tt
}
