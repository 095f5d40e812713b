//    OCRTopics
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/e-gun/OCRTopics/internal/gen"
	"github.com/e-gun/OCRTopics/internal/vv"
)

//
// STOPWORDS
//

// DefaultStopFile - "~/.config/ocrtopics-stops-english.json"
func DefaultStopFile() (string, error) {
	h, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(vv.CONFIGALTAPTH, h) + vv.CONFIGSTOPSENG, nil
}

// ReadStopConfig - the stop list stored in fn; "" means vv.CONFIGSTOPSENG in the config dir if it exists, else the built-in list
func ReadStopConfig(fn string) []string {
	const (
		ERR1 = "ReadStopConfig() cannot find UserHomeDir"
		ERR2 = "ReadStopConfig() failed to parse "
		MSG1 = "ReadStopConfig() loaded %d stop words from %s instead of the built-in list"
		MSG2 = "ReadStopConfig() using the built-in list of %d stop words"
	)

	stops := gen.SortedKeys(EnglishStops())

	if fn == "" {
		dflt, err := DefaultStopFile()
		if err != nil {
			Msg.MAND(ERR1)
			return stops
		}
		if _, missing := os.Stat(dflt); missing != nil {
			Msg.TMI(fmt.Sprintf(MSG2, len(stops)))
			return stops
		}
		fn = dflt
	}

	loaded, err := LoadStopFile(fn)
	if err != nil {
		Msg.CRIT(ERR2 + fn)
		return stops
	}
	Msg.NOTE(fmt.Sprintf(MSG1, len(loaded), fn))
	return loaded
}

// WriteStopConfig - store the built-in list in fn as an editable JSON array
func WriteStopConfig(fn string) error {
	stops := gen.SortedKeys(EnglishStops())
	content, err := json.MarshalIndent(stops, vv.JSONINDENT, vv.JSONINDENT)
	if err != nil {
		return err
	}
	return os.WriteFile(fn, content, vv.WRITEPERMS)
}

// LoadStopFile - a JSON array of strings
func LoadStopFile(fn string) ([]string, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var stp []string
	if err = json.NewDecoder(f).Decode(&stp); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", fn, err)
	}
	sort.Strings(stp)
	return stp, nil
}

// EnglishStops - the usual English function words
func EnglishStops() map[string]struct{} {
	return gen.ToSet(English)
}

var (
	English = []string{"a", "about", "above", "across", "after", "afterwards", "again", "against", "all",
		"almost", "alone", "along", "already", "also", "although", "always", "am", "among", "amongst", "amoungst",
		"amount", "an", "and", "another", "any", "anyhow", "anyone", "anything", "anyway", "anywhere", "are",
		"around", "as", "at", "back", "be", "became", "because", "become", "becomes", "becoming", "been", "before",
		"beforehand", "behind", "being", "below", "beside", "besides", "between", "beyond", "bill", "both", "bottom",
		"but", "by", "call", "can", "cannot", "cant", "co", "con", "could", "couldnt", "cry", "de", "describe",
		"detail", "do", "done", "down", "due", "during", "each", "eg", "eight", "either", "eleven", "else",
		"elsewhere", "empty", "enough", "etc", "even", "ever", "every", "everyone", "everything", "everywhere",
		"except", "few", "fifteen", "fifty", "fill", "find", "fire", "first", "five", "for", "former", "formerly",
		"forty", "found", "four", "from", "front", "full", "further", "get", "give", "go", "had", "has", "hasnt",
		"have", "he", "hence", "her", "here", "hereafter", "hereby", "herein", "hereupon", "hers", "herself", "him",
		"himself", "his", "how", "however", "hundred", "i", "ie", "if", "in", "inc", "indeed", "interest", "into",
		"is", "it", "its", "itself", "keep", "last", "latter", "latterly", "least", "less", "ltd", "made", "many",
		"may", "me", "meanwhile", "might", "mill", "mine", "more", "moreover", "most", "mostly", "move", "much",
		"must", "my", "myself", "name", "namely", "neither", "never", "nevertheless", "next", "nine", "no", "nobody",
		"none", "noone", "nor", "not", "nothing", "now", "nowhere", "of", "off", "often", "on", "once", "one", "only",
		"onto", "or", "other", "others", "otherwise", "our", "ours", "ourselves", "out", "over", "own", "part", "per",
		"perhaps", "please", "put", "rather", "re", "same", "see", "seem", "seemed", "seeming", "seems", "serious",
		"several", "she", "should", "show", "side", "since", "sincere", "six", "sixty", "so", "some", "somehow",
		"someone", "something", "sometime", "sometimes", "somewhere", "still", "such", "system", "take", "ten",
		"than", "that", "the", "their", "them", "themselves", "then", "thence", "there", "thereafter", "thereby",
		"therefore", "therein", "thereupon", "these", "they", "thick", "thin", "third", "this", "those", "though",
		"three", "through", "throughout", "thru", "thus", "to", "together", "too", "top", "toward", "towards",
		"twelve", "twenty", "two", "un", "under", "until", "up", "upon", "us", "very", "via", "was", "we", "well",
		"were", "what", "whatever", "when", "whence", "whenever", "where", "whereafter", "whereas", "whereby",
		"wherein", "whereupon", "wherever", "whether", "which", "while", "whither", "who", "whoever", "whole", "whom",
		"whose", "why", "will", "with", "within", "without", "would", "yet", "you", "your", "yours", "yourself",
		"yourselves"}
)
