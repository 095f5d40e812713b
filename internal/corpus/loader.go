//    OCRTopics
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package corpus

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/e-gun/OCRTopics/internal/vv"
	"golang.org/x/text/encoding/charmap"
)

const (
	IDReplace = "replace" // drop every ".txt" in the name: "doc.txtfile.txt" -> "docfile"
	IDSuffix  = "suffix"  // drop a trailing ".txt" only
	IDPattern = "pattern" // ".txt" as an unescaped regexp: "mytxt.txt" -> "m"

	EncUTF8   = "utf8"
	EncLatin1 = "latin1"
	EncCP1252 = "cp1252"
)

var (
	ErrNotUTF8         = errors.New("file is not valid UTF-8")
	ErrUnknownEncoding = errors.New("unknown input encoding")
	ErrUnknownIDMode   = errors.New("unknown identifier mode")

	tagpattern = regexp.MustCompile(`<.*?>`)
	newlines   = strings.NewReplacer("\r\n", "\n", "\r", "\n")
)

// Config - where the OCR files live and how to turn them into mapping entries
type Config struct {
	OCRDir   string
	Ext      string
	IDMode   string
	Encoding string
}

func DefaultConfig() Config {
	return Config{
		OCRDir:   vv.DEFAULTOCRDIR,
		Ext:      vv.DEFAULTOCREXT,
		IDMode:   vv.DEFAULTIDMODE,
		Encoding: vv.DEFAULTENCODING,
	}
}

func (c Config) Validate() error {
	switch c.IDMode {
	case IDReplace, IDSuffix:
	case IDPattern:
		if _, err := regexp.Compile(c.Ext); err != nil {
			return fmt.Errorf("extension %q is not a usable pattern: %w", c.Ext, err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownIDMode, c.IDMode)
	}

	switch c.Encoding {
	case EncUTF8, EncLatin1, EncCP1252:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEncoding, c.Encoding)
	}
	return nil
}

// StripTags - remove every <...> span; whatever surrounds a tag is left exactly as it was
func StripTags(text string) string {
	return tagpattern.ReplaceAllString(text, "")
}

// DeriveID - the base filename minus its extension, according to the identifier mode
func DeriveID(filename string, ext string, mode string) string {
	base := filepath.Base(filename)
	switch mode {
	case IDSuffix:
		return strings.TrimSuffix(base, ext)
	case IDPattern:
		if re, err := regexp.Compile(ext); err == nil {
			return re.ReplaceAllString(base, "")
		}
	}
	return strings.ReplaceAll(base, ext, "")
}

// FindSources - every "<dataDir>/<ocr>/*.txt", sorted by full path; dotfiles are skipped as a shell glob would
func FindSources(dataDir string, c Config) ([]string, error) {
	found, err := filepath.Glob(filepath.Join(dataDir, c.OCRDir, "*"+c.Ext))
	if err != nil {
		return nil, err
	}

	var sources []string
	for _, f := range found {
		if strings.HasPrefix(filepath.Base(f), ".") {
			continue
		}
		sources = append(sources, f)
	}
	sort.Strings(sources)
	return sources, nil
}

// Build - read, clean, and key every file; any failure abandons the whole mapping
func Build(paths []string, c Config) (*Mapping, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	m := NewMapping()
	for _, p := range paths {
		txt, err := ReadDocument(p, c.Encoding)
		if err != nil {
			return nil, err
		}
		m.Set(DeriveID(p, c.Ext, c.IDMode), StripTags(txt))
	}
	return m, nil
}

// BuildCorpusMapping - FindSources() + Build()
func BuildCorpusMapping(dataDir string, c Config) (*Mapping, error) {
	paths, err := FindSources(dataDir, c)
	if err != nil {
		return nil, err
	}
	return Build(paths, c)
}

// ReadDocument - the full text of one file with its line endings unified to "\n"
func ReadDocument(path string, encoding string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	var txt string
	switch encoding {
	case EncUTF8:
		if !utf8.Valid(b) {
			return "", fmt.Errorf("%s: %w", path, ErrNotUTF8)
		}
		txt = string(b)
	case EncLatin1:
		txt, err = charmap.ISO8859_1.NewDecoder().String(string(b))
	case EncCP1252:
		txt, err = charmap.Windows1252.NewDecoder().String(string(b))
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEncoding, encoding)
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}

	return newlines.Replace(txt), nil
}
