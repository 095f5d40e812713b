//    OCRTopics
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package corpus

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeocr(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	ocr := filepath.Join(dir, "ocr")
	require.NoError(t, os.MkdirAll(ocr, 0755))
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(ocr, name), []byte(body), 0644))
	}
}

func TestStripTags(t *testing.T) {
	cases := map[string]string{
		"The <b>quick</b> fox":          "The quick fox",
		"no tags at all":                "no tags at all",
		"<p>a</p><br/>b":                "ab",
		"x < y but y > z":               "x  z",
		"unclosed <tag":                 "unclosed <tag",
		"<a\nhref='x'>across lines</a>": "<a\nhref='x'>across lines",
	}
	for in, want := range cases {
		assert.Equal(t, want, StripTags(in), in)
	}
}

func TestStripTagsLeavesNoTags(t *testing.T) {
	tag := regexp.MustCompile(`<.*?>`)
	inputs := []string{
		"<<nested>>",
		"<a><b><c>",
		"text <with> several <tags> and <more>",
		"<<>>",
	}
	for _, in := range inputs {
		assert.False(t, tag.MatchString(StripTags(in)), in)
	}
}

func TestDeriveID(t *testing.T) {
	type tc struct {
		name, mode, want string
	}
	cases := []tc{
		{"/data/ocr/a.txt", IDReplace, "a"},
		{"/data/ocr/a.txt", IDSuffix, "a"},
		{"/data/ocr/a.txt", IDPattern, "a"},
		{"report.txt.v2", IDReplace, "report.v2"},
		{"report.txt.v2", IDSuffix, "report.txt.v2"},
		{"doc.txtfile.txt", IDReplace, "docfile"},
		{"doc.txtfile.txt", IDSuffix, "doc.txtfile"},
		{"mytxt.txt", IDReplace, "mytxt"},
		{"mytxt.txt", IDPattern, "m"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, DeriveID(c.name, ".txt", c.mode), c.name+" "+c.mode)
	}
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	c := DefaultConfig()
	c.IDMode = "strip"
	assert.ErrorIs(t, c.Validate(), ErrUnknownIDMode)

	c = DefaultConfig()
	c.Encoding = "ebcdic"
	assert.ErrorIs(t, c.Validate(), ErrUnknownEncoding)

	c = DefaultConfig()
	c.IDMode = IDPattern
	c.Ext = "(.txt"
	assert.Error(t, c.Validate())
}

func TestBuildCorpusMappingScenario(t *testing.T) {
	dir := t.TempDir()
	writeocr(t, dir, map[string]string{
		"a.txt": "The <b>quick</b> fox",
		"b.txt": "runs away quick",
		"c.txt": "A calm fox sleeps",
	})

	m, err := BuildCorpusMapping(dir, DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, m.Keys())
	assert.Equal(t, []string{"The  fox", "runs away quick", "A calm fox sleeps"}, m.Texts())

	b, err := m.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": "The  fox", "b": "runs away quick", "c": "A calm fox sleeps"}`, string(b))
}

func TestFindSourcesSortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	writeocr(t, dir, map[string]string{
		"b.txt":       "",
		"a.txt":       "",
		"c.md":        "",
		".hidden.txt": "",
		"B.txt":       "",
	})

	found, err := FindSources(dir, DefaultConfig())
	require.NoError(t, err)

	var names []string
	for _, f := range found {
		names = append(names, filepath.Base(f))
	}
	assert.Equal(t, []string{"B.txt", "a.txt", "b.txt"}, names)
}

func TestFindSourcesMissingDir(t *testing.T) {
	found, err := FindSources(t.TempDir(), DefaultConfig())
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestBuildLaterDuplicateWins(t *testing.T) {
	dir := t.TempDir()
	writeocr(t, dir, map[string]string{
		"doc.txt":        "first",
		"doc.txt.txt":    "second",
		"other.txt":      "x",
		"report.txt.txt": "r",
	})

	m, err := BuildCorpusMapping(dir, DefaultConfig())
	require.NoError(t, err)

	// sorted: doc.txt, doc.txt.txt, other.txt, report.txt.txt; both doc files become "doc"
	assert.Equal(t, []string{"doc", "other", "report"}, m.Keys())
	txt, ok := m.Get("doc")
	require.True(t, ok)
	assert.Equal(t, "second", txt)
}

func TestBuildAbortsOnUnreadableFile(t *testing.T) {
	dir := t.TempDir()
	writeocr(t, dir, map[string]string{"a.txt": "fine"})
	// a directory that matches the glob cannot be read as a file
	require.NoError(t, os.Mkdir(filepath.Join(dir, "ocr", "b.txt"), 0755))

	m, err := BuildCorpusMapping(dir, DefaultConfig())
	assert.Error(t, err)
	assert.Nil(t, m)
}

func TestReadDocumentEncodings(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "x.txt")
	// "café\r\nbar" in latin1
	require.NoError(t, os.WriteFile(p, []byte{'c', 'a', 'f', 0xe9, '\r', '\n', 'b', 'a', 'r'}, 0644))

	_, err := ReadDocument(p, EncUTF8)
	assert.ErrorIs(t, err, ErrNotUTF8)

	txt, err := ReadDocument(p, EncLatin1)
	require.NoError(t, err)
	assert.Equal(t, "café\nbar", txt)

	require.NoError(t, os.WriteFile(p, []byte{0x93, 'q', 0x94}, 0644))
	txt, err = ReadDocument(p, EncCP1252)
	require.NoError(t, err)
	assert.Equal(t, "“q”", txt)

	_, err = ReadDocument(filepath.Join(dir, "missing.txt"), EncUTF8)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
