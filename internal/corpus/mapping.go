//    OCRTopics
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package corpus

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Mapping - document identifier -> cleaned text; remembers insertion order
type Mapping struct {
	keys []string
	text map[string]string
}

func NewMapping() *Mapping {
	return &Mapping{text: make(map[string]string)}
}

// Set - insert or overwrite; an overwritten identifier keeps its original position
func (m *Mapping) Set(id string, txt string) {
	if m.text == nil {
		m.text = make(map[string]string)
	}
	if _, ok := m.text[id]; !ok {
		m.keys = append(m.keys, id)
	}
	m.text[id] = txt
}

func (m *Mapping) Get(id string) (string, bool) {
	t, ok := m.text[id]
	return t, ok
}

func (m *Mapping) Len() int {
	return len(m.keys)
}

// Keys - identifiers in mapping order
func (m *Mapping) Keys() []string {
	kk := make([]string, len(m.keys))
	copy(kk, m.keys)
	return kk
}

// Texts - document texts in mapping order
func (m *Mapping) Texts() []string {
	tt := make([]string, len(m.keys))
	for i, k := range m.keys {
		tt[i] = m.text[k]
	}
	return tt
}

// MarshalJSON - a single compact object with the keys in mapping order
func (m *Mapping) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writejsonstring(&buf, k); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writejsonstring(&buf, m.text[k]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON - read an object of strings while holding on to the order of its keys
func (m *Mapping) UnmarshalJSON(b []byte) error {
	const (
		FAIL1 = "corpus mapping must be a JSON object"
		FAIL2 = "corpus mapping: unexpected key token %v"
		FAIL3 = "corpus mapping: value for %q: %w"
	)

	dec := json.NewDecoder(bytes.NewReader(b))

	t, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := t.(json.Delim); !ok || d != '{' {
		return errors.New(FAIL1)
	}

	fresh := NewMapping()
	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return err
		}
		k, ok := kt.(string)
		if !ok {
			return fmt.Errorf(FAIL2, kt)
		}
		var v string
		if err = dec.Decode(&v); err != nil {
			return fmt.Errorf(FAIL3, k, err)
		}
		fresh.Set(k, v)
	}

	// the closing '}'
	if _, err = dec.Token(); err != nil {
		return err
	}
	if _, err = dec.Token(); err != io.EOF {
		return errors.New(FAIL1)
	}

	*m = *fresh
	return nil
}

func writejsonstring(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode() appends a newline
	buf.Truncate(buf.Len() - 1)
	return nil
}
