//    OCRTopics
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package corpus

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// WriteSummary - "N articles stored in fulltext_db.json"
func WriteSummary(w io.Writer, n int, name string) error {
	_, err := fmt.Fprintf(w, "%d articles stored in %s\n", n, name)
	return err
}

// WriteFile - truncate the target and dump the mapping into it; an interrupted write leaves a partial file
func WriteFile(path string, m *Mapping) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	b, err := m.MarshalJSON()
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	if _, err = f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// ReadFile - load a mapping written by WriteFile
func ReadFile(path string) (*Mapping, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	m := NewMapping()
	if err = json.Unmarshal(b, m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return m, nil
}
