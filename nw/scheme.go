package nw

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseScheme decodes a YAML scoring scheme such as
//
//	match: 1
//	mismatch: -1
//	gap: -2
//
// Keys left out keep their DefaultScheme values. Unknown keys are rejected.
// An empty document yields DefaultScheme().
func ParseScheme(data []byte) (Scheme, error) {
	s := DefaultScheme()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return s, nil
		}
		return Scheme{}, fmt.Errorf("nw: parse scheme: %w", err)
	}

	return s, nil
}

// LoadScheme reads and parses the YAML scheme file at path.
func LoadScheme(path string) (Scheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scheme{}, fmt.Errorf("nw: load scheme %q: %w", path, err)
	}

	s, err := ParseScheme(data)
	if err != nil {
		return Scheme{}, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}
