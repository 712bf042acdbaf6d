// Package document decodes JSON and YAML streams into plain Go values and
// encodes flattened results back out.
package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownFormat is returned for a format name that is not supported.
	ErrUnknownFormat = errors.New("unknown document format")
	// ErrDecode wraps every decoding failure.
	ErrDecode = errors.New("decode document")
	// ErrEncode wraps every encoding failure.
	ErrEncode = errors.New("encode document")
)

// Format is a supported document encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat maps a user supplied name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromPath guesses the format from a file extension, defaulting to JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	}
	return JSON
}

// Decode reads every document in r.
// A JSON stream may hold several concatenated values; a YAML stream may hold
// several "---" separated documents.
func Decode(r io.Reader, f Format) ([]any, error) {
	docs := []any{}
	switch f {
	case JSON:
		dec := json.NewDecoder(r)
		dec.UseNumber()
		for {
			var v any
			err := dec.Decode(&v)
			if errors.Is(err, io.EOF) {
				return docs, nil
			}
			if err != nil {
				return nil, fmt.Errorf("%w: json document %d: %v", ErrDecode, len(docs), err)
			}
			docs = append(docs, v)
		}
	case YAML:
		dec := yaml.NewDecoder(r)
		for {
			var v any
			err := dec.Decode(&v)
			if errors.Is(err, io.EOF) {
				return docs, nil
			}
			if err != nil {
				return nil, fmt.Errorf("%w: yaml document %d: %v", ErrDecode, len(docs), err)
			}
			docs = append(docs, v)
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// Encode writes docs to w in order: one JSON value per line, or a YAML
// stream with one document per entry.
func Encode(w io.Writer, docs []any, f Format) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		for i, v := range docs {
			if err := enc.Encode(v); err != nil {
				return fmt.Errorf("%w: json document %d: %v", ErrEncode, i, err)
			}
		}
		return nil
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		for i, v := range docs {
			if err := enc.Encode(v); err != nil {
				return fmt.Errorf("%w: yaml document %d: %v", ErrEncode, i, err)
			}
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("%w: %v", ErrEncode, err)
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}
