package navigation

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"
)

type fileEntry struct {
	Label string `yaml:"label" validate:"required"`
	Icon  string `yaml:"icon"`
	Path  string `yaml:"path" validate:"required,startswith=/"`
}

type file struct {
	Entries []fileEntry `yaml:"entries" validate:"required,min=1,dive"`
}

var (
	validate  = validator.New()
	sanitizer = bluemonday.StrictPolicy()
)

// LoadFile reads a YAML navigation definition and builds a Model from it.
//
//	entries:
//	  - label: Dashboard
//	    icon: layout-dashboard
//	    path: /
func LoadFile(filename string) (*Model, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read navigation file: %w", err)
	}

	model, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return model, nil
}

// Parse decodes a YAML navigation definition. Unknown keys are rejected and
// markup in labels is stripped before the model invariants are checked.
func Parse(data []byte) (*Model, error) {
	var def file
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoEntries
		}
		return nil, fmt.Errorf("failed to decode navigation: %w", err)
	}

	if len(def.Entries) == 0 {
		return nil, ErrNoEntries
	}
	if err := validate.Struct(def); err != nil {
		return nil, fmt.Errorf("invalid navigation: %w", err)
	}

	entries := make([]Entry, 0, len(def.Entries))
	for _, item := range def.Entries {
		entries = append(entries, Entry{
			Label: stripMarkup(item.Label),
			Icon:  strings.TrimSpace(item.Icon),
			Path:  strings.TrimSpace(item.Path),
		})
	}

	return NewModel(entries...)
}

// stripMarkup removes tags from value. The strict policy escapes entities in
// the remaining text; templates escape on output, so they are decoded here.
func stripMarkup(value string) string {
	return strings.TrimSpace(html.UnescapeString(sanitizer.Sanitize(value)))
}
