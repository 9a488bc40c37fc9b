// Package filterfile loads relay accept rules from a YAML file.
package filterfile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/wyc-thg/broker/internal/boundaries/out"
	"github.com/wyc-thg/broker/internal/domain"
	"github.com/wyc-thg/broker/internal/logging"
)

// Ensure Loader implements out.FilterLoader.
var _ out.FilterLoader = (*Loader)(nil)

// document is the on-disk format:
//
//	private:
//	  - method: GET
//	    path: /repos/**
type document struct {
	Private []rule `yaml:"private"`
}

type rule struct {
	Method string `yaml:"method"`
	Path   string `yaml:"path"`
}

// Loader reads filters from a file path.
type Loader struct {
	path string
	log  zerolog.Logger
}

// NewLoader creates a loader for path. An empty path yields no rules,
// which blocks every relayed request.
func NewLoader(path string, log zerolog.Logger) *Loader {
	return &Loader{path: path, log: logging.Adapter(log, "filterfile")}
}

// Load reads and validates the rules.
func (l *Loader) Load(_ context.Context) (domain.FilterSet, error) {
	if l.path == "" {
		l.log.Warn().Msg("no accept filter file configured, relay will block all requests")
		return domain.FilterSet{}, nil
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFilterLoad, err)
	}

	filters, err := Parse(data)
	if err != nil {
		return nil, err
	}

	l.log.Info().Str("file", l.path).Int("rules", len(filters)).Msg("loaded accept filters")
	return filters, nil
}

// Parse decodes and validates a filter document.
func Parse(data []byte) (domain.FilterSet, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", domain.ErrFilterLoad, err)
	}

	filters := make(domain.FilterSet, 0, len(doc.Private))
	for i, r := range doc.Private {
		f := domain.FilterRule{Method: r.Method, Path: r.Path}
		if err := f.Validate(); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		filters = append(filters, f)
	}
	return filters, nil
}
