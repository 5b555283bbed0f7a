// Package survey determines which languages a directory tree contains.
//
// A Surveyor walks every regular file under a root, classifies each one by
// extension and collects the distinct language names in the order they are
// first encountered. A survey is synchronous and either returns the complete
// result or the first error; partial results are never returned.
package survey

import (
	"time"

	"github.com/l3aro/go-langsurvey/internal/log"
	"github.com/l3aro/go-langsurvey/internal/scanner"
	"github.com/l3aro/go-langsurvey/pkg/language"
)

// LanguageCount is the number of files classified as a language.
type LanguageCount struct {
	Language string `json:"language" yaml:"language" msgpack:"language"`
	Files    int    `json:"files" yaml:"files" msgpack:"files"`
}

// Result is the outcome of one survey.
type Result struct {
	Root         string          `json:"root" yaml:"root" msgpack:"root"`
	Languages    []string        `json:"languages" yaml:"languages" msgpack:"languages"`
	Counts       []LanguageCount `json:"counts" yaml:"counts" msgpack:"counts"`
	Files        int             `json:"files" yaml:"files" msgpack:"files"`
	Unclassified int             `json:"unclassified" yaml:"unclassified" msgpack:"unclassified"`
	Duration     time.Duration   `json:"duration_ns" yaml:"duration" msgpack:"duration_ns"`
}

// Surveyor runs surveys against a fixed language table. It holds no
// per-survey state and may be used from multiple goroutines.
type Surveyor struct {
	table       *language.Table
	scannerOpts scanner.Options
	logger      log.Logger

	afterVisit func(path string) // test hook
}

// Option configures a Surveyor.
type Option func(*Surveyor)

// WithScannerOptions sets the options used for walking the tree.
func WithScannerOptions(opts scanner.Options) Option {
	return func(s *Surveyor) {
		s.scannerOpts = opts
	}
}

// WithLogger sets the logger. Surveys log at debug level only.
func WithLogger(l log.Logger) Option {
	return func(s *Surveyor) {
		s.logger = l
	}
}

// New creates a Surveyor. A nil table selects language.Default().
func New(table *language.Table, opts ...Option) *Surveyor {
	if table == nil {
		table = language.Default()
	}
	s := &Surveyor{
		table:       table,
		scannerOpts: scanner.DefaultOptions(),
		logger:      log.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Survey returns the distinct languages found under root in first-seen order.
func (s *Surveyor) Survey(root string) ([]string, error) {
	res, err := s.Report(root)
	if err != nil {
		return nil, err
	}
	return res.Languages, nil
}

// Report surveys root and returns the languages together with per-language
// file counts.
func (s *Surveyor) Report(root string) (*Result, error) {
	start := time.Now()
	s.logger.Debug("survey started", "root", root)

	var (
		languages    = []string{}
		counts       = []LanguageCount{}
		seen         = make(map[string]int) // language -> index into counts
		files        int
		unclassified int
	)

	err := scanner.New(s.scannerOpts).Walk(root, func(path string) error {
		if s.afterVisit != nil {
			defer s.afterVisit(path)
		}
		files++
		name, ok := s.table.Classify(path)
		if !ok {
			unclassified++
			return nil
		}
		if i, dup := seen[name]; dup {
			counts[i].Files++
			return nil
		}
		seen[name] = len(counts)
		languages = append(languages, name)
		counts = append(counts, LanguageCount{Language: name, Files: 1})
		return nil
	})
	if err != nil {
		s.logger.Debug("survey failed", "root", root, "error", err)
		return nil, err
	}

	res := &Result{
		Root:         root,
		Languages:    languages,
		Counts:       counts,
		Files:        files,
		Unclassified: unclassified,
		Duration:     time.Since(start),
	}
	s.logger.Debug("survey finished",
		"root", root,
		"files", files,
		"languages", len(languages),
		"duration", res.Duration)

	return res, nil
}

// Survey surveys root with the built-in table and default options.
func Survey(root string) ([]string, error) {
	return New(nil).Survey(root)
}
