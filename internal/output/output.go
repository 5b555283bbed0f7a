// Package output renders survey results for the command line.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/l3aro/go-langsurvey/internal/config"
	"github.com/l3aro/go-langsurvey/pkg/survey"
)

// Options tweaks rendering.
type Options struct {
	ShowCounts bool // text format only
}

// Write renders res to w in the given format.
func Write(w io.Writer, format string, res *survey.Result, opts Options) error {
	switch format {
	case config.FormatText:
		return writeText(w, res, opts)
	case config.FormatJSON:
		return WriteJSON(w, res)
	case config.FormatYAML:
		return writeYAML(w, res)
	case config.FormatMsgpack:
		return writeMsgpack(w, res)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

func writeText(w io.Writer, res *survey.Result, opts Options) error {
	if !opts.ShowCounts {
		for _, lang := range res.Languages {
			if _, err := fmt.Fprintln(w, lang); err != nil {
				return err
			}
		}
		return nil
	}

	width := 0
	for _, c := range res.Counts {
		if len(c.Language) > width {
			width = len(c.Language)
		}
	}
	for _, c := range res.Counts {
		if _, err := fmt.Fprintf(w, "%-*s  %d\n", width, c.Language, c.Files); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\n%d files, %d unclassified\n", res.Files, res.Unclassified)
	return err
}

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func writeYAML(w io.Writer, res *survey.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}

func writeMsgpack(w io.Writer, res *survey.Result) error {
	enc := msgpack.NewEncoder(w)
	enc.UseCompactInts(true)
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("marshaling msgpack: %w", err)
	}
	return nil
}
