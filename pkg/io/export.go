package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	rmerrors "github.com/matzehuels/repomap/pkg/errors"
)

// Output formats accepted by [Write] and [Export].
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists every supported output format.
var Formats = []string{FormatJSON, FormatYAML}

// Write encodes v in the given format and writes it to w.
// JSON is indented with two spaces; YAML uses a two-space indent too.
func Write(w io.Writer, v any, format string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return rmerrors.Wrap(rmerrors.ErrCodeInternal, err, "encode json")
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return rmerrors.Wrap(rmerrors.ErrCodeInternal, err, "encode yaml")
		}
		return enc.Close()
	}
	return rmerrors.ValidateFormat(format, Formats...)
}

// Export writes v to a file at path in the given format.
// This is a convenience wrapper around [Write] for file-based output.
func Export(path string, v any, format string) error {
	if err := rmerrors.ValidateFormat(format, Formats...); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(f, v, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
