package sanity

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"
)

// Report output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Write renders report to w in format.
func Write(w io.Writer, report Report, format string) error {
	switch format {
	case FormatJSON, "":
		raw, err := sonic.ConfigStd.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		raw = append(raw, '\n')
		_, err = w.Write(raw)
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown report format %q", format)
}

// Save writes the JSON report to path, creating its directory.
func Save(path string, report Report) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := Write(f, report, FormatJSON); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
