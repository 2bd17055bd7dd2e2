package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tipcredit/fica-tip-credit/internal/domain"
	"gopkg.in/yaml.v3"
)

// LookupFormatter resolves a format name or returns ErrUnsupportedFormat with the choices.
func LookupFormatter(format string) (Formatter, error) {
	if f := GetFormatterByName(format); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// Write formats the report and streams it to w.
func Write(w io.Writer, f Formatter, report *domain.Report) error {
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("%s formatter failed: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// GenerateReport renders report in the named format to w.
func GenerateReport(w io.Writer, report *domain.Report, format string) error {
	f, err := LookupFormatter(format)
	if err != nil {
		return err
	}
	return Write(w, f, report)
}

// SaveConfiguration writes a scenario configuration as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	return os.WriteFile(filename, b, 0644)
}
