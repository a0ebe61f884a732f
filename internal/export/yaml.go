// Package export renders gradebook data for use outside the tool.
package export

import (
	"fmt"
	"io"

	"github.com/stemsi/studentbook/internal/model"
	"gopkg.in/yaml.v3"
)

// WriteReportYAML encodes a student report as a YAML document.
func WriteReportYAML(w io.Writer, report *model.StudentReport) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return enc.Close()
}
