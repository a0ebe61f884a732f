package model

import (
	"strconv"
	"strings"
)

// Separator delimits columns in every data file.
const Separator = "|"

func joinColumns(cols ...string) string {
	return strings.Join(cols, Separator)
}

func splitColumns(line string) []string {
	cols := strings.Split(strings.TrimSpace(line), Separator)
	for i := range cols {
		cols[i] = strings.TrimSpace(cols[i])
	}
	return cols
}

// column returns cols[i], or "" when the line is shorter.
func column(cols []string, i int) string {
	if i < len(cols) {
		return cols[i]
	}
	return ""
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

// FormatGrade writes a grade with at least one decimal place (85 -> "85.0"),
// matching data files written by earlier versions of the tool.
func FormatGrade(g float64) string {
	s := strconv.FormatFloat(g, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func parseInt(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func parseFloat(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// IsSkippable reports whether a raw file line carries no data: blank lines
// and '#' comment lines.
func IsSkippable(line string) bool {
	line = strings.TrimSpace(line)
	return line == "" || strings.HasPrefix(line, "#")
}

// IntPtr returns a pointer to n.
func IntPtr(n int) *int { return &n }

// FloatPtr returns a pointer to f.
func FloatPtr(f float64) *float64 { return &f }
