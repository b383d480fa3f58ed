package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c757d"))
	noteStyle   = lipgloss.NewStyle().Italic(true)
)

// tabular is the table form of a result
type tabular struct {
	headers []string
	rows    [][]string
	// footer is printed under the table, e.g. plan totals
	footer string
}

// render writes v in the selected format. Table output uses rows built by tab.
func (a *app) render(v any, tab func() tabular) error {
	switch a.output {
	case outputJSON:
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		// Through JSON first so yaml keys match the API's camelCase field names
		generic, err := toGeneric(v)
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err := enc.Encode(generic); err != nil {
			return err
		}
		return enc.Close()
	default:
		return writeTable(a.out, tab())
	}
}

func toGeneric(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func writeTable(w io.Writer, t tabular) error {
	if len(t.rows) == 0 {
		_, err := fmt.Fprintln(w, noteStyle.Render("No results."))
		return err
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(t.headers...).
		Rows(t.rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	if _, err := fmt.Fprintln(w, tbl.String()); err != nil {
		return err
	}
	if t.footer != "" {
		_, err := fmt.Fprintln(w, t.footer)
		return err
	}
	return nil
}

// message prints a one-line confirmation, or v in json/yaml mode
func (a *app) message(v any, text string) error {
	if a.output != outputTable {
		return a.render(v, nil)
	}
	_, err := fmt.Fprintln(a.out, text)
	return err
}

func intOrDash(p *int) string {
	if p == nil {
		return "-"
	}
	return strconv.Itoa(*p)
}

func strOrDash(p *string) string {
	if p == nil || *p == "" {
		return "-"
	}
	return *p
}
