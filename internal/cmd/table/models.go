// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"github.com/agentstation/helpmap/pkg/help"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// TopicsToTableData converts registry entries to table format.
func TopicsToTableData(entries []help.Entry) Data {
	headers := []string{"Topic", "Route", "Title", "Summary"}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		summary := e.Summary
		if summary == "" {
			summary = "-"
		}
		rows = append(rows, []string{e.Topic, e.Route(), e.Title(), summary})
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignLeft, AlignLeft, AlignLeft},
	}
}

// MatchesToTableData converts search matches to table format.
func MatchesToTableData(results help.Results) Data {
	rows := make([][]string, 0, len(results.Matches))
	for _, m := range results.Matches {
		rows = append(rows, []string{m.Topic, m.Route, m.Title})
	}

	return Data{
		Headers: []string{"Topic", "Route", "Title"},
		Rows:    rows,
	}
}
