package output

import (
	"fmt"
	"io"

	"github.com/agentstation/helpmap/internal/cmd/table"
	"github.com/agentstation/helpmap/pkg/help"
)

// Topic is the structured form of a registry entry for json and yaml output.
type Topic struct {
	Name    string `json:"name" yaml:"name"`
	Route   string `json:"route" yaml:"route"`
	Title   string `json:"title" yaml:"title"`
	Summary string `json:"summary,omitempty" yaml:"summary,omitempty"`
}

// TopicsFromEntries converts registry entries to their output form.
func TopicsFromEntries(entries []help.Entry) []Topic {
	topics := make([]Topic, 0, len(entries))
	for _, e := range entries {
		topics = append(topics, Topic{
			Name:    e.Topic,
			Route:   e.Route(),
			Title:   e.Title(),
			Summary: e.Summary,
		})
	}
	return topics
}

// FormatTopics writes the topic listing in the given format.
func FormatTopics(w io.Writer, entries []help.Entry, format Format) error {
	var data any
	switch format {
	case FormatJSON, FormatYAML:
		data = TopicsFromEntries(entries)
	default:
		data = table.TopicsToTableData(entries)
	}
	return NewFormatter(format).Format(w, data)
}

// FormatSearch writes search results. Text format prints the rendered
// markdown exactly as the HTTP endpoint returns it.
func FormatSearch(w io.Writer, results help.Results, format Format) error {
	switch format {
	case FormatJSON, FormatYAML:
		return NewFormatter(format).Format(w, results)
	case FormatTable:
		return NewFormatter(format).Format(w, table.MatchesToTableData(results))
	default:
		_, err := fmt.Fprintln(w, results.String())
		return err
	}
}
