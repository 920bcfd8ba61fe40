package help

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NoResults is rendered when a search matches no topic.
const NoResults = "# Search Results\n\nNo results found."

// Match is a topic whose documentation contains the query.
type Match struct {
	Topic string `json:"topic" yaml:"topic"`
	Route string `json:"route" yaml:"route"`
	Title string `json:"title" yaml:"title"`
}

// String renders the match as a markdown list item.
func (m Match) String() string {
	return fmt.Sprintf("- `%s` - %s", m.Route, m.Title)
}

// Results is the outcome of a search.
type Results struct {
	// Query is the lower-cased query that was matched.
	Query   string  `json:"query" yaml:"query"`
	Matches []Match `json:"matches" yaml:"matches"`
}

// String renders the results as the plain-text search response.
func (r Results) String() string {
	if len(r.Matches) == 0 {
		return NoResults
	}

	lines := make([]string, len(r.Matches))
	for i, m := range r.Matches {
		lines[i] = m.String()
	}
	return fmt.Sprintf("# Search Results for '%s'\n\n%s", r.Query, strings.Join(lines, "\n"))
}

// Search returns every topic whose content contains query, ignoring case,
// in registry order. An empty query matches every topic.
func Search(r *Registry, query string) Results {
	// Casers carry state and are not safe for concurrent use.
	lower := cases.Lower(language.Und)
	q := lower.String(query)

	results := Results{Query: q, Matches: []Match{}}
	for _, e := range r.Entries() {
		if !strings.Contains(lower.String(e.Content), q) {
			continue
		}
		results.Matches = append(results.Matches, Match{
			Topic: e.Topic,
			Route: e.Route(),
			Title: e.Title(),
		})
	}
	return results
}

// NormalizeQuery lower-cases a query the same way Search does.
func NormalizeQuery(query string) string {
	return cases.Lower(language.Und).String(query)
}
