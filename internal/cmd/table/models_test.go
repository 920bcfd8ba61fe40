package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/helpmap/pkg/help"
)

func TestTopicsToTableData(t *testing.T) {
	entries := []help.Entry{
		{Topic: help.RootTopic, Content: "# Example API\n\nDiscovery."},
		{Topic: "auth", Summary: "Authentication", Content: "# Authentication API\n\nTokens."},
	}

	data := TopicsToTableData(entries)

	assert.Equal(t, []string{"Topic", "Route", "Title", "Summary"}, data.Headers)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, []string{"root", "/help", "Example API", "-"}, data.Rows[0])
	assert.Equal(t, []string{"auth", "/auth/help", "Authentication API", "Authentication"}, data.Rows[1])
	assert.Len(t, data.ColumnAlignment, len(data.Headers))
}

func TestMatchesToTableData(t *testing.T) {
	results := help.Results{
		Query: "token",
		Matches: []help.Match{
			{Topic: "auth", Route: "/auth/help", Title: "Authentication API"},
		},
	}

	data := MatchesToTableData(results)

	assert.Equal(t, []string{"Topic", "Route", "Title"}, data.Headers)
	assert.Equal(t, [][]string{{"auth", "/auth/help", "Authentication API"}}, data.Rows)
}
