package help

import (
	"regexp"
	"strings"

	"github.com/agentstation/helpmap/pkg/constants"
	"github.com/agentstation/helpmap/pkg/errors"
)

// RootTopic names the discovery document.
const RootTopic = constants.RootTopic

var topicPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// Entry is a single documentation unit.
type Entry struct {
	// Topic uniquely identifies the entry.
	Topic string `json:"topic" yaml:"topic"`
	// Summary is a one-line description used in discovery listings.
	Summary string `json:"summary,omitempty" yaml:"summary,omitempty"`
	// Content is the markdown documentation served verbatim.
	Content string `json:"content" yaml:"content"`
}

// Route returns the help route of the entry's topic.
func (e Entry) Route() string {
	return Route(e.Topic)
}

// Title returns the first line of the content with a leading "# " removed.
func (e Entry) Title() string {
	return Title(e.Content)
}

// Route returns the help route for a topic. The root topic is served at
// /help and every other topic t at /t/help.
func Route(topic string) string {
	if topic == RootTopic {
		return constants.HelpSuffix
	}
	return "/" + topic + constants.HelpSuffix
}

// Title extracts the title of a markdown document: its first line after
// trimming surrounding whitespace, without a leading "# " heading marker.
func Title(content string) string {
	first, _, _ := strings.Cut(strings.TrimSpace(content), "\n")
	first = strings.TrimRight(first, "\r")
	return strings.TrimPrefix(first, "# ")
}

// ValidateTopic reports whether name is usable as a topic path segment.
func ValidateTopic(name string) error {
	if name == "" {
		return errors.NewValidationError("topic", name, "cannot be empty")
	}
	if !topicPattern.MatchString(name) {
		return errors.NewValidationError("topic", name, "must match "+topicPattern.String())
	}
	return nil
}
