package help

import (
	"github.com/agentstation/helpmap/pkg/errors"
)

// Registry is an immutable mapping from topic to documentation entry.
// Iteration order is the order entries were given to NewRegistry.
type Registry struct {
	order   []string
	entries map[string]Entry
}

// NewRegistry builds a registry from entries. Topics must be valid and
// unique, and the root topic must be present.
func NewRegistry(entries ...Entry) (*Registry, error) {
	r := &Registry{
		order:   make([]string, 0, len(entries)),
		entries: make(map[string]Entry, len(entries)),
	}

	for _, e := range entries {
		if err := ValidateTopic(e.Topic); err != nil {
			return nil, err
		}
		if _, exists := r.entries[e.Topic]; exists {
			return nil, errors.NewAlreadyExistsError("topic", e.Topic)
		}
		r.order = append(r.order, e.Topic)
		r.entries[e.Topic] = e
	}

	if _, ok := r.entries[RootTopic]; !ok {
		return nil, errors.NewValidationError("topics", nil, "root topic is required")
	}

	return r, nil
}

// Get returns the entry stored for topic.
func (r *Registry) Get(topic string) (Entry, error) {
	e, ok := r.entries[topic]
	if !ok {
		return Entry{}, errors.NewNotFoundError("topic", topic)
	}
	return e, nil
}

// Has reports whether topic has an entry.
func (r *Registry) Has(topic string) bool {
	_, ok := r.entries[topic]
	return ok
}

// Root returns the discovery entry.
func (r *Registry) Root() Entry {
	return r.entries[RootTopic]
}

// Topics returns the topic names in registry order.
func (r *Registry) Topics() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Entries returns all entries in registry order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, len(r.order))
	for _, topic := range r.order {
		out = append(out, r.entries[topic])
	}
	return out
}

// Len returns the number of topics.
func (r *Registry) Len() int {
	return len(r.order)
}
