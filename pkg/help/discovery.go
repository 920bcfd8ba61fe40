package help

import (
	"strings"

	md "github.com/nao1215/markdown"
)

// RenderDiscovery renders the root document for a manifest. It lists every
// declared topic so the discovery route never drifts from the bound routes.
func RenderDiscovery(m *Manifest) (string, error) {
	var buf strings.Builder
	doc := md.NewMarkdown(&buf).H1(m.Name)

	if m.Description != "" {
		doc.PlainText("").PlainText(m.Description)
	}

	if len(m.Topics) > 0 {
		items := make([]string, len(m.Topics))
		for i, t := range m.Topics {
			items[i] = listItem(md.Code(Route(t.Name)), t.Summary)
		}
		doc.PlainText("").H2("Topics").BulletList(items...)
	}

	if len(m.QuickReference) > 0 {
		items := make([]string, len(m.QuickReference))
		for i, e := range m.QuickReference {
			items[i] = listItem(md.Code(e.Method+" "+e.Path), e.Summary)
		}
		doc.PlainText("").H2("Quick Reference").BulletList(items...)
	}

	if m.GettingStarted != "" {
		doc.PlainText("").H2("Getting Started").PlainText(m.GettingStarted)
	}

	if err := doc.Build(); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n") + "\n", nil
}

func listItem(ref, summary string) string {
	if summary == "" {
		return ref
	}
	return ref + " - " + summary
}
