// Package embedded holds the documentation set compiled into the binary:
// the topic manifest and one markdown file per topic.
package embedded

import (
	"embed"
)

// FS embeds the manifest and topic documents at build time.
//
//go:embed topics.yaml topics/*.md
var FS embed.FS
