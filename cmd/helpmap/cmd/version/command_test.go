package version

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/helpmap/internal/appcontext"
)

func TestVersion(t *testing.T) {
	app := &appcontext.Mock{
		VersionFunc: func() string { return "1.2.3" },
		CommitFunc:  func() string { return "abc123" },
		DateFunc:    func() string { return "2024-01-01" },
		BuiltByFunc: func() string { return "goreleaser" },
	}

	cmd := NewCommand(app)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	want := "helpmap 1.2.3\n" +
		"  commit:   abc123\n" +
		"  built:    2024-01-01\n" +
		"  built by: goreleaser\n"
	assert.Equal(t, want, buf.String())
}

func TestVersion_MockDefaults(t *testing.T) {
	cmd := NewCommand(&appcontext.Mock{})
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "helpmap dev\n")
	assert.Contains(t, buf.String(), "built by: test\n")
}

func TestVersion_RejectsArgs(t *testing.T) {
	cmd := NewCommand(&appcontext.Mock{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})
	assert.Error(t, cmd.Execute())
}
