package driver

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := map[string]Command{
		"up":                Up,
		" UP ":              Up,
		"wider":             Wider,
		"d":                 Wider,
		"+":                 Deeper,
		"-":                 Shallower,
		"z":                 RotateCCW,
		"toggle-changetree": ToggleChangetree,
		"E":                 ToggleChangetree,
		"escape":            Quit,
	}
	for in, want := range tests {
		got, err := ParseCommand(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseCommand("jump")
	assert.EqualError(t, err, `unknown command "jump"`)
}

func TestCommandString(t *testing.T) {
	for c, info := range commands {
		assert.Equal(t, info.name, c.String())
		parsed, err := ParseCommand(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}
	assert.Equal(t, "command(?)", Command(-1).String())
}

func TestReadScript(t *testing.T) {
	script := `
# widen, then go deeper
d
wider

+
quit
`
	cmds, err := ReadScript(strings.NewReader(script))
	require.NoError(t, err)
	assert.Equal(t, []Command{Wider, Wider, Deeper, Quit}, cmds)

	_, err = ReadScript(strings.NewReader("up\n\njump\n"))
	assert.EqualError(t, err, `line 3: unknown command "jump"`)
}

func TestControls(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Controls(&buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, len(commands))
	assert.True(t, strings.HasPrefix(lines[0], "up "))
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "quit "))
	assert.Contains(t, buf.String(), "toggle-mode       r          draw change tree recursively or leaves only")
}
