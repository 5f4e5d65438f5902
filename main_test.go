package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		contentPath = ""
	})
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestLocationsCommand(t *testing.T) {
	out := execute(t, "locations")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], "Hong Kong")
	assert.Contains(t, out, "Boston")
	assert.NotContains(t, out, "unplaced")
}

func TestPaletteCommand(t *testing.T) {
	out := execute(t, "palette", "gt")
	assert.Equal(t, 7, strings.Count(out, "Go to"))
	assert.NotContains(t, out, "LinkedIn")

	out = execute(t, "palette")
	assert.Contains(t, out, "copy timothy.liu@bc.edu")
}
