package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeSumsCounts(t *testing.T) {
	unit := strings.NewReader("mode: count\n" +
		"example.com/m/a.go:1.1,2.2 1 3\n" +
		"example.com/m/a.go:3.1,4.2 1 0\n")
	integration := strings.NewReader("mode: count\n" +
		"example.com/m/a.go:3.1,4.2 1 2\n" +
		"example.com/m/b.go:1.1,2.2 2 1\n")

	var out bytes.Buffer
	require.NoError(t, merge(&out, unit, integration))

	assert.Equal(t, "mode: count\n"+
		"example.com/m/a.go:1.1,2.2 1 3\n"+
		"example.com/m/a.go:3.1,4.2 1 2\n"+
		"example.com/m/b.go:1.1,2.2 2 1\n", out.String())
}

func TestMergeSetMode(t *testing.T) {
	a := strings.NewReader("mode: set\nx.go:1.1,2.2 1 1\nx.go:3.1,4.2 1 0\n")
	b := strings.NewReader("mode: set\nx.go:1.1,2.2 1 0\nx.go:3.1,4.2 1 0\n")

	var out bytes.Buffer
	require.NoError(t, merge(&out, a, b))

	assert.Equal(t, "mode: set\nx.go:1.1,2.2 1 1\nx.go:3.1,4.2 1 0\n", out.String())
}

func TestMergeRejectsMixedModes(t *testing.T) {
	a := strings.NewReader("mode: set\n")
	b := strings.NewReader("mode: atomic\n")

	err := merge(&bytes.Buffer{}, a, b)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match")
}

func TestMergeRejectsMissingMode(t *testing.T) {
	err := merge(&bytes.Buffer{}, strings.NewReader(""))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing mode line")
}
