package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineDiff(t *testing.T) {
	got := lineDiff("[S]\na=1\nb=2\n", "[S]\na=1\nb=3\nc=4\n")
	assert.Equal(t, []DiffLine{
		{Op: "=", Text: "[S]"},
		{Op: "=", Text: "a=1"},
		{Op: "-", Text: "b=2"},
		{Op: "+", Text: "b=3"},
		{Op: "+", Text: "c=4"},
	}, got)
}

func TestDiffCommand(t *testing.T) {
	resetFlags()
	before := writeTestFile(t, "before.ini", "[Combat]\ndamage = 10\n\n\n[Loot]\nitem=sword\n")
	same := writeTestFile(t, "same.ini", "[Combat]\ndamage=10\n[Loot]\nitem=sword\n")
	after := writeTestFile(t, "after.ini", "[Combat]\ndamage=20\n[Loot]\nitem=sword\n")

	output, err := captureOutput(t, func() error { return runDiff([]string{before, same}) })
	require.NoError(t, err)
	assert.Equal(t, "Files are identical\n", output)

	output, err = captureOutput(t, func() error { return runDiff([]string{before, after}) })
	require.NoError(t, err)
	assert.Equal(t, "-damage = 10\n+damage = 20\n", output)

	jsonOut = true
	output, err = captureOutput(t, func() error { return runDiff([]string{before, after}) })
	require.NoError(t, err)
	assertJSON(t, output)
	assertContains(t, output, []string{`"changed": 2`})
}
