package main

import "github.com/fatih/color"

// Palette for text output. color.NoColor turns all of these into plain
// Sprintf.
var (
	sectionColor = color.New(color.FgCyan, color.Bold).SprintFunc()
	keyColor     = color.New(color.FgYellow).SprintFunc()
	commentColor = color.New(color.FgBlue).SprintFunc()
	okColor      = color.New(color.FgGreen).SprintFunc()
	addColor     = color.New(color.FgGreen).SprintFunc()
	delColor     = color.New(color.FgRed).SprintFunc()
)
