package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/inikit/pkg/types"
)

func TestCreateAndDeleteCommands(t *testing.T) {
	resetFlags()
	path := filepath.Join(t.TempDir(), "new.ini")

	output, err := captureOutput(t, func() error { return runCreate([]string{path}) })
	require.NoError(t, err)
	assert.Contains(t, output, "created")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Size())

	_, err = captureOutput(t, func() error { return runCreate([]string{path}) })
	assert.ErrorIs(t, err, types.ErrFileExists)

	output, err = captureOutput(t, func() error { return runDelete([]string{path}) })
	require.NoError(t, err)
	assert.Contains(t, output, "deleted")
	assert.NoFileExists(t, path)

	_, err = captureOutput(t, func() error { return runDelete([]string{path}) })
	assert.ErrorIs(t, err, types.ErrFileNotFound)
}
