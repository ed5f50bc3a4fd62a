package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestCreateDirectories(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "logs"), 0o755))

	core, logs := observer.New(zap.InfoLevel)
	require.NoError(t, createDirectories(root, zap.New(core)))

	for _, dir := range Directories {
		info, err := os.Stat(filepath.Join(root, dir))
		require.NoError(t, err, dir)
		assert.True(t, info.IsDir(), dir)
	}
	assert.Equal(t, 1, logs.FilterMessage("Directory exists").Len())
	assert.Equal(t, len(Directories)-1, logs.FilterMessage("Directory created").Len())

	// Running again is harmless
	require.NoError(t, createDirectories(root, zap.NewNop()))
}

func TestCreateDirectories_Failure(t *testing.T) {
	root := t.TempDir()
	// A regular file where a directory belongs blocks it and its children
	require.NoError(t, os.WriteFile(filepath.Join(root, "uploads"), []byte("x"), 0o644))

	err := createDirectories(root, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "uploads")

	_, statErr := os.Stat(filepath.Join(root, "exports"))
	assert.NoError(t, statErr, "later directories are still created")
}
