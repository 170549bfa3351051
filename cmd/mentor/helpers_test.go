package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv_MissingFileIsIgnored(t *testing.T) {
	assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
}

func TestLoadDotEnv_LoadsValues(t *testing.T) {
	t.Setenv("MENTOR_TEST_VAR", "")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("MENTOR_TEST_VAR=loaded\n"), 0o600))

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "loaded", os.Getenv("MENTOR_TEST_VAR"))
}

func TestReadCode_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snippet.go")
	require.NoError(t, os.WriteFile(path, []byte("package main\n"), 0o600))

	code, err := readCode(path)
	require.NoError(t, err)
	assert.Equal(t, "package main\n", code)
}

func TestReadCode_MissingFile(t *testing.T) {
	_, err := readCode(filepath.Join(t.TempDir(), "absent.go"))
	assert.Error(t, err)
}
