package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const multiDocDecl = `
kind: Agent
name: a1
provides:
  - name: b1
---
kind: Agent
name: a2
wants:
  - name: b1
`

func TestLoadFilesMultiDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "multi.yaml")
	require.NoError(t, os.WriteFile(path, []byte(multiDocDecl), 0644))

	tr, err := loadFiles([]string{path})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"a1", "a2"}, tr.GetAgentNames())

	r := tr.Resolve("b1")
	assert.True(t, r.IsSatisfied())
}

func TestLoadFilesRejectsUnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("kind: Agent\nname: a1\nbogus: true\n"), 0644))

	_, err := loadFiles([]string{path})
	require.Error(t, err)
}

func TestLoadFilesMissingFile(t *testing.T) {
	_, err := loadFiles([]string{filepath.Join(t.TempDir(), "nope.yaml")})
	require.Error(t, err)
}
