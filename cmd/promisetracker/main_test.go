package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promisetracker/internal/promise"
)

func writeDeclFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "decl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origOut := os.Stdout
	rOut, wOut, _ := os.Pipe()
	os.Stdout = wOut

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, rOut)
		done <- buf.String()
	}()

	fn()

	_ = wOut.Close()
	os.Stdout = origOut
	return <-done
}

const simpleDecl = `
kind: Agent
name: a1
provides:
  - name: b1
`

func TestRunResolveSatisfied(t *testing.T) {
	path := writeDeclFile(t, simpleDecl)
	resolveFiles = []string{path}
	resolveCompressed = false
	resolveNoColor = true

	output := captureOutput(t, func() {
		require.NoError(t, runResolve(&cobra.Command{}, []string{"b1"}))
	})

	assert.Contains(t, output, "b1")
	assert.Contains(t, output, "a1")
}

func TestRunWhoProvides(t *testing.T) {
	path := writeDeclFile(t, simpleDecl)
	whoProvidesFiles = []string{path}

	output := captureOutput(t, func() {
		require.NoError(t, runWhoProvides(&cobra.Command{}, []string{"a1"}))
	})

	assert.Contains(t, output, "b1")
}

const unmetConditionDecl = `
kind: Agent
name: a1
provides:
  - name: b1
    conditions:
      - missing
`

func TestRunWhoProvidesListsUnmetConditionProvide(t *testing.T) {
	path := writeDeclFile(t, unmetConditionDecl)
	whoProvidesFiles = []string{path}

	output := captureOutput(t, func() {
		require.NoError(t, runWhoProvides(&cobra.Command{}, []string{"a1"}))
	})

	assert.Contains(t, output, "b1")
}

func TestRunWhoProvidesUnknownAgent(t *testing.T) {
	path := writeDeclFile(t, simpleDecl)
	whoProvidesFiles = []string{path}

	err := runWhoProvides(&cobra.Command{}, []string{"nope"})
	require.Error(t, err)
	assert.ErrorIs(t, err, promise.ErrUnknownAgent)
}

const unsatisfiedDecl = `
kind: Agent
name: a1
wants:
  - name: b1
`

func TestRunCheckUnsatisfied(t *testing.T) {
	path := writeDeclFile(t, unsatisfiedDecl)
	checkUnsatisfiedFiles = []string{path}

	output := captureOutput(t, func() {
		require.NoError(t, runCheckUnsatisfied(&cobra.Command{}, []string{}))
	})

	assert.Contains(t, output, "a1 wants b1")
}

func TestRunDiagram(t *testing.T) {
	path := writeDeclFile(t, simpleDecl)
	diagramFiles = []string{path}

	output := captureOutput(t, func() {
		require.NoError(t, runDiagram(&cobra.Command{}, []string{"c1", "b1"}))
	})

	assert.Contains(t, output, "sequenceDiagram")
	assert.Contains(t, output, "c1 ->> a1: b1")
}

func TestRunGraph(t *testing.T) {
	path := writeDeclFile(t, simpleDecl)
	graphFiles = []string{path}

	output := captureOutput(t, func() {
		require.NoError(t, runGraph(&cobra.Command{}, []string{}))
	})

	assert.Contains(t, output, `"nodes"`)
	assert.Contains(t, output, `"a1"`)
}

func TestRunSchema(t *testing.T) {
	output := captureOutput(t, func() {
		require.NoError(t, runSchema(&cobra.Command{}, []string{}))
	})

	assert.True(t, strings.Contains(output, "Agent") && strings.Contains(output, "SuperAgent"))
}
