package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// getBinaryPath returns the path to the tradepath binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "tradepath"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/tradepath ./cmd/tradepath'", binaryPath)
	}

	return binaryPath
}

// execute runs the root command in-process and returns what it wrote to its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	}()
	err := rootCmd.Execute()
	return out.String(), err
}
