// Package cmd contains testing utilities shared between command tests.
// This file provides functions for isolating the envtray configuration
// directory, capturing output and running the CLI in-process.
package cmd

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/PolarWolf314/envtray/internal/configs"
)

// setupTestEnvironment points envtray at a fresh configuration directory and
// returns it. Output is forced to plain text.
func setupTestEnvironment(t *testing.T) *configs.UserSettings {
	t.Helper()

	home := t.TempDir()
	settings := configs.NewUserSettings(filepath.Join(home, "config"))
	settings.HomeDir = home
	settings.Username = "testuser"

	originalUserSettings := configs.UserEnvtraySettings
	configs.UserEnvtraySettings = settings
	t.Setenv("NO_COLOR", "1")

	t.Cleanup(func() {
		configs.UserEnvtraySettings = originalUserSettings
		ResetGlobalState()
	})

	return settings
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	outputChan := make(chan string, 2)

	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, stdoutReader)
		if err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, stderrReader)
		if err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	stdout := <-outputChan
	stderr := <-outputChan

	return stdout + stderr, err
}

// runCLI executes envtray with args against the current test environment and
// returns the combined output.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	ResetGlobalState()
	RootCmd.SetArgs(args)
	return captureOutput(func() error {
		return RootCmd.Execute()
	})
}

// mustRunCLI is runCLI for commands expected to succeed.
func mustRunCLI(t *testing.T, args ...string) string {
	t.Helper()

	output, err := runCLI(t, args...)
	if err != nil {
		t.Fatalf("envtray %v failed: %v\nOutput: %s", args, err, output)
	}
	return output
}

// createProjectDir creates a project directory with the given env files.
func createProjectDir(t *testing.T, files map[string]string) string {
	t.Helper()

	root := filepath.Join(t.TempDir(), "app")
	if err := os.Mkdir(root, 0700); err != nil {
		t.Fatalf("Failed to create project directory: %v", err)
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(root, name), []byte(content), 0600); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	return root
}
