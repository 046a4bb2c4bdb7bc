package main

import (
	"bytes"
	"os"
	"os/exec"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain_HappyPath runs the binary's main with --help in a subprocess and
// expects a clean exit.
func TestMain_HappyPath(t *testing.T) {
	if os.Getenv("TEST_RUN_MAIN") == "1" {
		os.Args = []string{"cps251", "--help"}
		main()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestMain_HappyPath")
	cmd.Env = append(os.Environ(), "TEST_RUN_MAIN=1")
	if err := cmd.Run(); err != nil {
		t.Fatalf("process ran with error: %v", err)
	}
}

func TestMain_PanicExitsWithBanner(t *testing.T) {
	if os.Getenv("TEST_RUN_MAIN") == "panic" {
		guideCmd.RunE = func(*cobra.Command, []string) error { panic("boom") }
		os.Args = []string{"cps251", "guide"}
		main()
		return
	}

	var stderr bytes.Buffer
	cmd := exec.Command(os.Args[0], "-test.run=TestMain_PanicExitsWithBanner")
	cmd.Env = append(os.Environ(), "TEST_RUN_MAIN=panic")
	cmd.Stderr = &stderr
	err := cmd.Run()

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, stderr.String(), "cps251: panic: boom")
	assert.Contains(t, stderr.String(), "goroutine")
}
