package main

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlevko/solana-cli/internal/config"
)

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	runErr := fn()

	w.Close()
	os.Stdout = old

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out), runErr
}

func TestNoFlagsDoesNothing(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	require.NoError(t, cmd.Execute())
}

func TestOperationFlagsAreMutuallyExclusive(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--generate-keypair", "--load-keypair"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	require.Error(t, cmd.Execute())
}

func TestFindKeypairZeroMinutesTimesOut(t *testing.T) {
	flags := &opFlags{vanityPrefix: "AAA", timeoutMinutes: 0}

	out, err := captureStdout(t, func() error {
		return runFindKeypair(flags, &config.Config{})
	})

	require.NoError(t, err, "a vanity timeout is an outcome, not an error")
	assert.Contains(t, out, "'AAA' was not found within 0 minutes")
}

func TestFindKeypairInvalidPrefixIsFatal(t *testing.T) {
	flags := &opFlags{vanityPrefix: "0x12", timeoutMinutes: 0}

	err := runFindKeypair(flags, &config.Config{})
	require.Error(t, err)
	assert.True(t, config.IsConfigError(err))
}
