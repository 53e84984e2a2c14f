package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	cmd := Run()

	require.NotNil(t, cmd)
	assert.Equal(t, "run", cmd.Use)
	assert.NotNil(t, cmd.RunE, "run command should have RunE function")
}

func TestRun_Flags(t *testing.T) {
	cmd := Run()

	flag := cmd.Flags().Lookup("config")
	require.NotNil(t, flag, "config flag should exist")
	assert.Equal(t, "c", flag.Shorthand)

	for _, name := range []string{"scope-id", "tool-env", "keep"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "%s flag should exist", name)
	}
}

func TestExitError(t *testing.T) {
	err := &ExitError{Code: 4}
	assert.Contains(t, err.Error(), "4")
}
