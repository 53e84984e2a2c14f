package projecttool

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedCall struct {
	dir    string
	binary string
	args   []string
}

func stubRunCommand(t *testing.T, err error) *[]recordedCall {
	t.Helper()
	var calls []recordedCall
	orig := runCommand
	runCommand = func(_ context.Context, dir, binary string, args ...string) error {
		calls = append(calls, recordedCall{dir: dir, binary: binary, args: args})
		return err
	}
	t.Cleanup(func() { runCommand = orig })
	return &calls
}

func TestRunner_Commands(t *testing.T) {
	calls := stubRunCommand(t, nil)
	r := NewRunner("pvt", "/work")
	ctx := context.Background()

	require.NoError(t, r.NewEnv(ctx, "burnin-env-dev-1"))
	require.NoError(t, r.SelectEnv(ctx, "burnin-env-dev-1"))
	require.NoError(t, r.SetVar(ctx, "SCOPE_ID", "burnin-dev-local-1"))
	require.NoError(t, r.Provision(ctx, true))
	require.NoError(t, r.Down(ctx, true, true))
	require.NoError(t, r.SetConfigFlag(ctx, "alpha.deployment.stacks", true))

	want := [][]string{
		{"env", "new", "burnin-env-dev-1", "--no-prompt"},
		{"env", "select", "burnin-env-dev-1"},
		{"env", "set", "SCOPE_ID", "burnin-dev-local-1"},
		{"provision", "--no-prompt"},
		{"down", "--purge", "--force"},
		{"config", "set", "alpha.deployment.stacks", "on"},
	}
	require.Len(t, *calls, len(want))
	for i, call := range *calls {
		assert.Equal(t, "pvt", call.binary)
		assert.Equal(t, "/work", call.dir)
		assert.Equal(t, want[i], call.args)
	}
}

func TestRunner_ProvisionInteractive(t *testing.T) {
	calls := stubRunCommand(t, nil)
	r := NewRunner("pvt", ".")

	require.NoError(t, r.Provision(context.Background(), false))
	assert.Equal(t, []string{"provision"}, (*calls)[0].args)
}

func TestRunner_SetConfigFlagOff(t *testing.T) {
	calls := stubRunCommand(t, nil)
	r := NewRunner("pvt", ".")

	require.NoError(t, r.SetConfigFlag(context.Background(), "alpha.deployment.stacks", false))
	assert.Equal(t, []string{"config", "set", "alpha.deployment.stacks", "off"}, (*calls)[0].args)
}

func TestRunner_PropagatesErrors(t *testing.T) {
	stubRunCommand(t, errors.New("exit status 1"))
	r := NewRunner("pvt", ".")

	err := r.Provision(context.Background(), true)
	require.Error(t, err)
}
