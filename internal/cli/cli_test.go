package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/rbright/cubicconf/internal/paths"
	"github.com/stretchr/testify/require"
)

// parse runs the command tree and captures the invocation it produced.
func parse(t *testing.T, args ...string) (Invocation, bool, string, error) {
	t.Helper()

	var got Invocation
	called := false
	root := NewRootCommand(func(_ context.Context, inv Invocation) error {
		got = inv
		called = true
		return nil
	})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return got, called, out.String(), err
}

func TestNoArgsPrintsHelp(t *testing.T) {
	_, called, out, err := parse(t)
	require.NoError(t, err)
	require.False(t, called)
	require.Contains(t, out, "Usage:")
}

func TestDefaultsResolveToDefaultConfiguration(t *testing.T) {
	inv, called, _, err := parse(t, "show")
	require.NoError(t, err)
	require.True(t, called)
	require.Equal(t, CommandShow, inv.Command)
	require.Equal(t, paths.DefaultConfiguration(), inv.Settings.Paths)
	require.Empty(t, inv.Settings.ConfigPath)
	require.False(t, inv.Settings.Debug)
}

func TestEnvironmentOverridesDefaultsAndFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("CUBICCONF_RESOURCE_ROOT", "FromEnv")
	t.Setenv("CUBICCONF_MODELS_DIR", "nets")

	inv, _, _, err := parse(t, "paths")
	require.NoError(t, err)
	require.Equal(t, "FromEnv", inv.Settings.Paths.ResourceRoot)
	require.Equal(t, "nets", inv.Settings.Paths.ModelsSubdir)

	inv, _, _, err = parse(t, "--resource-root", "FromFlag", "paths")
	require.NoError(t, err)
	require.Equal(t, "FromFlag", inv.Settings.Paths.ResourceRoot)
}

func TestParseArgMatrix(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
		check   func(t *testing.T, inv Invocation)
	}{
		{
			name: "init force with config",
			args: []string{"--config", "/tmp/cfg.toml", "init", "--force"},
			check: func(t *testing.T, inv Invocation) {
				require.Equal(t, CommandInit, inv.Command)
				require.True(t, inv.Force)
				require.Equal(t, "/tmp/cfg.toml", inv.Settings.ConfigPath)
			},
		},
		{
			name: "model add with formatter",
			args: []string{"model", "add", "en", "English", "en/model.config", "--formatter", "en/fmt.config"},
			check: func(t *testing.T, inv Invocation) {
				require.Equal(t, CommandModelAdd, inv.Command)
				require.Equal(t, []string{"en", "English", "en/model.config"}, inv.Args)
				require.Equal(t, "en/fmt.config", inv.Formatter)
			},
		},
		{
			name: "model remove",
			args: []string{"model", "remove", "en"},
			check: func(t *testing.T, inv Invocation) {
				require.Equal(t, CommandModelRemove, inv.Command)
				require.Equal(t, []string{"en"}, inv.Args)
			},
		},
		{
			name: "doctor probe timeout",
			args: []string{"doctor", "--probe", "--timeout", "250ms", "--live", "/srv/live.toml"},
			check: func(t *testing.T, inv Invocation) {
				require.Equal(t, CommandDoctor, inv.Command)
				require.True(t, inv.Probe)
				require.Equal(t, 250*time.Millisecond, inv.Timeout)
				require.Equal(t, "/srv/live.toml", inv.Settings.LivePath)
			},
		},
		{
			name:    "model add missing args",
			args:    []string{"model", "add", "en"},
			wantErr: "accepts 3 arg(s)",
		},
		{
			name:    "unknown command",
			args:    []string{"bogus"},
			wantErr: "unknown command",
		},
		{
			name:    "unknown flag",
			args:    []string{"show", "--bogus"},
			wantErr: "unknown flag",
		},
		{
			name:    "extra args",
			args:    []string{"save", "extra"},
			wantErr: "unknown command",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			inv, called, _, err := parse(t, tc.args...)
			if tc.wantErr != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.wantErr)
				require.False(t, called)
				return
			}

			require.NoError(t, err)
			require.True(t, called)
			tc.check(t, inv)
		})
	}
}

func TestHelpIncludesCoreCommands(t *testing.T) {
	_, _, out, err := parse(t, "--help")
	require.NoError(t, err)
	for _, want := range []string{"init", "show", "save", "model", "doctor", "--config", "--resource-root"} {
		require.Contains(t, out, want)
	}
}

func TestVersionFlag(t *testing.T) {
	_, called, out, err := parse(t, "--version")
	require.NoError(t, err)
	require.False(t, called)
	require.Contains(t, out, "cubicconf")
}
