// Package cli defines the cubicconf command tree and resolves its flags.
package cli

import (
	"context"
	"strings"
	"time"

	"github.com/rbright/cubicconf/internal/paths"
	"github.com/rbright/cubicconf/internal/probe"
	"github.com/rbright/cubicconf/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type Command string

const (
	CommandInit        Command = "init"
	CommandShow        Command = "show"
	CommandPaths       Command = "paths"
	CommandSave        Command = "save"
	CommandModelAdd    Command = "model add"
	CommandModelRemove Command = "model remove"
	CommandModelList   Command = "model list"
	CommandDoctor      Command = "doctor"
	CommandVersion     Command = "version"
)

// EnvPrefix namespaces environment overrides, e.g. CUBICCONF_RESOURCE_ROOT.
const EnvPrefix = "CUBICCONF"

const (
	keyConfig       = "config"
	keyLive         = "live"
	keyResourceRoot = "resource-root"
	keyLicenseDir   = "license-dir"
	keyModelsDir    = "models-dir"
	keyDebug        = "debug"
)

// Settings are the persistent flag values after env and flag precedence.
type Settings struct {
	ConfigPath string
	LivePath   string
	Paths      paths.Configuration
	Debug      bool
}

// Invocation is one fully parsed command ready to run.
type Invocation struct {
	Command   Command
	Settings  Settings
	Args      []string
	Force     bool
	Formatter string
	Probe     bool
	Timeout   time.Duration
}

// RunFunc executes a parsed invocation.
type RunFunc func(ctx context.Context, inv Invocation) error

// NewRootCommand builds the command tree. Every leaf command resolves its
// Invocation and hands it to run.
func NewRootCommand(run RunFunc) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	defaults := paths.DefaultConfiguration()
	root := &cobra.Command{
		Use:   "cubicconf",
		Short: "Edit and render speech server configuration",
		Long: `cubicconf maintains two copies of the speech server configuration:
an editable copy with license and model paths relative to the resource root,
and a live copy with those paths resolved for the server process.`,
		Version:       version.String(),
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetVersionTemplate("{{.Version}}\n")

	pf := root.PersistentFlags()
	pf.String(keyConfig, "", "editable config path (default: $XDG_CONFIG_HOME/cubicconf/config.toml)")
	pf.String(keyLive, "", "live config path (default: <resource root>/cubicsvr.toml)")
	pf.String(keyResourceRoot, defaults.ResourceRoot, "resource root directory under the documents directory")
	pf.String(keyLicenseDir, defaults.LicenseSubdir, "license subdirectory of the resource root")
	pf.String(keyModelsDir, defaults.ModelsSubdir, "models subdirectory of the resource root")
	pf.Bool(keyDebug, false, "write debug records to the runtime log")
	for _, key := range []string{keyConfig, keyLive, keyResourceRoot, keyLicenseDir, keyModelsDir, keyDebug} {
		_ = v.BindPFlag(key, pf.Lookup(key))
	}

	settings := func() Settings {
		return Settings{
			ConfigPath: v.GetString(keyConfig),
			LivePath:   v.GetString(keyLive),
			Paths: paths.Configuration{
				ResourceRoot:  v.GetString(keyResourceRoot),
				LicenseSubdir: v.GetString(keyLicenseDir),
				ModelsSubdir:  v.GetString(keyModelsDir),
			},
			Debug: v.GetBool(keyDebug),
		}
	}
	leaf := func(cmd Command, fill func(*cobra.Command, *Invocation)) func(*cobra.Command, []string) error {
		return func(c *cobra.Command, args []string) error {
			inv := Invocation{Command: cmd, Settings: settings(), Args: args}
			if fill != nil {
				fill(c, &inv)
			}
			return run(c.Context(), inv)
		}
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a fresh configuration and provision the resource directories",
		Args:  cobra.NoArgs,
		RunE: leaf(CommandInit, func(c *cobra.Command, inv *Invocation) {
			inv.Force, _ = c.Flags().GetBool("force")
		}),
	}
	initCmd.Flags().Bool("force", false, "overwrite an existing configuration")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the editable configuration",
		Args:  cobra.NoArgs,
		RunE:  leaf(CommandShow, nil),
	}
	pathsCmd := &cobra.Command{
		Use:   "paths",
		Short: "Print the resolved resource directories",
		Args:  cobra.NoArgs,
		RunE:  leaf(CommandPaths, nil),
	}
	saveCmd := &cobra.Command{
		Use:   "save",
		Short: "Render the live and editable copies from the editable configuration",
		Args:  cobra.NoArgs,
		RunE:  leaf(CommandSave, nil),
	}

	modelCmd := &cobra.Command{
		Use:   "model",
		Short: "Manage recognizer models",
	}
	addCmd := &cobra.Command{
		Use:   "add ID NAME MODEL_CONFIG_PATH",
		Short: "Append a model (paths are relative to the models directory)",
		Args:  cobra.ExactArgs(3),
		RunE: leaf(CommandModelAdd, func(c *cobra.Command, inv *Invocation) {
			inv.Formatter, _ = c.Flags().GetString("formatter")
		}),
	}
	addCmd.Flags().String("formatter", "", "formatter config path relative to the models directory")
	removeCmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Remove every model with the given id",
		Args:  cobra.ExactArgs(1),
		RunE:  leaf(CommandModelRemove, nil),
	}
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List models in selection order",
		Args:  cobra.NoArgs,
		RunE:  leaf(CommandModelList, nil),
	}
	modelCmd.AddCommand(addCmd, removeCmd, listCmd)

	doctorCmd := &cobra.Command{
		Use:   "doctor",
		Short: "Run layout, license, and model checks",
		Args:  cobra.NoArgs,
		RunE: leaf(CommandDoctor, func(c *cobra.Command, inv *Invocation) {
			inv.Probe, _ = c.Flags().GetBool("probe")
			inv.Timeout, _ = c.Flags().GetDuration("timeout")
		}),
	}
	doctorCmd.Flags().Bool("probe", false, "also probe server.grpc and server.http.ops for readiness")
	doctorCmd.Flags().Duration("timeout", probe.DefaultTimeout, "readiness probe timeout")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE:  leaf(CommandVersion, nil),
	}

	root.AddCommand(initCmd, showCmd, pathsCmd, saveCmd, modelCmd, doctorCmd, versionCmd)
	return root
}
