package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rbright/cubicconf/internal/cli"
	"github.com/rbright/cubicconf/internal/config"
	"github.com/rbright/cubicconf/internal/logging"
	"github.com/rbright/cubicconf/internal/paths"
	"github.com/rbright/cubicconf/internal/version"
)

type Runner struct {
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Resolver *paths.Resolver
}

func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	r := Runner{Stdout: stdout, Stderr: stderr}
	return r.Execute(ctx, args)
}

// Execute runs one command and maps the outcome to an exit code:
// 0 success, 1 runtime failure, 2 usage error.
func (r Runner) Execute(ctx context.Context, args []string) int {
	invoked := false
	root := cli.NewRootCommand(func(ctx context.Context, inv cli.Invocation) error {
		invoked = true
		return r.run(ctx, inv)
	})
	if args == nil {
		// cobra falls back to os.Args on nil.
		args = []string{}
	}
	root.SetArgs(args)
	root.SetOut(r.Stdout)
	root.SetErr(r.Stderr)

	cmd, err := root.ExecuteContextC(ctx)
	if err == nil {
		return 0
	}
	if !invoked {
		fmt.Fprintf(r.Stderr, "error: %v\n\n", err)
		fmt.Fprint(r.Stderr, cmd.UsageString())
		return 2
	}
	fmt.Fprintf(r.Stderr, "error: %v\n", err)
	return 1
}

func (r Runner) run(ctx context.Context, inv cli.Invocation) error {
	if inv.Command == cli.CommandVersion {
		fmt.Fprintln(r.Stdout, version.String())
		return nil
	}

	logger := r.Logger
	if logger == nil {
		logRuntime, err := logging.New(logging.Options{Debug: inv.Settings.Debug})
		if err != nil {
			return fmt.Errorf("setup logging: %w", err)
		}
		defer func() { _ = logRuntime.Close() }()
		logger = logRuntime.Logger
	}

	resolver := paths.NewResolver(logger)
	if r.Resolver != nil {
		resolver = &paths.Resolver{DocumentDir: r.Resolver.DocumentDir, Logger: r.Resolver.Logger}
		if resolver.Logger == nil {
			resolver.Logger = logger
		}
	}

	override := inv.Settings.Paths
	loaded, err := config.LoadFile(inv.Settings.ConfigPath, resolver, &override)
	if err != nil {
		logger.Error("load config failed", "error", err.Error())
		return err
	}
	for _, w := range loaded.Warnings {
		if inv.Command != cli.CommandInit {
			fmt.Fprintf(r.Stderr, "warning: %s\n", w.Message)
		}
		logger.Warn("config warning", "message", w.Message)
	}

	logger.Info("command start",
		"command", string(inv.Command),
		"config", loaded.Path,
		"resource_root", loaded.Config.Paths.ResourceRoot,
	)

	s := session{Runner: r, inv: inv, loaded: loaded, resolver: resolver, logger: logger}
	switch inv.Command {
	case cli.CommandInit:
		return s.initialize()
	case cli.CommandShow:
		return s.show()
	case cli.CommandPaths:
		return s.showPaths()
	case cli.CommandSave:
		return s.persist(loaded.Config)
	case cli.CommandModelAdd:
		return s.modelAdd()
	case cli.CommandModelRemove:
		return s.modelRemove()
	case cli.CommandModelList:
		return s.modelList()
	case cli.CommandDoctor:
		return s.runDoctor(ctx)
	default:
		return fmt.Errorf("unsupported command %q", inv.Command)
	}
}
