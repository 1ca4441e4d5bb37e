package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rbright/cubicconf/internal/cli"
	"github.com/rbright/cubicconf/internal/config"
	"github.com/rbright/cubicconf/internal/doctor"
	"github.com/rbright/cubicconf/internal/paths"
)

// session carries the state shared by one command's handlers.
type session struct {
	Runner
	inv      cli.Invocation
	loaded   config.Loaded
	resolver *paths.Resolver
	logger   *slog.Logger
}

func (s session) initialize() error {
	if s.loaded.Exists && !s.inv.Force {
		return fmt.Errorf("config %q already exists; use --force to overwrite", s.loaded.Path)
	}
	cfg := config.Default()
	cfg.Paths = s.loaded.Config.Paths
	return s.persist(cfg)
}

func (s session) show() error {
	text, err := config.Render(s.loaded.Config)
	if err != nil {
		return err
	}
	fmt.Fprint(s.Stdout, text)
	return nil
}

func (s session) showPaths() error {
	roots, err := s.resolver.Roots(s.loaded.Config.Paths)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.Stdout, "resource_root\t%s\n", roots.ResourceRoot)
	fmt.Fprintf(s.Stdout, "license_dir\t%s\n", roots.LicenseDir)
	fmt.Fprintf(s.Stdout, "models_dir\t%s\n", roots.ModelsDir)
	fmt.Fprintf(s.Stdout, "live_config\t%s\n", config.LivePath(s.inv.Settings.LivePath, roots))
	return nil
}

func (s session) modelAdd() error {
	cfg := s.loaded.Config
	id, name, modelPath := s.inv.Args[0], s.inv.Args[1], s.inv.Args[2]
	cfg.AddModel(id, name, modelPath)
	if f := strings.TrimSpace(s.inv.Formatter); f != "" {
		cfg.Models[len(cfg.Models)-1].FormatterConfigPath = &f
	}
	if dups := cfg.DuplicateModelIDs(); len(dups) > 0 {
		fmt.Fprintf(s.Stderr, "warning: duplicate model ids: %s\n", strings.Join(dups, ", "))
	}
	s.logger.Info("model added", "id", id, "count", len(cfg.Models))
	return s.persist(cfg)
}

func (s session) modelRemove() error {
	cfg := s.loaded.Config
	before := len(cfg.Models)
	cfg.RemoveModel(s.inv.Args[0])
	removed := before - len(cfg.Models)
	if removed == 0 {
		fmt.Fprintf(s.Stderr, "warning: no model with id %q\n", s.inv.Args[0])
	}
	s.logger.Info("model removed", "id", s.inv.Args[0], "removed", removed)
	return s.persist(cfg)
}

func (s session) modelList() error {
	for _, m := range s.loaded.Config.Models {
		line := fmt.Sprintf("%s\t%s\t%s", m.ID, m.Name, m.ModelConfigPath)
		if m.FormatterConfigPath != nil {
			line += "\t" + *m.FormatterConfigPath
		}
		fmt.Fprintln(s.Stdout, line)
	}
	return nil
}

// errDoctorFailed marks a doctor run whose report has failing checks.
var errDoctorFailed = errors.New("doctor checks failed")

func (s session) runDoctor(ctx context.Context) error {
	report := doctor.Run(ctx, s.loaded, s.resolver, doctor.Options{
		Probe:   s.inv.Probe,
		Timeout: s.inv.Timeout,
	})
	fmt.Fprintln(s.Stdout, report.String())
	if !report.OK() {
		return errDoctorFailed
	}
	return nil
}

// persist writes the live copy, then the editable copy from the relative text Save returns.
func (s session) persist(cfg config.Config) error {
	roots, err := s.resolver.Roots(cfg.Paths)
	if err != nil {
		return err
	}
	live := config.LivePath(s.inv.Settings.LivePath, roots)

	relative, err := config.Save(s.resolver, cfg, live)
	if err != nil {
		s.logger.Error("save live config failed", "path", live, "error", err.Error())
		return err
	}
	if err := config.WriteText(s.loaded.Path, relative); err != nil {
		s.logger.Error("save editable config failed", "path", s.loaded.Path, "error", err.Error())
		return err
	}

	s.logger.Info("config saved", "live", live, "editable", s.loaded.Path, "models", len(cfg.Models))
	fmt.Fprintf(s.Stdout, "wrote %s\n", live)
	fmt.Fprintf(s.Stdout, "wrote %s\n", s.loaded.Path)
	return nil
}
