package commands

import (
	"fmt"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/iocinfo/internal/lint"
)

// LintCmd implements the 'lint' command over already-generated pages.
type LintCmd struct {
	ControlDir  string `name:"control-dir" help:"Directory of generated control documentation" default:"content/control"`
	ServicesDir string `name:"services-dir" help:"Directory of generated services documentation" default:"content/services"`
}

func (l *LintCmd) Run(_ *Global, _ *CLI) error {
	var all []lint.Issue
	for _, dir := range []string{l.ControlDir, l.ServicesDir} {
		issues, err := lint.CheckDir(dir)
		if err != nil {
			return fmt.Errorf("lint %s: %w", dir, err)
		}
		all = append(all, issues...)
	}

	for _, issue := range all {
		fmt.Fprintln(os.Stderr, issue.String())
	}
	if len(all) > 0 {
		return fmt.Errorf("%d unresolved navigation link(s)", len(all))
	}
	slog.Info("All navigation links resolve", slog.String("control_dir", l.ControlDir), slog.String("services_dir", l.ServicesDir))
	return nil
}
