package commands

import (
	"fmt"
	"log/slog"
	"os"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/iocinfo/internal/generator"
	"git.home.luguber.info/inful/iocinfo/internal/logfields"
	"git.home.luguber.info/inful/iocinfo/internal/metrics"
)

// GenerateCmd implements the 'generate' command: the full single-pass
// pipeline over IOC snapshot directories and the optional values file.
type GenerateCmd struct {
	IOCInfoDir  string `name:"iocinfo-dir" help:"Directory containing per-IOC information" default:"static/iocinfo"`
	ControlDir  string `name:"control-dir" help:"Output directory for control documentation" default:"content/control"`
	ServicesDir string `name:"services-dir" help:"Output directory for services documentation" default:"content/services"`
	MetricsFile string `name:"metrics-file" help:"Write run metrics in Prometheus textfile format to this path (optional)"`
}

func (g *GenerateCmd) Run(_ *Global, root *CLI) error {
	if _, err := os.Stat(g.IOCInfoDir); os.IsNotExist(err) {
		return fmt.Errorf("iocinfo directory does not exist: %s", g.IOCInfoDir)
	}

	gen := generator.New(generator.Options{
		IOCInfoDir:  g.IOCInfoDir,
		ControlDir:  g.ControlDir,
		ServicesDir: g.ServicesDir,
		ValuesFile:  root.ValuesFile,
	})

	var registry *prom.Registry
	if g.MetricsFile != "" {
		registry = prom.NewRegistry()
		gen.SetRecorder(metrics.NewPrometheusRecorder(registry))
	}

	report, err := gen.Run()
	if g.MetricsFile != "" {
		// Best effort, including failed runs (the outcome counter matters there).
		if werr := prom.WriteToTextfile(g.MetricsFile, registry); werr != nil {
			slog.Warn("Failed to write metrics file", logfields.Path(g.MetricsFile), logfields.Error(werr))
		}
	}
	if err != nil {
		return err
	}

	slog.Info("Done",
		logfields.RunID(report.RunID),
		slog.Int("ioc_pages", report.IOCPages),
		slog.Int("service_pages", report.ServicePages),
		slog.Duration("duration", report.Duration()))
	return nil
}
