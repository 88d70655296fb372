// Package generator orchestrates the two output streams: IOC control pages
// and service pages. Sequential and single-pass; the first error aborts the
// run (no retries, no partial-success reporting).
package generator

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/iocinfo/internal/config"
	"git.home.luguber.info/inful/iocinfo/internal/iocdir"
	"git.home.luguber.info/inful/iocinfo/internal/logfields"
	"git.home.luguber.info/inful/iocinfo/internal/metrics"
	"git.home.luguber.info/inful/iocinfo/internal/pages"
)

// Options is the explicit configuration for a generation run.
type Options struct {
	IOCInfoDir  string // directory of per-IOC snapshot directories
	ControlDir  string // output directory for IOC control pages
	ServicesDir string // output directory for service pages
	ValuesFile  string // optional deployment values file; "" disables filtering and service pages
}

// Generator produces the documentation pages for one run.
type Generator struct {
	opts     Options
	recorder metrics.Recorder
	now      func() time.Time
}

// New creates a Generator with the NoopRecorder default.
func New(opts Options) *Generator {
	return &Generator{opts: opts, recorder: metrics.NoopRecorder{}, now: time.Now}
}

// SetRecorder injects a metrics recorder (optional). Returns the generator for chaining.
func (g *Generator) SetRecorder(r metrics.Recorder) *Generator {
	if r == nil {
		g.recorder = metrics.NoopRecorder{}
		return g
	}
	g.recorder = r
	return g
}

// SetClock overrides the timestamp source (tests).
func (g *Generator) SetClock(now func() time.Time) *Generator {
	if now != nil {
		g.now = now
	}
	return g
}

// Run executes the full pipeline and returns a run report.
func (g *Generator) Run() (*Report, error) {
	report := newReport(g.now())
	slog.Info("Starting page generation",
		logfields.RunID(report.RunID),
		slog.String("iocinfo_dir", g.opts.IOCInfoDir),
		slog.String("control_dir", g.opts.ControlDir),
		slog.String("services_dir", g.opts.ServicesDir))

	err := g.run(report)
	report.finish(g.now())
	g.recorder.ObserveRunDuration(report.Duration())
	if err != nil {
		g.recorder.IncRunOutcome(metrics.OutcomeFailed)
		return nil, err
	}
	g.recorder.IncRunOutcome(metrics.OutcomeSuccess)
	slog.Info("Page generation completed",
		logfields.RunID(report.RunID),
		slog.Int("ioc_pages", report.IOCPages),
		slog.Int("service_pages", report.ServicePages),
		slog.Int("skipped_iocs", report.SkippedIOCs))
	return report, nil
}

func (g *Generator) run(report *Report) error {
	var values *config.Values
	if g.opts.ValuesFile != "" {
		v, err := config.Load(g.opts.ValuesFile)
		if err != nil {
			return err
		}
		values = v
		slog.Info("Loaded values file",
			logfields.Path(g.opts.ValuesFile),
			slog.Int("declared_iocs", len(values.AllowList())),
			slog.Int("services", len(values.QualifyingServices())))
	}

	if err := g.generateIOCPages(values, report); err != nil {
		return err
	}
	if values != nil {
		if err := g.generateServicePages(values, report); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) generateIOCPages(values *config.Values, report *Report) error {
	names, err := iocdir.List(g.opts.IOCInfoDir)
	if err != nil {
		return err
	}

	// An empty allow list disables filtering entirely.
	var allowed map[string]struct{}
	descByName := map[string]config.IOC{}
	if values != nil {
		if list := values.AllowList(); len(list) > 0 {
			allowed = make(map[string]struct{}, len(list))
			for _, n := range list {
				allowed[n] = struct{}{}
			}
		}
		descByName = values.IOCByName()
	}

	if err := os.MkdirAll(g.opts.ControlDir, 0o755); err != nil {
		return fmt.Errorf("create control directory: %w", err)
	}

	for _, name := range names {
		if allowed != nil {
			if _, ok := allowed[name]; !ok {
				slog.Debug("Skipping IOC not in values file", logfields.IOC(name))
				g.recorder.IncIOCSkipped()
				report.SkippedIOCs++
				continue
			}
		}

		snap, err := iocdir.Read(g.opts.IOCInfoDir, name)
		if err != nil {
			return err
		}
		page := pages.IOCPage{Snapshot: snap, Desc: descByName[name].Desc, Now: g.now()}
		content, err := page.Render()
		if err != nil {
			return err
		}

		outPath := filepath.Join(g.opts.ControlDir, name+".md")
		if err := writeFileAtomic(outPath, []byte(content)); err != nil {
			return err
		}
		g.recorder.IncPageWritten(metrics.PageKindIOC)
		report.IOCPages++
		slog.Info("Updated control page",
			logfields.IOC(name),
			logfields.Path(outPath),
			logfields.Count(snap.PVCount))
	}
	return nil
}

func (g *Generator) generateServicePages(values *config.Values, report *Report) error {
	services := values.QualifyingServices()
	if len(services) == 0 {
		return nil
	}
	if err := os.MkdirAll(g.opts.ServicesDir, 0o755); err != nil {
		return fmt.Errorf("create services directory: %w", err)
	}

	for _, svc := range services {
		content, err := pages.ServicePage{Service: svc, Now: g.now()}.Render()
		if err != nil {
			return err
		}
		outPath := filepath.Join(g.opts.ServicesDir, svc.Name+".md")
		if err := writeFileAtomic(outPath, []byte(content)); err != nil {
			return err
		}
		g.recorder.IncPageWritten(metrics.PageKindService)
		report.ServicePages++
		slog.Info("Updated service page",
			logfields.Service(svc.Name),
			logfields.Path(outPath),
			logfields.URL(svc.URL))
	}
	return nil
}

// writeFileAtomic writes via a temp file in the target directory and renames
// into place, so downstream consumers never observe a half-written page.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("promote %s: %w", path, err)
	}
	return nil
}
