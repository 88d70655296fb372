package commands

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/iocinfo/internal/config"
	"git.home.luguber.info/inful/iocinfo/internal/iocdir"
	"git.home.luguber.info/inful/iocinfo/internal/logfields"
)

// DiscoverCmd implements the 'discover' command: list the IOC directories
// that would be processed and the sections each page would contain, without
// writing anything.
type DiscoverCmd struct {
	IOCInfoDir string `name:"iocinfo-dir" help:"Directory containing per-IOC information" default:"static/iocinfo"`
}

func (d *DiscoverCmd) Run(_ *Global, root *CLI) error {
	var values *config.Values
	if root.ValuesFile != "" {
		v, err := config.Load(root.ValuesFile)
		if err != nil {
			return fmt.Errorf("load values file: %w", err)
		}
		values = v
	}

	names, err := iocdir.List(d.IOCInfoDir)
	if err != nil {
		return err
	}

	var allowed map[string]struct{}
	if values != nil {
		if list := values.AllowList(); len(list) > 0 {
			allowed = make(map[string]struct{}, len(list))
			for _, n := range list {
				allowed[n] = struct{}{}
			}
		}
	}

	processed := 0
	for _, name := range names {
		if allowed != nil {
			if _, ok := allowed[name]; !ok {
				slog.Info("IOC filtered out by values file", logfields.IOC(name))
				continue
			}
		}
		snap, err := iocdir.Read(d.IOCInfoDir, name)
		if err != nil {
			return err
		}
		processed++
		slog.Info("IOC discovered",
			logfields.IOC(name),
			slog.String("devgroup", snap.DeviceGroup()),
			slog.Bool("start_log", snap.StartLog != ""),
			slog.String("config_yaml", snap.ConfigName),
			slog.Bool("st_cmd", snap.StCmd != ""),
			slog.Int("pvs", snap.PVCount))
	}

	slog.Info("Discovery completed", slog.Int("iocs", processed))

	if values != nil {
		for _, svc := range values.QualifyingServices() {
			slog.Info("Service discovered",
				logfields.Service(svc.Name),
				logfields.URL(svc.URL),
				slog.Bool("ingress", svc.Config.HasIngress()),
				slog.Bool("loadbalancer", svc.Config.HasLoadbalancer()))
		}
	}
	return nil
}
