package config

import (
	"fmt"
	"sort"
)

// QualifiedService is a service selected for page generation, annotated with
// its computed URL.
type QualifiedService struct {
	Name   string
	Config Service
	URL    string
}

// QualifyingServices returns the services that are network-exposed: an
// explicit ingress-enabled flag, a nested ingress.enabled flag, or a
// loadbalancer address.
//
// Names are sorted so iteration order (logs, metrics) is deterministic; the
// per-service output files are order-independent.
func (v *Values) QualifyingServices() []QualifiedService {
	names := make([]string, 0, len(v.EPICSConfiguration.Services))
	for name := range v.EPICSConfiguration.Services {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]QualifiedService, 0, len(names))
	for _, name := range names {
		svc := v.EPICSConfiguration.Services[name]
		if !svc.HasIngress() && !svc.HasLoadbalancer() {
			continue
		}
		out = append(out, QualifiedService{
			Name:   name,
			Config: svc,
			URL:    v.serviceURL(name, svc),
		})
	}
	return out
}

// serviceURL computes the service URL: the loadbalancer address when present,
// otherwise the beamline-qualified cluster name. A declared path is appended
// verbatim in both cases.
func (v *Values) serviceURL(name string, svc Service) string {
	var url string
	if svc.Loadbalancer != nil {
		url = fmt.Sprintf("http://%s", *svc.Loadbalancer)
	} else {
		url = fmt.Sprintf("http://%s-%s.%s", v.Beamline, name, v.EPIK8Namespace)
	}
	if svc.Path != nil {
		url += *svc.Path
	}
	return url
}
