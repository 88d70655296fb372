// Package config loads the EPICS deployment values file that drives IOC
// filtering, page enrichment and service page generation.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Values represents the deployment values file (typed subset; unknown keys
// are ignored rather than validated).
type Values struct {
	Beamline           string             `yaml:"beamline"`
	EPIK8Namespace     string             `yaml:"epik8namespace"`
	EPICSConfiguration EPICSConfiguration `yaml:"epicsConfiguration"`
}

// EPICSConfiguration holds the IOC list and the service map.
type EPICSConfiguration struct {
	IOCs     []IOC              `yaml:"iocs"`
	Services map[string]Service `yaml:"services"`
}

// IOC is a declared IOC entry; Desc enriches the generated control page.
type IOC struct {
	Name string `yaml:"name"`
	Desc string `yaml:"desc,omitempty"`
}

// Service is a declared service entry. Loadbalancer and Path are pointers
// because key presence (not just a non-empty value) changes behavior.
type Service struct {
	EnableIngress bool     `yaml:"enable_ingress,omitempty"`
	Ingress       *Ingress `yaml:"ingress,omitempty"`
	Loadbalancer  *string  `yaml:"loadbalancer,omitempty"`
	Path          *string  `yaml:"path,omitempty"`
	Desc          string   `yaml:"desc,omitempty"`
}

// Ingress is the nested ingress toggle form.
type Ingress struct {
	Enabled bool `yaml:"enabled,omitempty"`
}

// Load reads and parses a values file. A parse error is fatal to the run;
// there is no partial-output guarantee.
func Load(path string) (*Values, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read values file: %w", err)
	}
	var v Values
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parse values file %s: %w", path, err)
	}
	return &v, nil
}

// AllowList returns the declared IOC names in declaration order. An empty
// list means "no filtering" (mirrors the original falsy-list behavior).
func (v *Values) AllowList() []string {
	names := make([]string, 0, len(v.EPICSConfiguration.IOCs))
	for _, ioc := range v.EPICSConfiguration.IOCs {
		names = append(names, ioc.Name)
	}
	return names
}

// IOCByName returns a name-keyed lookup for description enrichment.
func (v *Values) IOCByName() map[string]IOC {
	m := make(map[string]IOC, len(v.EPICSConfiguration.IOCs))
	for _, ioc := range v.EPICSConfiguration.IOCs {
		m[ioc.Name] = ioc
	}
	return m
}

// HasIngress reports whether either ingress form is enabled.
func (s Service) HasIngress() bool {
	return s.EnableIngress || (s.Ingress != nil && s.Ingress.Enabled)
}

// HasLoadbalancer reports whether the loadbalancer key is present.
func (s Service) HasLoadbalancer() bool { return s.Loadbalancer != nil }
