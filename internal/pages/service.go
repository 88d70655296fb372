package pages

import (
	"fmt"
	"strings"
	"time"

	"git.home.luguber.info/inful/iocinfo/internal/config"
	"git.home.luguber.info/inful/iocinfo/internal/frontmatter"
)

// defaultServiceDesc is used when the values file gives no description.
const defaultServiceDesc = "This is an EPICS service with ingress enabled."

// ServicePage carries everything needed to render one service page.
type ServicePage struct {
	Service config.QualifiedService
	Now     time.Time
}

// Render assembles the full markdown document.
//
// Loadbalancer-only services (address present, no ingress) show a plain
// connection IP; everything else shows a clickable Service URL.
func (p ServicePage) Render() (string, error) {
	svc := p.Service

	fm, err := frontmatter.Serialize(map[string]any{
		"title":     svc.Name,
		"linkTitle": svc.Name,
		"weight":    pageWeight,
		"type":      "docs",
		"date":      p.Now.Format(time.RFC3339),
	})
	if err != nil {
		return "", fmt.Errorf("serialize frontmatter for %s: %w", svc.Name, err)
	}

	desc := svc.Config.Desc
	if desc == "" {
		desc = defaultServiceDesc
	}

	var b strings.Builder
	b.Write(fm)
	b.WriteString("\n")
	if svc.Config.HasLoadbalancer() && !svc.Config.HasIngress() {
		fmt.Fprintf(&b, "**Connection IP:** %s\n", *svc.Config.Loadbalancer)
	} else {
		fmt.Fprintf(&b, "## Service URL\n\n[%s](%s)\n", svc.URL, svc.URL)
	}
	b.WriteString("\n## Description\n\n")
	b.WriteString(desc)
	b.WriteString("\n")

	return b.String(), nil
}
