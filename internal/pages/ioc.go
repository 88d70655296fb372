// Package pages assembles the generated markdown documents: one control page
// per IOC and one page per network-exposed service.
//
// Output is produced by direct string assembly. The frontmatter fields and
// the section anchors (#startlog, #yaml, #stcmd, #pvlist) are consumed by the
// downstream Hugo site and must stay stable.
package pages

import (
	"fmt"
	"strings"
	"time"

	"git.home.luguber.info/inful/iocinfo/internal/frontmatter"
	"git.home.luguber.info/inful/iocinfo/internal/iocdir"
	"git.home.luguber.info/inful/iocinfo/internal/markdown"
)

const pageWeight = 10

// IOCPage carries everything needed to render one IOC control page.
type IOCPage struct {
	Snapshot *iocdir.Snapshot
	Desc     string // from the values file, may be empty
	Now      time.Time
}

// Render assembles the full markdown document.
//
// The Start Log section is always present (possibly with empty content); the
// Quick Navigation list contains exactly the sections that made it into the
// page.
func (p IOCPage) Render() (string, error) {
	snap := p.Snapshot

	fm, err := frontmatter.Serialize(map[string]any{
		"title":     snap.Name,
		"linkTitle": snap.Name,
		"weight":    pageWeight,
		"devgroup":  snap.DeviceGroup(),
		"date":      p.Now.Format(time.RFC3339),
	})
	if err != nil {
		return "", fmt.Errorf("serialize frontmatter for %s: %w", snap.Name, err)
	}

	var b strings.Builder
	b.Write(fm)
	b.WriteString("\n## Quick Navigation\n\n")
	for _, link := range p.navLinks() {
		b.WriteString(link)
		b.WriteString("\n")
	}

	b.WriteString("\n## Start Log {#startlog}\n\n")
	b.WriteString("```\n")
	b.WriteString(markdown.LinkifyURLs(snap.StartLog))
	b.WriteString("\n```\n")

	if p.Desc != "" {
		b.WriteString("\n## Description\n\n")
		b.WriteString(p.Desc)
		b.WriteString("\n")
	}
	if snap.ConfigYAML != "" {
		writeFenced(&b, "Configuration (YAML)", "yaml", "yaml", snap.ConfigYAML)
	}
	if snap.StCmd != "" {
		writeFenced(&b, "EPICS st.cmd", "stcmd", "bash", snap.StCmd)
	}
	if snap.PVList != "" {
		title := fmt.Sprintf("Process Variables (%d)", snap.PVCount)
		writeFenced(&b, title, "pvlist", "text", snap.PVList)
	}

	return b.String(), nil
}

// navLinks lists only the sections actually present in the page.
func (p IOCPage) navLinks() []string {
	snap := p.Snapshot
	links := make([]string, 0, 5)
	if asset := snap.Asset(); asset != "" {
		links = append(links, fmt.Sprintf("- [IOC Asset Documentation](%s)", asset))
	}
	links = append(links, "- [Start Log](#startlog)")
	if snap.ConfigYAML != "" {
		links = append(links, "- [Configuration (YAML)](#yaml)")
	}
	if snap.StCmd != "" {
		links = append(links, "- [EPICS st.cmd](#stcmd)")
	}
	if snap.PVList != "" {
		links = append(links, fmt.Sprintf("- [Process Variables (%d)](#pvlist)", snap.PVCount))
	}
	return links
}

func writeFenced(b *strings.Builder, title, anchor, lang, content string) {
	fmt.Fprintf(b, "\n## %s {#%s}\n\n", title, anchor)
	fmt.Fprintf(b, "```%s\n", lang)
	b.WriteString(content)
	if !strings.HasSuffix(content, "\n") {
		b.WriteString("\n")
	}
	b.WriteString("```\n")
}
