// Package lint verifies already-generated pages: every in-page fragment link
// (the Quick Navigation entries) must resolve to a heading ID present in the
// same document.
package lint

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/iocinfo/internal/frontmatter"
	"git.home.luguber.info/inful/iocinfo/internal/markdown"
)

// Issue is one unresolved fragment link.
type Issue struct {
	File     string
	Fragment string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: navigation link %s has no matching heading", i.File, i.Fragment)
}

// CheckDir lints every .md file directly inside dir. A missing directory is
// not an error (the corresponding generation phase may simply not have run).
func CheckDir(dir string) ([]Issue, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	var issues []Issue
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		fileIssues, err := CheckFile(path)
		if err != nil {
			return nil, err
		}
		issues = append(issues, fileIssues...)
	}
	return issues, nil
}

// CheckFile lints a single generated page.
func CheckFile(path string) ([]Issue, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	_, body, _, err := frontmatter.Split(content)
	if err != nil {
		return nil, fmt.Errorf("split frontmatter of %s: %w", path, err)
	}

	ids := markdown.HeadingIDs(body)
	var issues []Issue
	for _, link := range markdown.ExtractLinks(body) {
		if !strings.HasPrefix(link.Destination, "#") {
			continue
		}
		if _, ok := ids[strings.TrimPrefix(link.Destination, "#")]; !ok {
			issues = append(issues, Issue{File: path, Fragment: link.Destination})
		}
	}
	return issues, nil
}
