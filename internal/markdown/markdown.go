// Package markdown provides the small amount of Markdown handling the
// generator needs: URL linkification for raw log text, and goldmark-based
// analysis of generated pages (link extraction, heading IDs) used by lint
// and by tests.
package markdown

type LinkKind string

const (
	LinkKindInline LinkKind = "inline"
	LinkKindImage  LinkKind = "image"
	LinkKindAuto   LinkKind = "auto"
)

type Link struct {
	Kind        LinkKind
	Destination string
}
