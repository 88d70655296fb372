package markdown

import (
	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

func newParser() goldmark.Markdown {
	// WithAttribute enables the `{#anchor}` heading syntax our pages emit;
	// WithAutoHeadingID covers headings without an explicit anchor.
	return goldmark.New(goldmark.WithParserOptions(
		parser.WithAttribute(),
		parser.WithAutoHeadingID(),
	))
}

// ExtractLinks parses a Markdown body (frontmatter already removed) and
// returns all link-like constructs.
//
// This is an analysis API; it does not attempt to re-render Markdown.
func ExtractLinks(body []byte) []Link {
	md := newParser()
	root := md.Parser().Parse(text.NewReader(body))

	links := make([]Link, 0)
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *gmast.AutoLink:
			links = append(links, Link{Kind: LinkKindAuto, Destination: string(node.URL(body))})
		case *gmast.Image:
			links = append(links, Link{Kind: LinkKindImage, Destination: string(node.Destination)})
		case *gmast.Link:
			links = append(links, Link{Kind: LinkKindInline, Destination: string(node.Destination)})
		}
		return gmast.WalkContinue, nil
	})
	return links
}

// HeadingIDs parses a Markdown body and returns the set of heading IDs,
// explicit (`{#id}`) or auto-generated.
func HeadingIDs(body []byte) map[string]struct{} {
	md := newParser()
	root := md.Parser().Parse(text.NewReader(body))

	ids := make(map[string]struct{})
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if _, ok := n.(*gmast.Heading); !ok {
			return gmast.WalkContinue, nil
		}
		if id, ok := n.AttributeString("id"); ok {
			switch v := id.(type) {
			case []byte:
				ids[string(v)] = struct{}{}
			case string:
				ids[v] = struct{}{}
			}
		}
		return gmast.WalkContinue, nil
	})
	return ids
}
