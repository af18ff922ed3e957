// Package htmltest renders templ components and queries the resulting HTML in tests.
package htmltest

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// Render renders the component with a background context and parses the output.
func Render(t testing.TB, c templ.Component) *html.Node {
	t.Helper()
	return RenderContext(t, context.Background(), c)
}

// RenderContext renders the component with ctx and parses the output.
func RenderContext(t testing.TB, ctx context.Context, c templ.Component) *html.Node {
	t.Helper()
	return Parse(t, String(t, ctx, c))
}

// String renders the component to a string.
func String(t testing.TB, ctx context.Context, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(ctx, &buf))
	return buf.String()
}

// Parse parses markup into a document. Fragments end up in the body.
func Parse(t testing.TB, markup string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(markup))
	require.NoError(t, err)
	return doc
}

// Find returns the first element below n (including n) in document order matching the predicate.
func Find(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := Find(c, match); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns all elements below n (including n) matching the predicate.
func FindAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var result []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			result = append(result, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	if n != nil {
		walk(n)
	}
	return result
}

// ByTestID returns the first element with the data-testid.
func ByTestID(n *html.Node, id string) *html.Node {
	return Find(n, func(el *html.Node) bool {
		v, ok := Attr(el, "data-testid")
		return ok && v == id
	})
}

// ByTag returns the first element with the tag name.
func ByTag(n *html.Node, tag string) *html.Node {
	return Find(n, func(el *html.Node) bool { return el.Data == tag })
}

// ByClass returns the first element carrying the class.
func ByClass(n *html.Node, class string) *html.Node {
	return Find(n, func(el *html.Node) bool { return HasClass(el, class) })
}

// Attr returns the value of an attribute and whether it is present.
func Attr(n *html.Node, name string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// HasAttr reports whether the attribute is present.
func HasAttr(n *html.Node, name string) bool {
	_, ok := Attr(n, name)
	return ok
}

// HasClass reports whether the class attribute contains the class.
func HasClass(n *html.Node, class string) bool {
	v, _ := Attr(n, "class")
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

// Style returns the value of a property of the inline style attribute.
func Style(n *html.Node, property string) (string, bool) {
	v, _ := Attr(n, "style")
	for _, decl := range strings.Split(v, ";") {
		if prop, value, ok := strings.Cut(decl, ":"); ok && strings.TrimSpace(prop) == property {
			return strings.TrimSpace(value), true
		}
	}
	return "", false
}

// Elements returns the element children of n.
func Elements(n *html.Node) []*html.Node {
	var result []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			result = append(result, c)
		}
	}
	return result
}

// Text returns the concatenated text content of n.
func Text(n *html.Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
