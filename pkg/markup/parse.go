package markup

import (
	"strings"

	"github.com/arthur-debert/outstanding/pkg/errors"
	"github.com/arthur-debert/outstanding/pkg/theme"
)

// NodeKind tells text runs and tags apart.
type NodeKind int

const (
	TextNode NodeKind = iota
	TagNode
)

// Node is one element of a parsed document: a run of literal text, or a
// tag with its children.
type Node struct {
	Kind     NodeKind
	Name     string
	Text     string
	Children []*Node
	// Offset is the byte offset of the text run or of the opening marker.
	Offset int
	// Known is set on tags whose name the lookup recognized.
	Known bool
}

// Lookup decides which tag names are known. *theme.Theme satisfies it.
type Lookup interface {
	Has(name string) bool
}

// Document is the tag tree of one input string.
type Document struct {
	Nodes []*Node
}

type token struct {
	closing bool
	name    string
	offset  int
	end     int
}

// scanTag recognizes "[name]" or "[/name]" at s[i]. Anything else is
// literal text.
func scanTag(s string, i int) (token, bool) {
	j := i + 1
	closing := false
	if j < len(s) && s[j] == '/' {
		closing = true
		j++
	}
	start := j
	for j < len(s) && isNameByte(s[j]) {
		j++
	}
	if j >= len(s) || s[j] != ']' {
		return token{}, false
	}
	name := s[start:j]
	if !theme.IsIdentifier(name) {
		return token{}, false
	}
	return token{closing: closing, name: name, offset: i, end: j + 1}, true
}

func isNameByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '-' || c == '_'
}

// Parse builds the tag tree of input. Tags must nest strictly: a closing
// tag that does not match the innermost open tag, a closing tag with no
// open tag, or a tag left open at the end all fail with UNBALANCED_TAG,
// whether or not the names are known to lookup. lookup may be nil, in
// which case every tag is unknown.
func Parse(input string, lookup Lookup) (*Document, error) {
	root := &Node{Kind: TagNode}
	stack := []*Node{root}

	textStart := 0
	flushText := func(end int) {
		if end > textStart {
			top := stack[len(stack)-1]
			top.Children = append(top.Children, &Node{Kind: TextNode, Text: input[textStart:end], Offset: textStart})
		}
	}

	for i := 0; i < len(input); {
		if input[i] != '[' {
			i++
			continue
		}
		tok, ok := scanTag(input, i)
		if !ok {
			i++
			continue
		}

		flushText(i)
		top := stack[len(stack)-1]

		if tok.closing {
			if len(stack) == 1 {
				return nil, errors.Newf(errors.ErrUnbalancedTag, "unexpected closing tag [/%s] at byte %d", tok.name, tok.offset).
					WithDetail("name", tok.name).
					WithDetail("offset", tok.offset)
			}
			if top.Name != tok.name {
				return nil, errors.Newf(errors.ErrUnbalancedTag, "closing tag [/%s] at byte %d does not match [%s] opened at byte %d",
					tok.name, tok.offset, top.Name, top.Offset).
					WithDetail("name", tok.name).
					WithDetail("offset", tok.offset).
					WithDetail("expected", top.Name)
			}
			stack = stack[:len(stack)-1]
		} else {
			node := &Node{
				Kind:   TagNode,
				Name:   tok.name,
				Offset: tok.offset,
				Known:  lookup != nil && lookup.Has(tok.name),
			}
			top.Children = append(top.Children, node)
			stack = append(stack, node)
		}

		i = tok.end
		textStart = i
	}
	flushText(len(input))

	if len(stack) > 1 {
		open := stack[len(stack)-1]
		return nil, errors.Newf(errors.ErrUnbalancedTag, "tag [%s] opened at byte %d is never closed", open.Name, open.Offset).
			WithDetail("name", open.Name).
			WithDetail("offset", open.Offset)
	}
	return &Document{Nodes: root.Children}, nil
}

// Validate parses input and additionally fails with UNKNOWN_TAG on the
// first tag lookup does not know.
func Validate(input string, lookup Lookup) error {
	doc, err := Parse(input, lookup)
	if err != nil {
		return err
	}
	var unknown *Node
	doc.Walk(func(n *Node) bool {
		if n.Kind == TagNode && !n.Known {
			unknown = n
			return false
		}
		return true
	})
	if unknown != nil {
		return errors.Newf(errors.ErrUnknownTag, "unknown tag [%s] at byte %d", unknown.Name, unknown.Offset).
			WithDetail("name", unknown.Name).
			WithDetail("offset", unknown.Offset)
	}
	return nil
}

// Walk visits nodes depth first in document order until fn returns false.
func (d *Document) Walk(fn func(*Node) bool) {
	var visit func(nodes []*Node) bool
	visit = func(nodes []*Node) bool {
		for _, n := range nodes {
			if !fn(n) {
				return false
			}
			if !visit(n.Children) {
				return false
			}
		}
		return true
	}
	visit(d.Nodes)
}

// Text returns the concatenated text runs, all markers dropped.
func (d *Document) Text() string {
	var b strings.Builder
	d.Walk(func(n *Node) bool {
		if n.Kind == TextNode {
			b.WriteString(n.Text)
		}
		return true
	})
	return b.String()
}

// Source rebuilds the markup the document was parsed from.
func (d *Document) Source() string {
	var b strings.Builder
	writeSource(&b, d.Nodes)
	return b.String()
}

func writeSource(b *strings.Builder, nodes []*Node) {
	for _, n := range nodes {
		if n.Kind == TextNode {
			b.WriteString(n.Text)
			continue
		}
		b.WriteString("[" + n.Name + "]")
		writeSource(b, n.Children)
		b.WriteString("[/" + n.Name + "]")
	}
}
