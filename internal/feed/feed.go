// Package feed decodes arbitrary product feed XML into a generic tree and locates its repeating items.
package feed

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
)

// Node is a generic XML element.
type Node struct {
	Name     string
	Attrs    map[string]string
	Text     string
	Children []*Node

	raw []byte
}

// IsLeaf reports whether node has no child elements.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// ChildrenNamed returns node's children with provided name, compared case-insensitively.
func (n *Node) ChildrenNamed(name string) []*Node {
	var children []*Node
	for _, child := range n.Children {
		if strings.EqualFold(child.Name, name) {
			children = append(children, child)
		}
	}

	return children
}

// Decode decodes xml document into a tree.
// Returned node is a synthetic document node whose children are document's top level elements,
// so files with bare top level repetition (several roots) are decoded as well.
func Decode(ctx context.Context, r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)
	dec.Strict = false
	dec.Entity = xml.HTMLEntity
	dec.CharsetReader = charsetReader

	doc := &Node{}
	stack := []*Node{doc}

	for {
		token, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%w: %w", ErrMalformedFeed, err)
		}

		switch element := token.(type) {
		case xml.StartElement:
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}

			node := &Node{Name: element.Name.Local}
			if len(element.Attr) > 0 {
				node.Attrs = make(map[string]string, len(element.Attr))
				for _, attr := range element.Attr {
					node.Attrs[attr.Name.Local] = attr.Value
				}
			}

			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, node)
			stack = append(stack, node)
		case xml.EndElement:
			if len(stack) > 1 {
				closeNode(stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			node := stack[len(stack)-1]
			node.raw = append(node.raw, element...)
		default:
			continue
		}
	}

	// not closed elements of truncated files.
	for ix := len(stack) - 1; ix > 0; ix-- {
		closeNode(stack[ix])
	}

	return doc, nil
}

// closeNode sets node's text, unescaping html entities left in feeds which escape their content twice.
func closeNode(n *Node) {
	n.Text = strings.TrimSpace(html.UnescapeString(string(n.raw)))
	n.raw = nil
}

func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, fmt.Errorf("can't find %q charset: %w", label, err)
	}
	if enc == nil {
		return input, nil
	}

	return enc.NewDecoder().Reader(input), nil
}
