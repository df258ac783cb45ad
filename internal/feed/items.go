package feed

import "strings"

// Strategy locates repeating items under one recognized document shape.
type Strategy struct {
	// Wrappers are names of element wrapping items. Empty means items are top level elements.
	Wrappers []string
	// Items are names of item elements in priority order.
	Items []string
}

// DefaultStrategies are recognized feed shapes in priority order.
var DefaultStrategies = []Strategy{
	{Wrappers: []string{"products", "catalog", "feed"}, Items: []string{"product", "item", "urun"}},
	{Wrappers: []string{"root", "channel"}, Items: []string{"item", "product"}},
	{Items: []string{"item", "product"}},
}

// Extract returns items found under strategy's shape or nil.
// Wrapper is searched among top level elements and their direct children.
func (s Strategy) Extract(doc *Node) []*Node {
	if len(s.Wrappers) == 0 {
		return firstNamed(doc, s.Items)
	}

	for _, wrapper := range s.wrappers(doc) {
		if items := firstNamed(wrapper, s.Items); len(items) > 0 {
			return items
		}
	}

	return nil
}

func (s Strategy) wrappers(doc *Node) []*Node {
	var wrappers []*Node
	for _, name := range s.Wrappers {
		wrappers = append(wrappers, doc.ChildrenNamed(name)...)
	}
	for _, top := range doc.Children {
		for _, name := range s.Wrappers {
			wrappers = append(wrappers, top.ChildrenNamed(name)...)
		}
	}

	return wrappers
}

func firstNamed(parent *Node, names []string) []*Node {
	for _, name := range names {
		if children := parent.ChildrenNamed(name); len(children) > 0 {
			return children
		}
	}

	return nil
}

// Items returns feed items found by the first strategy yielding any.
// DefaultStrategies are used when no strategy is provided.
func Items(doc *Node, strategies ...Strategy) []*Node {
	if len(strategies) == 0 {
		strategies = DefaultStrategies
	}

	for _, strategy := range strategies {
		if items := strategy.Extract(doc); len(items) > 0 {
			return items
		}
	}

	return nil
}

// Field is a leaf value of an item.
type Field struct {
	Path  string
	Value string
}

// Flatten returns item's leaf fields in document order with dot-joined paths.
// Repeated elements produce one field per occurrence. Attributes are not included.
func Flatten(item *Node) []Field {
	var fields []Field

	var walk func(n *Node, prefix string)
	walk = func(n *Node, prefix string) {
		for _, child := range n.Children {
			path := child.Name
			if prefix != "" {
				path = prefix + "." + child.Name
			}

			if child.IsLeaf() {
				fields = append(fields, Field{Path: path, Value: child.Text})
				continue
			}
			walk(child, path)
		}
	}
	walk(item, "")

	return fields
}

// Values returns all non-empty values found in item under dot-joined path.
func Values(item *Node, path string) []string {
	if item == nil || path == "" {
		return nil
	}

	nodes := []*Node{item}
	for _, segment := range strings.Split(path, ".") {
		var next []*Node
		for _, node := range nodes {
			for _, child := range node.Children {
				if child.Name == segment {
					next = append(next, child)
				}
			}
		}
		nodes = next
	}

	values := make([]string, 0, len(nodes))
	for _, node := range nodes {
		if node.Text != "" {
			values = append(values, node.Text)
		}
	}

	return values
}

// Value returns the first non-empty value under path or empty string.
func Value(item *Node, path string) string {
	if values := Values(item, path); len(values) > 0 {
		return values[0]
	}

	return ""
}
