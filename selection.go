package commentfmt

// Node is a node of the host document tree. Implementations must be
// comparable (typically pointers) and return a nil interface from Parent at
// the root.
type Node interface {
	Parent() Node
}

// Range is one range of a document selection, identified by the deepest
// node that contains both of its boundaries.
type Range struct {
	CommonAncestor Node
}

// Selection is the document's current selection. Browsers report at most
// one range, but the type allows several.
type Selection struct {
	Ranges []Range
}

// Empty reports whether the selection has no ranges.
func (s Selection) Empty() bool {
	return len(s.Ranges) == 0
}

// ContainsSelection reports whether every range of sel lies within host.
// A selection without ranges is never contained. Hosts call it before
// applying a formatting action so that clicks with the selection elsewhere
// on the page are ignored.
func ContainsSelection(host Node, sel Selection) bool {
	if host == nil || sel.Empty() {
		return false
	}
	for _, r := range sel.Ranges {
		if !Contains(host, r.CommonAncestor) {
			return false
		}
	}
	return true
}

// Contains reports whether n is host or one of its descendants.
func Contains(host, n Node) bool {
	for ; n != nil; n = n.Parent() {
		if n == host {
			return true
		}
	}
	return false
}

// Element is a minimal in-memory document node.
type Element struct {
	Name     string
	parent   *Element
	children []*Element
}

// NewElement creates a detached element.
func NewElement(name string) *Element {
	return &Element{Name: name}
}

// Append attaches child under e and returns child.
func (e *Element) Append(child *Element) *Element {
	child.parent = e
	e.children = append(e.children, child)
	return child
}

// Children returns the direct children of e.
func (e *Element) Children() []*Element {
	return e.children
}

// Parent implements Node.
func (e *Element) Parent() Node {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

// Compile-time interface check.
var _ Node = (*Element)(nil)
