package taxonomy

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/crimson-sun/shelf/internal/engine/textnorm"
	"github.com/crimson-sun/shelf/internal/model"
)

var (
	// ErrDuplicateSlug is returned when two nodes share a slug.
	ErrDuplicateSlug = errors.New("duplicate slug")
	// ErrTooDeep is returned when the tree is deeper than three levels or contains a cycle.
	ErrTooDeep = errors.New("tree deeper than three levels")
	// ErrInvalidNode is returned for malformed nodes and attribute definitions.
	ErrInvalidNode = errors.New("invalid node")
)

// SearchHit is a node whose name matched a search query.
type SearchHit struct {
	Node  *model.CategoryNode
	Level model.Level
	Path  []model.Crumb // main → node, inclusive
}

// Entry is one row of the flattened tree.
type Entry struct {
	ID         string      `json:"id"`
	Name       model.Names `json:"name"`
	Slug       string      `json:"slug"`
	Level      model.Level `json:"level"`
	ParentSlug string      `json:"parent_slug,omitempty"`
}

// Taxonomy holds the category tree and the indices derived from it.
// It is immutable after New returns and safe for concurrent use.
type Taxonomy struct {
	roots  []*model.CategoryNode
	paths  map[string][]*model.CategoryNode // slug → ancestors, main first, node last
	mains  map[int]*model.CategoryNode
	flat   []Entry
	leaves int
}

// New creates a Taxonomy from a set of main category nodes. It copies the
// nodes, assigns levels, checks the structural invariants, and builds the
// lookup indices. The caller's nodes are never modified.
func New(roots []*model.CategoryNode) (*Taxonomy, error) {
	t := &Taxonomy{
		roots: make([]*model.CategoryNode, 0, len(roots)),
		paths: make(map[string][]*model.CategoryNode),
		mains: make(map[int]*model.CategoryNode, len(roots)),
	}
	for _, root := range roots {
		if root == nil {
			return nil, fmt.Errorf("taxonomy: nil main category: %w", ErrInvalidNode)
		}
		id, err := strconv.Atoi(root.ID)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("taxonomy: main category %q needs a positive numeric id: %w", root.Slug, ErrInvalidNode)
		}
		if prev, dup := t.mains[id]; dup {
			return nil, fmt.Errorf("taxonomy: main id %d used by %q and %q: %w", id, prev.Slug, root.Slug, ErrInvalidNode)
		}
		own, err := t.index(root, nil)
		if err != nil {
			return nil, err
		}
		t.mains[id] = own
		t.roots = append(t.roots, own)
	}
	return t, nil
}

// index walks a subtree in pre-order, validating each node and recording
// a private copy of it. The copy of n is returned with its children attached.
func (t *Taxonomy) index(n *model.CategoryNode, ancestors []*model.CategoryNode) (*model.CategoryNode, error) {
	if n == nil {
		return nil, fmt.Errorf("taxonomy: nil child under %q: %w", ancestors[len(ancestors)-1].Slug, ErrInvalidNode)
	}
	depth := len(ancestors) + 1
	if depth > model.MaxTreeDepth {
		return nil, fmt.Errorf("taxonomy: %q at depth %d: %w", n.Slug, depth, ErrTooDeep)
	}
	if strings.TrimSpace(n.Slug) == "" {
		return nil, fmt.Errorf("taxonomy: node %q has no slug: %w", n.ID, ErrInvalidNode)
	}
	if n.ID == "" {
		return nil, fmt.Errorf("taxonomy: node %q has no id: %w", n.Slug, ErrInvalidNode)
	}
	if n.Name.TH == "" && n.Name.EN == "" {
		return nil, fmt.Errorf("taxonomy: node %q has no name: %w", n.Slug, ErrInvalidNode)
	}
	if _, dup := t.paths[n.Slug]; dup {
		return nil, fmt.Errorf("taxonomy: %q: %w", n.Slug, ErrDuplicateSlug)
	}
	for _, a := range n.Attributes {
		if err := checkAttribute(a); err != nil {
			return nil, fmt.Errorf("taxonomy: %q attribute %q: %w", n.Slug, a.Name, err)
		}
	}

	own := &model.CategoryNode{
		ID:    n.ID,
		Name:  n.Name,
		Slug:  n.Slug,
		Icon:  n.Icon,
		Level: model.Level(depth),
	}
	if n.Attributes != nil {
		own.Attributes = make([]model.AttributeDefinition, len(n.Attributes))
		for i, a := range n.Attributes {
			own.Attributes[i] = a.Clone()
		}
	}
	path := make([]*model.CategoryNode, depth)
	copy(path, ancestors)
	path[depth-1] = own
	t.paths[own.Slug] = path

	entry := Entry{ID: own.ID, Name: own.Name, Slug: own.Slug, Level: own.Level}
	if len(ancestors) > 0 {
		entry.ParentSlug = ancestors[len(ancestors)-1].Slug
	}
	t.flat = append(t.flat, entry)
	if n.IsLeaf() {
		t.leaves++
	}

	if len(n.Children) > 0 {
		own.Children = make([]*model.CategoryNode, 0, len(n.Children))
	}
	for _, child := range n.Children {
		c, err := t.index(child, path)
		if err != nil {
			return nil, err
		}
		own.Children = append(own.Children, c)
	}
	return own, nil
}

func checkAttribute(a model.AttributeDefinition) error {
	if a.Name == "" {
		return fmt.Errorf("unnamed attribute: %w", ErrInvalidNode)
	}
	if !a.Kind.Valid() {
		return fmt.Errorf("unknown kind %q: %w", a.Kind, ErrInvalidNode)
	}
	if a.Kind.IsSelect() && len(a.Options) == 0 {
		return fmt.Errorf("%s without options: %w", a.Kind, ErrInvalidNode)
	}
	return nil
}

// Roots returns the main category nodes in declaration order.
func (t *Taxonomy) Roots() []*model.CategoryNode {
	return t.roots
}

// Len returns the total number of nodes.
func (t *Taxonomy) Len() int {
	return len(t.flat)
}

// LeafCount returns the number of nodes without children.
func (t *Taxonomy) LeafCount() int {
	return t.leaves
}

// FindBySlug looks up a node at any level.
func (t *Taxonomy) FindBySlug(slug string) (*model.CategoryNode, bool) {
	path, ok := t.paths[slug]
	if !ok {
		return nil, false
	}
	return path[len(path)-1], true
}

// Main returns the main category with the given numeric id.
func (t *Taxonomy) Main(id int) (*model.CategoryNode, bool) {
	n, ok := t.mains[id]
	return n, ok
}

// MainOf returns the main category that a node belongs to.
func (t *Taxonomy) MainOf(slug string) (*model.CategoryNode, bool) {
	path, ok := t.paths[slug]
	if !ok {
		return nil, false
	}
	return path[0], true
}

// MainID returns the numeric id of the main category a node belongs to, or 0.
func (t *Taxonomy) MainID(slug string) int {
	main, ok := t.MainOf(slug)
	if !ok {
		return 0
	}
	id, _ := strconv.Atoi(main.ID)
	return id
}

// Contains reports whether slug names a level 2 or 3 node under main category id.
func (t *Taxonomy) Contains(id int, slug string) bool {
	path, ok := t.paths[slug]
	if !ok || len(path) < 2 {
		return false
	}
	main, ok := t.mains[id]
	return ok && path[0] == main
}

// IsAncestor reports whether the node at ancestor lies on the path to the node at slug.
// A node is not its own ancestor.
func (t *Taxonomy) IsAncestor(ancestor, slug string) bool {
	path, ok := t.paths[slug]
	if !ok {
		return false
	}
	for _, n := range path[:len(path)-1] {
		if n.Slug == ancestor {
			return true
		}
	}
	return false
}

// AttributesFor returns the merged attribute list for a node: the main
// category's common attributes, then the sub node's own, then the sub-sub
// node's own. Names repeated at deeper levels are kept. Unknown slugs
// return nil.
func (t *Taxonomy) AttributesFor(slug string) []model.AttributeDefinition {
	path, ok := t.paths[slug]
	if !ok {
		return nil
	}
	var n int
	for _, node := range path {
		n += len(node.Attributes)
	}
	if n == 0 {
		return nil
	}
	attrs := make([]model.AttributeDefinition, 0, n)
	for _, node := range path {
		for _, a := range node.Attributes {
			attrs = append(attrs, a.Clone())
		}
	}
	return attrs
}

// Breadcrumb returns the trail from the main category to the node, inclusive.
func (t *Taxonomy) Breadcrumb(slug string) []model.Crumb {
	path, ok := t.paths[slug]
	if !ok {
		return nil
	}
	return crumbs(path)
}

func crumbs(path []*model.CategoryNode) []model.Crumb {
	out := make([]model.Crumb, len(path))
	for i, n := range path {
		out[i] = model.Crumb{Name: n.Name, Slug: n.Slug}
	}
	return out
}

// Search returns every node whose Thai or English name contains query,
// case-insensitively, in tree pre-order. A blank query matches nothing.
func (t *Taxonomy) Search(query string) []SearchHit {
	q := textnorm.Normalize(query)
	if q == "" {
		return nil
	}
	var hits []SearchHit
	for _, e := range t.flat {
		if !strings.Contains(textnorm.Fold(e.Name.TH), q) && !strings.Contains(textnorm.Fold(e.Name.EN), q) {
			continue
		}
		path := t.paths[e.Slug]
		hits = append(hits, SearchHit{
			Node:  path[len(path)-1],
			Level: e.Level,
			Path:  crumbs(path),
		})
	}
	return hits
}

// Flatten returns the whole tree as a pre-order list.
func (t *Taxonomy) Flatten() []Entry {
	out := make([]Entry, len(t.flat))
	copy(out, t.flat)
	return out
}

// FindByName returns the first level 2 or 3 node under main category id,
// in pre-order, whose Thai or English name equals name after normalisation.
func (t *Taxonomy) FindByName(id int, name string) (*model.CategoryNode, bool) {
	want := textnorm.Normalize(name)
	main, ok := t.mains[id]
	if want == "" || !ok {
		return nil, false
	}
	return findByName(main.Children, want)
}

func findByName(nodes []*model.CategoryNode, want string) (*model.CategoryNode, bool) {
	for _, n := range nodes {
		if textnorm.Normalize(n.Name.TH) == want || textnorm.Normalize(n.Name.EN) == want {
			return n, true
		}
		if found, ok := findByName(n.Children, want); ok {
			return found, true
		}
	}
	return nil, false
}
