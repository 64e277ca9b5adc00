package model

import "slices"

// Names carries a display string in both supported languages.
type Names struct {
	TH string `json:"th" yaml:"th"`
	EN string `json:"en" yaml:"en"`
}

// Level is a node's depth in the category tree, starting at 1 for main categories.
type Level int

const (
	LevelMain    Level = 1
	LevelSub     Level = 2
	LevelSubSub  Level = 3
	MaxTreeDepth       = int(LevelSubSub)
)

// CategoryNode represents a node in the category tree.
// Main nodes carry a numeric ID (e.g. "3"); deeper nodes use slug-like IDs.
type CategoryNode struct {
	ID         string                `json:"id" yaml:"id"`
	Name       Names                 `json:"name" yaml:"name"`
	Slug       string                `json:"slug" yaml:"slug"`
	Icon       string                `json:"icon,omitempty" yaml:"icon,omitempty"` // main level only
	Attributes []AttributeDefinition `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Children   []*CategoryNode       `json:"children,omitempty" yaml:"children,omitempty"`
	Level      Level                 `json:"level,omitempty" yaml:"-"` // assigned by the taxonomy store
}

// IsLeaf reports whether the node has no children.
func (n *CategoryNode) IsLeaf() bool {
	return len(n.Children) == 0
}

// Clone returns a deep copy of the subtree rooted at n, which must be
// acyclic. Nil stays nil.
func (n *CategoryNode) Clone() *CategoryNode {
	if n == nil {
		return nil
	}
	c := *n
	if n.Attributes != nil {
		c.Attributes = make([]AttributeDefinition, len(n.Attributes))
		for i, a := range n.Attributes {
			c.Attributes[i] = a.Clone()
		}
	}
	c.Children = CloneNodes(n.Children)
	return &c
}

// CloneNodes deep-copies a list of subtrees.
func CloneNodes(nodes []*CategoryNode) []*CategoryNode {
	if nodes == nil {
		return nil
	}
	out := make([]*CategoryNode, len(nodes))
	for i, n := range nodes {
		out[i] = n.Clone()
	}
	return out
}

// AttributeKind is the input type of an attribute field.
type AttributeKind string

const (
	KindSelect      AttributeKind = "select"
	KindMultiSelect AttributeKind = "multiselect"
	KindText        AttributeKind = "text"
	KindNumber      AttributeKind = "number"
	KindBoolean     AttributeKind = "boolean"
)

// IsSelect reports whether values of this kind come from a fixed option list.
func (k AttributeKind) IsSelect() bool {
	return k == KindSelect || k == KindMultiSelect
}

// Valid reports whether k is one of the known kinds.
func (k AttributeKind) Valid() bool {
	switch k {
	case KindSelect, KindMultiSelect, KindText, KindNumber, KindBoolean:
		return true
	}
	return false
}

// AttributeDefinition describes a form field attached to a taxonomy node
// and inherited by its descendants.
type AttributeDefinition struct {
	Name       string        `json:"name" yaml:"name"`
	Kind       AttributeKind `json:"kind" yaml:"kind"`
	Options    []string      `json:"options,omitempty" yaml:"options,omitempty"`
	Required   bool          `json:"required,omitempty" yaml:"required,omitempty"`
	AIFillable bool          `json:"ai_fillable,omitempty" yaml:"ai_fillable,omitempty"` // may be populated without user confirmation
}

// HasOption reports whether v is one of the attribute's options.
func (a AttributeDefinition) HasOption(v string) bool {
	for _, o := range a.Options {
		if o == v {
			return true
		}
	}
	return false
}

// Clone returns a copy of a that shares no memory with it.
func (a AttributeDefinition) Clone() AttributeDefinition {
	a.Options = slices.Clone(a.Options)
	return a
}
