package evaluator

import (
	"sort"
	"strings"
)

// List is an ordered sequence of values. Push returns a new List sharing no
// mutable state with the receiver, so earlier timeline entries keep their
// exact contents.
type List struct {
	Elements []Object
}

func (l *List) Type() ObjectType { return LIST_OBJ }
func (l *List) Inspect() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, el := range l.Elements {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(el.Inspect())
	}
	sb.WriteString("]")
	return sb.String()
}
func (l *List) Hash() uint32 {
	var acc uint32 = 2166136261
	for _, el := range l.Elements {
		acc = acc*16777619 ^ el.Hash()
	}
	return acc
}

// Push appends an element, returning a fresh List. Pushing onto the empty
// list yields a singleton.
func (l *List) Push(el Object) *List {
	elements := make([]Object, len(l.Elements)+1)
	copy(elements, l.Elements)
	elements[len(l.Elements)] = el
	return &List{Elements: elements}
}

// Set is an unordered collection of distinct values, equality defined
// structurally. Membership checks use the element hash as a fast reject
// before structural comparison.
type Set struct {
	Elements []Object
}

func (s *Set) Type() ObjectType { return SET_OBJ }
func (s *Set) Inspect() string {
	rendered := make([]string, len(s.Elements))
	for i, el := range s.Elements {
		rendered[i] = el.Inspect()
	}
	// Sets are unordered; render sorted so output is deterministic.
	sort.Strings(rendered)
	return "{" + strings.Join(rendered, ", ") + "}"
}
func (s *Set) Hash() uint32 {
	// Order-independent combination.
	var acc uint32
	for _, el := range s.Elements {
		acc ^= el.Hash()
	}
	return acc
}

func (s *Set) Contains(el Object) bool {
	h := el.Hash()
	for _, existing := range s.Elements {
		if existing.Hash() == h && objectsEqual(existing, el) {
			return true
		}
	}
	return false
}

// Insert returns a fresh Set containing el. Inserting a duplicate returns a
// fresh Set with unchanged membership; the caller still records it as a new
// timeline entry.
func (s *Set) Insert(el Object) *Set {
	if s.Contains(el) {
		elements := make([]Object, len(s.Elements))
		copy(elements, s.Elements)
		return &Set{Elements: elements}
	}
	elements := make([]Object, len(s.Elements)+1)
	copy(elements, s.Elements)
	elements[len(s.Elements)] = el
	return &Set{Elements: elements}
}
