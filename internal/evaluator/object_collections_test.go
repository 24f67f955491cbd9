package evaluator

import (
	"testing"
)

func TestListPushIsPersistent(t *testing.T) {
	empty := &List{}
	one := empty.Push(&Integer{Value: 1})
	two := one.Push(&Integer{Value: 2})

	if len(empty.Elements) != 0 {
		t.Error("push mutated the empty list")
	}
	if len(one.Elements) != 1 {
		t.Fatalf("push on empty list should yield a singleton, got %d elements", len(one.Elements))
	}
	if len(two.Elements) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(two.Elements))
	}
	// Order preserved.
	if two.Elements[0].(*Integer).Value != 1 || two.Elements[1].(*Integer).Value != 2 {
		t.Fatalf("push broke element order: %s", two.Inspect())
	}
}

func TestSetInsertDistinctness(t *testing.T) {
	empty := &Set{}
	one := empty.Insert(&Integer{Value: 1})
	dup := one.Insert(&Integer{Value: 1})

	if len(empty.Elements) != 0 {
		t.Error("insert mutated the empty set")
	}
	if len(one.Elements) != 1 {
		t.Fatalf("insert into empty set should yield a singleton, got %d", len(one.Elements))
	}
	if len(dup.Elements) != 1 {
		t.Fatalf("duplicate insert changed membership: %s", dup.Inspect())
	}
	if dup == one {
		t.Error("duplicate insert must still produce a new value")
	}
}

func TestSetKeepsNumericKindsDistinct(t *testing.T) {
	s := (&Set{}).Insert(&Integer{Value: 1}).Insert(&Float{Value: 1.0})
	if len(s.Elements) != 2 {
		t.Fatalf("1 and 1.0 are distinct values, got %d elements", len(s.Elements))
	}
	if !s.Contains(&Integer{Value: 1}) || !s.Contains(&Float{Value: 1.0}) {
		t.Error("both kinds should be members")
	}
	if s.Contains(&Float{Value: 2.0}) {
		t.Error("unrelated float should not be a member")
	}
}

func TestSetStructuralMembership(t *testing.T) {
	s := (&Set{}).Insert(&List{Elements: []Object{&Integer{Value: 1}}})
	if !s.Contains(&List{Elements: []Object{&Integer{Value: 1}}}) {
		t.Error("structurally equal list should be a member")
	}
	if s.Contains(&List{Elements: []Object{&Integer{Value: 2}}}) {
		t.Error("different list should not be a member")
	}
}

func TestSetInspectIsDeterministic(t *testing.T) {
	a := (&Set{}).Insert(&Integer{Value: 2}).Insert(&Integer{Value: 1})
	b := (&Set{}).Insert(&Integer{Value: 1}).Insert(&Integer{Value: 2})
	if a.Inspect() != b.Inspect() {
		t.Fatalf("set rendering depends on insertion order: %s vs %s", a.Inspect(), b.Inspect())
	}
	if a.Inspect() != "{1, 2}" {
		t.Fatalf("unexpected rendering %s", a.Inspect())
	}
}

func TestObjectsEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Object
		want bool
	}{
		{"ints", &Integer{Value: 3}, &Integer{Value: 3}, true},
		{"floats", &Float{Value: 3.5}, &Float{Value: 3.5}, true},
		{"int_vs_float", &Integer{Value: 3}, &Float{Value: 3.0}, false},
		{"strings", &String{Value: "a"}, &String{Value: "a"}, true},
		{"string_vs_int", &String{Value: "3"}, &Integer{Value: 3}, false},
		{"bools", TRUE, FALSE, false},
		{"lists_ordered", &List{Elements: []Object{&Integer{Value: 1}, &Integer{Value: 2}}},
			&List{Elements: []Object{&Integer{Value: 2}, &Integer{Value: 1}}}, false},
		{"sets_unordered",
			(&Set{}).Insert(&Integer{Value: 1}).Insert(&Integer{Value: 2}),
			(&Set{}).Insert(&Integer{Value: 2}).Insert(&Integer{Value: 1}), true},
		{"nils", NIL, &Nil{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := objectsEqual(tt.a, tt.b); got != tt.want {
				t.Fatalf("objectsEqual(%s, %s) = %v, want %v", tt.a.Inspect(), tt.b.Inspect(), got, tt.want)
			}
		})
	}
}
