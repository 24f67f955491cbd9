package evaluator

// objectsEqual reports structural equality between two runtime values.
// Kinds never compare equal across each other: 1 and 1.0 are distinct
// values, which keeps equality consistent with Hash and with set
// membership.
func objectsEqual(a, b Object) bool {
	switch av := a.(type) {
	case *Integer:
		bv, ok := b.(*Integer)
		return ok && av.Value == bv.Value
	case *Float:
		bv, ok := b.(*Float)
		return ok && av.Value == bv.Value
	case *Boolean:
		bv, ok := b.(*Boolean)
		return ok && av.Value == bv.Value
	case *String:
		bv, ok := b.(*String)
		return ok && av.Value == bv.Value
	case *Nil:
		_, ok := b.(*Nil)
		return ok
	case *List:
		bv, ok := b.(*List)
		if !ok || len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !objectsEqual(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case *Set:
		bv, ok := b.(*Set)
		if !ok || len(av.Elements) != len(bv.Elements) {
			return false
		}
		for _, el := range av.Elements {
			if !bv.Contains(el) {
				return false
			}
		}
		return true
	}
	return false
}
