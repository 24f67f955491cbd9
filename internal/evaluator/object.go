package evaluator

import "hash/fnv"

type ObjectType string

const (
	INTEGER_OBJ = "INTEGER"
	FLOAT_OBJ   = "FLOAT"
	BOOLEAN_OBJ = "BOOLEAN"
	STRING_OBJ  = "STRING"
	LIST_OBJ    = "LIST"
	SET_OBJ     = "SET"
	NIL_OBJ     = "NIL"
	ERROR_OBJ   = "ERROR"
)

// Object is the runtime value interface. Values are immutable once
// produced; every mutation in the language yields a new Object bound at a
// new timeline tick.
type Object interface {
	Type() ObjectType
	Inspect() string
	Hash() uint32
}

// Helper for hashing strings
func hashString(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}
