package evaluator

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// InputSource is the external input collaborator consumed by the input
// statement.
type InputSource interface {
	// Next returns the next value, or an InputExhausted error when the
	// source is drained. Blocking until input arrives is acceptable.
	Next() (Object, *Error)
}

// OutputSink is the external output collaborator consumed by print.
type OutputSink interface {
	Emit(obj Object)
}

// ReaderInput reads newline-delimited values from an io.Reader. A line that
// parses as an integer, float or boolean becomes that kind; anything else
// becomes a String (the permissive superset of always-a-string input).
type ReaderInput struct {
	scanner *bufio.Scanner
}

func NewReaderInput(r io.Reader) *ReaderInput {
	return &ReaderInput{scanner: bufio.NewScanner(r)}
}

func (ri *ReaderInput) Next() (Object, *Error) {
	if !ri.scanner.Scan() {
		return nil, newError(InputExhausted, "no further input available")
	}
	return ParseScalar(strings.TrimSpace(ri.scanner.Text())), nil
}

// ParseScalar converts one raw input line into a runtime value.
func ParseScalar(line string) Object {
	if i, err := strconv.ParseInt(line, 10, 64); err == nil {
		return &Integer{Value: i}
	}
	if f, err := strconv.ParseFloat(line, 64); err == nil {
		return &Float{Value: f}
	}
	switch line {
	case "true":
		return TRUE
	case "false":
		return FALSE
	}
	return &String{Value: line}
}

// SliceInput serves a fixed sequence of values; used by tests and scripted
// runs.
type SliceInput struct {
	values []Object
	pos    int
}

func NewSliceInput(values ...Object) *SliceInput {
	return &SliceInput{values: values}
}

func (si *SliceInput) Next() (Object, *Error) {
	if si.pos >= len(si.values) {
		return nil, newError(InputExhausted, "no further input available")
	}
	v := si.values[si.pos]
	si.pos++
	return v, nil
}

// WriterOutput renders each value on its own line.
type WriterOutput struct {
	W io.Writer
}

func (wo *WriterOutput) Emit(obj Object) {
	fmt.Fprintln(wo.W, obj.Inspect())
}

// CaptureOutput collects emitted values; used by tests.
type CaptureOutput struct {
	Values []Object
}

func (co *CaptureOutput) Emit(obj Object) {
	co.Values = append(co.Values, obj)
}
