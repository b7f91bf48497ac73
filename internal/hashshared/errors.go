package hashshared

import "fmt"

// UnmappedValueError reports a raw value that is neither numeric nor a key of
// the mapping. The mapping must be extended before the table can be
// generated.
type UnmappedValueError struct {
	Value string
	Name  string
	Line  int
}

func (e *UnmappedValueError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("unmapped value %q for %q (line %d)", e.Value, e.Name, e.Line)
	}
	return fmt.Sprintf("unmapped value %q for %q", e.Value, e.Name)
}
