package annotate

import "fmt"

// MissingIDFieldError is returned when an attribute record lacks the
// configured patient-ID key.
type MissingIDFieldError struct {
	IDField string
	Index   int
}

func (e *MissingIDFieldError) Error() string {
	return fmt.Sprintf("attribute record %d missing id field %q", e.Index, e.IDField)
}

// MalformedNetworkError is returned when the network document does not
// contain the expected Nodes structure.
type MalformedNetworkError struct {
	Detail string
}

func (e *MalformedNetworkError) Error() string {
	return fmt.Sprintf("malformed network document: %s", e.Detail)
}
