package sortedlist

import "fmt"

// Kind is the element type of a list, fixed at construction.
type Kind uint8

const (
	kindInvalid Kind = iota
	KindString
	KindInteger
)

// ParseKind
func ParseKind(name string) (Kind, error) {
	switch name {
	case "string":
		return KindString, nil
	case "integer":
		return KindInteger, nil
	}
	return kindInvalid, fmt.Errorf("%w: got %q", ErrInvalidKind, name)
}

// Valid
func (k Kind) Valid() bool {
	return k == KindString || k == KindInteger
}

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	}
	return fmt.Sprintf("invalid(%d)", uint8(k))
}
