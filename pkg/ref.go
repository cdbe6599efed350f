package semgraph

import (
	"fmt"
	"strconv"
	"strings"
)

// ID is a record id. Ids are only unique within one collection, so an ID
// that points at a class, instance or terminal is always carried in a Ref.
type ID uint64

// Kind says which collection a Ref resolves against.
type Kind uint8

const (
	KindClass Kind = iota + 1
	KindInstance
	KindTerminal
)

var kindNames = map[Kind]string{
	KindClass:    "CLASS",
	KindInstance: "INSTANCE",
	KindTerminal: "TERMINAL",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

func (k Kind) valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind parses a type tag such as "CLASS". Unknown tags are an
// InvalidArgumentError.
func ParseKind(s string) (Kind, error) {
	for kind, name := range kindNames {
		if name == s {
			return kind, nil
		}
	}
	return 0, &InvalidArgumentError{Field: "kind", Value: s}
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.valid() {
		return nil, &InvalidArgumentError{Field: "kind", Value: k.String()}
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// subject and object positions accept different kinds: an instance can be
// the subject of a triple but never its object.
var (
	subjectKinds = []Kind{KindClass, KindInstance}
	objectKinds  = []Kind{KindClass, KindTerminal}
)

func kindIn(k Kind, kinds []Kind) bool {
	for _, allowed := range kinds {
		if k == allowed {
			return true
		}
	}
	return false
}

// Ref is a discriminated reference: an id together with the kind of record
// it names. The fields are unexported so a Ref can only be built with its
// tag attached.
type Ref struct {
	kind Kind
	id   ID
}

func ClassRef(id ID) Ref    { return Ref{kind: KindClass, id: id} }
func InstanceRef(id ID) Ref { return Ref{kind: KindInstance, id: id} }
func TerminalRef(id ID) Ref { return Ref{kind: KindTerminal, id: id} }

// NewRef pairs id with kind, rejecting unknown kinds.
func NewRef(kind Kind, id ID) (Ref, error) {
	if !kind.valid() {
		return Ref{}, &InvalidArgumentError{Field: "kind", Value: kind.String()}
	}
	return Ref{kind: kind, id: id}, nil
}

// ParseRef parses the "KIND:id" form produced by Ref.String.
func ParseRef(s string) (Ref, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return Ref{}, &InvalidArgumentError{Field: "ref", Value: s}
	}
	kind, err := ParseKind(parts[0])
	if err != nil {
		return Ref{}, err
	}
	id, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return Ref{}, &InvalidArgumentError{Field: "ref", Value: s}
	}
	return Ref{kind: kind, id: ID(id)}, nil
}

func (r Ref) Kind() Kind { return r.kind }
func (r Ref) ID() ID     { return r.id }

func (r Ref) String() string {
	return fmt.Sprintf("%s:%d", r.kind, r.id)
}

// Node is a record that can be named by a Ref.
type Node interface {
	Ref() Ref
	String() string
}
