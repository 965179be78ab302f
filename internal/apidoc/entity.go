// Package apidoc holds the data model shared by extractors and renderers:
// a documented entity and its members, plus the merge operation that combines
// partial entities found on separate pages.
package apidoc

import (
	"strings"

	"git.home.luguber.info/inful/refdoc/internal/foundation"
	"git.home.luguber.info/inful/refdoc/internal/foundation/errors"
)

// Kind classifies a documented entity.
type Kind string

const (
	KindClass     Kind = "class"
	KindInterface Kind = "interface"
	KindEnum      Kind = "enum"
	KindNamespace Kind = "namespace"
)

// Entity is a documented class, interface, enumeration or namespace.
// It is the unit of one output file.
type Entity struct {
	Name          string
	Kind          Kind
	Description   []string
	Examples      []string
	Fields        []Argument
	Methods       []Method
	EnumConstants []EnumConstant
	Supertypes    []string
	PackagePath   foundation.Option[string]
	Anchor        foundation.Option[string]
}

// Argument is a field, property or method parameter.
type Argument struct {
	Name        string
	Type        foundation.Option[string]
	Description foundation.Option[string]
}

// Method is a method, constructor or accessor of an entity.
type Method struct {
	Name        string
	Signature   string
	Description []string
	Args        []Argument
	ReturnType  foundation.Option[string]
	Examples    []string
}

// EnumConstant is a constant of an enumeration, or a variable of a namespace.
type EnumConstant struct {
	Name string
}

// ID identifies a method within its entity.
func (m Method) ID() string {
	return m.Name + "|" + m.Signature
}

// ArgNames returns the argument names in declaration order.
func (m Method) ArgNames() []string {
	names := make([]string, 0, len(m.Args))
	for _, a := range m.Args {
		names = append(names, a.Name)
	}
	return names
}

// AnchorID returns the explicit anchor, or the entity name when none was extracted.
func (e Entity) AnchorID() string {
	return e.Anchor.UnwrapOr(e.Name)
}

// Validate reports whether e can be rendered to its own file.
func (e Entity) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return errors.ValidationError("entity has no name").
			WithContext("kind", string(e.Kind)).
			Build()
	}
	return nil
}

// Clone returns a copy of e that shares no slices with it.
func (e Entity) Clone() Entity {
	c := e
	c.Description = cloneSlice(e.Description)
	c.Examples = cloneSlice(e.Examples)
	c.Fields = cloneSlice(e.Fields)
	c.EnumConstants = cloneSlice(e.EnumConstants)
	c.Supertypes = cloneSlice(e.Supertypes)
	c.Methods = make([]Method, 0, len(e.Methods))
	for _, m := range e.Methods {
		m.Description = cloneSlice(m.Description)
		m.Args = cloneSlice(m.Args)
		m.Examples = cloneSlice(m.Examples)
		c.Methods = append(c.Methods, m)
	}
	if len(e.Methods) == 0 {
		c.Methods = nil
	}
	return c
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
