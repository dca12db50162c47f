// Package model defines the intermediate representation shared by the parser,
// the fluent core and the code generator. The parser populates the
// descriptors from Go struct ASTs; the fluent core classifies fields and
// appends synthesized methods; the generator renders those methods.
package model

import "strings"

// Package represents a fully parsed target package.
type Package struct {
	Name    string             // Go package name, e.g. "shop"
	Dir     string             // Directory the package was read from
	Classes []*ClassDescriptor // Exported structs in declaration order
	Types   map[string]*TypeDescriptor
}

// Class returns the class with the given name, or nil.
func (p *Package) Class(name string) *ClassDescriptor {
	for _, c := range p.Classes {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// TypeDescriptor identifies a type as seen from the model package. Descriptors
// are immutable once the parser has built them.
type TypeDescriptor struct {
	Name         string          // Type name, e.g. "Item", "Items", "string"; empty for slice literals
	Namespace    string          // Package qualifier; empty for the model package and predeclared types
	Pointer      bool            // Held as *T; nil is the unset state
	Class        bool            // Struct or interface type declared in the model package
	Abstract     bool            // Interface, or struct marked //fluentgen:abstract
	Constructors []Constructor   // NewT functions; empty means &T{} construction
	Elem         *TypeDescriptor // Element type of a slice; nil for non-sequences
	Base         *TypeDescriptor // Immediate declared base of a named non-struct type
}

// Constructor describes a NewT function returning *T.
type Constructor struct {
	Name     string // e.g. "NewItem"
	Required int    // Number of required parameters (a trailing variadic is optional)
	Fallible bool   // Also returns an error
}

// PointerTo returns a copy of t held through a pointer.
func (t *TypeDescriptor) PointerTo() *TypeDescriptor {
	p := *t
	p.Pointer = true
	return &p
}

// String renders t in Go syntax, e.g. "*Item", "[]*Item", "time.Time".
func (t *TypeDescriptor) String() string {
	if t == nil {
		return ""
	}
	var b strings.Builder
	if t.Pointer {
		b.WriteByte('*')
	}
	if t.Name == "" && t.Elem != nil {
		b.WriteString("[]")
		b.WriteString(t.Elem.String())
		return b.String()
	}
	if t.Namespace != "" {
		b.WriteString(t.Namespace)
		b.WriteByte('.')
	}
	b.WriteString(t.Name)
	return b.String()
}

// ClassDescriptor is a generated struct under augmentation.
type ClassDescriptor struct {
	Name     string             // Struct name, e.g. "Order"
	Receiver string             // Receiver identifier used by synthesized methods
	Fields   []*FieldDescriptor // Fields in declaration order, embedded ones named after their type
	Methods  []Method           // Synthesized methods, append-only
}

// AddMethod appends m to the class. Methods are never removed or replaced.
func (c *ClassDescriptor) AddMethod(m Method) {
	c.Methods = append(c.Methods, m)
}

// FieldDescriptor is a single named field of a class.
type FieldDescriptor struct {
	Name     string          // Go field name, e.g. "ShipTo"
	Property string          // Capitalized property name used in method names
	Type     *TypeDescriptor // Declared type
}

// FieldKind is the classification of a field. It is computed on demand and
// never stored on the descriptors.
type FieldKind int

const (
	KindOther    FieldKind = iota // Unmanaged; no methods are generated
	KindElement                   // Managed single value
	KindSequence                  // Slice of managed values
)

func (k FieldKind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindSequence:
		return "sequence"
	default:
		return "other"
	}
}

// Accessor identifies the shape of a synthesized method.
type Accessor int

const (
	AccessorElement Accessor = iota // With<Property>()
	AccessorIndexed                 // With<Property>(index int)
	AccessorAppend                  // WithNew<Property>()
)

func (a Accessor) String() string {
	switch a {
	case AccessorIndexed:
		return "indexed"
	case AccessorAppend:
		return "append"
	default:
		return "element"
	}
}

// Method is a synthesized method, ready for the emission back end.
type Method struct {
	Name     string
	Accessor Accessor
	Field    string // Backing field name
	Params   []Param
	Result   *TypeDescriptor
	Body     []Stmt
}

// Param is a method parameter.
type Param struct {
	Name string
	Type *TypeDescriptor
}
