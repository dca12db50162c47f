package fluent

import "github.com/mlwelles/fluentGen/model"

// Namer derives the name of a synthesized method from the accessor shape and
// the field's property name. The core has no other dependency on naming.
type Namer interface {
	MethodName(accessor model.Accessor, property string) string
}

// Default method prefixes.
const (
	DefaultElementPrefix = "With"
	DefaultAppendPrefix  = "WithNew"
)

// PrefixNamer prepends a fixed prefix to the property name. Empty prefixes
// fall back to the defaults.
type PrefixNamer struct {
	ElementPrefix string // element and indexed accessors
	AppendPrefix  string // append accessors
}

// MethodName implements Namer.
func (n PrefixNamer) MethodName(accessor model.Accessor, property string) string {
	if accessor == model.AccessorAppend {
		return orDefault(n.AppendPrefix, DefaultAppendPrefix) + property
	}
	return orDefault(n.ElementPrefix, DefaultElementPrefix) + property
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
