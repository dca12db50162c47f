package parser

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mlwelles/fluentGen/fluent"
	"github.com/mlwelles/fluentGen/model"
)

// fallbackReceiver is used when the natural receiver name would shadow a
// local of the synthesized bodies.
const fallbackReceiver = "x"

// applyInference fills in the names derived from a class after its fields
// have been parsed.
//
// Inference rules:
//
//   - Property: the field name with its first letter upper-cased. Exported
//     fields already satisfy this, so Property usually equals Name.
//
//   - Receiver: the receiver name used by the struct's existing methods, so
//     generated methods read like hand-written ones; otherwise the lower-cased
//     first letter of the struct name. Names that collide with the locals of
//     synthesized bodies (index, value, i) fall back to "x".
func applyInference(c *model.ClassDescriptor, existingReceiver string) {
	for _, f := range c.Fields {
		f.Property = PropertyName(f.Name)
	}

	recv := existingReceiver
	if recv == "" || recv == "_" {
		recv = receiverName(c.Name)
	}
	if slices.Contains(fluent.ReservedLocals, recv) {
		recv = fallbackReceiver
	}
	c.Receiver = recv
}

// PropertyName returns the capitalized property form of a field name, e.g.
// "item" -> "Item".
func PropertyName(field string) string {
	r, size := utf8.DecodeRuneInString(field)
	if r == utf8.RuneError {
		return field
	}
	return string(unicode.ToUpper(r)) + field[size:]
}

// receiverName returns the lower-cased first letter of a type name, e.g.
// "PurchaseOrder" -> "p".
func receiverName(typeName string) string {
	r, _ := utf8.DecodeRuneInString(typeName)
	if r == utf8.RuneError {
		return fallbackReceiver
	}
	return strings.ToLower(string(r))
}
