// Package fluent classifies the fields of a parsed model and synthesizes
// fluent accessors for them:
//
//	order.WithShipTo().WithCountry().Code = "FR"
//	order.WithItem(2).Quantity = 3
//	order.WithNewItem().Sku = "A-1"
//
// A pass appends methods to the classes of a model.Package and keeps no state.
// Running it twice over the same package appends every accessor twice; callers
// are expected to augment a freshly parsed package.
package fluent

import (
	"slices"

	"github.com/mlwelles/fluentGen/model"
)

// Options configures a pass.
type Options struct {
	Surface Surface
	Namer   Namer    // nil means PrefixNamer{}
	Exclude []string // Class names left untouched
}

func (o Options) namer() Namer {
	if o.Namer == nil {
		return PrefixNamer{}
	}
	return o.Namer
}

// Decision records the outcome for a single field.
type Decision struct {
	Class   string
	Field   string
	Type    string
	Kind    model.FieldKind
	Methods []string
}

// Result summarizes a pass.
type Result struct {
	Decisions []Decision
	Added     int
}

// Augment classifies every field of every class of pkg, in declaration order,
// and appends the synthesized accessors to the owning classes.
func Augment(pkg *model.Package, opts Options) Result {
	var res Result
	for _, c := range pkg.Classes {
		if slices.Contains(opts.Exclude, c.Name) {
			continue
		}
		for _, f := range c.Fields {
			kind := Classify(f.Type)
			methods := Synthesize(c, f, kind, opts)

			d := Decision{
				Class: c.Name,
				Field: f.Name,
				Type:  f.Type.String(),
				Kind:  kind,
			}
			for _, m := range methods {
				d.Methods = append(d.Methods, m.Name)
			}
			res.Decisions = append(res.Decisions, d)
			res.Added += len(methods)
		}
	}
	return res
}
