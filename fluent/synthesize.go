package fluent

import "github.com/mlwelles/fluentGen/model"

// Surface selects which accessors are synthesized for sequence fields.
type Surface int

const (
	// SurfaceFull synthesizes With<P>(index int) and WithNew<P>().
	SurfaceFull Surface = iota
	// SurfaceIndexed synthesizes With<P>(index int) only.
	SurfaceIndexed
)

func (s Surface) String() string {
	if s == SurfaceIndexed {
		return "indexed"
	}
	return "full"
}

// Local identifiers used in synthesized bodies. Receivers must not collide
// with them.
const (
	localIndex = "index"
	localValue = "value"
	localLoop  = "i"
)

// ReservedLocals lists the identifiers synthesized bodies declare.
var ReservedLocals = []string{localIndex, localValue, localLoop}

var intType = &model.TypeDescriptor{Name: "int"}

// Synthesize builds the accessors of field f for the given kind and appends
// them to c. It returns the appended methods; KindOther yields none.
func Synthesize(c *model.ClassDescriptor, f *model.FieldDescriptor, kind model.FieldKind, opts Options) []model.Method {
	namer := opts.namer()

	var methods []model.Method
	switch kind {
	case model.KindElement:
		methods = append(methods, elementAccessor(f, namer))
	case model.KindSequence:
		methods = append(methods, indexedAccessor(f, namer))
		if opts.Surface == SurfaceFull {
			methods = append(methods, appendAccessor(f, namer))
		}
	case model.KindOther:
	}

	for _, m := range methods {
		c.AddMethod(m)
	}
	return methods
}

// elementAccessor builds
//
//	func (r *C) WithP() *T {
//		if r.P == nil {
//			r.P = &T{}
//		}
//		return r.P
//	}
func elementAccessor(f *model.FieldDescriptor, namer Namer) model.Method {
	field := model.Field(f.Name)
	return model.Method{
		Name:     namer.MethodName(model.AccessorElement, f.Property),
		Accessor: model.AccessorElement,
		Field:    f.Name,
		Result:   f.Type,
		Body: []model.Stmt{
			model.IfEmpty(field, model.Assign(field, newInstance(f.Type))),
			model.Return(field),
		},
	}
}

// indexedAccessor builds
//
//	func (r *C) WithP(index int) *E {
//		if len(r.P) <= index {
//			for i := len(r.P); i <= index; i++ {
//				r.P = append(r.P, nil)
//			}
//		}
//		value := r.P[index]
//		if value == nil {
//			value = &E{}
//			r.P[index] = value
//		}
//		return value
//	}
func indexedAccessor(f *model.FieldDescriptor, namer Namer) model.Method {
	elem := ElementType(f.Type)
	field := model.Field(f.Name)
	index := model.Var(localIndex)
	value := model.Var(localValue)
	slot := model.Index(field, index)
	return model.Method{
		Name:     namer.MethodName(model.AccessorIndexed, f.Property),
		Accessor: model.AccessorIndexed,
		Field:    f.Name,
		Params:   []model.Param{{Name: localIndex, Type: intType}},
		Result:   elem,
		Body: []model.Stmt{
			model.Grow(field, index, localLoop),
			model.Declare(localValue, slot),
			model.IfEmpty(value,
				model.Assign(value, newInstance(elem)),
				model.Assign(slot, value),
			),
			model.Return(value),
		},
	}
}

// appendAccessor builds
//
//	func (r *C) WithNewP() *E {
//		value := &E{}
//		r.P = append(r.P, value)
//		return value
//	}
func appendAccessor(f *model.FieldDescriptor, namer Namer) model.Method {
	elem := ElementType(f.Type)
	value := model.Var(localValue)
	return model.Method{
		Name:     namer.MethodName(model.AccessorAppend, f.Property),
		Accessor: model.AccessorAppend,
		Field:    f.Name,
		Result:   elem,
		Body: []model.Stmt{
			model.Declare(localValue, newInstance(elem)),
			model.Append(model.Field(f.Name), value),
			model.Return(value),
		},
	}
}

func newInstance(t *model.TypeDescriptor) model.Expr {
	c, _ := defaultConstructor(t)
	return model.New(t, c.Name)
}
