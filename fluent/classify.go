package fluent

import "github.com/mlwelles/fluentGen/model"

// Classify returns the kind of a field declared with type t:
//
//   - KindElement if t is a managed class (see IsManagedClass),
//   - KindSequence if t is a managed sequence (see IsManagedSequence),
//   - KindOther otherwise.
func Classify(t *model.TypeDescriptor) model.FieldKind {
	switch {
	case IsManagedClass(t):
		return model.KindElement
	case IsManagedSequence(t):
		return model.KindSequence
	default:
		return model.KindOther
	}
}

// IsManagedClass reports whether t can be allocated in place: a non-abstract
// class of the model package, held through a pointer, that either declares no
// constructor or declares one without required parameters.
func IsManagedClass(t *model.TypeDescriptor) bool {
	if t == nil || !t.Class || !t.Pointer || t.Abstract {
		return false
	}
	if len(t.Constructors) == 0 {
		return true
	}
	_, ok := defaultConstructor(t)
	return ok
}

// IsManagedSequence reports whether t is a slice, or names a type whose
// declared base is a slice, of managed classes.
func IsManagedSequence(t *model.TypeDescriptor) bool {
	return IsManagedClass(ElementType(t))
}

// ElementType returns the element type of a sequence type, or nil.
//
// Only the immediate declared base is inspected: given
//
//	type Items []*Item
//	type MoreItems Items
//
// Items is a sequence and MoreItems is not.
func ElementType(t *model.TypeDescriptor) *model.TypeDescriptor {
	if t == nil || t.Pointer {
		return nil
	}
	if t.Elem != nil {
		return t.Elem
	}
	if t.Base != nil && !t.Base.Pointer {
		return t.Base.Elem
	}
	return nil
}

// defaultConstructor returns the first constructor of t that takes no
// required parameters and cannot fail.
func defaultConstructor(t *model.TypeDescriptor) (model.Constructor, bool) {
	for _, c := range t.Constructors {
		if c.Required == 0 && !c.Fallible {
			return c, true
		}
	}
	return model.Constructor{}, false
}
