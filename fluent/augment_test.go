package fluent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlwelles/fluentGen/model"
)

func testPackage() *model.Package {
	addr := class("Address")
	item := class("Item")
	str := &model.TypeDescriptor{Name: "string"}

	order := &model.ClassDescriptor{
		Name:     "Order",
		Receiver: "o",
		Fields: []*model.FieldDescriptor{
			{Name: "ID", Property: "ID", Type: str},
			{Name: "ShipTo", Property: "ShipTo", Type: addr.PointerTo()},
			{Name: "Item", Property: "Item", Type: sliceOf(item.PointerTo())},
		},
	}
	address := &model.ClassDescriptor{
		Name:     "Address",
		Receiver: "a",
		Fields: []*model.FieldDescriptor{
			{Name: "Street", Property: "Street", Type: str},
		},
	}
	legacy := &model.ClassDescriptor{
		Name:     "Legacy",
		Receiver: "l",
		Fields: []*model.FieldDescriptor{
			{Name: "Address", Property: "Address", Type: addr.PointerTo()},
		},
	}
	return &model.Package{Name: "shop", Classes: []*model.ClassDescriptor{order, address, legacy}}
}

func TestAugment(t *testing.T) {
	pkg := testPackage()

	res := Augment(pkg, Options{})

	assert.Equal(t, 4, res.Added)
	assert.Equal(t, []string{"WithShipTo", "WithItem", "WithNewItem"}, methodNames(pkg.Class("Order").Methods))
	assert.Empty(t, pkg.Class("Address").Methods)
	assert.Equal(t, []string{"WithAddress"}, methodNames(pkg.Class("Legacy").Methods))

	require.Len(t, res.Decisions, 5)
	assert.Equal(t, Decision{Class: "Order", Field: "ID", Type: "string", Kind: model.KindOther}, res.Decisions[0])
	assert.Equal(t, Decision{
		Class:   "Order",
		Field:   "Item",
		Type:    "[]*Item",
		Kind:    model.KindSequence,
		Methods: []string{"WithItem", "WithNewItem"},
	}, res.Decisions[2])
}

func TestAugmentExclude(t *testing.T) {
	pkg := testPackage()

	res := Augment(pkg, Options{Exclude: []string{"Legacy"}})

	assert.Equal(t, 3, res.Added)
	assert.Empty(t, pkg.Class("Legacy").Methods)
	for _, d := range res.Decisions {
		assert.NotEqual(t, "Legacy", d.Class)
	}
}

func TestAugmentIndexedSurface(t *testing.T) {
	pkg := testPackage()

	Augment(pkg, Options{Surface: SurfaceIndexed})

	assert.Equal(t, []string{"WithShipTo", "WithItem"}, methodNames(pkg.Class("Order").Methods))
}

// A second pass over the same package appends every accessor again; nothing
// guards against it.
func TestAugmentTwiceDuplicatesMethods(t *testing.T) {
	pkg := testPackage()

	first := Augment(pkg, Options{})
	second := Augment(pkg, Options{})

	assert.Equal(t, first.Added, second.Added)
	assert.Equal(t,
		[]string{"WithShipTo", "WithItem", "WithNewItem", "WithShipTo", "WithItem", "WithNewItem"},
		methodNames(pkg.Class("Order").Methods))
	assert.Equal(t, []string{"WithAddress", "WithAddress"}, methodNames(pkg.Class("Legacy").Methods))
}

func TestAugmentLeavesFieldsUntouched(t *testing.T) {
	pkg := testPackage()
	before := pkg.Class("Order").Fields[1].Type

	Augment(pkg, Options{})

	assert.Same(t, before, pkg.Class("Order").Fields[1].Type)
	assert.Len(t, pkg.Class("Order").Fields, 3)
}
