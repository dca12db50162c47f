// Package parser builds the model.Package the fluent core works on. It walks
// the struct, interface and named type declarations of a Go package with
// go/ast, records NewT constructors, and resolves every field type into a
// model.TypeDescriptor.
package parser

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"sort"
	"strings"

	"github.com/mlwelles/fluentGen/model"
)

// ErrNoPackage is returned when a directory holds no non-test Go package.
var ErrNoPackage = errors.New("no Go package found")

// abstractDirective marks a struct that must never be allocated by
// synthesized accessors, typically an abstract schema type.
const abstractDirective = "//fluentgen:abstract"

// Parse loads all non-test Go source files in pkgDir and returns the model of
// the package they declare.
func Parse(pkgDir string) (*model.Package, error) {
	fset := token.NewFileSet()
	notTest := func(fi fs.FileInfo) bool {
		return !strings.HasSuffix(fi.Name(), "_test.go")
	}
	pkgs, err := parser.ParseDir(fset, pkgDir, notTest, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing package at %s: %w", pkgDir, err)
	}

	// Take the first (and typically only) non-test package.
	var names []string
	for name := range pkgs {
		if !strings.HasSuffix(name, "_test") {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoPackage, pkgDir)
	}
	sort.Strings(names)
	pkgAST := pkgs[names[0]]

	filenames := make([]string, 0, len(pkgAST.Files))
	for filename := range pkgAST.Files {
		filenames = append(filenames, filename)
	}
	sort.Strings(filenames)
	files := make([]*ast.File, 0, len(filenames))
	for _, filename := range filenames {
		files = append(files, pkgAST.Files[filename])
	}

	return build(names[0], pkgDir, files), nil
}

// build resolves the declarations of files into a model.Package. Files must be
// in a stable order; classes keep that order.
func build(name, dir string, files []*ast.File) *model.Package {
	r := newResolver(files)

	pkg := &model.Package{
		Name:  name,
		Dir:   dir,
		Types: r.types,
	}
	for _, spec := range r.order {
		if !spec.Name.IsExported() || spec.TypeParams != nil || spec.Assign.IsValid() {
			continue
		}
		st, ok := r.underlying(spec.Type).(*ast.StructType)
		if !ok {
			continue
		}
		pkg.Classes = append(pkg.Classes, r.class(spec.Name.Name, st))
	}
	for _, c := range pkg.Classes {
		applyInference(c, r.receivers[c.Name])
	}
	return pkg
}

// resolver turns AST type expressions into descriptors.
type resolver struct {
	specs     map[string]*ast.TypeSpec
	order     []*ast.TypeSpec
	types     map[string]*model.TypeDescriptor
	receivers map[string]string // Receiver names used by existing methods
	resolving map[string]bool
}

func newResolver(files []*ast.File) *resolver {
	r := &resolver{
		specs:     make(map[string]*ast.TypeSpec),
		types:     make(map[string]*model.TypeDescriptor),
		receivers: make(map[string]string),
		resolving: make(map[string]bool),
	}

	// First pass: collect every type declaration so later passes can tell
	// model types from foreign ones.
	abstract := make(map[string]bool)
	for _, file := range files {
		for _, decl := range file.Decls {
			genDecl, ok := decl.(*ast.GenDecl)
			if !ok || genDecl.Tok != token.TYPE {
				continue
			}
			for _, spec := range genDecl.Specs {
				typeSpec, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				r.specs[typeSpec.Name.Name] = typeSpec
				r.order = append(r.order, typeSpec)
				if hasDirective(typeSpec.Doc, abstractDirective) ||
					(len(genDecl.Specs) == 1 && hasDirective(genDecl.Doc, abstractDirective)) {
					abstract[typeSpec.Name.Name] = true
				}
			}
		}
	}

	// Second pass: classes and their constructors.
	for _, spec := range r.order {
		if spec.TypeParams != nil || spec.Assign.IsValid() {
			continue
		}
		name := spec.Name.Name
		switch r.underlying(spec.Type).(type) {
		case *ast.StructType:
			r.types[name] = &model.TypeDescriptor{Name: name, Class: true, Abstract: abstract[name]}
		case *ast.InterfaceType:
			r.types[name] = &model.TypeDescriptor{Name: name, Class: true, Abstract: true}
		}
	}
	for _, file := range files {
		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok {
				continue
			}
			if fn.Recv != nil {
				r.recordReceiver(fn.Recv)
				continue
			}
			if target, c, ok := constructorOf(fn); ok {
				if t := r.types[target]; t != nil && r.isStruct(target) {
					t.Constructors = append(t.Constructors, c)
				}
			}
		}
	}

	// Third pass: named non-struct types and their immediate base.
	for _, spec := range r.order {
		name := spec.Name.Name
		if _, done := r.types[name]; done || spec.TypeParams != nil || spec.Assign.IsValid() {
			continue
		}
		r.types[name] = r.named(spec)
	}
	return r
}

// class builds the descriptor of an exported struct. Unexported fields are
// kept: generated methods live in the same package. Embedded fields are named
// after their type.
func (r *resolver) class(name string, st *ast.StructType) *model.ClassDescriptor {
	c := &model.ClassDescriptor{Name: name}
	for _, f := range st.Fields.List {
		t := r.describe(f.Type)
		if len(f.Names) == 0 {
			if embedded := embeddedName(f.Type); embedded != "" {
				c.Fields = append(c.Fields, &model.FieldDescriptor{Name: embedded, Type: t})
			}
			continue
		}
		for _, ident := range f.Names {
			if ident.Name == "_" {
				continue
			}
			c.Fields = append(c.Fields, &model.FieldDescriptor{
				Name: ident.Name,
				Type: t,
			})
		}
	}
	return c
}

// embeddedName returns the implicit field name of an embedded type, or ""
// for embedded generic instantiations.
func embeddedName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.StarExpr:
		return embeddedName(e.X)
	case *ast.Ident:
		return e.Name
	case *ast.SelectorExpr:
		return e.Sel.Name
	}
	return ""
}

// underlying follows declared names, e.g. `type Special Item`, to the type
// expression they are ultimately declared from. It returns nil on a cycle.
func (r *resolver) underlying(expr ast.Expr) ast.Expr {
	for n := len(r.specs) + 1; n > 0; n-- {
		if paren, ok := expr.(*ast.ParenExpr); ok {
			expr = paren.X
			continue
		}
		ident, ok := expr.(*ast.Ident)
		if !ok {
			return expr
		}
		spec, ok := r.specs[ident.Name]
		if !ok || spec.TypeParams != nil {
			return expr
		}
		expr = spec.Type
	}
	return nil
}

// named describes a declared non-struct, non-interface type. Its Base is the
// descriptor of the declared type expression, which for `type B A` is A's own
// descriptor and is not unwrapped further.
func (r *resolver) named(spec *ast.TypeSpec) *model.TypeDescriptor {
	name := spec.Name.Name
	if t, ok := r.types[name]; ok {
		return t
	}
	t := &model.TypeDescriptor{Name: name}
	r.types[name] = t
	t.Base = r.describe(spec.Type)
	return t
}

// describe resolves a field type expression.
func (r *resolver) describe(expr ast.Expr) *model.TypeDescriptor {
	switch e := expr.(type) {
	case *ast.Ident:
		return r.ident(e.Name)
	case *ast.ParenExpr:
		return r.describe(e.X)
	case *ast.SelectorExpr:
		if x, ok := e.X.(*ast.Ident); ok {
			return &model.TypeDescriptor{Name: e.Sel.Name, Namespace: x.Name}
		}
	case *ast.StarExpr:
		inner := r.describe(e.X)
		if !inner.Pointer {
			return inner.PointerTo()
		}
	case *ast.ArrayType:
		if e.Len == nil {
			return &model.TypeDescriptor{Elem: r.describe(e.Elt)}
		}
	}
	return &model.TypeDescriptor{Name: typeString(expr)}
}

// ident resolves a bare identifier: a model type, an alias of one, or a
// predeclared type.
func (r *resolver) ident(name string) *model.TypeDescriptor {
	spec, ok := r.specs[name]
	if !ok {
		return &model.TypeDescriptor{Name: name}
	}
	if spec.Assign.IsValid() {
		if r.resolving[name] {
			return &model.TypeDescriptor{Name: name}
		}
		r.resolving[name] = true
		defer delete(r.resolving, name)
		return r.describe(spec.Type)
	}
	if t, ok := r.types[name]; ok {
		return t
	}
	if spec.TypeParams != nil {
		return &model.TypeDescriptor{Name: name}
	}
	return r.named(spec)
}

func (r *resolver) isStruct(name string) bool {
	spec, ok := r.specs[name]
	if !ok {
		return false
	}
	_, isStruct := r.underlying(spec.Type).(*ast.StructType)
	return isStruct
}

// recordReceiver remembers the receiver name of the first named method of
// each type.
func (r *resolver) recordReceiver(recv *ast.FieldList) {
	if len(recv.List) == 0 || len(recv.List[0].Names) == 0 {
		return
	}
	name := recv.List[0].Names[0].Name
	typ := recv.List[0].Type
	if star, ok := typ.(*ast.StarExpr); ok {
		typ = star.X
	}
	ident, ok := typ.(*ast.Ident)
	if !ok {
		return
	}
	if _, seen := r.receivers[ident.Name]; !seen {
		r.receivers[ident.Name] = name
	}
}

// constructorOf reports whether fn is a constructor: a top-level function
// named New... whose first result is *T. Constructors that also return an
// error are recorded as fallible.
func constructorOf(fn *ast.FuncDecl) (string, model.Constructor, bool) {
	if !strings.HasPrefix(fn.Name.Name, "New") || fn.Type.TypeParams != nil {
		return "", model.Constructor{}, false
	}
	results := fn.Type.Results
	if results == nil || len(results.List) == 0 || len(results.List) > 2 || len(results.List[0].Names) > 1 {
		return "", model.Constructor{}, false
	}
	star, ok := results.List[0].Type.(*ast.StarExpr)
	if !ok {
		return "", model.Constructor{}, false
	}
	target, ok := star.X.(*ast.Ident)
	if !ok {
		return "", model.Constructor{}, false
	}

	c := model.Constructor{
		Name:     fn.Name.Name,
		Fallible: len(results.List) == 2,
	}
	params := fn.Type.Params.List
	for i, p := range params {
		n := len(p.Names)
		if n == 0 {
			n = 1
		}
		if _, variadic := p.Type.(*ast.Ellipsis); variadic && i == len(params)-1 {
			n--
		}
		c.Required += n
	}
	return target.Name, c, true
}

func hasDirective(doc *ast.CommentGroup, directive string) bool {
	if doc == nil {
		return false
	}
	for _, c := range doc.List {
		if strings.TrimSpace(c.Text) == directive {
			return true
		}
	}
	return false
}

// typeString converts an ast.Expr representing a type into a human-readable Go
// type string, e.g. "string", "time.Time", "[]Genre", "map[string]int".
func typeString(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.SelectorExpr:
		if x, ok := t.X.(*ast.Ident); ok {
			return x.Name + "." + t.Sel.Name
		}
		return t.Sel.Name
	case *ast.ArrayType:
		if t.Len == nil {
			return "[]" + typeString(t.Elt)
		}
		if lit, ok := t.Len.(*ast.BasicLit); ok {
			return "[" + lit.Value + "]" + typeString(t.Elt)
		}
		return "[...]" + typeString(t.Elt)
	case *ast.StarExpr:
		return "*" + typeString(t.X)
	case *ast.MapType:
		return "map[" + typeString(t.Key) + "]" + typeString(t.Value)
	case *ast.ParenExpr:
		return typeString(t.X)
	case *ast.IndexExpr:
		return typeString(t.X) + "[" + typeString(t.Index) + "]"
	case *ast.ChanType:
		return "chan " + typeString(t.Value)
	case *ast.InterfaceType:
		return "interface{}"
	case *ast.StructType:
		return "struct{}"
	case *ast.FuncType:
		return "func()"
	default:
		return fmt.Sprintf("%T", expr)
	}
}
