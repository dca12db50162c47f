package generator

import (
	"bytes"
	"errors"
	"go/ast"
	"go/format"
	goparser "go/parser"
	"go/token"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/mlwelles/fluentGen/fluent"
	"github.com/mlwelles/fluentGen/model"
	"github.com/mlwelles/fluentGen/parser"
)

// shopDir returns the absolute path to the example shop package, whose
// shop_fluent_gen.go is the reference output.
func shopDir(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("runtime.Caller failed")
	}
	// thisFile = .../fluentGen/generator/generator_test.go
	repoRoot := filepath.Dir(filepath.Dir(thisFile))
	return filepath.Join(repoRoot, "example", "shop")
}

func augmentedShop(t *testing.T) *model.Package {
	t.Helper()
	dir := shopDir(t)
	pkg, err := parser.Parse(dir)
	if err != nil {
		t.Fatalf("Parse(%s) failed: %v", dir, err)
	}
	fluent.Augment(pkg, fluent.Options{})
	return pkg
}

// funcDecls returns the doc comment and printed form of every function
// declared in src, in order.
func funcDecls(t *testing.T, src []byte) []string {
	t.Helper()
	fset := token.NewFileSet()
	file, err := goparser.ParseFile(fset, "", src, goparser.ParseComments)
	if err != nil {
		t.Fatalf("generated source does not parse: %v\n%s", err, src)
	}
	var out []string
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok {
			continue
		}
		doc := fn.Doc.Text()
		fn.Doc = nil
		var buf bytes.Buffer
		if err := format.Node(&buf, fset, fn); err != nil {
			t.Fatal(err)
		}
		out = append(out, doc+buf.String())
	}
	return out
}

func TestRenderMatchesCommittedShop(t *testing.T) {
	pkg := augmentedShop(t)

	got, err := Render(pkg)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	committed, err := os.ReadFile(filepath.Join(shopDir(t), "shop_fluent_gen.go"))
	if err != nil {
		t.Fatal(err)
	}

	gotDecls := funcDecls(t, got)
	wantDecls := funcDecls(t, committed)
	if len(gotDecls) != len(wantDecls) {
		t.Fatalf("rendered %d methods, committed file has %d\n%s", len(gotDecls), len(wantDecls), got)
	}
	for i := range wantDecls {
		if gotDecls[i] != wantDecls[i] {
			t.Errorf("method %d differs:\n  committed:\n%s\n  rendered:\n%s", i, wantDecls[i], gotDecls[i])
		}
	}
}

func TestRenderHeader(t *testing.T) {
	src, err := Render(augmentedShop(t))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.HasPrefix(string(src), "// Code generated by fluentGen. DO NOT EDIT.") {
		t.Errorf("rendered source does not start with the generated header:\n%s", src)
	}
	if !strings.Contains(string(src), "\npackage shop\n") {
		t.Errorf("rendered source lacks the package clause:\n%s", src)
	}
}

func TestRenderIsGofmtClean(t *testing.T) {
	src, err := Render(augmentedShop(t))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	formatted, err := format.Source(src)
	if err != nil {
		t.Fatalf("format.Source failed: %v", err)
	}
	if !bytes.Equal(src, formatted) {
		t.Errorf("rendered source is not gofmt-clean")
	}
}

func TestRenderDuplicatePass(t *testing.T) {
	pkg := augmentedShop(t)
	fluent.Augment(pkg, fluent.Options{})

	_, err := Render(pkg)
	if !errors.Is(err, ErrDuplicateMethod) {
		t.Fatalf("Render after two passes: error = %v, want ErrDuplicateMethod", err)
	}
	if !strings.Contains(err.Error(), "Order.WithShipTo from fields ShipTo and ShipTo") {
		t.Errorf("error %q does not name the duplicate", err)
	}
}

func TestRenderCollidingFieldNames(t *testing.T) {
	dir := t.TempDir()
	src := `package m

type Order struct {
	Item    []*Item
	NewItem *Item
}

type Item struct{}
`
	if err := os.WriteFile(filepath.Join(dir, "m.go"), []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	pkg, err := parser.Parse(dir)
	if err != nil {
		t.Fatal(err)
	}
	fluent.Augment(pkg, fluent.Options{})

	_, err = Render(pkg)
	if !errors.Is(err, ErrDuplicateMethod) {
		t.Fatalf("error = %v, want ErrDuplicateMethod", err)
	}
	if !strings.Contains(err.Error(), "Order.WithNewItem from fields Item and NewItem") {
		t.Errorf("error %q does not name both fields", err)
	}

	// The indexed surface has no append accessor, so nothing collides.
	pkg, err = parser.Parse(dir)
	if err != nil {
		t.Fatal(err)
	}
	fluent.Augment(pkg, fluent.Options{Surface: fluent.SurfaceIndexed})
	if _, err := Render(pkg); err != nil {
		t.Errorf("indexed surface: %v", err)
	}
}

func TestRenderIndexedSurface(t *testing.T) {
	pkg, err := parser.Parse(shopDir(t))
	if err != nil {
		t.Fatal(err)
	}
	fluent.Augment(pkg, fluent.Options{Surface: fluent.SurfaceIndexed})

	src, err := Render(pkg)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if strings.Contains(string(src), "WithNew") {
		t.Errorf("indexed surface rendered append accessors:\n%s", src)
	}
	if !strings.Contains(string(src), "func (ord *Order) WithItem(index int) *Item {") {
		t.Errorf("indexed accessor missing:\n%s", src)
	}
}

func TestOutputPath(t *testing.T) {
	pkg := &model.Package{Name: "shop", Dir: "/src/shop"}
	tests := []struct {
		output string
		want   string
	}{
		{"", filepath.Join("/src/shop", "shop_fluent_gen.go")},
		{"accessors_gen.go", filepath.Join("/src/shop", "accessors_gen.go")},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := OutputPath(pkg, Options{Output: tt.output}); got != tt.want {
				t.Errorf("OutputPath = %q, want %q", got, tt.want)
			}
		})
	}
}
