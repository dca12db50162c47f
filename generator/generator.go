// Package generator renders the methods synthesized by package fluent into a
// gofmt-clean Go source file next to the augmented package.
package generator

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	"github.com/dave/jennifer/jen"

	"github.com/mlwelles/fluentGen/model"
)

// Header is the first line of every generated file.
const Header = "Code generated by fluentGen. DO NOT EDIT."

// ErrStale is returned by Check when the file on disk differs from what
// Generate would write.
var ErrStale = errors.New("generated file is out of date")

// ErrDuplicateMethod is returned by Render when two synthesized methods of
// one class share a name, e.g. after a second pass over the same package or
// when fields Item and NewItem both yield WithNewItem.
var ErrDuplicateMethod = errors.New("duplicate generated method")

// Options configures output.
type Options struct {
	Output string       // File name inside the package directory; default <package>_fluent_gen.go
	Log    *slog.Logger // nil means slog.Default()
}

func (o Options) log() *slog.Logger {
	if o.Log == nil {
		return slog.Default()
	}
	return o.Log
}

// OutputPath returns the path of the generated file for pkg.
func OutputPath(pkg *model.Package, opts Options) string {
	name := opts.Output
	if name == "" {
		name = pkg.Name + "_fluent_gen.go"
	}
	return filepath.Join(pkg.Dir, name)
}

// Render returns the generated source for every method of every class of pkg,
// in class order then method order.
func Render(pkg *model.Package) ([]byte, error) {
	if err := checkDuplicates(pkg); err != nil {
		return nil, err
	}

	f := jen.NewFile(pkg.Name)
	f.HeaderComment(Header)

	for _, c := range pkg.Classes {
		e := emitter{recv: c.Receiver}
		for _, m := range c.Methods {
			f.Comment(docComment(m))
			f.Add(e.method(c, m))
			f.Line()
		}
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("rendering package %s: %w", pkg.Name, err)
	}
	return buf.Bytes(), nil
}

// Generate writes the generated file for pkg and returns its path. A package
// without synthesized methods gets no file, and a previously generated one is
// removed so that it cannot refer to fields that no longer qualify.
func Generate(pkg *model.Package, opts Options) (string, error) {
	path := OutputPath(pkg, opts)

	if countMethods(pkg) == 0 {
		removed, err := removeGenerated(path)
		if err != nil {
			return "", err
		}
		if removed {
			opts.log().Info("removed generated file", "package", pkg.Name, "path", path)
		}
		return "", nil
	}

	src, err := Render(pkg)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	opts.log().Info("wrote generated file", "package", pkg.Name, "path", path, "methods", countMethods(pkg))
	return path, nil
}

// Check renders pkg and compares it with the file on disk. It returns an error
// wrapping ErrStale, with a unified diff, when they differ.
func Check(pkg *model.Package, opts Options) error {
	path := OutputPath(pkg, opts)

	var want []byte
	if countMethods(pkg) > 0 {
		var err error
		want, err = Render(pkg)
		if err != nil {
			return err
		}
	}

	got, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if bytes.Equal(got, want) {
		return nil
	}
	diff := udiff.Unified(path, path+" (generated)", string(got), string(want))
	return fmt.Errorf("%w: %s\n%s", ErrStale, path, diff)
}

// removeGenerated deletes path if it exists and carries the generated header.
func removeGenerated(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}
	if !strings.HasPrefix(string(data), "// "+Header) {
		return false, nil
	}
	if err := os.Remove(path); err != nil {
		return false, fmt.Errorf("removing %s: %w", path, err)
	}
	return true, nil
}

func checkDuplicates(pkg *model.Package) error {
	for _, c := range pkg.Classes {
		fields := make(map[string]string, len(c.Methods))
		for _, m := range c.Methods {
			if prev, ok := fields[m.Name]; ok {
				return fmt.Errorf("%w: %s.%s from fields %s and %s", ErrDuplicateMethod, c.Name, m.Name, prev, m.Field)
			}
			fields[m.Name] = m.Field
		}
	}
	return nil
}

func countMethods(pkg *model.Package) int {
	n := 0
	for _, c := range pkg.Classes {
		n += len(c.Methods)
	}
	return n
}

func docComment(m model.Method) string {
	switch m.Accessor {
	case model.AccessorIndexed:
		return fmt.Sprintf("%s returns the element of %s at index, growing %s and allocating the element as needed.", m.Name, m.Field, m.Field)
	case model.AccessorAppend:
		return fmt.Sprintf("%s appends a new element to %s and returns it.", m.Name, m.Field)
	default:
		return fmt.Sprintf("%s returns %s, allocating it first if it is nil.", m.Name, m.Field)
	}
}
