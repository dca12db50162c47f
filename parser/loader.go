package parser

import (
	"fmt"
	"go/ast"
	"path/filepath"
	"sort"

	"golang.org/x/tools/go/packages"

	"github.com/mlwelles/fluentGen/model"
)

// Load resolves package patterns (import paths, "./...", directories) with the
// go tool, relative to dir, and returns one model per matched package.
func Load(dir string, patterns ...string) ([]*model.Package, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles | packages.NeedSyntax,
		Dir:  dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("loading packages %v: %w", patterns, err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("%w matching %v", ErrNoPackage, patterns)
	}

	var out []*model.Package
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, fmt.Errorf("loading package %q: %w", pkg.PkgPath, pkg.Errors[0])
		}
		if len(pkg.GoFiles) == 0 {
			continue
		}

		files := make([]*ast.File, len(pkg.Syntax))
		copy(files, pkg.Syntax)
		sort.Slice(files, func(i, j int) bool {
			return pkg.Fset.Position(files[i].Package).Filename < pkg.Fset.Position(files[j].Package).Filename
		})

		out = append(out, build(pkg.Name, filepath.Dir(pkg.GoFiles[0]), files))
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w matching %v", ErrNoPackage, patterns)
	}
	return out, nil
}
