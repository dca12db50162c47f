// fluentGen is a code generation tool that reads the structs of a generated
// object model (e.g. the output of an XSD or JSON-schema compiler) and adds
// fluent accessors that allocate nested values on demand:
//
//	order.WithShipTo().WithCountry().Code = "FR"
//	order.WithItem(2).Quantity = 3
//	order.WithNewItem().Sku = "A-1"
//
// Usage:
//
//	go run github.com/mlwelles/fluentGen [flags]
//
// When invoked via go:generate (the typical case), it uses the current working
// directory as the target package.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mlwelles/fluentGen/config"
	"github.com/mlwelles/fluentGen/fluent"
	"github.com/mlwelles/fluentGen/generator"
	"github.com/mlwelles/fluentGen/model"
	"github.com/mlwelles/fluentGen/parser"
)

func main() {
	cmd := newRootCmd()
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	pkgDir   string
	patterns []string
	output   string
	surface  string
	exclude  []string
	check    bool
	report   bool
	verbose  bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "fluentGen",
		Short: "Generate fluent With accessors for a generated object model",
		Long: `fluentGen adds lazily-allocating accessors to the structs of a package.

For a field ShipTo *Address it generates WithShipTo() *Address.
For a field Item []*Item it generates WithItem(index int) *Item and
WithNewItem() *Item (the latter is omitted with --surface=indexed).

Settings are read from .fluentgen.toml in the package directory; flags win.

Examples:
  fluentGen                          # augment the package in the working directory
  fluentGen --pkg ./model --report   # print how each field was classified
  fluentGen --pattern ./schemas/...  # augment every package matching a pattern
  fluentGen --check                  # fail if the generated file is out of date`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := run(cmd, opts)
			if err != nil {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "fluentGen:", err)
			}
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.pkgDir, "pkg", ".", "path to the target Go package directory")
	flags.StringSliceVar(&opts.patterns, "pattern", nil, "package patterns to load with the go tool instead of --pkg")
	flags.StringVar(&opts.output, "output", "", "generated file name (default: <package>_fluent_gen.go)")
	flags.StringVar(&opts.surface, "surface", config.SurfaceFull, "sequence accessors: full (WithX(index) and WithNewX()) or indexed (WithX(index) only)")
	flags.StringSliceVar(&opts.exclude, "exclude", nil, "struct names to leave untouched")
	flags.BoolVar(&opts.check, "check", false, "do not write; fail if the generated file is out of date")
	flags.BoolVar(&opts.report, "report", false, "print the classification of every field")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func run(cmd *cobra.Command, opts *rootOptions) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)

	pkgs, err := loadPackages(opts)
	if err != nil {
		return err
	}
	for _, pkg := range pkgs {
		if err := processPackage(cmd, opts, pkg, logger); err != nil {
			return fmt.Errorf("package %s: %w", pkg.Name, err)
		}
	}
	return nil
}

func loadPackages(opts *rootOptions) ([]*model.Package, error) {
	if len(opts.patterns) > 0 {
		return parser.Load(opts.pkgDir, opts.patterns...)
	}

	dir := opts.pkgDir
	if dir == "." {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
	}
	pkg, err := parser.Parse(dir)
	if err != nil {
		return nil, err
	}
	return []*model.Package{pkg}, nil
}

func processPackage(cmd *cobra.Command, opts *rootOptions, pkg *model.Package, logger *slog.Logger) error {
	cfg, err := config.Load(pkg.Dir)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("surface") {
		cfg.Surface = opts.surface
	}
	if flags.Changed("output") {
		cfg.Output = opts.output
	}
	if flags.Changed("exclude") {
		cfg.Exclude = opts.exclude
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	res := fluent.Augment(pkg, cfg.FluentOptions())
	for _, d := range res.Decisions {
		logger.Debug("classified field",
			"class", d.Class, "field", d.Field, "type", d.Type, "kind", d.Kind.String())
	}

	out := cmd.OutOrStdout()
	if opts.report {
		if err := generator.Report(out, res, colorEnabled(out)); err != nil {
			return err
		}
	}

	genOpts := generator.Options{Output: cfg.Output, Log: logger}
	if opts.check {
		return generator.Check(pkg, genOpts)
	}
	if _, err := generator.Generate(pkg, genOpts); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "Package %s: %d classes, %d methods\n", pkg.Name, len(pkg.Classes), res.Added)
	return err
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func colorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
