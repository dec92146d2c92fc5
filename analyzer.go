// Package unrooted provides a go/analysis based analyzer that proves a
// program never holds a GC-managed handle in a place a collection cycle
// could invalidate: the bare stack, an unmarked struct field, or a cast
// boundary that erases static type information.
package unrooted

import (
	"errors"
	"flag"
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/unrootedlint/unrooted/internal/bodywalk"
	"github.com/unrootedlint/unrooted/internal/declcheck"
	"github.com/unrootedlint/unrooted/internal/directives/ignore"
	"github.com/unrootedlint/unrooted/internal/funccheck"
	"github.com/unrootedlint/unrooted/internal/gohost"
	"github.com/unrootedlint/unrooted/internal/ir"
	"github.com/unrootedlint/unrooted/internal/shapes"
)

// Flags for the analyzer.
var (
	rcTypes    string
	boxTypes   string
	viewTypes  string
	configFile string
)

func init() {
	Analyzer.Flags.StringVar(&rcTypes, "rc-types", "",
		"comma-separated additional shared reference-counted pointer types (pkg/path.Type)")
	Analyzer.Flags.StringVar(&boxTypes, "box-types", "",
		"comma-separated additional owning heap allocation types (pkg/path.Type)")
	Analyzer.Flags.StringVar(&viewTypes, "view-types", "",
		"comma-separated additional borrow-like view types (pkg/path.Type)")
	Analyzer.Flags.StringVar(&configFile, "config", "",
		"YAML file adding canonical shape types on top of the built-ins")
}

// Analyzer is the main analyzer for unrooted.
var Analyzer = &analysis.Analyzer{
	Name:      "unrooted",
	Doc:       "checks that GC-managed handles are only held behind rooting wrappers",
	Requires:  []*analysis.Analyzer{inspect.Analyzer},
	FactTypes: []analysis.Fact{new(gohost.MarkersFact)},
	Run:       run,
	Flags:     flag.FlagSet{},
}

var ErrNoInspector = errors.New("inspector analyzer result not found")

func run(pass *analysis.Pass) (any, error) {
	insp, ok := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, ErrNoInspector
	}

	table, err := buildShapeTable()
	if err != nil {
		return nil, err
	}

	host := gohost.New(pass, table)
	generatedFiles := buildGeneratedFiles(pass)
	ignoreMaps := buildIgnoreMaps(pass)

	rep := &suppressor{pass: pass, ignores: ignoreMaps}

	nodeFilter := []ast.Node{
		(*ast.TypeSpec)(nil),
		(*ast.FuncDecl)(nil),
	}

	insp.Preorder(nodeFilter, func(n ast.Node) {
		switch n := n.(type) {
		case *ast.TypeSpec:
			if decl, ok := host.StructDecl(n); ok {
				declcheck.Check(rep, host, decl)
			}

		case *ast.FuncDecl:
			checkFunc(rep, host, n, generatedFiles[filename(pass, n.Pos())])
		}
	})

	reportUnusedIgnores(pass, ignoreMaps)

	return nil, nil
}

// checkFunc runs the signature checks and then, unconditionally, the body
// walk with the constructor-context flag the signature pass computed.
func checkFunc(rep ir.Reporter, host *gohost.Host, decl *ast.FuncDecl, generated bool) {
	fn, ok := host.FuncInfo(decl, generated)
	if !ok {
		return
	}

	inNew := funccheck.Check(rep, host, fn)

	walker := &bodywalk.Walker{Reporter: rep, Oracle: host, InNew: inNew}
	host.WalkBody(walker, decl)
}

// buildShapeTable merges the built-in canonical paths with the flag and
// config additions.
func buildShapeTable() (*shapes.Table, error) {
	table := shapes.Default()
	table.Add(ir.ShapeSharedPtr, shapes.Parse(rcTypes))
	table.Add(ir.ShapeHeapBox, shapes.Parse(boxTypes))
	table.Add(ir.ShapeTransientView, shapes.Parse(viewTypes))

	if configFile != "" {
		if err := shapes.LoadConfig(table, configFile); err != nil {
			return nil, err
		}
	}

	return table, nil
}

// buildGeneratedFiles records which files carry a generated-code header.
// Signature checks are skipped there; body walks and declaration checks
// still run.
func buildGeneratedFiles(pass *analysis.Pass) map[string]bool {
	generated := make(map[string]bool)

	for _, file := range pass.Files {
		if ast.IsGenerated(file) {
			generated[filename(pass, file.Pos())] = true
		}
	}

	return generated
}

// buildIgnoreMaps creates ignore maps for each file in the pass.
func buildIgnoreMaps(pass *analysis.Pass) map[string]ignore.Map {
	ignoreMaps := make(map[string]ignore.Map)

	for _, file := range pass.Files {
		ignoreMaps[filename(pass, file.Pos())] = ignore.Build(pass.Fset, file)
	}

	return ignoreMaps
}

// reportUnusedIgnores reports any ignore directives that suppressed
// nothing.
func reportUnusedIgnores(pass *analysis.Pass, ignoreMaps map[string]ignore.Map) {
	for _, ignoreMap := range ignoreMaps {
		for _, pos := range ignoreMap.Unused() {
			pass.Reportf(pos, "unused unrooted:ignore directive")
		}
	}
}

func filename(pass *analysis.Pass, pos token.Pos) string {
	return pass.Fset.Position(pos).Filename
}

// suppressor forwards diagnostics to the pass unless an ignore directive
// covers their line.
type suppressor struct {
	pass    *analysis.Pass
	ignores map[string]ignore.Map
}

// Reportf implements ir.Reporter.
func (s *suppressor) Reportf(pos token.Pos, format string, args ...any) {
	position := s.pass.Fset.Position(pos)
	if m, ok := s.ignores[position.Filename]; ok && m.ShouldIgnore(position.Line) {
		return
	}

	s.pass.Reportf(pos, format, args...)
}
