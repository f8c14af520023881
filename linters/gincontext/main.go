package main

import (
	"flag"
	"fmt"
	"go/ast"
	"go/types"
	"log"
	"os"
	"slices"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/checker"
	"golang.org/x/tools/go/packages"
)

// packages whose gin handlers must pass ctx.Request.Context() to context.Context params
var lintPath = []string{
	"opencsg.com/persona-predictor/api/httpbase",
	"opencsg.com/persona-predictor/api/middleware",
	"opencsg.com/persona-predictor/predictor/handler",
}

func main() {
	tagPtr := flag.String("tags", "", "build tags")
	flag.Parse()

	cfg := &packages.Config{
		Mode:       packages.LoadAllSyntax,
		BuildFlags: []string{"-tags=" + *tagPtr},
	}

	initial, err := packages.Load(cfg, "./...")
	if err != nil {
		log.Fatal(err)
	}
	if len(initial) == 0 {
		log.Fatalf("no initial packages")
	}

	// Run analyzers (just one) on packages.
	analyzers := []*analysis.Analyzer{analyzer}
	graph, err := checker.Analyze(analyzers, initial, nil)
	if err != nil {
		log.Fatal(err)
	}

	err = graph.PrintText(os.Stderr, -1)
	if err != nil {
		log.Fatal(err)
	}

	// Compute the exit code.
	var exitcode = 0
	graph.All()(func(act *checker.Action) bool {
		if len(act.Diagnostics) > 0 {
			exitcode = 1
		}
		return true
	})

	os.Exit(exitcode)
}

var analyzer = &analysis.Analyzer{
	Name: "gincontext",
	Doc:  "Find not converted gin context",
	Run:  run,
}

func run(pass *analysis.Pass) (any, error) {
	if pass.Pkg == nil || !slices.Contains(lintPath, pass.Pkg.Path()) {
		return nil, nil
	}
	for _, file := range pass.Files {
		ast.Inspect(file, func(n ast.Node) bool {
			if ce, ok := n.(*ast.CallExpr); ok && passesGinContext(pass, ce) {
				report(pass, ce)
			}
			return true
		})
	}
	return nil, nil
}

// passesGinContext reports whether ce hands a *gin.Context to a first parameter
// typed context.Context.
func passesGinContext(pass *analysis.Pass, ce *ast.CallExpr) bool {
	if len(ce.Args) == 0 {
		return false
	}
	at := pass.TypesInfo.TypeOf(ce.Args[0])
	if at == nil || !strings.HasSuffix(at.String(), "gin-gonic/gin.Context") {
		return false
	}
	sig, ok := pass.TypesInfo.TypeOf(ce.Fun).(*types.Signature)
	if !ok || sig.Params().Len() == 0 {
		return false
	}
	return sig.Params().At(0).Type().String() == "context.Context"
}

func report(pass *analysis.Pass, ce *ast.CallExpr) {
	arg := ce.Args[0]
	ident, ok := arg.(*ast.Ident)
	if !ok {
		pass.Reportf(ce.Pos(), "should use gin request context")
		return
	}
	pass.Report(analysis.Diagnostic{
		Pos:     ce.Pos(),
		Message: "should use ctx.Request.Context",
		SuggestedFixes: []analysis.SuggestedFix{{
			Message: "should use gin request context",
			TextEdits: []analysis.TextEdit{{
				Pos:     arg.Pos(),
				End:     arg.End(),
				NewText: []byte(fmt.Sprintf("%s.Request.Context()", ident.Name)),
			}},
		}},
	})
}
