package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wisklang/wisk/ast"
	"github.com/wisklang/wisk/interp"
	"github.com/wisklang/wisk/lexer"
	"github.com/wisklang/wisk/object"
	"github.com/wisklang/wisk/parser"
	"github.com/wisklang/wisk/reporter"
)

var (
	evalExpr string
	dumpAST  bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Wisk file or expression",
	Long: `Execute a Wisk program from a file or an inline expression.

Examples:
  wisk run script.wisk
  wisk run -e "print 1 + 2;"
  wisk run --dump-ast script.wisk`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading a file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print the parsed AST before running")
}

func runScript(_ *cobra.Command, args []string) error {
	source, filename, err := readSource(evalExpr, args)
	if err != nil {
		return err
	}

	lx := lexer.New(filename, source)
	program, err := parser.Parse(lx)
	if err != nil {
		printScriptError(err, source)
		return fmt.Errorf("parsing failed")
	}

	if dumpAST {
		fmt.Print(ast.Print(program))
	}

	it := interp.New()
	it.Out = os.Stdout
	result, err := it.Interpret(program)
	if err != nil {
		printScriptError(err, source)
		return fmt.Errorf("execution failed")
	}
	if result != nil {
		if _, isNil := result.(*object.Nil); !isNil {
			fmt.Println(result.String())
		}
	}
	return nil
}

func readSource(inline string, args []string) (source, filename string, err error) {
	if inline != "" {
		return inline, "<eval>", nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e for inline code")
}

func printScriptError(err error, source string) {
	if d, ok := err.(*reporter.Diagnostic); ok {
		fmt.Fprintln(os.Stderr, reporter.Format(d, source, true))
		return
	}
	fmt.Fprintln(os.Stderr, err)
}
