/*
File    : wisk/replmode/repl.go

Package replmode implements Wisk's interactive Read-Eval-Print Loop. It is
grounded on go-mix's repl.Repl: same readline-backed line editing and
history, same colored banner/error scheme, same per-line "parse what you
have, recover from panics, keep going" loop — adapted to run an
interp.Interpreter whose environment persists across lines instead of a
fresh evaluator per line, since a REPL is only useful if `var x = 1;` on
one line is visible to `print x;` on the next.
*/
package replmode

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/wisklang/wisk/interp"
	"github.com/wisklang/wisk/lexer"
	"github.com/wisklang/wisk/object"
	"github.com/wisklang/wisk/parser"
	"github.com/wisklang/wisk/reporter"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const banner = `
 __      __.__        __
/  \    /  \__| _____|  | __
\   \/\/   /  |/  ___/  |/ /
 \        /|  |\___ \|    <
  \__/\  / |__/____  >__|_ \
       \/          \/     \/
`

// Repl is a configured interactive session.
type Repl struct {
	Version string
	Prompt  string
}

// New creates a Repl with Wisk's defaults.
func New(version string) *Repl {
	return &Repl{Version: version, Prompt: "wisk >>> "}
}

func (r *Repl) printBanner(w io.Writer) {
	line := strings.Repeat("=", 40)
	blueColor.Fprintf(w, "%s\n", line)
	greenColor.Fprintf(w, "%s\n", banner)
	blueColor.Fprintf(w, "%s\n", line)
	yellowColor.Fprintln(w, "Wisk "+r.Version)
	blueColor.Fprintf(w, "%s\n", line)
	cyanColor.Fprintln(w, "Type your code and press enter")
	cyanColor.Fprintln(w, "Type '.exit' to quit")
	blueColor.Fprintf(w, "%s\n", line)
}

// Start runs the loop until the user exits or closes stdin.
func (r *Repl) Start(w io.Writer) error {
	r.printBanner(w)

	rl, err := readline.NewEx(&readline.Config{
		Prompt: r.Prompt,
		Stdout: w,
	})
	if err != nil {
		return fmt.Errorf("replmode: %w", err)
	}
	defer rl.Close()

	it := interp.New()
	it.Out = w

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(w, "Good Bye!")
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			fmt.Fprintln(w, "Good Bye!")
			return nil
		}
		rl.SaveHistory(line)

		r.evalLine(w, it, line)
	}
}

// StartRaw runs the loop over an arbitrary byte stream — a net.Conn, for
// the server mode's per-client session — using a plain line scanner
// instead of readline, since readline drives a real terminal's raw mode
// and a network socket has none. Grounded on go-mix's server handleClient,
// which hands each accepted connection its own REPL instance.
func (r *Repl) StartRaw(rw io.ReadWriter) error {
	r.printBanner(rw)
	fmt.Fprint(rw, r.Prompt)

	it := interp.New()
	it.Out = rw

	scanner := bufio.NewScanner(rw)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == ".exit" {
			fmt.Fprintln(rw, "Good Bye!")
			return nil
		}
		if line != "" {
			r.evalLine(rw, it, line)
		}
		fmt.Fprint(rw, r.Prompt)
	}
	return scanner.Err()
}

// evalLine parses and runs one line of input, recovering from any panic
// so a single bad line never ends the session.
func (r *Repl) evalLine(w io.Writer, it *interp.Interpreter, line string) {
	defer func() {
		if rec := recover(); rec != nil {
			redColor.Fprintf(w, "[internal error] %v\n", rec)
		}
	}()

	lx := lexer.New("<repl>", line)
	program, err := parser.Parse(lx)
	if err != nil {
		r.printDiagnostic(w, err, line)
		return
	}

	result, err := it.Interpret(program)
	if err != nil {
		r.printDiagnostic(w, err, line)
		return
	}
	if result != nil {
		if _, isNil := result.(*object.Nil); !isNil {
			yellowColor.Fprintln(w, result.String())
		}
	}
}

func (r *Repl) printDiagnostic(w io.Writer, err error, source string) {
	if d, ok := err.(*reporter.Diagnostic); ok {
		redColor.Fprintln(w, reporter.Format(d, source, false))
		return
	}
	redColor.Fprintln(w, err.Error())
}
