/*
File    : wisk/reporter/reporter.go

Package reporter implements Wisk's diagnostic formatting: the
position-anchored, source-snippet-and-caret error rendering shared by the
lexer, parser, and evaluator. The formatting shape — a "<Kind>: <detail>"
header, a "   N | " gutter holding the offending line, and an indented
caret — is grounded on go-dws's internal/errors.CompilerError.Format.
*/
package reporter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/wisklang/wisk/token"
)

// Kind tags a Diagnostic with one of the three error classes spec.md §7
// names. A Kind's string value is also the literal text that appears
// before the colon in the rendered header.
type Kind string

const (
	IllegalChar   Kind = "Illegal character"
	InvalidSyntax Kind = "Invalid syntax"
	RuntimeErr    Kind = "Runtime Error"
)

// Diagnostic is the single error shape produced anywhere in the pipeline:
// a Kind, the source span it is anchored to, and a detail message. It
// implements error so lexer/parser/interp functions can return it
// directly through ordinary Go error-returning signatures.
type Diagnostic struct {
	Kind     Kind
	PosStart token.Position
	PosEnd   token.Position
	Detail   string
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s", d.Kind, d.Detail)
}

// NewIllegalChar builds a Diagnostic for an unrecognized source character.
func NewIllegalChar(start, end token.Position, detail string) *Diagnostic {
	return &Diagnostic{Kind: IllegalChar, PosStart: start, PosEnd: end, Detail: detail}
}

// NewSyntaxError builds a Diagnostic for a grammar violation caught by the
// lexer (malformed numeric/string literals) or the parser.
func NewSyntaxError(start, end token.Position, detail string) *Diagnostic {
	return &Diagnostic{Kind: InvalidSyntax, PosStart: start, PosEnd: end, Detail: detail}
}

// NewRuntimeError builds a Diagnostic for a failure raised while the
// evaluator is walking the AST.
func NewRuntimeError(start, end token.Position, detail string) *Diagnostic {
	return &Diagnostic{Kind: RuntimeErr, PosStart: start, PosEnd: end, Detail: detail}
}

// Format renders a Diagnostic against source, the full text it was raised
// from, as:
//
//	<Kind>: <detail>
//
//	   <line> | <offending source line>
//	            ^
//
// matching spec.md §6's stable diagnostic format. When color is true the
// kind/detail line and the caret are colorized in red, grounded on
// go-dws's optional ANSI coloring in CompilerError.Format.
func Format(d *Diagnostic, source string, color_ bool) string {
	var b strings.Builder

	red := color.New(color.FgRed)
	red.EnableColor()

	header := fmt.Sprintf("%s: %s", d.Kind, d.Detail)
	if color_ {
		header = red.Sprint(header)
	}
	b.WriteString(header)
	b.WriteString("\n\n")

	lines := strings.Split(source, "\n")
	lineNo := d.PosStart.Line
	if lineNo >= 0 && lineNo < len(lines) {
		lineText := lines[lineNo]
		gutter := fmt.Sprintf("   %d | ", lineNo+1)
		b.WriteString(gutter)
		b.WriteString(lineText)
		b.WriteString("\n")

		caretLine := strings.Repeat(" ", len(gutter)+d.PosStart.Column)
		caret := "^"
		if color_ {
			caret = red.Sprint(caret)
		}
		b.WriteString(caretLine)
		b.WriteString(caret)
	}

	return b.String()
}
