package reporter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wisklang/wisk/token"
)

func pos(line, col int) token.Position {
	return token.Position{Line: line, Column: col, File: "test"}
}

func TestDiagnostic_Error(t *testing.T) {
	d := NewRuntimeError(pos(0, 0), pos(0, 1), "Division by zero")
	assert.Equal(t, "Runtime Error: Division by zero", d.Error())
}

func TestConstructors_TagKind(t *testing.T) {
	assert.Equal(t, IllegalChar, NewIllegalChar(pos(0, 0), pos(0, 1), "bad char").Kind)
	assert.Equal(t, InvalidSyntax, NewSyntaxError(pos(0, 0), pos(0, 1), "bad syntax").Kind)
	assert.Equal(t, RuntimeErr, NewRuntimeError(pos(0, 0), pos(0, 1), "bad runtime").Kind)
}

func TestFormat_IncludesHeaderGutterAndCaret(t *testing.T) {
	src := "var x = 1 / 0;"
	d := NewRuntimeError(pos(0, 12), pos(0, 13), "Division by zero")

	out := Format(d, src, false)
	assert.Contains(t, out, "Runtime Error: Division by zero")
	assert.Contains(t, out, "   1 | "+src)
	assert.Contains(t, out, "^")
}

func TestFormat_PointsAtCorrectLine(t *testing.T) {
	src := "line one\nline two\nline three"
	d := NewSyntaxError(pos(1, 0), pos(1, 1), "broken")

	out := Format(d, src, false)
	assert.Contains(t, out, "   2 | line two")
	assert.NotContains(t, out, "line one")
	assert.NotContains(t, out, "line three")
}

func TestFormat_ColorWrapsHeaderAndCaret(t *testing.T) {
	d := NewRuntimeError(pos(0, 0), pos(0, 1), "boom")
	plain := Format(d, "x", false)
	colored := Format(d, "x", true)
	assert.NotEqual(t, plain, colored)
}
