/*
File    : wisk/lexer/lexer.go

Package lexer performs lexical analysis of Wisk source code. It scans the
source text byte by byte, producing a lazy stream of positioned tokens on
demand via NextToken. The scan is character-level (not rune-level): Wisk
source is restricted to ASCII identifiers and operators, matching the
grammar in spec.md.
*/
package lexer

import (
	"fmt"

	"github.com/wisklang/wisk/reporter"
	"github.com/wisklang/wisk/token"
)

// Lexer scans one source file (or REPL line) into tokens. It keeps a
// single mutable cursor; positions attached to emitted tokens are
// snapshots of that cursor, never references to it.
type Lexer struct {
	file string
	src  string

	offset int // byte offset of Current
	line   int // zero-based line of Current
	col    int // zero-based column of Current

	current byte // byte at offset, or 0 at end of input
}

// New creates a Lexer over src, identified by file for diagnostics (use
// "" or "<repl>" for non-file input).
func New(file, src string) *Lexer {
	lx := &Lexer{file: file, src: src}
	if len(src) > 0 {
		lx.current = src[0]
	}
	return lx
}

func (lx *Lexer) pos() token.Position {
	return token.Position{Offset: lx.offset, Line: lx.line, Column: lx.col, File: lx.file}
}

// peek returns the next byte without consuming it, or 0 at end of input.
func (lx *Lexer) peek() byte {
	if lx.offset+1 >= len(lx.src) {
		return 0
	}
	return lx.src[lx.offset+1]
}

// advance moves the cursor one byte forward, tracking line/column.
func (lx *Lexer) advance() {
	if lx.current == '\n' {
		lx.line++
		lx.col = 0
	} else {
		lx.col++
	}
	lx.offset++
	if lx.offset >= len(lx.src) {
		lx.current = 0
	} else {
		lx.current = lx.src[lx.offset]
	}
}

func (lx *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case lx.current == ' ' || lx.current == '\t' || lx.current == '\n':
			lx.advance()
		case lx.current == '/' && lx.peek() == '/':
			for lx.current != '\n' && lx.current != 0 {
				lx.advance()
			}
		default:
			return
		}
	}
}

// NextToken returns the next token in the stream. Once the input is
// exhausted it returns EOF tokens indefinitely, per spec.md §4.1.
func (lx *Lexer) NextToken() (token.Token, error) {
	lx.skipWhitespaceAndComments()

	start := lx.pos()

	switch c := lx.current; {
	case c == 0:
		return token.Token{Type: token.EOF, Literal: "", Pos: start}, nil

	case c == '"':
		return lx.readString(start)

	case isDigit(c):
		return lx.readNumber(start)

	case isAlpha(c) || c == '_':
		return lx.readIdentifier(start)

	case c == '.':
		lx.advance()
		return token.Token{}, reporter.NewSyntaxError(start, lx.pos(), "Leading dot")

	case c == '+':
		lx.advance()
		return token.Token{Type: token.PLUS, Literal: "+", Pos: start}, nil
	case c == '-':
		lx.advance()
		return token.Token{Type: token.MINUS, Literal: "-", Pos: start}, nil
	case c == '*':
		lx.advance()
		return token.Token{Type: token.MUL, Literal: "*", Pos: start}, nil
	case c == '/':
		lx.advance()
		return token.Token{Type: token.DIV, Literal: "/", Pos: start}, nil
	case c == '(':
		lx.advance()
		return token.Token{Type: token.LPAREN, Literal: "(", Pos: start}, nil
	case c == ')':
		lx.advance()
		return token.Token{Type: token.RPAREN, Literal: ")", Pos: start}, nil
	case c == '{':
		lx.advance()
		return token.Token{Type: token.LBRACE, Literal: "{", Pos: start}, nil
	case c == '}':
		lx.advance()
		return token.Token{Type: token.RBRACE, Literal: "}", Pos: start}, nil
	case c == ';':
		lx.advance()
		return token.Token{Type: token.SEMI, Literal: ";", Pos: start}, nil
	case c == ',':
		lx.advance()
		return token.Token{Type: token.COMMA, Literal: ",", Pos: start}, nil

	case c == '=':
		lx.advance()
		if lx.current == '=' {
			lx.advance()
			return token.Token{Type: token.EQUAL_EQUAL, Literal: "==", Pos: start}, nil
		}
		return token.Token{Type: token.EQ, Literal: "=", Pos: start}, nil

	case c == '!':
		lx.advance()
		if lx.current == '=' {
			lx.advance()
			return token.Token{Type: token.BANG_EQUAL, Literal: "!=", Pos: start}, nil
		}
		return token.Token{Type: token.BANG, Literal: "!", Pos: start}, nil

	case c == '<':
		lx.advance()
		if lx.current == '=' {
			lx.advance()
			return token.Token{Type: token.LESS_EQUAL, Literal: "<=", Pos: start}, nil
		}
		return token.Token{Type: token.LESS, Literal: "<", Pos: start}, nil

	case c == '>':
		lx.advance()
		if lx.current == '=' {
			lx.advance()
			return token.Token{Type: token.GREATER_EQUAL, Literal: ">=", Pos: start}, nil
		}
		return token.Token{Type: token.GREATER, Literal: ">", Pos: start}, nil

	default:
		lx.advance()
		return token.Token{}, reporter.NewIllegalChar(start, lx.pos(), fmt.Sprintf("unexpected character %q", c))
	}
}

// readString scans a double-quoted string literal. Escape sequences are
// not processed: the payload is every byte between the quotes, verbatim,
// per spec.md §4.1.
func (lx *Lexer) readString(start token.Position) (token.Token, error) {
	lx.advance() // consume opening quote
	begin := lx.offset

	for lx.current != '"' {
		if lx.current == 0 {
			return token.Token{}, reporter.NewSyntaxError(start, lx.pos(), "Unterminated string")
		}
		lx.advance()
	}
	literal := lx.src[begin:lx.offset]
	lx.advance() // consume closing quote
	return token.Token{Type: token.STRING, Literal: literal, Pos: start}, nil
}

// readNumber scans a numeric literal: digits, optionally one '.', with at
// least one digit on each side of it. A leading dot, trailing dot, or a
// second dot is a syntax error anchored at the offending character.
func (lx *Lexer) readNumber(start token.Position) (token.Token, error) {
	begin := lx.offset
	seenDot := false

	for isDigit(lx.current) {
		lx.advance()
	}

	if lx.current == '.' {
		if !isDigit(lx.peek()) {
			errPos := lx.pos()
			lx.advance()
			return token.Token{}, reporter.NewSyntaxError(errPos, lx.pos(), "Trailing dot")
		}
		seenDot = true
		lx.advance()
		for isDigit(lx.current) {
			lx.advance()
		}
	}

	if lx.current == '.' {
		errPos := lx.pos()
		lx.advance()
		if seenDot {
			return token.Token{}, reporter.NewSyntaxError(errPos, lx.pos(), "Too many dots")
		}
		return token.Token{}, reporter.NewSyntaxError(errPos, lx.pos(), "Trailing dot")
	}

	return token.Token{Type: token.NUMBER, Literal: lx.src[begin:lx.offset], Pos: start}, nil
}

// readIdentifier scans an identifier or keyword: a letter or underscore
// followed by any run of letters, digits, or underscores.
func (lx *Lexer) readIdentifier(start token.Position) (token.Token, error) {
	begin := lx.offset
	for isAlpha(lx.current) || isDigit(lx.current) || lx.current == '_' {
		lx.advance()
	}
	literal := lx.src[begin:lx.offset]
	return token.Token{Type: token.LookupIdentifier(literal), Literal: literal, Pos: start}, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
