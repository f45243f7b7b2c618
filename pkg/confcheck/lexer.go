package confcheck

import (
	"fmt"
	"unicode"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokString
	tokLBrace
	tokRBrace
	tokSemicolon
	tokEquals
	tokOther
)

type token struct {
	kind tokenKind
	text string
	line int
	col  int
}

// lexer walks a conf document skipping whitespace and the three comment
// forms (#, //, /* */), tracking line/column for error reporting.
type lexer struct {
	path  string
	input string
	pos   int
	line  int
	col   int
}

func newLexer(path, input string) *lexer {
	return &lexer{path: path, input: input, line: 1, col: 1}
}

func (l *lexer) errAt(tok token, format string, args ...any) error {
	return fmt.Errorf("%s:%d:%d: %s", l.path, tok.line, tok.col, fmt.Sprintf(format, args...))
}

func (l *lexer) advance() byte {
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return ch
}

func (l *lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *lexer) peek2() byte {
	if l.pos+1 >= len(l.input) {
		return 0
	}
	return l.input[l.pos+1]
}

// next returns the next non-trivia token. Unterminated strings and block
// comments are reported as errors rather than silently consumed to EOF.
func (l *lexer) next() (token, error) {
	for l.pos < len(l.input) {
		ch := l.peek()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			l.advance()
		case ch == '#':
			l.skipLineComment()
		case ch == '/' && l.peek2() == '/':
			l.skipLineComment()
		case ch == '/' && l.peek2() == '*':
			if err := l.skipBlockComment(); err != nil {
				return token{}, err
			}
		default:
			return l.lexToken()
		}
	}
	return token{kind: tokEOF, line: l.line, col: l.col}, nil
}

func (l *lexer) skipLineComment() {
	for l.pos < len(l.input) && l.peek() != '\n' {
		l.advance()
	}
}

func (l *lexer) skipBlockComment() error {
	start := token{line: l.line, col: l.col}
	l.advance()
	l.advance()
	for l.pos < len(l.input) {
		if l.peek() == '*' && l.peek2() == '/' {
			l.advance()
			l.advance()
			return nil
		}
		l.advance()
	}
	return l.errAt(start, "unterminated block comment")
}

func (l *lexer) lexToken() (token, error) {
	tok := token{line: l.line, col: l.col}
	ch := l.peek()

	switch ch {
	case '{':
		l.advance()
		tok.kind, tok.text = tokLBrace, "{"
		return tok, nil
	case '}':
		l.advance()
		tok.kind, tok.text = tokRBrace, "}"
		return tok, nil
	case ';':
		l.advance()
		tok.kind, tok.text = tokSemicolon, ";"
		return tok, nil
	case '=':
		l.advance()
		tok.kind, tok.text = tokEquals, "="
		return tok, nil
	case '"':
		return l.lexString(tok)
	}

	if isIdentStart(rune(ch)) {
		start := l.pos
		l.advance()
		for l.pos < len(l.input) && isIdentPart(rune(l.peek())) {
			l.advance()
		}
		tok.kind = tokIdent
		tok.text = l.input[start:l.pos]
		return tok, nil
	}

	start := l.pos
	l.advance()
	tok.kind = tokOther
	tok.text = l.input[start:l.pos]
	return tok, nil
}

func (l *lexer) lexString(tok token) (token, error) {
	start := l.pos
	l.advance()
	for l.pos < len(l.input) {
		ch := l.advance()
		if ch == '\\' && l.pos < len(l.input) {
			l.advance()
			continue
		}
		if ch == '"' && l.pos > start+1 {
			tok.kind = tokString
			tok.text = l.input[start:l.pos]
			return tok, nil
		}
	}
	return token{}, l.errAt(tok, "unterminated string literal")
}

// unquote strips the surrounding quotes and resolves backslash escapes of a
// lexed string token.
func unquote(text string) string {
	if len(text) < 2 {
		return text
	}
	inner := text[1 : len(text)-1]
	out := make([]byte, 0, len(inner))
	for i := 0; i < len(inner); i++ {
		if inner[i] == '\\' && i+1 < len(inner) {
			i++
		}
		out = append(out, inner[i])
	}
	return string(out)
}

func isIdentStart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	if isIdentStart(r) || unicode.IsDigit(r) {
		return true
	}
	switch r {
	case '-', ':', '.':
		return true
	}
	return false
}
