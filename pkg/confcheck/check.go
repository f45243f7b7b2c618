// Package confcheck performs a syntax-level check of provider config DSL
// documents: token well-formedness, statement termination, block balance and
// the top-level syntax/provider structure. It does not evaluate directive
// semantics; that is the consuming router's job.
package confcheck

import "fmt"

// Result summarizes a checked document.
type Result struct {
	// Providers lists provider block names in declaration order.
	Providers []string
}

// Check validates one document. path is used for error positions only; the
// content must already be in memory. The first violation aborts the check.
func Check(path, content string) (*Result, error) {
	l := newLexer(path, content)

	if err := expectSyntaxHeader(l); err != nil {
		return nil, err
	}

	res := &Result{}
	seen := map[string]bool{}
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		if tok.kind == tokEOF {
			break
		}
		if tok.kind != tokIdent || tok.text != "provider" {
			return nil, l.errAt(tok, "expected provider block, got %q", tok.text)
		}
		name, err := checkProviderBlock(l)
		if err != nil {
			return nil, err
		}
		if seen[name] {
			return nil, fmt.Errorf("%s: duplicate provider %q", path, name)
		}
		seen[name] = true
		res.Providers = append(res.Providers, name)
	}

	if len(res.Providers) == 0 {
		return nil, fmt.Errorf("%s: no provider block found", path)
	}
	return res, nil
}

func expectSyntaxHeader(l *lexer) error {
	tok, err := l.next()
	if err != nil {
		return err
	}
	if tok.kind != tokIdent || tok.text != "syntax" {
		return l.errAt(tok, "document must start with a syntax declaration")
	}
	verTok, err := l.next()
	if err != nil {
		return err
	}
	if verTok.kind != tokString {
		return l.errAt(verTok, "expected string literal after syntax")
	}
	semi, err := l.next()
	if err != nil {
		return err
	}
	if semi.kind != tokSemicolon {
		return l.errAt(semi, "expected ';' after syntax declaration")
	}
	return nil
}

// checkProviderBlock consumes `"name" { ... }` after the provider keyword,
// verifying brace balance and that every statement inside is terminated
// with ';' before a '}' or a nested block opens.
func checkProviderBlock(l *lexer) (string, error) {
	nameTok, err := l.next()
	if err != nil {
		return "", err
	}
	if nameTok.kind != tokString {
		return "", l.errAt(nameTok, "expected string literal after provider")
	}
	name := unquote(nameTok.text)
	if name == "" {
		return "", l.errAt(nameTok, "provider name is empty")
	}

	open, err := l.next()
	if err != nil {
		return "", err
	}
	if open.kind != tokLBrace {
		return "", l.errAt(open, "expected '{' after provider name")
	}

	depth := 1
	pending := 0 // tokens of the statement in progress
	for depth > 0 {
		tok, err := l.next()
		if err != nil {
			return "", err
		}
		switch tok.kind {
		case tokEOF:
			return "", l.errAt(tok, "unexpected end of file inside provider %q", name)
		case tokLBrace:
			if pending == 0 {
				return "", l.errAt(tok, "unexpected '{'")
			}
			depth++
			pending = 0
		case tokRBrace:
			if pending > 0 {
				return "", l.errAt(tok, "missing ';' before '}'")
			}
			depth--
		case tokSemicolon:
			if pending == 0 {
				return "", l.errAt(tok, "empty statement")
			}
			pending = 0
		default:
			pending++
		}
	}
	return name, nil
}
