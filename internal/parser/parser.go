// Package parser provides the default JavaScript parser used when the
// caller does not supply one. It performs a lexical validity check:
// strings, template literals and comments are scanned, and bracket
// nesting must balance. It does not build a syntax tree.
package parser

import (
	"fmt"

	"github.com/mjeanroy/eslint/internal/ingest"
)

// JSParser implements ingest.Parser for JavaScript source text.
type JSParser struct{}

// New returns the default JavaScript parser
func New() *JSParser {
	return &JSParser{}
}

// SyntaxError describes the first lexical problem found in a file.
type SyntaxError struct {
	Path string
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("parser: %s:%d: %s", e.Path, e.Line, e.Msg)
}

// Parse validates the text and returns its SourceFile representation.
func (p *JSParser) Parse(text []byte, path string) (*ingest.SourceFile, error) {
	if err := scan(text, path); err != nil {
		return nil, err
	}
	return &ingest.SourceFile{Path: path, Text: text}, nil
}

type bracket struct {
	ch   byte
	line int
}

func closerFor(open byte) byte {
	switch open {
	case '(':
		return ')'
	case '[':
		return ']'
	default:
		return '}'
	}
}

// scan walks the source once, skipping string, template and comment
// bodies, and checks that (, [ and { nest correctly.
func scan(text []byte, path string) error {
	var stack []bracket
	line := 1

	fail := func(at int, msg string) error {
		return &SyntaxError{Path: path, Line: at, Msg: msg}
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch c {
		case '\n':
			line++

		case '\'', '"':
			start := line
			i++
			for ; i < len(text); i++ {
				if text[i] == '\\' {
					i++
					continue
				}
				if text[i] == c {
					break
				}
				if text[i] == '\n' {
					return fail(start, "unterminated string literal")
				}
			}
			if i >= len(text) {
				return fail(start, "unterminated string literal")
			}

		case '`':
			start := line
			i++
			for ; i < len(text); i++ {
				if text[i] == '\\' {
					i++
					continue
				}
				if text[i] == '`' {
					break
				}
				if text[i] == '\n' {
					line++
				}
			}
			if i >= len(text) {
				return fail(start, "unterminated template literal")
			}

		case '/':
			if i+1 >= len(text) {
				break
			}
			switch text[i+1] {
			case '/':
				for i++; i < len(text) && text[i] != '\n'; i++ {
				}
				if i < len(text) {
					line++
				}
			case '*':
				start := line
				i += 2
				closed := false
				for ; i < len(text); i++ {
					if text[i] == '\n' {
						line++
					}
					if text[i] == '*' && i+1 < len(text) && text[i+1] == '/' {
						i++
						closed = true
						break
					}
				}
				if !closed {
					return fail(start, "unterminated comment")
				}
			}

		case '(', '[', '{':
			stack = append(stack, bracket{ch: c, line: line})

		case ')', ']', '}':
			if len(stack) == 0 {
				return fail(line, fmt.Sprintf("unexpected token '%c'", c))
			}
			top := stack[len(stack)-1]
			if closerFor(top.ch) != c {
				return fail(line, fmt.Sprintf("unexpected token '%c'", c))
			}
			stack = stack[:len(stack)-1]
		}
	}

	if len(stack) > 0 {
		top := stack[len(stack)-1]
		return fail(top.line, fmt.Sprintf("unclosed '%c'", top.ch))
	}
	return nil
}
