package cfg

import (
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ParseLine parses a single line into a statement.
//
// It returns (nil, nil) for a line that is empty after trimming spaces or
// whose first unquoted content is a "//" comment. Otherwise it returns
// exactly one statement, or an error wrapping one of [ErrInvalidIdentifier],
// [ErrInvalidString], or [ErrUnexpectedEOL] with the unconsumed input
// attached for diagnostics.
func ParseLine(line string) (*Statement, error) {
	p := &parser{input: line}

	p.skipSpaces()

	if p.emptyOrComment() {
		return nil, nil
	}

	ident, err := p.identifier()
	if err != nil {
		return nil, err
	}

	p.skipSpaces()

	if p.emptyOrComment() {
		st := Command(ident)

		return &st, nil
	}

	arg1, err := p.stringLiteral()
	if err != nil {
		return nil, err
	}

	p.skipSpaces()

	if p.emptyOrComment() {
		st := Setting(ident, arg1)

		return &st, nil
	}

	// Only "bind" takes a second argument. Anything else with content left
	// over is malformed, not extra payload.
	if ident != bindKeyword {
		return nil, ErrUnexpectedEOL.
			With(slog.String("command", ident)).
			With(slog.String("input", p.rest()))
	}

	arg2, err := p.stringLiteral()
	if err != nil {
		return nil, err
	}

	p.skipSpaces()

	if !p.emptyOrComment() {
		return nil, ErrUnexpectedEOL.
			With(slog.String("input", p.rest()))
	}

	st := Bind(arg1, arg2)

	return &st, nil
}

// bindKeyword is the only command permitted to carry two arguments.
const bindKeyword = "bind"

// parser holds the scanning state for one line.
type parser struct {
	input string
	pos   int
}

// rest returns the unconsumed remainder of the line.
func (p *parser) rest() string {
	return p.input[p.pos:]
}

// skipSpaces consumes zero or more ASCII spaces. Tabs and other whitespace
// are not separators in this grammar.
func (p *parser) skipSpaces() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}

// emptyOrComment reports whether the remaining input is empty or begins a
// comment. It is only ever called between tokens, so a "//" inside a quoted
// string can never be mistaken for a comment.
func (p *parser) emptyOrComment() bool {
	return p.pos >= len(p.input) || strings.HasPrefix(p.rest(), "//")
}

// identifier consumes an identifier: a letter, '_', or '@' followed by any
// number of letters, digits, '_', or '@'.
func (p *parser) identifier() (string, error) {
	start := p.pos

	r, size := utf8.DecodeRuneInString(p.rest())
	if !isIdentStart(r) {
		return "", ErrInvalidIdentifier.
			With(slog.String("input", p.rest()))
	}

	p.pos += size

	for p.pos < len(p.input) {
		r, size := utf8.DecodeRuneInString(p.rest())
		if !isIdentRune(r) {
			break
		}

		p.pos += size
	}

	return p.input[start:p.pos], nil
}

// stringLiteral consumes a double-quoted string and returns its contents.
// There are no escape sequences; the literal ends at the next quote.
func (p *parser) stringLiteral() (string, error) {
	if p.pos >= len(p.input) || p.input[p.pos] != '"' {
		return "", ErrInvalidString.
			With(slog.String("input", p.rest()))
	}

	end := strings.IndexByte(p.input[p.pos+1:], '"')
	if end < 0 {
		return "", ErrInvalidString.
			With(slog.String("input", p.rest()))
	}

	contents := p.input[p.pos+1 : p.pos+1+end]
	p.pos += end + 2

	return contents, nil
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || r == '@'
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '@'
}
