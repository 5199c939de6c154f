package reader

import (
	"strings"
	"unicode/utf8"

	"github.com/DogMillionaire/mal/internal/errs"
	"golang.org/x/text/unicode/norm"
)

// Lexer tokenizes mal source text (spec 4.1). It is a simple
// one-token-lookahead scanner over the input string; discarded
// whitespace, commas and line comments never produce tokens.
type Lexer struct {
	src    string
	pos    int // byte offset
	line   int
	col    int
}

// NewLexer creates a Lexer over src.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

func isDelimiter(r rune) bool {
	switch r {
	case '(', ')', '[', ']', '{', '}', '\'', '`', '~', '^', '@', '"', ';':
		return true
	}
	return isSpace(r)
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', ',':
		return true
	}
	return false
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func (l *Lexer) pos0() Position {
	return Position{Line: l.line, Column: l.col, Offset: l.pos}
}

func (l *Lexer) peekRune() (rune, int) {
	if l.pos >= len(l.src) {
		return 0, 0
	}
	r, size := utf8.DecodeRuneInString(l.src[l.pos:])
	return r, size
}

func (l *Lexer) advance() rune {
	r, size := l.peekRune()
	if size == 0 {
		return 0
	}
	l.pos += size
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

// skipAtmosphere discards whitespace, commas and line comments.
func (l *Lexer) skipAtmosphere() {
	for {
		r, size := l.peekRune()
		if size == 0 {
			return
		}
		if isSpace(r) {
			l.advance()
			continue
		}
		if r == ';' {
			for {
				r, size := l.peekRune()
				if size == 0 || r == '\n' {
					break
				}
				l.advance()
			}
			continue
		}
		return
	}
}

// Next scans and returns the next token, or a TokEOF token at end of
// input. Errors are *errs.MalError of kind KindParse.
func (l *Lexer) Next() (Token, error) {
	l.skipAtmosphere()
	start := l.pos0()
	r, size := l.peekRune()
	if size == 0 {
		return Token{Type: TokEOF, Pos: start}, nil
	}

	switch r {
	case '(':
		l.advance()
		return Token{Type: TokLParen, Value: "(", Pos: start}, nil
	case ')':
		l.advance()
		return Token{Type: TokRParen, Value: ")", Pos: start}, nil
	case '[':
		l.advance()
		return Token{Type: TokLBracket, Value: "[", Pos: start}, nil
	case ']':
		l.advance()
		return Token{Type: TokRBracket, Value: "]", Pos: start}, nil
	case '{':
		l.advance()
		return Token{Type: TokLBrace, Value: "{", Pos: start}, nil
	case '}':
		l.advance()
		return Token{Type: TokRBrace, Value: "}", Pos: start}, nil
	case '\'':
		l.advance()
		return Token{Type: TokQuote, Value: "'", Pos: start}, nil
	case '`':
		l.advance()
		return Token{Type: TokQuasiquote, Value: "`", Pos: start}, nil
	case '^':
		l.advance()
		return Token{Type: TokMeta, Value: "^", Pos: start}, nil
	case '@':
		l.advance()
		return Token{Type: TokDeref, Value: "@", Pos: start}, nil
	case '~':
		l.advance()
		if r2, size2 := l.peekRune(); size2 != 0 && r2 == '@' {
			l.advance()
			return Token{Type: TokSpliceUnquote, Value: "~@", Pos: start}, nil
		}
		return Token{Type: TokUnquote, Value: "~", Pos: start}, nil
	case '"':
		return l.readString(start)
	case ':':
		return l.readKeyword(start)
	}

	if r == '-' || isDigit(r) {
		if tok, ok, err := l.tryReadNumber(start); ok || err != nil {
			return tok, err
		}
	}

	return l.readAtom(start)
}

func (l *Lexer) readString(start Position) (Token, error) {
	l.advance() // opening quote
	var sb strings.Builder
	for {
		r, size := l.peekRune()
		if size == 0 {
			return Token{}, errs.NewParse("unterminated string", start.Line, start.Column)
		}
		if r == '"' {
			l.advance()
			return Token{Type: TokString, Value: sb.String(), Pos: start}, nil
		}
		if r == '\\' {
			l.advance()
			esc, escSize := l.peekRune()
			if escSize == 0 {
				return Token{}, errs.NewParse("unterminated string", start.Line, start.Column)
			}
			l.advance()
			switch esc {
			case 'n':
				sb.WriteRune('\n')
			case '"':
				sb.WriteRune('"')
			case '\\':
				sb.WriteRune('\\')
			default:
				// any other backslash-escape is a literal of the following character
				sb.WriteRune(esc)
			}
			continue
		}
		sb.WriteRune(r)
		l.advance()
	}
}

func (l *Lexer) readKeyword(start Position) (Token, error) {
	l.advance() // ':'
	var sb strings.Builder
	for {
		r, size := l.peekRune()
		if size == 0 || isDelimiter(r) {
			break
		}
		sb.WriteRune(r)
		l.advance()
	}
	if sb.Len() == 0 {
		return Token{}, errs.NewParse("empty keyword", start.Line, start.Column)
	}
	return Token{Type: TokKeyword, Value: norm.NFC.String(sb.String()), Pos: start}, nil
}

// tryReadNumber attempts to scan an optional '-' followed by one or
// more digits. It returns ok=false without consuming input when the
// lookahead is not actually a number (e.g. a bare "-" used as a
// symbol), so the caller can fall back to readAtom.
func (l *Lexer) tryReadNumber(start Position) (Token, bool, error) {
	save := *l
	var sb strings.Builder
	if r, size := l.peekRune(); size != 0 && r == '-' {
		sb.WriteRune(r)
		l.advance()
	}
	digits := 0
	for {
		r, size := l.peekRune()
		if size == 0 || !isDigit(r) {
			break
		}
		sb.WriteRune(r)
		l.advance()
		digits++
	}
	if digits == 0 {
		*l = save
		return Token{}, false, nil
	}
	// a number token must end at a delimiter boundary; otherwise this
	// is a symbol that merely starts with digits after a '-', e.g. -1x
	if r, size := l.peekRune(); size != 0 && !isDelimiter(r) {
		*l = save
		return Token{}, false, nil
	}
	return Token{Type: TokNumber, Value: sb.String(), Pos: start}, true, nil
}

func (l *Lexer) readAtom(start Position) (Token, error) {
	var sb strings.Builder
	for {
		r, size := l.peekRune()
		if size == 0 || isDelimiter(r) {
			break
		}
		sb.WriteRune(r)
		l.advance()
	}
	if sb.Len() == 0 {
		return Token{}, errs.NewParse("unexpected character", start.Line, start.Column)
	}
	return Token{Type: TokAtom, Value: norm.NFC.String(sb.String()), Pos: start}, nil
}
