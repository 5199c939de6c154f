// Package reader implements the tokenizer and recursive-descent
// parser that turn mal source text into the types.Value tree the
// evaluator consumes (spec 4.1).
package reader

import (
	"errors"
	"strconv"

	"github.com/DogMillionaire/mal/internal/errs"
	"github.com/DogMillionaire/mal/internal/types"
)

// ErrNoForm is returned by ReadForm when the input holds only
// whitespace/comments and no top-level form remains — distinct from a
// parse error, since it simply means "nothing here to evaluate".
var ErrNoForm = errors.New("reader: no form to read")

// Parser turns a token stream into Value trees, one top-level form at
// a time; a caller wanting multiple forms calls ReadForm repeatedly.
type Parser struct {
	lex    *Lexer
	peeked *Token
}

// NewParser creates a Parser over src.
func NewParser(src string) *Parser {
	return &Parser{lex: NewLexer(src)}
}

func (p *Parser) next() (Token, error) {
	if p.peeked != nil {
		t := *p.peeked
		p.peeked = nil
		return t, nil
	}
	return p.lex.Next()
}

func (p *Parser) peek() (Token, error) {
	if p.peeked == nil {
		t, err := p.lex.Next()
		if err != nil {
			return Token{}, err
		}
		p.peeked = &t
	}
	return *p.peeked, nil
}

// ReadForm parses a single top-level form from the stream, leaving
// the remainder untouched.
func (p *Parser) ReadForm() (types.Value, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Type == TokEOF {
		return nil, ErrNoForm
	}
	return p.readForm()
}

// ReadString is the convenience entry point used by the `read-string`
// host function and the REPL: parse exactly one form from s.
func ReadString(s string) (types.Value, error) {
	return NewParser(s).ReadForm()
}

func (p *Parser) readForm() (types.Value, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}

	switch tok.Type {
	case TokEOF:
		return nil, errs.NewParse("unexpected EOF", tok.Pos.Line, tok.Pos.Column)
	case TokLParen:
		items, err := p.readSeqUntil(TokRParen, tok)
		if err != nil {
			return nil, err
		}
		return types.NewList(items...), nil
	case TokLBracket:
		items, err := p.readSeqUntil(TokRBracket, tok)
		if err != nil {
			return nil, err
		}
		return types.NewVec(items...), nil
	case TokLBrace:
		return p.readMap(tok)
	case TokRParen, TokRBracket, TokRBrace:
		return nil, errs.NewParse("unexpected '"+tok.Value+"'", tok.Pos.Line, tok.Pos.Column)
	case TokQuote:
		return wrap("quote", p)
	case TokQuasiquote:
		return wrap("quasiquote", p)
	case TokUnquote:
		return wrap("unquote", p)
	case TokSpliceUnquote:
		return wrap("splice-unquote", p)
	case TokDeref:
		return wrap("deref", p)
	case TokMeta:
		meta, err := p.readForm()
		if err != nil {
			return nil, err
		}
		form, err := p.readForm()
		if err != nil {
			return nil, err
		}
		// the swap: meta is read before form but placed after it
		return types.NewList(types.Sym("with-meta"), form, meta), nil
	case TokString:
		return types.Str(tok.Value), nil
	case TokNumber:
		n, err := strconv.ParseInt(tok.Value, 10, 64)
		if err != nil {
			return nil, errs.NewParse("invalid number '"+tok.Value+"'", tok.Pos.Line, tok.Pos.Column)
		}
		return types.Int(n), nil
	case TokKeyword:
		return types.Kw(tok.Value), nil
	case TokAtom:
		switch tok.Value {
		case "nil":
			return types.NilValue, nil
		case "true":
			return types.True, nil
		case "false":
			return types.False, nil
		default:
			return types.Sym(tok.Value), nil
		}
	default:
		return nil, errs.NewParse("unexpected token", tok.Pos.Line, tok.Pos.Column)
	}
}

func wrap(sym string, p *Parser) (types.Value, error) {
	form, err := p.readForm()
	if err != nil {
		return nil, err
	}
	return types.NewList(types.Sym(sym), form), nil
}

func (p *Parser) readSeqUntil(closeType TokenType, open Token) ([]types.Value, error) {
	var items []types.Value
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Type == TokEOF {
			return nil, errs.NewParse("unterminated list/vector starting", open.Pos.Line, open.Pos.Column)
		}
		if tok.Type == closeType {
			p.next()
			return items, nil
		}
		form, err := p.readForm()
		if err != nil {
			return nil, err
		}
		items = append(items, form)
	}
}

func (p *Parser) readMap(open Token) (types.Value, error) {
	m := types.NewMap()
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Type == TokEOF {
			return nil, errs.NewParse("unterminated map starting", open.Pos.Line, open.Pos.Column)
		}
		if tok.Type == TokRBrace {
			p.next()
			return m, nil
		}
		key, err := p.readForm()
		if err != nil {
			return nil, err
		}
		tok, err = p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Type == TokRBrace || tok.Type == TokEOF {
			return nil, errs.NewParse("unbalanced map literal: key without a value", open.Pos.Line, open.Pos.Column)
		}
		val, err := p.readForm()
		if err != nil {
			return nil, err
		}
		m = m.Assoc(key, val)
	}
}
