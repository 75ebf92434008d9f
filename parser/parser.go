package parser

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"ditchy/dierr"
)

// Parser turns a token stream into a single root Scope via recursive
// descent with explicit precedence climbing (one method per grammar
// rule), rather than a Pratt prefix/infix table — this mirrors the
// teacher's hand-written descent in its own parser.
type Parser struct {
	lexer   *Lexer
	current Token
	peek    Token
}

// NewParser creates a Parser ready to parse input.
func NewParser(input string) *Parser {
	p := &Parser{lexer: NewLexer(input)}
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.current = p.peek
	p.peek = p.lexer.NextToken()
}

func (p *Parser) pos() Position { return p.current.Position }

func (p *Parser) errorf(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	caret := strings.Repeat(" ", max(p.current.Position.Column-1, 0)) + strings.Repeat("^", max(len(p.current.Value), 1))
	return dierr.NewStaticSyntaxError(p.current.Position.Line, p.current.Position.Column,
		fmt.Sprintf("%s\n%s\nfound %q", msg, caret, p.current.Value))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// expect consumes the current token if it matches tt, else errors.
func (p *Parser) expect(tt TokenType) (Token, error) {
	if p.current.Type != tt {
		return Token{}, p.errorf("expected %s", tt)
	}
	tok := p.current
	p.nextToken()
	return tok, nil
}

func (p *Parser) skipEndLines() {
	for p.current.Type == TOKEN_ENDLINE {
		p.nextToken()
	}
}

// ParseProgram parses the whole input into a single root Scope.
func ParseProgram(input string) (*Scope, error) {
	p := NewParser(input)
	return p.parseProgram()
}

func (p *Parser) parseProgram() (*Scope, error) {
	root := &Scope{Pos: Position{Line: 1, Column: 1}}
	p.skipEndLines()
	for p.current.Type != TOKEN_EOF {
		expr, err := p.parseExpressionStatement()
		if err != nil {
			return nil, err
		}
		root.Instructions = append(root.Instructions, expr)
		p.skipEndLines()
	}
	return root, nil
}

// parseExpressionStatement implements the `expression` grammar rule:
// leading EndLine tokens are skipped before a single assignment; trailing
// EndLine tokens are left for the caller to skip.
func (p *Parser) parseExpressionStatement() (Node, error) {
	p.skipEndLines()
	expr, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	return expr, nil
}

// parseLiteralNumber converts a lexed INT/FLOAT token into an AST literal.
func (p *Parser) parseLiteralNumber(tok Token) (Node, error) {
	if tok.Type == TOKEN_FLOAT {
		f, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return nil, dierr.NewStaticSyntaxError(tok.Position.Line, tok.Position.Column,
				"invalid float literal: "+tok.Value)
		}
		return &FloatLit{Pos: tok.Position, Val: f}, nil
	}

	text, base := tok.Value, 10
	switch {
	case strings.HasPrefix(text, "0b"):
		base, text = 2, text[2:]
	case strings.HasPrefix(text, "0o"):
		base, text = 8, text[2:]
	case strings.HasPrefix(text, "0q"):
		base, text = 4, text[2:]
	case strings.HasPrefix(text, "0x"):
		base, text = 16, text[2:]
	}
	n, ok := new(big.Int).SetString(text, base)
	if !ok {
		return nil, dierr.NewStaticSyntaxError(tok.Position.Line, tok.Position.Column,
			"invalid integer literal: "+tok.Value)
	}
	return &IntLit{Pos: tok.Position, Val: n}, nil
}

// parseArgs implements `args := [ expression { ',' { EndLine } expression } ]`
// up to (not including) the closing token, which the caller consumes.
func (p *Parser) parseArgs(closing TokenType) ([]Node, error) {
	var args []Node
	if p.current.Type == closing {
		return args, nil
	}
	for {
		p.skipEndLines()
		arg, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		p.skipEndLines()
		if p.current.Type != TOKEN_COMMA {
			break
		}
		p.nextToken()
		p.skipEndLines()
	}
	return args, nil
}

// parseParams implements `params := [ IDENT { ',' { EndLine } IDENT } ]`.
func (p *Parser) parseParams() ([]string, error) {
	var params []string
	if p.current.Type == TOKEN_RPAREN {
		return params, nil
	}
	for {
		p.skipEndLines()
		name, err := p.expect(TOKEN_IDENTIFIER)
		if err != nil {
			return nil, err
		}
		params = append(params, name.Value)
		p.skipEndLines()
		if p.current.Type != TOKEN_COMMA {
			break
		}
		p.nextToken()
		p.skipEndLines()
	}
	return params, nil
}
