package parser

import "testing"

func TestLexerNumberTokens(t *testing.T) {
	tests := []struct {
		input string
		want  []Token
	}{
		{
			"42",
			[]Token{
				{Type: TOKEN_INT, Value: "42"},
				{Type: TOKEN_EOF, Value: ""},
			},
		},
		{
			"3.14",
			[]Token{
				{Type: TOKEN_FLOAT, Value: "3.14"},
				{Type: TOKEN_EOF, Value: ""},
			},
		},
		{
			"1e10 1.5e-3",
			[]Token{
				{Type: TOKEN_FLOAT, Value: "1e10"},
				{Type: TOKEN_FLOAT, Value: "1.5e-3"},
				{Type: TOKEN_EOF, Value: ""},
			},
		},
		{
			"0b101 0o17 0q23 0xFF",
			[]Token{
				{Type: TOKEN_INT, Value: "0b101"},
				{Type: TOKEN_INT, Value: "0o17"},
				{Type: TOKEN_INT, Value: "0q23"},
				{Type: TOKEN_INT, Value: "0xFF"},
				{Type: TOKEN_EOF, Value: ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := NewLexer(tt.input)
			for i, want := range tt.want {
				tok := l.NextToken()
				if tok.Type != want.Type {
					t.Errorf("token[%d] type = %s, want %s", i, tok.Type, want.Type)
				}
				if tok.Value != want.Value {
					t.Errorf("token[%d] value = %q, want %q", i, tok.Value, want.Value)
				}
			}
		})
	}
}

func TestLexerKeywordsAndIdentifiers(t *testing.T) {
	tests := []struct {
		input string
		want  TokenType
	}{
		{"if", TOKEN_IF},
		{"elif", TOKEN_ELIF},
		{"else", TOKEN_ELSE},
		{"while", TOKEN_WHILE},
		{"function", TOKEN_FUNCTION},
		{"class", TOKEN_CLASS},
		{"promise", TOKEN_PROMISE},
		{"and", TOKEN_AND},
		{"or", TOKEN_OR},
		{"not", TOKEN_NOT},
		{"true", TOKEN_TRUE},
		{"false", TOKEN_FALSE},
		{"null", TOKEN_NULL},
		{"fib", TOKEN_IDENTIFIER},
		{"_private", TOKEN_IDENTIFIER},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := NewLexer(tt.input)
			tok := l.NextToken()
			if tok.Type != tt.want {
				t.Errorf("token type = %s, want %s", tok.Type, tt.want)
			}
		})
	}
}

func TestLexerAssignOldLexeme(t *testing.T) {
	l := NewLexer("x := v; y := (x =: u)")
	var types []TokenType
	for {
		tok := l.NextToken()
		types = append(types, tok.Type)
		if tok.Type == TOKEN_EOF {
			break
		}
	}

	found := false
	for _, ty := range types {
		if ty == TOKEN_ASSIGN_OLD {
			found = true
		}
	}
	if !found {
		t.Errorf("expected to lex a TOKEN_ASSIGN_OLD from '=:', got %v", types)
	}
}

func TestLexerComments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []TokenType
	}{
		{
			"line comment consumes to newline but newline still emits EndLine",
			"1 # a comment\n2",
			[]TokenType{TOKEN_INT, TOKEN_ENDLINE, TOKEN_INT, TOKEN_EOF},
		},
		{
			"block comment is non-nesting",
			"1 \\* block \\* still inside *\\ 2",
			[]TokenType{TOKEN_INT, TOKEN_INT, TOKEN_EOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLexer(tt.input)
			var got []TokenType
			for {
				tok := l.NextToken()
				got = append(got, tok.Type)
				if tok.Type == TOKEN_EOF {
					break
				}
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d tokens %v, want %d %v", len(got), got, len(tt.want), tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLexerHashIsAlwaysAComment(t *testing.T) {
	// Per the specification's lexer contract, '#' always starts a line
	// comment; it can never surface as TOKEN_HASH even though the
	// length operator is documented as '#expr'.
	l := NewLexer("#x\n")
	tok := l.NextToken()
	if tok.Type != TOKEN_ENDLINE {
		t.Errorf("expected the '#x' text to be swallowed as a comment, got %s", tok.Type)
	}
}

func TestLexerString(t *testing.T) {
	l := NewLexer(`"hello \"world\"\\!"`)
	tok := l.NextToken()
	if tok.Type != TOKEN_STRING {
		t.Fatalf("type = %s, want STRING", tok.Type)
	}
	want := `hello "world"\!`
	if tok.Literal != want {
		t.Errorf("literal = %q, want %q", tok.Literal, want)
	}
}

func TestLexerUnterminatedString(t *testing.T) {
	l := NewLexer(`"unterminated`)
	tok := l.NextToken()
	if tok.Type != TOKEN_ILLEGAL {
		t.Errorf("type = %s, want ILLEGAL", tok.Type)
	}
}

func TestLexerEof(t *testing.T) {
	l := NewLexer("")
	tok := l.NextToken()
	if tok.Type != TOKEN_EOF {
		t.Errorf("type = %s, want EOF", tok.Type)
	}
}
