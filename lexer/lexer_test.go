/*
File   : lpm-go/lexer/lexer_test.go
Package: lexer
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// tokenCase pairs a source snippet with the exact tokens NextToken should
// produce for it, in order.
type tokenCase struct {
	Input    string
	Expected []Token
}

func TestNextToken_Punctuation(t *testing.T) {
	cases := []tokenCase{
		{
			Input: "=+(){},;",
			Expected: []Token{
				NewToken(ASSIGN, "="),
				NewToken(PLUS, "+"),
				NewToken(LPAREN, "("),
				NewToken(RPAREN, ")"),
				NewToken(LBRACE, "{"),
				NewToken(RBRACE, "}"),
				NewToken(COMMA, ","),
				NewToken(SEMICOLON, ";"),
			},
		},
		{
			Input: "== != < > - * /",
			Expected: []Token{
				NewToken(EQ, "=="),
				NewToken(NOT_EQ, "!="),
				NewToken(LT, "<"),
				NewToken(GT, ">"),
				NewToken(SUBSTRACT, "-"),
				NewToken(MULTIPLICATION, "*"),
				NewToken(DIVIDE, "/"),
			},
		},
		{
			Input:    "!5",
			Expected: []Token{NewToken(DIFFERENT, "!"), NewToken(INT, "5")},
		},
	}

	for _, c := range cases {
		l := New(c.Input)
		for _, want := range c.Expected {
			got := l.NextToken()
			assert.Equal(t, want, got)
		}
	}
}

func TestNextToken_KeywordsAndIdentifiers(t *testing.T) {
	input := `variable cinco = 5;
variable suma = procedimiento(x, y) {
  regresa x + y;
};
variable resultado = suma(cinco, 10);
si (5 < 10) {
  regresa verdadero;
} si_no {
  regresa falso;
}
10 == 10;
10 != 9;`

	expected := []Token{
		NewToken(LET, "variable"), NewToken(IDENT, "cinco"), NewToken(ASSIGN, "="), NewToken(INT, "5"), NewToken(SEMICOLON, ";"),
		NewToken(LET, "variable"), NewToken(IDENT, "suma"), NewToken(ASSIGN, "="), NewToken(FUNCTION, "procedimiento"),
		NewToken(LPAREN, "("), NewToken(IDENT, "x"), NewToken(COMMA, ","), NewToken(IDENT, "y"), NewToken(RPAREN, ")"), NewToken(LBRACE, "{"),
		NewToken(RETURN, "regresa"), NewToken(IDENT, "x"), NewToken(PLUS, "+"), NewToken(IDENT, "y"), NewToken(SEMICOLON, ";"),
		NewToken(RBRACE, "}"), NewToken(SEMICOLON, ";"),
		NewToken(LET, "variable"), NewToken(IDENT, "resultado"), NewToken(ASSIGN, "="), NewToken(IDENT, "suma"),
		NewToken(LPAREN, "("), NewToken(IDENT, "cinco"), NewToken(COMMA, ","), NewToken(INT, "10"), NewToken(RPAREN, ")"), NewToken(SEMICOLON, ";"),
		NewToken(IF, "si"), NewToken(LPAREN, "("), NewToken(INT, "5"), NewToken(LT, "<"), NewToken(INT, "10"), NewToken(RPAREN, ")"), NewToken(LBRACE, "{"),
		NewToken(RETURN, "regresa"), NewToken(TRUE, "verdadero"), NewToken(SEMICOLON, ";"),
		NewToken(RBRACE, "}"), NewToken(ELSE, "si_no"), NewToken(LBRACE, "{"),
		NewToken(RETURN, "regresa"), NewToken(FALSE, "falso"), NewToken(SEMICOLON, ";"),
		NewToken(RBRACE, "}"),
		NewToken(INT, "10"), NewToken(EQ, "=="), NewToken(INT, "10"), NewToken(SEMICOLON, ";"),
		NewToken(INT, "10"), NewToken(NOT_EQ, "!="), NewToken(INT, "9"), NewToken(SEMICOLON, ";"),
		NewToken(EOF, ""),
	}

	l := New(input)
	for i, want := range expected {
		got := l.NextToken()
		assert.Equalf(t, want, got, "token %d", i)
	}
}

func TestNextToken_AccentedIdentifiers(t *testing.T) {
	l := New(`variable canción = "árbol";`)

	assert.Equal(t, NewToken(LET, "variable"), l.NextToken())
	assert.Equal(t, NewToken(IDENT, "canción"), l.NextToken())
	assert.Equal(t, NewToken(ASSIGN, "="), l.NextToken())
	assert.Equal(t, NewToken(STRING, "árbol"), l.NextToken())
	assert.Equal(t, NewToken(SEMICOLON, ";"), l.NextToken())
}

func TestNextToken_StringLiteral(t *testing.T) {
	l := New(`"Hola mundo"`)
	assert.Equal(t, NewToken(STRING, "Hola mundo"), l.NextToken())
	assert.Equal(t, NewToken(EOF, ""), l.NextToken())
}

func TestNextToken_UnterminatedString(t *testing.T) {
	l := New(`"Hola`)
	assert.Equal(t, NewToken(STRING, "Hola"), l.NextToken())
	assert.Equal(t, NewToken(EOF, ""), l.NextToken())
}

func TestNextToken_IdentifierCantStartWithNumber(t *testing.T) {
	// readNumber only consumes digits, so a digit-led run like "1_foo"
	// splits into an INT followed by an IDENT picking up the rest — this
	// matches the reference lexer's actual token-by-token behavior (see
	// SPEC_FULL.md's open-question note; the reference test of the same
	// name only asserts a token count, not token identity).
	l := New("1_foo;")
	assert.Equal(t, NewToken(INT, "1"), l.NextToken())
	assert.Equal(t, NewToken(IDENT, "_foo"), l.NextToken())
	assert.Equal(t, NewToken(SEMICOLON, ";"), l.NextToken())
}

func TestNextToken_IllegalCharacter(t *testing.T) {
	l := New("@")
	assert.Equal(t, NewToken(ILLEGAL, "@"), l.NextToken())
}
