/*
File   : lpm-go/lexer/token.go
Package: lexer
*/

// Package lexer implements lexical analysis for the LPM language: it turns
// raw source text into a stream of Tokens. The package owns both the
// TokenType vocabulary and the scanning state machine (see lexer.go),
// mirroring how a single lexer package carries its own token vocabulary
// rather than splitting token definitions into a separate module.
package lexer

// TokenType identifies the lexical category of a Token. It is defined as a
// string so token types read naturally in error messages and tests without
// an extra stringer step.
type TokenType string

// TokenType constants. This is a closed set: every token the lexer can ever
// produce has one of these types.
const (
	// ILLEGAL marks a character the lexer does not recognize.
	ILLEGAL TokenType = "ILLEGAL"
	// EOF marks the end of the input stream.
	EOF TokenType = "EOF"

	// Identifiers and literals.
	IDENT  TokenType = "IDENT"
	INT    TokenType = "INT"
	STRING TokenType = "STRING"

	// Operators.
	ASSIGN         TokenType = "="
	PLUS           TokenType = "+"
	SUBSTRACT      TokenType = "-"
	MULTIPLICATION TokenType = "*"
	DIVIDE         TokenType = "/"
	DIFFERENT      TokenType = "!"
	LT             TokenType = "<"
	GT             TokenType = ">"
	EQ             TokenType = "=="
	NOT_EQ         TokenType = "!="

	// Delimiters.
	COMMA     TokenType = ","
	SEMICOLON TokenType = ";"
	LPAREN    TokenType = "("
	RPAREN    TokenType = ")"
	LBRACE    TokenType = "{"
	RBRACE    TokenType = "}"

	// Keywords. The surface syntax uses Spanish keywords; the token types
	// stay in English so the rest of the pipeline (parser, evaluator,
	// tests) reads like any other Pratt-parser reference.
	FUNCTION TokenType = "FUNCTION"
	LET      TokenType = "LET"
	TRUE     TokenType = "TRUE"
	FALSE    TokenType = "FALSE"
	IF       TokenType = "IF"
	ELSE     TokenType = "ELSE"
	RETURN   TokenType = "RETURN"
)

// keywords maps the Spanish surface keyword to its token type. Anything not
// in this table that matches the identifier grammar lexes as IDENT.
var keywords = map[string]TokenType{
	"variable":      LET,
	"procedimiento": FUNCTION,
	"si":            IF,
	"si_no":         ELSE,
	"regresa":       RETURN,
	"verdadero":     TRUE,
	"falso":         FALSE,
}

// LookupIdent classifies a scanned identifier string as a keyword token or
// a plain IDENT.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// Token is a single lexical unit: a type tag plus the exact source text
// that produced it. Equality is structural over (Type, Literal).
type Token struct {
	Type    TokenType
	Literal string
}

// NewToken builds a Token from a type and literal. Most call sites in the
// lexer use this rather than constructing a Token struct literal directly,
// so that the field order never has to be remembered at the call site.
func NewToken(tokenType TokenType, literal string) Token {
	return Token{Type: tokenType, Literal: literal}
}
