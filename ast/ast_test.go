/*
File   : lpm-go/ast/ast_test.go
Package: ast
*/
package ast

import (
	"testing"

	"github.com/sebaez11/lpm-go/lexer"
	"github.com/stretchr/testify/assert"
)

func TestProgramString(t *testing.T) {
	program := &Program{
		Statements: []Statement{
			&LetStatement{
				Token: lexer.NewToken(lexer.LET, "variable"),
				Name:  &Identifier{Token: lexer.NewToken(lexer.IDENT, "miVar"), Value: "miVar"},
				Value: &Identifier{Token: lexer.NewToken(lexer.IDENT, "otraVar"), Value: "otraVar"},
			},
		},
	}

	assert.Equal(t, "variable miVar = otraVar;", program.String())
}

func TestReturnStatementString(t *testing.T) {
	stmt := &ReturnStatement{
		Token: lexer.NewToken(lexer.RETURN, "regresa"),
		Value: &IntegerLiteral{Token: lexer.NewToken(lexer.INT, "5"), Value: 5},
	}
	assert.Equal(t, "regresa 5;", stmt.String())
}

func TestIfExpressionString(t *testing.T) {
	ie := &IfExpression{
		Token:     lexer.NewToken(lexer.IF, "si"),
		Condition: &Identifier{Value: "x"},
		Consequence: &BlockStatement{
			Statements: []Statement{
				&ExpressionStatement{Expression: &Identifier{Value: "y"}},
			},
		},
	}
	assert.Equal(t, "si x y", ie.String())

	ie.Alternative = &BlockStatement{
		Statements: []Statement{
			&ExpressionStatement{Expression: &Identifier{Value: "z"}},
		},
	}
	assert.Equal(t, "si x ysi_no z", ie.String())
}

func TestFunctionLiteralString(t *testing.T) {
	fl := &FunctionLiteral{
		Token: lexer.NewToken(lexer.FUNCTION, "procedimiento"),
		Parameters: []*Identifier{
			{Value: "x"},
			{Value: "y"},
		},
		Body: &BlockStatement{
			Statements: []Statement{
				&ExpressionStatement{Expression: &InfixExpression{
					Left:     &Identifier{Value: "x"},
					Operator: "+",
					Right:    &Identifier{Value: "y"},
				}},
			},
		},
	}
	assert.Equal(t, "procedimiento(x, y) (x + y)", fl.String())
}

func TestCallExpressionString(t *testing.T) {
	ce := &CallExpression{
		Function: &Identifier{Value: "suma"},
		Arguments: []Expression{
			&IntegerLiteral{Token: lexer.NewToken(lexer.INT, "1"), Value: 1},
			&IntegerLiteral{Token: lexer.NewToken(lexer.INT, "2"), Value: 2},
		},
	}
	assert.Equal(t, "suma(1, 2)", ce.String())
}
