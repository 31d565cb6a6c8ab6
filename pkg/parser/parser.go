// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package parser parses s-expression denotations of series, such as
// "(* (sin 1) (sin 1))" or "(inv (geo))".  Atoms are integer or rational
// literals denoting constant series; lists apply an operator or a named
// series constructor to their arguments.
package parser

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/consensys/go-laurent/pkg/series"
	"github.com/consensys/go-laurent/pkg/series/catalog"
)

// SyntaxError signals a malformed expression, reporting the byte offset at
// which parsing failed.
type SyntaxError struct {
	// Byte offset of offending token.
	Offset int
	// Description of the problem.
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Msg)
}

// Parse parses a complete expression into a series.  Division by an
// expression denoting the zero series surfaces series.ErrDivisionByZero.
func Parse(input string) (*series.Series, error) {
	p := &parser{input: input}
	p.skipSpace()
	//
	result, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	//
	p.skipSpace()
	//
	if p.index != len(p.input) {
		return nil, p.errorf("unexpected trailing input")
	}
	//
	return result, nil
}

type parser struct {
	input string
	index int
}

func (p *parser) parseExpr() (*series.Series, error) {
	if p.index >= len(p.input) {
		return nil, p.errorf("unexpected end of input")
	}
	//
	if p.input[p.index] == '(' {
		return p.parseList()
	}
	//
	return p.parseLiteral()
}

// parseList parses an operator or constructor application.
func (p *parser) parseList() (*series.Series, error) {
	open := p.index
	// Consume '('
	p.index++
	p.skipSpace()
	//
	head, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	//
	switch head {
	case "+", "-", "*", "/", "inv":
		return p.parseOperator(head, open)
	case "geo", "exp", "sin", "cos", "sinh", "cosh":
		return p.parseNamed(head)
	case "mono":
		return p.parseMonomial()
	case "poly":
		return p.parsePolynomial()
	default:
		return nil, &SyntaxError{open, fmt.Sprintf("unknown operator %q", head)}
	}
}

// parseOperator parses the arguments of an arithmetic operator and applies
// it.  Addition and multiplication fold left over two or more arguments;
// subtraction accepts one (negation) or two; division and inversion are
// fixed-arity.
func (p *parser) parseOperator(op string, open int) (*series.Series, error) {
	args, err := p.parseArgs()
	if err != nil {
		return nil, err
	}
	//
	arity := func(ok bool) error {
		if !ok {
			return &SyntaxError{open, fmt.Sprintf("wrong number of arguments for %q", op)}
		}
		//
		return nil
	}
	//
	switch op {
	case "+":
		if err := arity(len(args) >= 2); err != nil {
			return nil, err
		}
		//
		return fold(args, (*series.Series).Add), nil
	case "*":
		if err := arity(len(args) >= 2); err != nil {
			return nil, err
		}
		//
		return fold(args, (*series.Series).Mul), nil
	case "-":
		if err := arity(len(args) == 1 || len(args) == 2); err != nil {
			return nil, err
		}
		//
		if len(args) == 1 {
			return args[0].Neg(), nil
		}
		//
		return args[0].Sub(args[1]), nil
	case "/":
		if err := arity(len(args) == 2); err != nil {
			return nil, err
		}
		//
		return args[0].Div(args[1])
	default:
		// inv
		if err := arity(len(args) == 1); err != nil {
			return nil, err
		}
		//
		return args[0].Inverse()
	}
}

// parseNamed parses a named-series constructor, whose optional single
// argument is an integer (defaulting to one).
func (p *parser) parseNamed(name string) (*series.Series, error) {
	args, err := p.parseIntArgs()
	if err != nil {
		return nil, err
	}
	//
	if name == "geo" {
		if len(args) != 0 {
			return nil, p.errorf("geo takes no arguments")
		}
		//
		return catalog.Geometric(), nil
	}
	//
	a := int64(1)
	//
	switch len(args) {
	case 0:
	case 1:
		a = args[0]
	default:
		return nil, p.errorf("%s takes at most one argument", name)
	}
	//
	switch name {
	case "exp":
		return catalog.Exp(a), nil
	case "sin":
		return catalog.Sin(a), nil
	case "cos":
		return catalog.Cos(a), nil
	case "sinh":
		return catalog.Sinh(a), nil
	default:
		return catalog.Cosh(a), nil
	}
}

func (p *parser) parseMonomial() (*series.Series, error) {
	args, err := p.parseIntArgs()
	if err != nil {
		return nil, err
	}
	//
	if len(args) != 2 {
		return nil, p.errorf("mono takes a degree and a coefficient")
	}
	//
	return catalog.Monomial(int(args[0]), args[1]), nil
}

func (p *parser) parsePolynomial() (*series.Series, error) {
	var coeffs []*big.Rat
	//
	for {
		p.skipSpace()
		//
		if p.index < len(p.input) && p.input[p.index] == ')' {
			p.index++
			break
		}
		//
		c, err := p.parseRat()
		if err != nil {
			return nil, err
		}
		//
		coeffs = append(coeffs, c)
	}
	//
	if len(coeffs) == 0 {
		return nil, p.errorf("poly takes at least one coefficient")
	}
	//
	return catalog.Polynomial(coeffs...), nil
}

// parseArgs parses series expressions up to the closing parenthesis.
func (p *parser) parseArgs() ([]*series.Series, error) {
	var args []*series.Series
	//
	for {
		p.skipSpace()
		//
		if p.index >= len(p.input) {
			return nil, p.errorf("unexpected end of input")
		}
		//
		if p.input[p.index] == ')' {
			p.index++
			return args, nil
		}
		//
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		//
		args = append(args, arg)
	}
}

// parseIntArgs parses integer literals up to the closing parenthesis.
func (p *parser) parseIntArgs() ([]int64, error) {
	var args []int64
	//
	for {
		p.skipSpace()
		//
		if p.index >= len(p.input) {
			return nil, p.errorf("unexpected end of input")
		}
		//
		if p.input[p.index] == ')' {
			p.index++
			return args, nil
		}
		//
		offset := p.index
		//
		atom, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		//
		val, err := strconv.ParseInt(atom, 10, 64)
		if err != nil {
			return nil, &SyntaxError{offset, fmt.Sprintf("expected integer, found %q", atom)}
		}
		//
		args = append(args, val)
	}
}

// parseLiteral parses an integer or rational literal as a constant series.
func (p *parser) parseLiteral() (*series.Series, error) {
	c, err := p.parseRat()
	if err != nil {
		return nil, err
	}
	//
	return catalog.Constant(c), nil
}

func (p *parser) parseRat() (*big.Rat, error) {
	offset := p.index
	//
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	//
	c, ok := new(big.Rat).SetString(atom)
	if !ok || strings.ContainsAny(atom, ".eE") {
		return nil, &SyntaxError{offset, fmt.Sprintf("expected rational, found %q", atom)}
	}
	//
	return c, nil
}

// parseAtom consumes a maximal run of non-delimiter characters.
func (p *parser) parseAtom() (string, error) {
	start := p.index
	//
	for p.index < len(p.input) && !isDelimiter(p.input[p.index]) {
		p.index++
	}
	//
	if start == p.index {
		return "", p.errorf("expected atom")
	}
	//
	return p.input[start:p.index], nil
}

func (p *parser) skipSpace() {
	for p.index < len(p.input) && isSpace(p.input[p.index]) {
		p.index++
	}
}

func (p *parser) errorf(format string, args ...any) *SyntaxError {
	return &SyntaxError{p.index, fmt.Sprintf(format, args...)}
}

func fold(args []*series.Series, op func(*series.Series, *series.Series) *series.Series) *series.Series {
	acc := args[0]
	//
	for _, arg := range args[1:] {
		acc = op(acc, arg)
	}
	//
	return acc
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDelimiter(c byte) bool {
	return isSpace(c) || c == '(' || c == ')'
}
