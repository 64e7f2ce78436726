/*
Copyright 2026 Cascade Design Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform

import (
	"fmt"

	"github.com/cascade-design/cascade/token"
)

// aliasStep starts a pipeline from another token's resolved value.
func aliasStep(ctx Context, _ token.Value, args []token.Value) (token.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: alias takes exactly one argument, got %d in token %q",
			ErrInvalidTransform, len(args), ctx.TokenName())
	}

	var path string
	switch arg := args[0].(type) {
	case token.String:
		path = string(arg)
	case token.Reference:
		path = string(arg)
	default:
		return nil, fmt.Errorf("%w: alias argument must be a token path, got %T in token %q",
			ErrInvalidTransform, args[0], ctx.TokenName())
	}

	return ctx.ResolveAlias(path)
}

func multiplyStep(ctx Context, input token.Value, args []token.Value) (token.Value, error) {
	factor, err := numberArg(ctx, "multiply", args)
	if err != nil {
		return nil, err
	}
	return arithmetic(ctx, "*", input, token.Number(factor))
}

func addStep(ctx Context, input token.Value, args []token.Value) (token.Value, error) {
	amount, err := amountArg(ctx, "add", args)
	if err != nil {
		return nil, err
	}
	return arithmetic(ctx, "+", input, amount)
}

func subtractStep(ctx Context, input token.Value, args []token.Value) (token.Value, error) {
	amount, err := amountArg(ctx, "subtract", args)
	if err != nil {
		return nil, err
	}
	return arithmetic(ctx, "-", input, amount)
}

func divideStep(ctx Context, input token.Value, args []token.Value) (token.Value, error) {
	divisor, err := numberArg(ctx, "divide", args)
	if err != nil {
		return nil, err
	}
	if divisor == 0 {
		return nil, fmt.Errorf("%w: division by zero in token %q",
			ErrTransformFailed, ctx.TokenName())
	}
	return arithmetic(ctx, "/", input, token.Number(divisor))
}

// numberArg extracts the single Number argument of a numeric step.
func numberArg(ctx Context, step string, args []token.Value) (float64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: %s takes exactly one argument, got %d in token %q",
			ErrInvalidTransform, step, len(args), ctx.TokenName())
	}
	n, ok := args[0].(token.Number)
	if !ok {
		return 0, fmt.Errorf("%w: %s argument must be a number, got %T in token %q",
			ErrInvalidTransform, step, args[0], ctx.TokenName())
	}
	return float64(n), nil
}

// amountArg extracts the single Number or Dimension argument of add and
// subtract.
func amountArg(ctx Context, step string, args []token.Value) (token.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: %s takes exactly one argument, got %d in token %q",
			ErrInvalidTransform, step, len(args), ctx.TokenName())
	}
	switch args[0].(type) {
	case token.Number, token.Dimension:
		return args[0], nil
	}
	return nil, fmt.Errorf("%w: %s argument must be a number or dimension, got %T in token %q",
		ErrInvalidTransform, step, args[0], ctx.TokenName())
}

// arithmetic applies op between the pipeline input and operand.
//
// Number op Number yields Number. Dimension op Number and Dimension op
// Dimension (matching units) yield Dimension. A String input is never
// combined numerically: it is wrapped in a calc() expression so arithmetic
// over var() indirections stays symbolic and defers to the CSS engine.
func arithmetic(ctx Context, op string, input token.Value, operand token.Value) (token.Value, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: %q step needs a pipeline input in token %q",
			ErrTransformFailed, op, ctx.TokenName())
	}

	switch in := input.(type) {
	case token.String:
		return token.String(fmt.Sprintf("calc(%s %s %s)", in, op, operand)), nil

	case token.Number:
		switch amount := operand.(type) {
		case token.Number:
			return applyOp(in, amount, op), nil
		case token.Dimension:
			// A bare number adopts the dimension's unit.
			return token.Dimension{
				Value: float64(applyOp(in, token.Number(amount.Value), op)),
				Unit:  amount.Unit,
			}, nil
		}

	case token.Dimension:
		switch amount := operand.(type) {
		case token.Number:
			return token.Dimension{
				Value: float64(applyOp(token.Number(in.Value), amount, op)),
				Unit:  in.Unit,
			}, nil
		case token.Dimension:
			if op == "*" || op == "/" {
				return nil, fmt.Errorf("%w: cannot %s two dimensions in token %q",
					ErrTransformFailed, opName(op), ctx.TokenName())
			}
			if in.Unit != amount.Unit {
				return nil, fmt.Errorf("%w: unit %q does not match %q in token %q",
					ErrTypeMismatch, in.Unit, amount.Unit, ctx.TokenName())
			}
			return token.Dimension{
				Value: float64(applyOp(token.Number(in.Value), token.Number(amount.Value), op)),
				Unit:  in.Unit,
			}, nil
		}
	}

	return nil, fmt.Errorf("%w: cannot %s %T in token %q",
		ErrTransformFailed, opName(op), input, ctx.TokenName())
}

func applyOp(a, b token.Number, op string) token.Number {
	switch op {
	case "+":
		return a + b
	case "-":
		return a - b
	case "*":
		return a * b
	default:
		return a / b
	}
}

func opName(op string) string {
	switch op {
	case "+":
		return "add"
	case "-":
		return "subtract"
	case "*":
		return "multiply"
	default:
		return "divide"
	}
}
