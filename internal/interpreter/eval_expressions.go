package interpreter

import (
	"math"

	"github.com/tangzhangming/fddl/internal/i18n"
	"github.com/tangzhangming/fddl/internal/parser"
	"github.com/tangzhangming/fddl/internal/runtime"
)

// evalExpression 对表达式求值
func (i *Interpreter) evalExpression(expr parser.Expression) (runtime.Value, error) {
	switch e := expr.(type) {
	case *parser.NumberLiteral:
		return runtime.Number(e.Value), nil
	case *parser.StringLiteral:
		return runtime.String(e.Value), nil
	case *parser.BoolLiteral:
		return runtime.Bool(e.Value), nil
	case *parser.NilLiteral:
		return runtime.Nil{}, nil

	case *parser.Identifier:
		v, err := i.env.Get(e.Value)
		if err != nil {
			return nil, runtime.AtLine(err, e.Token.Line)
		}
		return v, nil

	case *parser.ParenExpr:
		return i.evalExpression(e.X)

	case *parser.UnaryExpr:
		return i.evalUnary(e)

	case *parser.BinaryExpr:
		return i.evalBinary(e)

	case *parser.CallExpr:
		return nil, unimplemented("function call", e.Token.Line)
	}

	return nil, runtime.NewError(runtime.Unimplemented, i18n.RtUnimplemented, "expression")
}

// evalUnary 一元运算
func (i *Interpreter) evalUnary(e *parser.UnaryExpr) (runtime.Value, error) {
	operand, err := i.evalExpression(e.Operand)
	if err != nil {
		return nil, err
	}

	switch e.Operator {
	case parser.OpMinus:
		n, ok := operand.(runtime.Number)
		if !ok {
			return nil, typeError(e.Token.Line, i18n.RtOperandMustBeNumber, e.Operator, runtime.Describe(operand))
		}
		return -n, nil
	case parser.OpNot:
		return runtime.Bool(!runtime.Truthy(operand)), nil
	case parser.OpSome:
		_, isNil := operand.(runtime.Nil)
		return runtime.Bool(!isNil), nil
	case parser.OpAlmost:
		return runtime.Almost(operand), nil
	}

	return nil, unimplemented("unary '"+e.Operator.String()+"'", e.Token.Line)
}

// evalBinary 二元运算；and/or 短路求值，结果转换为布尔值
func (i *Interpreter) evalBinary(e *parser.BinaryExpr) (runtime.Value, error) {
	left, err := i.evalExpression(e.Left)
	if err != nil {
		return nil, err
	}

	switch e.Operator {
	case parser.OpAnd:
		if !runtime.Truthy(left) {
			return runtime.Bool(false), nil
		}
		return i.evalTruthiness(e.Right)
	case parser.OpOr:
		if runtime.Truthy(left) {
			return runtime.Bool(true), nil
		}
		return i.evalTruthiness(e.Right)
	}

	right, err := i.evalExpression(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator {
	case parser.OpEqual:
		return runtime.Bool(runtime.Equal(left, right)), nil
	case parser.OpNotEqual:
		return runtime.Bool(!runtime.Equal(left, right)), nil
	}

	l, lok := left.(runtime.Number)
	r, rok := right.(runtime.Number)
	if !lok || !rok {
		return nil, typeError(e.Token.Line, i18n.RtOperandsMustBeNumbers,
			e.Operator, runtime.Describe(left), runtime.Describe(right))
	}

	switch e.Operator {
	case parser.OpPlus:
		return l + r, nil
	case parser.OpMinus:
		return l - r, nil
	case parser.OpMultiply:
		return l * r, nil
	case parser.OpDivide:
		if r == 0 {
			return nil, zeroError(e.Token.Line, i18n.RtDivisionByZero)
		}
		return l / r, nil
	case parser.OpModulus:
		if r == 0 {
			return nil, zeroError(e.Token.Line, i18n.RtModulusByZero)
		}
		return runtime.Number(math.Mod(float64(l), float64(r))), nil
	case parser.OpGreater:
		return runtime.Bool(l > r), nil
	case parser.OpGreaterEqual:
		return runtime.Bool(l >= r), nil
	case parser.OpLess:
		return runtime.Bool(l < r), nil
	case parser.OpLessEqual:
		return runtime.Bool(l <= r), nil
	}

	return nil, unimplemented("binary '"+e.Operator.String()+"'", e.Token.Line)
}

func (i *Interpreter) evalTruthiness(expr parser.Expression) (runtime.Value, error) {
	v, err := i.evalExpression(expr)
	if err != nil {
		return nil, err
	}
	return runtime.Bool(runtime.Truthy(v)), nil
}

func typeError(line int, key string, args ...any) error {
	err := runtime.NewError(runtime.TypeMismatch, key, args...)
	err.Line = line
	return err
}

func zeroError(line int, key string) error {
	err := runtime.NewError(runtime.DivisionByZero, key)
	err.Line = line
	return err
}
