package interpreter

import (
	"fmt"
	"log/slog"

	"github.com/tangzhangming/fddl/internal/i18n"
	"github.com/tangzhangming/fddl/internal/parser"
	"github.com/tangzhangming/fddl/internal/runtime"
)

// execStatement 执行单条语句
func (i *Interpreter) execStatement(stmt parser.Statement) error {
	switch s := stmt.(type) {
	case *parser.ExpressionStmt:
		_, err := i.evalExpression(s.Expression)
		return err

	case *parser.PrintStmt:
		v, err := i.evalExpression(s.Value)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(i.out, v.String())
		return err

	case *parser.VarDecl:
		var v runtime.Value = runtime.Nil{}
		if s.Value != nil {
			var err error
			if v, err = i.evalExpression(s.Value); err != nil {
				return err
			}
		}
		return runtime.AtLine(i.env.Define(s.Name, v), s.Token.Line)

	case *parser.ConstDecl:
		v, err := i.evalExpression(s.Value)
		if err != nil {
			return err
		}
		return runtime.AtLine(i.env.DefineConst(s.Name, v), s.Token.Line)

	case *parser.AssignStmt:
		v, err := i.evalExpression(s.Value)
		if err != nil {
			return err
		}
		return runtime.AtLine(i.env.Assign(s.Name, v), s.Token.Line)

	case *parser.BlockStmt:
		return i.execBlock(s)

	case *parser.IfStmt:
		return i.execIf(s)

	case *parser.WhileStmt:
		return i.execWhile(s)

	case *parser.ForStmt:
		return unimplemented("for loop", s.Token.Line)
	case *parser.FuncDecl:
		return unimplemented("function declaration", s.Token.Line)
	case *parser.ReturnStmt:
		return unimplemented("return statement", s.Token.Line)
	}

	return runtime.NewError(runtime.Unimplemented, i18n.RtUnimplemented, fmt.Sprintf("%T", stmt))
}

// execBlock 在新的子作用域中执行代码块，出错时同样恢复父作用域
func (i *Interpreter) execBlock(block *parser.BlockStmt) error {
	i.env.Push()
	i.log.Debug("push scope", slog.Int("depth", i.env.Depth()), slog.Int("line", block.Token.Line))
	defer func() {
		i.env.Pop()
		i.log.Debug("pop scope", slog.Int("depth", i.env.Depth()))
	}()

	return i.Execute(block.Statements)
}

// execIf 条件只求值一次，最多执行一个分支
func (i *Interpreter) execIf(stmt *parser.IfStmt) error {
	cond, err := i.evalExpression(stmt.Condition)
	if err != nil {
		return err
	}
	if runtime.Truthy(cond) {
		return i.execStatement(stmt.Consequence)
	}
	if stmt.Alternative != nil {
		return i.execStatement(stmt.Alternative)
	}
	return nil
}

// execWhile 每次迭代前重新求值条件
func (i *Interpreter) execWhile(stmt *parser.WhileStmt) error {
	for {
		cond, err := i.evalExpression(stmt.Condition)
		if err != nil {
			return err
		}
		if !runtime.Truthy(cond) {
			return nil
		}
		if err := i.execStatement(stmt.Body); err != nil {
			return err
		}
	}
}

func unimplemented(construct string, line int) error {
	err := runtime.NewError(runtime.Unimplemented, i18n.RtUnimplemented, construct)
	err.Line = line
	return err
}
