package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// Format 将 AST 节点格式化为 S 表达式，例如 (print (+ 1 (* 2 3)))
func Format(node Node) string {
	var sb strings.Builder
	writeNode(&sb, node)
	return sb.String()
}

func writeNode(sb *strings.Builder, node Node) {
	switch n := node.(type) {
	case nil:
		sb.WriteString("_")

	case *Program:
		for i, stmt := range n.Statements {
			if i > 0 {
				sb.WriteByte('\n')
			}
			writeNode(sb, stmt)
		}

	// 语句
	case *ExpressionStmt:
		writeList(sb, "expr", n.Expression)
	case *PrintStmt:
		writeList(sb, "print", n.Value)
	case *VarDecl:
		if n.Value == nil {
			fmt.Fprintf(sb, "(let %s)", n.Name)
			return
		}
		fmt.Fprintf(sb, "(let %s ", n.Name)
		writeNode(sb, n.Value)
		sb.WriteByte(')')
	case *ConstDecl:
		fmt.Fprintf(sb, "(const %s ", n.Name)
		writeNode(sb, n.Value)
		sb.WriteByte(')')
	case *AssignStmt:
		fmt.Fprintf(sb, "(assign %s ", n.Name)
		writeNode(sb, n.Value)
		sb.WriteByte(')')
	case *BlockStmt:
		nodes := make([]Node, len(n.Statements))
		for i, stmt := range n.Statements {
			nodes[i] = stmt
		}
		writeList(sb, "block", nodes...)
	case *IfStmt:
		if n.Alternative == nil {
			writeList(sb, "if", n.Condition, n.Consequence)
			return
		}
		writeList(sb, "if", n.Condition, n.Consequence, n.Alternative)
	case *WhileStmt:
		writeList(sb, "while", n.Condition, n.Body)
	case *ForStmt:
		writeList(sb, "for", optional(n.Init), optionalExpr(n.Condition), optional(n.Post), n.Body)
	case *FuncDecl:
		fmt.Fprintf(sb, "(func %s (%s) ", n.Name, strings.Join(n.Params, " "))
		writeNode(sb, n.Body)
		sb.WriteByte(')')
	case *ReturnStmt:
		if n.Value == nil {
			sb.WriteString("(return)")
			return
		}
		writeList(sb, "return", n.Value)

	// 表达式
	case *Identifier:
		sb.WriteString(n.Value)
	case *NumberLiteral:
		sb.WriteString(strconv.FormatFloat(n.Value, 'f', -1, 64))
	case *StringLiteral:
		sb.WriteString(strconv.Quote(n.Value))
	case *BoolLiteral:
		sb.WriteString(strconv.FormatBool(n.Value))
	case *NilLiteral:
		sb.WriteString("nil")
	case *UnaryExpr:
		writeList(sb, n.Operator.String(), n.Operand)
	case *BinaryExpr:
		writeList(sb, n.Operator.String(), n.Left, n.Right)
	case *ParenExpr:
		writeList(sb, "group", n.X)
	case *CallExpr:
		nodes := make([]Node, 0, len(n.Arguments)+1)
		nodes = append(nodes, n.Function)
		for _, arg := range n.Arguments {
			nodes = append(nodes, arg)
		}
		writeList(sb, "call", nodes...)

	default:
		fmt.Fprintf(sb, "<%T>", node)
	}
}

func writeList(sb *strings.Builder, head string, nodes ...Node) {
	sb.WriteByte('(')
	sb.WriteString(head)
	for _, n := range nodes {
		sb.WriteByte(' ')
		writeNode(sb, n)
	}
	sb.WriteByte(')')
}

// optional 把可选子节点的 typed nil 转换为 nil 接口
func optional(s Statement) Node {
	if s == nil {
		return nil
	}
	return s
}

func optionalExpr(e Expression) Node {
	if e == nil {
		return nil
	}
	return e
}
