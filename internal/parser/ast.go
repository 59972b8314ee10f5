package parser

import (
	"github.com/tangzhangming/fddl/internal/lexer"
)

// Node AST 节点接口
type Node interface {
	TokenLiteral() string
}

// Statement 语句接口
type Statement interface {
	Node
	statementNode()
}

// Expression 表达式接口
type Expression interface {
	Node
	expressionNode()
}

// Operator 一元或二元运算符
type Operator int

const (
	OpPlus Operator = iota
	OpMinus
	OpMultiply
	OpDivide
	OpModulus
	OpGreater
	OpGreaterEqual
	OpLess
	OpLessEqual
	OpEqual
	OpNotEqual
	OpAnd
	OpOr

	// 只用于一元表达式
	OpNot
	OpAlmost
	OpSome
)

var operatorSymbols = [...]string{
	OpPlus:         "+",
	OpMinus:        "-",
	OpMultiply:     "*",
	OpDivide:       "/",
	OpModulus:      "%",
	OpGreater:      ">",
	OpGreaterEqual: ">=",
	OpLess:         "<",
	OpLessEqual:    "<=",
	OpEqual:        "==",
	OpNotEqual:     "!=",
	OpAnd:          "and",
	OpOr:           "or",
	OpNot:          "not",
	OpAlmost:       "~",
	OpSome:         "some",
}

func (op Operator) String() string {
	if int(op) < len(operatorSymbols) {
		return operatorSymbols[op]
	}
	return "?"
}

var binaryOperators = map[lexer.TokenType]Operator{
	lexer.TOKEN_PLUS:     OpPlus,
	lexer.TOKEN_MINUS:    OpMinus,
	lexer.TOKEN_ASTERISK: OpMultiply,
	lexer.TOKEN_SLASH:    OpDivide,
	lexer.TOKEN_PERCENT:  OpModulus,
	lexer.TOKEN_GT:       OpGreater,
	lexer.TOKEN_GT_EQ:    OpGreaterEqual,
	lexer.TOKEN_LT:       OpLess,
	lexer.TOKEN_LT_EQ:    OpLessEqual,
	lexer.TOKEN_EQ:       OpEqual,
	lexer.TOKEN_NOT_EQ:   OpNotEqual,
	lexer.TOKEN_AND:      OpAnd,
	lexer.TOKEN_OR:       OpOr,
}

var unaryOperators = map[lexer.TokenType]Operator{
	lexer.TOKEN_MINUS: OpMinus,
	lexer.TOKEN_NOT:   OpNot,
	lexer.TOKEN_TILDE: OpAlmost,
	lexer.TOKEN_SOME:  OpSome,
}

// Program 表示一个完整的程序（顶层语句序列）
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string { return "program" }

// ---------- 语句 ----------

// ExpressionStmt 表达式语句，结果被丢弃
type ExpressionStmt struct {
	Token      lexer.Token // 表达式的第一个 token
	Expression Expression
}

func (e *ExpressionStmt) TokenLiteral() string { return e.Token.Literal }
func (e *ExpressionStmt) statementNode()       {}

// PrintStmt print 语句
type PrintStmt struct {
	Token lexer.Token // print token
	Value Expression
}

func (p *PrintStmt) TokenLiteral() string { return p.Token.Literal }
func (p *PrintStmt) statementNode()       {}

// VarDecl 变量声明 let name [= value];
type VarDecl struct {
	Token lexer.Token // let token
	Name  string
	Value Expression // 可选，缺省时绑定 nil
}

func (v *VarDecl) TokenLiteral() string { return v.Token.Literal }
func (v *VarDecl) statementNode()       {}

// ConstDecl 常量声明 const name = value;
type ConstDecl struct {
	Token lexer.Token // const token
	Name  string
	Value Expression
}

func (c *ConstDecl) TokenLiteral() string { return c.Token.Literal }
func (c *ConstDecl) statementNode()       {}

// AssignStmt 赋值语句 name = value;
type AssignStmt struct {
	Token lexer.Token // = token
	Name  string
	Value Expression
}

func (a *AssignStmt) TokenLiteral() string { return a.Token.Literal }
func (a *AssignStmt) statementNode()       {}

// BlockStmt 代码块
type BlockStmt struct {
	Token      lexer.Token // { token
	Statements []Statement
}

func (b *BlockStmt) TokenLiteral() string { return b.Token.Literal }
func (b *BlockStmt) statementNode()       {}

// IfStmt if 语句
type IfStmt struct {
	Token       lexer.Token // if token
	Condition   Expression
	Consequence Statement
	Alternative Statement // 可选
}

func (i *IfStmt) TokenLiteral() string { return i.Token.Literal }
func (i *IfStmt) statementNode()       {}

// WhileStmt while 循环
type WhileStmt struct {
	Token     lexer.Token // while token
	Condition Expression
	Body      Statement
}

func (w *WhileStmt) TokenLiteral() string { return w.Token.Literal }
func (w *WhileStmt) statementNode()       {}

// ForStmt for (init; cond; post) body
type ForStmt struct {
	Token     lexer.Token // for token
	Init      Statement   // 可选
	Condition Expression  // 可选
	Post      Statement   // 可选
	Body      Statement
}

func (f *ForStmt) TokenLiteral() string { return f.Token.Literal }
func (f *ForStmt) statementNode()       {}

// FuncDecl 函数声明
type FuncDecl struct {
	Token  lexer.Token // func token
	Name   string
	Params []string
	Body   *BlockStmt
}

func (f *FuncDecl) TokenLiteral() string { return f.Token.Literal }
func (f *FuncDecl) statementNode()       {}

// ReturnStmt return 语句
type ReturnStmt struct {
	Token lexer.Token // return token
	Value Expression  // 可选
}

func (r *ReturnStmt) TokenLiteral() string { return r.Token.Literal }
func (r *ReturnStmt) statementNode()       {}

// ---------- 表达式 ----------

// Identifier 变量引用
type Identifier struct {
	Token lexer.Token
	Value string
}

func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) expressionNode()      {}

// NumberLiteral 数字字面量
type NumberLiteral struct {
	Token lexer.Token
	Value float64
}

func (n *NumberLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *NumberLiteral) expressionNode()      {}

// StringLiteral 字符串字面量（不含引号）
type StringLiteral struct {
	Token lexer.Token
	Value string
}

func (s *StringLiteral) TokenLiteral() string { return s.Token.Literal }
func (s *StringLiteral) expressionNode()      {}

// BoolLiteral 布尔字面量
type BoolLiteral struct {
	Token lexer.Token
	Value bool
}

func (b *BoolLiteral) TokenLiteral() string { return b.Token.Literal }
func (b *BoolLiteral) expressionNode()      {}

// NilLiteral nil 字面量
type NilLiteral struct {
	Token lexer.Token
}

func (n *NilLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *NilLiteral) expressionNode()      {}

// UnaryExpr 一元表达式
type UnaryExpr struct {
	Token    lexer.Token // 运算符 token
	Operator Operator
	Operand  Expression
}

func (u *UnaryExpr) TokenLiteral() string { return u.Token.Literal }
func (u *UnaryExpr) expressionNode()      {}

// BinaryExpr 二元表达式
type BinaryExpr struct {
	Token    lexer.Token // 运算符 token
	Left     Expression
	Operator Operator
	Right    Expression
}

func (b *BinaryExpr) TokenLiteral() string { return b.Token.Literal }
func (b *BinaryExpr) expressionNode()      {}

// ParenExpr 括号表达式，语义上透明，只用于定位错误
type ParenExpr struct {
	Token lexer.Token // ( token
	X     Expression
}

func (p *ParenExpr) TokenLiteral() string { return p.Token.Literal }
func (p *ParenExpr) expressionNode()      {}

// CallExpr 函数调用表达式
type CallExpr struct {
	Token     lexer.Token // ( token
	Function  Expression
	Arguments []Expression
}

func (c *CallExpr) TokenLiteral() string { return c.Token.Literal }
func (c *CallExpr) expressionNode()      {}
