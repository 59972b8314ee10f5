package parser

import (
	"fmt"

	"github.com/tangzhangming/fddl/internal/i18n"
	"github.com/tangzhangming/fddl/internal/lexer"
)

// Error 语法错误
type Error struct {
	Line       int
	Column     int
	Msg        string
	incomplete bool
}

func (e *Error) Error() string {
	return i18n.T(i18n.ErrGeneric, e.Line, e.Column, e.Msg)
}

// Incomplete 报告解析是否因为输入提前结束而失败（例如未闭合的代码块）
func (e *Error) Incomplete() bool {
	return e.incomplete
}

// Parser 语法分析器
//
// 不做错误恢复：遇到第一个无法解析的结构就停止，保留此前已完成的语句。
type Parser struct {
	tokens    []lexer.Token
	pos       int // peekToken 之后的下一个位置
	curToken  lexer.Token
	peekToken lexer.Token
	err       *Error
}

// New 创建一个新的语法分析器，注释 token 在这里被丢弃
func New(tokens []lexer.Token) *Parser {
	filtered := make([]lexer.Token, 0, len(tokens)+1)
	for _, tok := range tokens {
		if tok.Type == lexer.TOKEN_COMMENT {
			continue
		}
		filtered = append(filtered, tok)
		if tok.Type == lexer.TOKEN_EOF {
			break
		}
	}
	if len(filtered) == 0 || filtered[len(filtered)-1].Type != lexer.TOKEN_EOF {
		eof := lexer.Token{Type: lexer.TOKEN_EOF}
		if len(filtered) > 0 {
			last := filtered[len(filtered)-1]
			eof.Line, eof.Column = last.Line, last.Column
		}
		filtered = append(filtered, eof)
	}

	p := &Parser{tokens: filtered}
	// 读取两个 token，初始化 curToken 和 peekToken
	p.nextToken()
	p.nextToken()
	return p
}

// Err 返回解析过程中遇到的第一个错误
func (p *Parser) Err() error {
	if p.err == nil {
		return nil
	}
	return p.err
}

// nextToken 前进到下一个 token，到达 EOF 后停留在 EOF
func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	if p.pos < len(p.tokens) {
		p.peekToken = p.tokens[p.pos]
		p.pos++
	}
}

// curTokenIs 检查当前 token 类型
func (p *Parser) curTokenIs(t lexer.TokenType) bool {
	return p.curToken.Type == t
}

// peekTokenIs 检查下一个 token 类型
func (p *Parser) peekTokenIs(t lexer.TokenType) bool {
	return p.peekToken.Type == t
}

// expectPeek 期望下一个 token 类型并前进
func (p *Parser) expectPeek(t lexer.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

// peekError 记录期望错误
func (p *Parser) peekError(t lexer.TokenType) {
	p.failAt(p.peekToken, i18n.T(i18n.ParseExpected, "'"+lexer.TokenTypeName(t)+"'", describe(p.peekToken)))
}

// failAt 记录第一个错误；词法错误 token 原样报告词法错误
func (p *Parser) failAt(tok lexer.Token, msg string) {
	if p.err != nil {
		return
	}
	if tok.IsError() {
		p.err = &Error{
			Line:       tok.Line,
			Column:     tok.Column,
			Msg:        tok.Literal,
			incomplete: tok.Type == lexer.TOKEN_UNTERMINATED,
		}
		return
	}
	p.err = &Error{
		Line:       tok.Line,
		Column:     tok.Column,
		Msg:        msg,
		incomplete: tok.Type == lexer.TOKEN_EOF,
	}
}

// describe 生成错误信息中的 token 描述
func describe(tok lexer.Token) string {
	switch tok.Type {
	case lexer.TOKEN_EOF:
		return "EOF"
	case lexer.TOKEN_IDENT:
		return fmt.Sprintf("identifier %q", tok.Literal)
	case lexer.TOKEN_NUMBER:
		return "number " + tok.Literal
	case lexer.TOKEN_STRING:
		return fmt.Sprintf("string %q", tok.Literal)
	}
	return "'" + lexer.TokenTypeName(tok.Type) + "'"
}

// ParseProgram 解析整个程序
func (p *Parser) ParseProgram() *Program {
	program := &Program{}

	for !p.curTokenIs(lexer.TOKEN_EOF) {
		stmt := p.parseStatement()
		if p.err != nil {
			break
		}
		program.Statements = append(program.Statements, stmt)
		p.nextToken()
	}

	return program
}

// parseStatement 解析语句，结束时 curToken 停在语句的最后一个 token 上
func (p *Parser) parseStatement() Statement {
	var stmt Statement
	switch p.curToken.Type {
	case lexer.TOKEN_PRINT:
		stmt = p.parsePrintStmt()
	case lexer.TOKEN_LET:
		stmt = p.parseVarDecl()
	case lexer.TOKEN_CONST:
		stmt = p.parseConstDecl()
	case lexer.TOKEN_IF:
		stmt = p.parseIfStmt()
	case lexer.TOKEN_WHILE:
		stmt = p.parseWhileStmt()
	case lexer.TOKEN_FOR:
		stmt = p.parseForStmt()
	case lexer.TOKEN_FUNC:
		stmt = p.parseFuncDecl()
	case lexer.TOKEN_RETURN:
		stmt = p.parseReturnStmt()
	case lexer.TOKEN_LBRACE:
		stmt = p.parseBlockStmt()
	default:
		stmt = p.parseExpressionStatement(true)
	}
	if p.err != nil {
		return nil
	}
	return stmt
}

// parsePrintStmt 解析 print 语句
func (p *Parser) parsePrintStmt() *PrintStmt {
	stmt := &PrintStmt{Token: p.curToken}
	p.nextToken()

	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil || !p.expectPeek(lexer.TOKEN_SEMICOLON) {
		return nil
	}
	return stmt
}

// parseDeclName 解析 let/const 之后的名字
func (p *Parser) parseDeclName() (string, bool) {
	keyword := p.curToken.Literal
	if !p.peekTokenIs(lexer.TOKEN_IDENT) {
		p.failAt(p.peekToken, i18n.T(i18n.ParseExpectedIdent, keyword, describe(p.peekToken)))
		return "", false
	}
	p.nextToken()
	return p.curToken.Literal, true
}

// parseVarDecl 解析变量声明
func (p *Parser) parseVarDecl() *VarDecl {
	decl := &VarDecl{Token: p.curToken}

	name, ok := p.parseDeclName()
	if !ok {
		return nil
	}
	decl.Name = name

	// 解析初始值
	if p.peekTokenIs(lexer.TOKEN_ASSIGN) {
		p.nextToken()
		p.nextToken()
		decl.Value = p.parseExpression(LOWEST)
		if decl.Value == nil {
			return nil
		}
	}

	if !p.expectPeek(lexer.TOKEN_SEMICOLON) {
		return nil
	}
	return decl
}

// parseConstDecl 解析常量声明，必须有初始值
func (p *Parser) parseConstDecl() *ConstDecl {
	decl := &ConstDecl{Token: p.curToken}

	name, ok := p.parseDeclName()
	if !ok {
		return nil
	}
	decl.Name = name

	if !p.peekTokenIs(lexer.TOKEN_ASSIGN) {
		p.failAt(p.peekToken, i18n.T(i18n.ParseConstNeedsValue, name))
		return nil
	}
	p.nextToken()
	p.nextToken()
	decl.Value = p.parseExpression(LOWEST)
	if decl.Value == nil || !p.expectPeek(lexer.TOKEN_SEMICOLON) {
		return nil
	}
	return decl
}

// parseIfStmt 解析 if 语句，条件两侧的括号可有可无
func (p *Parser) parseIfStmt() *IfStmt {
	stmt := &IfStmt{Token: p.curToken}
	p.nextToken()

	stmt.Condition = p.parseExpression(LOWEST)
	if stmt.Condition == nil {
		return nil
	}

	p.nextToken()
	stmt.Consequence = p.parseStatement()
	if p.err != nil {
		return nil
	}

	if p.peekTokenIs(lexer.TOKEN_ELSE) {
		p.nextToken()
		p.nextToken()
		stmt.Alternative = p.parseStatement()
		if p.err != nil {
			return nil
		}
	}

	return stmt
}

// parseWhileStmt 解析 while 循环
func (p *Parser) parseWhileStmt() *WhileStmt {
	stmt := &WhileStmt{Token: p.curToken}
	p.nextToken()

	stmt.Condition = p.parseExpression(LOWEST)
	if stmt.Condition == nil {
		return nil
	}

	p.nextToken()
	stmt.Body = p.parseStatement()
	if p.err != nil {
		return nil
	}
	return stmt
}

// parseForStmt 解析 for (init; cond; post) body
func (p *Parser) parseForStmt() *ForStmt {
	stmt := &ForStmt{Token: p.curToken}
	if !p.expectPeek(lexer.TOKEN_LPAREN) {
		return nil
	}
	p.nextToken()

	// 初始化语句（自带分号）
	switch p.curToken.Type {
	case lexer.TOKEN_SEMICOLON:
	case lexer.TOKEN_LET:
		stmt.Init = p.parseVarDecl()
	default:
		stmt.Init = p.parseExpressionStatement(true)
	}
	if p.err != nil {
		return nil
	}
	p.nextToken()

	// 条件
	if !p.curTokenIs(lexer.TOKEN_SEMICOLON) {
		stmt.Condition = p.parseExpression(LOWEST)
		if stmt.Condition == nil || !p.expectPeek(lexer.TOKEN_SEMICOLON) {
			return nil
		}
	}
	p.nextToken()

	// 后置语句（不带分号）
	if !p.curTokenIs(lexer.TOKEN_RPAREN) {
		stmt.Post = p.parseExpressionStatement(false)
		if p.err != nil || !p.expectPeek(lexer.TOKEN_RPAREN) {
			return nil
		}
	}
	p.nextToken()

	stmt.Body = p.parseStatement()
	if p.err != nil {
		return nil
	}
	return stmt
}

// parseFuncDecl 解析函数声明 func name(a, b) { ... }
func (p *Parser) parseFuncDecl() *FuncDecl {
	decl := &FuncDecl{Token: p.curToken}

	name, ok := p.parseDeclName()
	if !ok {
		return nil
	}
	decl.Name = name

	if !p.expectPeek(lexer.TOKEN_LPAREN) {
		return nil
	}
	if p.peekTokenIs(lexer.TOKEN_RPAREN) {
		p.nextToken()
	} else {
		for {
			if !p.expectPeek(lexer.TOKEN_IDENT) {
				return nil
			}
			decl.Params = append(decl.Params, p.curToken.Literal)
			if !p.peekTokenIs(lexer.TOKEN_COMMA) {
				break
			}
			p.nextToken()
		}
		if !p.expectPeek(lexer.TOKEN_RPAREN) {
			return nil
		}
	}

	if !p.expectPeek(lexer.TOKEN_LBRACE) {
		return nil
	}
	decl.Body = p.parseBlockStmt()
	if p.err != nil {
		return nil
	}
	return decl
}

// parseReturnStmt 解析 return 语句
func (p *Parser) parseReturnStmt() *ReturnStmt {
	stmt := &ReturnStmt{Token: p.curToken}

	if p.peekTokenIs(lexer.TOKEN_SEMICOLON) {
		p.nextToken()
		return stmt
	}

	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil || !p.expectPeek(lexer.TOKEN_SEMICOLON) {
		return nil
	}
	return stmt
}

// parseBlockStmt 解析代码块，结束时 curToken 停在 }
func (p *Parser) parseBlockStmt() *BlockStmt {
	block := &BlockStmt{Token: p.curToken}
	p.nextToken()

	for !p.curTokenIs(lexer.TOKEN_RBRACE) {
		if p.curTokenIs(lexer.TOKEN_EOF) {
			p.failAt(p.curToken, i18n.T(i18n.ParseExpected, "'}'", describe(p.curToken)))
			return nil
		}
		stmt := p.parseStatement()
		if p.err != nil {
			return nil
		}
		block.Statements = append(block.Statements, stmt)
		p.nextToken()
	}

	return block
}

// parseExpressionStatement 解析表达式语句或赋值语句
//
// 先解析完整表达式，若后面跟着 = 则要求它是一个变量引用。
func (p *Parser) parseExpressionStatement(terminated bool) Statement {
	first := p.curToken
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}

	var stmt Statement
	if p.peekTokenIs(lexer.TOKEN_ASSIGN) {
		stmt = p.parseAssignStmt(expr)
		if stmt == nil {
			return nil
		}
	} else {
		stmt = &ExpressionStmt{Token: first, Expression: expr}
	}

	if terminated && !p.expectPeek(lexer.TOKEN_SEMICOLON) {
		return nil
	}
	return stmt
}

// parseAssignStmt 解析赋值语句，curToken 停在目标表达式末尾
func (p *Parser) parseAssignStmt(target Expression) Statement {
	ident, ok := target.(*Identifier)
	if !ok {
		p.failAt(p.peekToken, i18n.T(i18n.ParseInvalidAssignTarget))
		return nil
	}

	p.nextToken()
	stmt := &AssignStmt{Token: p.curToken, Name: ident.Value}
	p.nextToken()

	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil {
		return nil
	}
	return stmt
}

// 运算符优先级
const (
	_ int = iota
	LOWEST
	OR          // or
	AND         // and
	EQUALS      // == !=
	LESSGREATER // > < >= <=
	SUM         // + -
	PRODUCT     // * / %
	PREFIX      // -X not X some X ~X
	CALL        // myFunc(X)
)

var precedences = map[lexer.TokenType]int{
	lexer.TOKEN_OR:       OR,
	lexer.TOKEN_AND:      AND,
	lexer.TOKEN_EQ:       EQUALS,
	lexer.TOKEN_NOT_EQ:   EQUALS,
	lexer.TOKEN_LT:       LESSGREATER,
	lexer.TOKEN_GT:       LESSGREATER,
	lexer.TOKEN_LT_EQ:    LESSGREATER,
	lexer.TOKEN_GT_EQ:    LESSGREATER,
	lexer.TOKEN_PLUS:     SUM,
	lexer.TOKEN_MINUS:    SUM,
	lexer.TOKEN_ASTERISK: PRODUCT,
	lexer.TOKEN_SLASH:    PRODUCT,
	lexer.TOKEN_PERCENT:  PRODUCT,
	lexer.TOKEN_LPAREN:   CALL,
}

// peekPrecedence 获取下一个 token 的优先级
func (p *Parser) peekPrecedence() int {
	if p, ok := precedences[p.peekToken.Type]; ok {
		return p
	}
	return LOWEST
}

// curPrecedence 获取当前 token 的优先级
func (p *Parser) curPrecedence() int {
	if p, ok := precedences[p.curToken.Type]; ok {
		return p
	}
	return LOWEST
}

// parseExpression 解析表达式（优先级爬升）
func (p *Parser) parseExpression(precedence int) Expression {
	var left Expression

	switch p.curToken.Type {
	case lexer.TOKEN_IDENT:
		left = &Identifier{Token: p.curToken, Value: p.curToken.Literal}
	case lexer.TOKEN_NUMBER:
		left = &NumberLiteral{Token: p.curToken, Value: p.curToken.Number}
	case lexer.TOKEN_STRING:
		left = &StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
	case lexer.TOKEN_TRUE:
		left = &BoolLiteral{Token: p.curToken, Value: true}
	case lexer.TOKEN_FALSE:
		left = &BoolLiteral{Token: p.curToken, Value: false}
	case lexer.TOKEN_NIL:
		left = &NilLiteral{Token: p.curToken}
	case lexer.TOKEN_LPAREN:
		left = p.parseGroupedExpression()
	case lexer.TOKEN_MINUS, lexer.TOKEN_NOT, lexer.TOKEN_TILDE, lexer.TOKEN_SOME:
		left = p.parsePrefixExpression()
	default:
		p.failAt(p.curToken, i18n.T(i18n.ParseExpectedExpression, describe(p.curToken)))
		return nil
	}
	if left == nil {
		return nil
	}

	// 解析中缀表达式，同级运算符左结合
	for precedence < p.peekPrecedence() {
		p.nextToken()
		if p.curTokenIs(lexer.TOKEN_LPAREN) {
			left = p.parseCallExpression(left)
		} else {
			left = p.parseInfixExpression(left)
		}
		if left == nil {
			return nil
		}
	}

	return left
}

// parseGroupedExpression 解析括号表达式
func (p *Parser) parseGroupedExpression() Expression {
	token := p.curToken
	p.nextToken()
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}

	if !p.expectPeek(lexer.TOKEN_RPAREN) {
		return nil
	}

	return &ParenExpr{Token: token, X: expr}
}

// parsePrefixExpression 解析前缀表达式（右结合）
func (p *Parser) parsePrefixExpression() Expression {
	expr := &UnaryExpr{
		Token:    p.curToken,
		Operator: unaryOperators[p.curToken.Type],
	}
	p.nextToken()
	expr.Operand = p.parseExpression(PREFIX)
	if expr.Operand == nil {
		return nil
	}
	return expr
}

// parseInfixExpression 解析中缀表达式
func (p *Parser) parseInfixExpression(left Expression) Expression {
	expr := &BinaryExpr{
		Token:    p.curToken,
		Left:     left,
		Operator: binaryOperators[p.curToken.Type],
	}
	precedence := p.curPrecedence()
	p.nextToken()
	expr.Right = p.parseExpression(precedence)
	if expr.Right == nil {
		return nil
	}
	return expr
}

// parseCallExpression 解析函数调用表达式
func (p *Parser) parseCallExpression(function Expression) Expression {
	expr := &CallExpr{Token: p.curToken, Function: function}

	if p.peekTokenIs(lexer.TOKEN_RPAREN) {
		p.nextToken()
		return expr
	}

	p.nextToken()
	arg := p.parseExpression(LOWEST)
	if arg == nil {
		return nil
	}
	expr.Arguments = append(expr.Arguments, arg)

	for p.peekTokenIs(lexer.TOKEN_COMMA) {
		p.nextToken()
		p.nextToken()
		arg := p.parseExpression(LOWEST)
		if arg == nil {
			return nil
		}
		expr.Arguments = append(expr.Arguments, arg)
	}

	if !p.expectPeek(lexer.TOKEN_RPAREN) {
		return nil
	}
	return expr
}

// Parse 解析 token 序列
//
// 返回已完整解析的语句；遇到错误时同时返回 *Error。
func Parse(tokens []lexer.Token) (*Program, error) {
	p := New(tokens)
	program := p.ParseProgram()
	return program, p.Err()
}

// ParseString 对源码做词法和语法分析
func ParseString(input string) (*Program, error) {
	return Parse(lexer.Tokenize(input))
}
