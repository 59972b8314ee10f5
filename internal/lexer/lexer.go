package lexer

import (
	"errors"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/tangzhangming/fddl/internal/i18n"
)

// Lexer 词法分析器
//
// 单遍扫描、不回溯；遇到第一个词法错误后停止，之后只返回 EOF。
type Lexer struct {
	input   string
	pos     int  // 当前字符位置（字节）
	readPos int  // 下一个读取位置
	ch      rune // 当前字符
	line    int  // 当前行号
	column  int  // 当前列号
	done    bool // 已产生错误 token
}

// New 创建一个新的词法分析器
func New(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar()
	return l
}

// readChar 读取下一个字符
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
		l.pos = len(l.input)
	} else {
		r, w := utf8.DecodeRuneInString(l.input[l.readPos:])
		l.ch = r
		l.pos = l.readPos
		l.readPos += w
	}
	l.column++
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
}

// peekChar 查看下一个字符但不移动位置
func (l *Lexer) peekChar() rune {
	if l.readPos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPos:])
	return r
}

// atEnd 是否已到达输入末尾
func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.input)
}

// NextToken 获取下一个 token
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	line, column := l.line, l.column
	if l.done || l.atEnd() {
		return Token{Type: TOKEN_EOF, Line: line, Column: column}
	}

	var tok Token
	switch l.ch {
	case '(':
		tok = l.newToken(TOKEN_LPAREN, "(", line, column)
	case ')':
		tok = l.newToken(TOKEN_RPAREN, ")", line, column)
	case '{':
		tok = l.newToken(TOKEN_LBRACE, "{", line, column)
	case '}':
		tok = l.newToken(TOKEN_RBRACE, "}", line, column)
	case ',':
		tok = l.newToken(TOKEN_COMMA, ",", line, column)
	case '.':
		tok = l.newToken(TOKEN_DOT, ".", line, column)
	case '-':
		tok = l.newToken(TOKEN_MINUS, "-", line, column)
	case '+':
		tok = l.newToken(TOKEN_PLUS, "+", line, column)
	case ';':
		tok = l.newToken(TOKEN_SEMICOLON, ";", line, column)
	case '*':
		tok = l.newToken(TOKEN_ASTERISK, "*", line, column)
	case '%':
		tok = l.newToken(TOKEN_PERCENT, "%", line, column)
	case '~':
		if l.peekChar() == '=' {
			l.readChar()
			tok = l.newToken(TOKEN_TILDE_EQ, "~=", line, column)
		} else {
			tok = l.newToken(TOKEN_TILDE, "~", line, column)
		}
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = l.newToken(TOKEN_EQ, "==", line, column)
		} else {
			tok = l.newToken(TOKEN_ASSIGN, "=", line, column)
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = l.newToken(TOKEN_NOT_EQ, "!=", line, column)
		} else {
			return l.illegal(l.ch, line, column)
		}
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			tok = l.newToken(TOKEN_LT_EQ, "<=", line, column)
		} else {
			tok = l.newToken(TOKEN_LT, "<", line, column)
		}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok = l.newToken(TOKEN_GT_EQ, ">=", line, column)
		} else {
			tok = l.newToken(TOKEN_GT, ">", line, column)
		}
	case '/':
		switch l.peekChar() {
		case '/':
			l.readChar()
			l.readChar()
			return l.newToken(TOKEN_COMMENT, l.readLineComment(), line, column)
		case '*':
			return l.readBlockComment(line, column)
		default:
			tok = l.newToken(TOKEN_SLASH, "/", line, column)
		}
	case '#':
		l.readChar()
		return l.newToken(TOKEN_COMMENT, l.readLineComment(), line, column)
	case '"':
		return l.readString(line, column)
	default:
		if isDigit(l.ch) {
			return l.readNumber(line, column)
		}
		if isLetter(l.ch) {
			ident := l.readIdentifier()
			return l.newToken(LookupIdent(ident), ident, line, column)
		}
		return l.illegal(l.ch, line, column)
	}

	l.readChar()
	return tok
}

// newToken 创建新的 token
func (l *Lexer) newToken(tokenType TokenType, literal string, line, column int) Token {
	return Token{Type: tokenType, Literal: literal, Line: line, Column: column}
}

// illegal 生成错误 token 并停止扫描
func (l *Lexer) illegal(ch rune, line, column int) Token {
	l.done = true
	return Token{
		Type:    TOKEN_ILLEGAL,
		Literal: i18n.T(i18n.LexUnexpectedChar, string(ch)),
		Line:    line,
		Column:  column,
	}
}

// unterminated 生成“输入不完整”错误 token 并停止扫描
func (l *Lexer) unterminated(key string, line, column int) Token {
	l.done = true
	return Token{
		Type:    TOKEN_UNTERMINATED,
		Literal: i18n.T(key),
		Line:    line,
		Column:  column,
	}
}

// skipWhitespace 跳过空白字符（换行已在 readChar 中计数）
func (l *Lexer) skipWhitespace() {
	for !l.atEnd() && (l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r') {
		l.readChar()
	}
}

// readIdentifier 读取标识符
func (l *Lexer) readIdentifier() string {
	pos := l.pos
	for !l.atEnd() && (isLetter(l.ch) || unicode.IsDigit(l.ch)) {
		l.readChar()
	}
	return l.input[pos:l.pos]
}

// readNumber 读取数字：一个或多个数字，可选 '.' 加一个或多个数字
func (l *Lexer) readNumber(line, column int) Token {
	pos := l.pos
	for isDigit(l.ch) {
		l.readChar()
	}

	// 小数部分，'.' 后必须跟数字
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	text := l.input[pos:l.pos]
	// 超出 float64 范围时 ParseFloat 返回 ±Inf 和 ErrRange，保留该值
	value, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return l.illegal(rune(text[0]), line, column)
	}
	tok := l.newToken(TOKEN_NUMBER, text, line, column)
	tok.Number = value
	return tok
}

// readString 读取双引号字符串，不处理转义
func (l *Lexer) readString(line, column int) Token {
	l.readChar() // 跳过开头的 "
	pos := l.pos
	for !l.atEnd() && l.ch != '"' {
		l.readChar()
	}
	if l.atEnd() {
		return l.unterminated(i18n.LexUnterminatedString, line, column)
	}
	value := l.input[pos:l.pos]
	l.readChar() // 跳过结尾的 "
	return l.newToken(TOKEN_STRING, value, line, column)
}

// readLineComment 读取单行注释内容（不含注释符号和换行）
func (l *Lexer) readLineComment() string {
	pos := l.pos
	for !l.atEnd() && l.ch != '\n' {
		l.readChar()
	}
	return l.input[pos:l.pos]
}

// readBlockComment 读取块注释 /* ... */
func (l *Lexer) readBlockComment(line, column int) Token {
	l.readChar() // 跳过 /
	l.readChar() // 跳过 *
	pos := l.pos
	for {
		if l.atEnd() {
			return l.unterminated(i18n.LexUnterminatedComment, line, column)
		}
		if l.ch == '*' && l.peekChar() == '/' {
			text := l.input[pos:l.pos]
			l.readChar()
			l.readChar()
			return l.newToken(TOKEN_COMMENT, text, line, column)
		}
		l.readChar()
	}
}

// isLetter 判断是否可以作为标识符字符（字母或下划线）
func isLetter(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

// isDigit 判断是否为 ASCII 数字
func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

// Tokenize 将输入字符串转换为 token 列表
//
// 不会失败：词法错误以错误 token 的形式出现在序列中，之后紧跟唯一的 EOF。
func Tokenize(input string) []Token {
	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TOKEN_EOF {
			break
		}
	}
	return tokens
}
