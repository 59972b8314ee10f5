package lexer

import "fmt"

// TokenType 表示 token 的类型
type TokenType int

const (
	// 特殊 token
	TOKEN_ILLEGAL      TokenType = iota // 无法识别的字符
	TOKEN_UNTERMINATED                  // 未闭合的字符串或块注释
	TOKEN_EOF
	TOKEN_COMMENT

	// 标识符和字面量
	TOKEN_IDENT  // 标识符
	TOKEN_NUMBER // 数字（64 位浮点）
	TOKEN_STRING // 字符串

	// 运算符
	TOKEN_ASSIGN   // =
	TOKEN_PLUS     // +
	TOKEN_MINUS    // -
	TOKEN_ASTERISK // *
	TOKEN_SLASH    // /
	TOKEN_PERCENT  // %

	TOKEN_EQ     // ==
	TOKEN_NOT_EQ // !=
	TOKEN_LT     // <
	TOKEN_GT     // >
	TOKEN_LT_EQ  // <=
	TOKEN_GT_EQ  // >=

	TOKEN_TILDE    // ~
	TOKEN_TILDE_EQ // ~=

	// 分隔符
	TOKEN_COMMA     // ,
	TOKEN_SEMICOLON // ;
	TOKEN_DOT       // .

	TOKEN_LPAREN // (
	TOKEN_RPAREN // )
	TOKEN_LBRACE // {
	TOKEN_RBRACE // }

	// 关键字
	TOKEN_AND    // and
	TOKEN_OR     // or
	TOKEN_IF     // if
	TOKEN_ELSE   // else
	TOKEN_TRUE   // true
	TOKEN_FALSE  // false
	TOKEN_NIL    // nil
	TOKEN_LET    // let
	TOKEN_CONST  // const
	TOKEN_FUNC   // func
	TOKEN_RETURN // return
	TOKEN_FOR    // for
	TOKEN_WHILE  // while
	TOKEN_PRINT  // print
	TOKEN_NOT    // not
	TOKEN_SOME   // some
)

// Token 表示一个词法单元
//
// Literal 保存源码中的原始文本；字符串 token 保存去掉引号后的内容，
// 错误 token 保存描述信息。Number 只对 TOKEN_NUMBER 有意义。
type Token struct {
	Type    TokenType
	Literal string
	Number  float64
	Line    int
	Column  int
}

// String 便于调试输出
func (t Token) String() string {
	switch t.Type {
	case TOKEN_NUMBER:
		return fmt.Sprintf("%s(%v)", TokenTypeName(t.Type), t.Number)
	case TOKEN_IDENT, TOKEN_STRING, TOKEN_COMMENT, TOKEN_ILLEGAL, TOKEN_UNTERMINATED:
		return fmt.Sprintf("%s(%q)", TokenTypeName(t.Type), t.Literal)
	}
	return TokenTypeName(t.Type)
}

// IsError 判断是否为词法错误 token
func (t Token) IsError() bool {
	return t.Type == TOKEN_ILLEGAL || t.Type == TOKEN_UNTERMINATED
}

var keywords = map[string]TokenType{
	"and":    TOKEN_AND,
	"or":     TOKEN_OR,
	"if":     TOKEN_IF,
	"else":   TOKEN_ELSE,
	"true":   TOKEN_TRUE,
	"false":  TOKEN_FALSE,
	"nil":    TOKEN_NIL,
	"let":    TOKEN_LET,
	"const":  TOKEN_CONST,
	"func":   TOKEN_FUNC,
	"return": TOKEN_RETURN,
	"for":    TOKEN_FOR,
	"while":  TOKEN_WHILE,
	"print":  TOKEN_PRINT,
	"not":    TOKEN_NOT,
	"some":   TOKEN_SOME,
}

// LookupIdent 查找标识符是否为关键字（区分大小写）
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TOKEN_IDENT
}

var names = map[TokenType]string{
	TOKEN_ILLEGAL:      "ILLEGAL",
	TOKEN_UNTERMINATED: "UNTERMINATED",
	TOKEN_EOF:          "EOF",
	TOKEN_COMMENT:      "COMMENT",
	TOKEN_IDENT:        "IDENT",
	TOKEN_NUMBER:       "NUMBER",
	TOKEN_STRING:       "STRING",
	TOKEN_ASSIGN:       "=",
	TOKEN_PLUS:         "+",
	TOKEN_MINUS:        "-",
	TOKEN_ASTERISK:     "*",
	TOKEN_SLASH:        "/",
	TOKEN_PERCENT:      "%",
	TOKEN_EQ:           "==",
	TOKEN_NOT_EQ:       "!=",
	TOKEN_LT:           "<",
	TOKEN_GT:           ">",
	TOKEN_LT_EQ:        "<=",
	TOKEN_GT_EQ:        ">=",
	TOKEN_TILDE:        "~",
	TOKEN_TILDE_EQ:     "~=",
	TOKEN_COMMA:        ",",
	TOKEN_SEMICOLON:    ";",
	TOKEN_DOT:          ".",
	TOKEN_LPAREN:       "(",
	TOKEN_RPAREN:       ")",
	TOKEN_LBRACE:       "{",
	TOKEN_RBRACE:       "}",
	TOKEN_AND:          "and",
	TOKEN_OR:           "or",
	TOKEN_IF:           "if",
	TOKEN_ELSE:         "else",
	TOKEN_TRUE:         "true",
	TOKEN_FALSE:        "false",
	TOKEN_NIL:          "nil",
	TOKEN_LET:          "let",
	TOKEN_CONST:        "const",
	TOKEN_FUNC:         "func",
	TOKEN_RETURN:       "return",
	TOKEN_FOR:          "for",
	TOKEN_WHILE:        "while",
	TOKEN_PRINT:        "print",
	TOKEN_NOT:          "not",
	TOKEN_SOME:         "some",
}

// TokenTypeName 返回 token 类型的名称
func TokenTypeName(t TokenType) string {
	if name, ok := names[t]; ok {
		return name
	}
	return "UNKNOWN"
}
