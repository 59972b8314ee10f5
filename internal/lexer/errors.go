package lexer

import "github.com/tangzhangming/fddl/internal/i18n"

// Error 词法错误
type Error struct {
	Line       int
	Column     int
	Msg        string
	incomplete bool
}

func (e *Error) Error() string {
	return i18n.T(i18n.ErrLexical, e.Line, e.Column, e.Msg)
}

// Incomplete 报告错误是否由输入提前结束引起（未闭合的字符串或块注释）
func (e *Error) Incomplete() bool {
	return e.incomplete
}

// Err 将错误 token 转换为 *Error；非错误 token 返回 nil
func (t Token) Err() error {
	if !t.IsError() {
		return nil
	}
	return &Error{
		Line:       t.Line,
		Column:     t.Column,
		Msg:        t.Literal,
		incomplete: t.Type == TOKEN_UNTERMINATED,
	}
}

// FirstError 返回序列中第一个词法错误
func FirstError(tokens []Token) error {
	for _, tok := range tokens {
		if tok.IsError() {
			return tok.Err()
		}
	}
	return nil
}
