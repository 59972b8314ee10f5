package runtime

import (
	"errors"

	"github.com/tangzhangming/fddl/internal/i18n"
)

// Kind 运行错误的分类
type Kind int

const (
	TypeMismatch Kind = iota
	UndefinedVariable
	DivisionByZero
	ConstAssignment
	Unimplemented
)

var kindNames = [...]string{
	TypeMismatch:      "TypeMismatch",
	UndefinedVariable: "UndefinedVariable",
	DivisionByZero:    "DivisionByZero",
	ConstAssignment:   "ConstAssignment",
	Unimplemented:     "Unimplemented",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// 哨兵错误，errors.Is 可与同类 *Error 匹配
var (
	ErrTypeMismatch      = errors.New("type mismatch")
	ErrUndefinedVariable = errors.New("undefined variable")
	ErrDivisionByZero    = errors.New("division by zero")
	ErrConstAssignment   = errors.New("assignment to constant")
	ErrUnimplemented     = errors.New("unimplemented")
)

var sentinels = [...]error{
	TypeMismatch:      ErrTypeMismatch,
	UndefinedVariable: ErrUndefinedVariable,
	DivisionByZero:    ErrDivisionByZero,
	ConstAssignment:   ErrConstAssignment,
	Unimplemented:     ErrUnimplemented,
}

// Error 运行错误，位置未知时 Line 为 0
type Error struct {
	Kind    Kind
	Message string
	Line    int
}

// NewError 创建 *Error，消息取自翻译键
func NewError(kind Kind, key string, args ...any) *Error {
	return &Error{Kind: kind, Message: i18n.T(key, args...)}
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return i18n.T(i18n.ErrRuntime, e.Line, e.Message)
	}
	return i18n.T(i18n.ErrRuntimeNoLine, e.Message)
}

func (e *Error) Unwrap() error {
	if int(e.Kind) < len(sentinels) {
		return sentinels[e.Kind]
	}
	return nil
}

// AtLine 为尚无行号的 *Error 补上行号
func AtLine(err error, line int) error {
	var rerr *Error
	if errors.As(err, &rerr) && rerr.Line == 0 {
		rerr.Line = line
	}
	return err
}
