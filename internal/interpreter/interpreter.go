package interpreter

import (
	"io"
	"log/slog"

	"github.com/tangzhangming/fddl/internal/parser"
	"github.com/tangzhangming/fddl/internal/runtime"
)

// Interpreter 树遍历求值器
type Interpreter struct {
	env *runtime.Environment // 当前环境，栈底为全局作用域
	out io.Writer            // print 语句的输出目标
	log *slog.Logger
}

// Option 配置 Interpreter
type Option func(*Interpreter)

// WithLogger 设置日志记录器，默认使用 slog.Default()
func WithLogger(logger *slog.Logger) Option {
	return func(i *Interpreter) {
		i.log = logger
	}
}

// WithEnvironment 在已有环境上执行，而不是新建全局作用域
func WithEnvironment(env *runtime.Environment) Option {
	return func(i *Interpreter) {
		i.env = env
	}
}

// New 创建一个新的解释器
func New(out io.Writer, opts ...Option) *Interpreter {
	i := &Interpreter{out: out}
	for _, opt := range opts {
		opt(i)
	}
	if i.env == nil {
		i.env = runtime.NewEnvironment()
	}
	if i.log == nil {
		i.log = slog.Default()
	}
	return i
}

// Environment 返回解释器持有的环境
func (i *Interpreter) Environment() *runtime.Environment {
	return i.env
}

// Run 执行整个程序
func (i *Interpreter) Run(program *parser.Program) error {
	return i.Execute(program.Statements)
}

// Execute 依次执行语句，遇到第一个运行时错误即停止
func (i *Interpreter) Execute(stmts []parser.Statement) error {
	for _, stmt := range stmts {
		if err := i.execStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Evaluate 在给定环境上执行语句序列
func Evaluate(stmts []parser.Statement, env *runtime.Environment, out io.Writer) error {
	return New(out, WithEnvironment(env)).Execute(stmts)
}
