// Package driver 把词法分析、语法分析和解释执行串成一条流水线
package driver

import (
	"errors"
	"io"
	"log/slog"

	"github.com/zeebo/blake3"

	"github.com/tangzhangming/fddl/internal/interpreter"
	"github.com/tangzhangming/fddl/internal/lexer"
	"github.com/tangzhangming/fddl/internal/parser"
	"github.com/tangzhangming/fddl/internal/runtime"
)

// maxCached Session 缓存的已解析程序上限
const maxCached = 256

// Session 在同一个解释器上反复执行源码
// 已解析的程序按源码的 BLAKE3 摘要缓存
type Session struct {
	interp *interpreter.Interpreter
	cache  map[[32]byte]*parser.Program
	log    *slog.Logger
}

// NewSession 创建会话，输出写到 out
func NewSession(out io.Writer, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		interp: interpreter.New(out, interpreter.WithLogger(logger)),
		cache:  make(map[[32]byte]*parser.Program),
		log:    logger,
	}
}

// Compile 词法和语法分析
// 词法错误返回 *lexer.Error，语法错误返回 *parser.Error
func (s *Session) Compile(src string) (*parser.Program, error) {
	key := blake3.Sum256([]byte(src))
	if program, ok := s.cache[key]; ok {
		s.log.Debug("program cache hit", slog.Int("statements", len(program.Statements)))
		return program, nil
	}

	tokens := lexer.Tokenize(src)
	if err := lexer.FirstError(tokens); err != nil {
		return nil, err
	}
	s.log.Debug("tokenized", slog.Int("tokens", len(tokens)))

	program, err := parser.Parse(tokens)
	if err != nil {
		return nil, err
	}
	s.log.Debug("parsed", slog.Int("statements", len(program.Statements)))

	if len(s.cache) >= maxCached {
		clear(s.cache)
	}
	s.cache[key] = program
	return program, nil
}

// Run 编译并执行，编译失败时不执行任何语句
func (s *Session) Run(src string) error {
	program, err := s.Compile(src)
	if err != nil {
		return err
	}
	return s.interp.Run(program)
}

// Environment 会话的全局环境
func (s *Session) Environment() *runtime.Environment {
	return s.interp.Environment()
}

// Incomplete 错误是否因源码提前结束，继续输入仍可能合法
func Incomplete(err error) bool {
	var inc interface{ Incomplete() bool }
	return errors.As(err, &inc) && inc.Incomplete()
}
