package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/tangzhangming/fddl/internal/driver"
	"github.com/tangzhangming/fddl/internal/i18n"
	"github.com/tangzhangming/fddl/internal/lexer"
	"github.com/tangzhangming/fddl/internal/parser"
)

// runCmd 运行脚本文件
func (a *app) runCmd(args []string) int {
	source, path, code := a.readInput("run", args)
	if code != 0 {
		return code
	}

	a.log.Debug("run script", "path", path)
	session := driver.NewSession(a.stdout, a.log)
	if err := session.Run(source); err != nil {
		a.printError(fmt.Sprintf("%s: %v", path, err))
		return 1
	}
	return 0
}

// evalCmd 执行 -e 给出的源码
func (a *app) evalCmd(source string) int {
	session := driver.NewSession(a.stdout, a.log)
	if err := session.Run(source); err != nil {
		a.printError(err.Error())
		return 1
	}
	return 0
}

// tokensCmd 每行输出一个 token：line:col TYPE literal
func (a *app) tokensCmd(args []string) int {
	source, path, code := a.readInput("tokens", args)
	if code != 0 {
		return code
	}

	tokens := lexer.Tokenize(source)
	for _, tok := range tokens {
		text := tok.Literal
		switch tok.Type {
		case lexer.TOKEN_STRING, lexer.TOKEN_COMMENT, lexer.TOKEN_ILLEGAL, lexer.TOKEN_UNTERMINATED:
			text = strconv.Quote(text)
		}
		if text == "" {
			fmt.Fprintf(a.stdout, "%d:%d %s\n", tok.Line, tok.Column, lexer.TokenTypeName(tok.Type))
			continue
		}
		fmt.Fprintf(a.stdout, "%d:%d %s %s\n", tok.Line, tok.Column, lexer.TokenTypeName(tok.Type), text)
	}

	if err := lexer.FirstError(tokens); err != nil {
		a.printError(fmt.Sprintf("%s: %v", path, err))
		return 1
	}
	return 0
}

// astCmd 以 S 表达式输出每条顶层语句；出错时先输出已解析的部分
func (a *app) astCmd(args []string) int {
	source, path, code := a.readInput("ast", args)
	if code != 0 {
		return code
	}

	program, err := parser.ParseString(source)
	if len(program.Statements) > 0 {
		fmt.Fprintln(a.stdout, parser.Format(program))
	}
	if err != nil {
		a.printError(fmt.Sprintf("%s: %v", path, err))
		return 1
	}
	return 0
}

// readInput 读取命令的输入文件
func (a *app) readInput(command string, args []string) (string, string, int) {
	if len(args) < 1 {
		a.printError(i18n.T(i18n.ErrInputRequired, command))
		a.printUsage()
		return "", "", 2
	}
	path := args[0]

	source, err := os.ReadFile(path)
	if err != nil {
		a.printError((&readFileError{path: path, err: err}).Error())
		return "", "", 1
	}
	return string(source), path, 0
}

// isScriptPath 判断参数是否像脚本路径（存在的文件或 .fddl 后缀）
func isScriptPath(arg string) bool {
	if filepath.Ext(arg) == ".fddl" {
		return true
	}
	info, err := os.Stat(arg)
	return err == nil && !info.IsDir()
}

type readFileError struct {
	path string
	err  error
}

func (e *readFileError) Error() string {
	return i18n.T(i18n.ErrCannotReadFile, e.path, e.err)
}

func (e *readFileError) Unwrap() error {
	return e.err
}
