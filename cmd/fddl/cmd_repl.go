package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/tangzhangming/fddl/internal/driver"
	"github.com/tangzhangming/fddl/internal/history"
	"github.com/tangzhangming/fddl/internal/i18n"
)

// defaultHistoryShown :history 未指定条数时显示的条数
const defaultHistoryShown = 20

// repl 交互模式状态
type repl struct {
	*app
	session *driver.Session
	store   *history.Store // 未启用历史记录时为 nil
}

// replCmd 启动交互式解释器
func (a *app) replCmd() int {
	r := &repl{
		app:     a,
		session: driver.NewSession(a.stdout, a.log),
	}
	if a.cfg.History.Enabled {
		r.store = a.openHistory()
	}
	if r.store != nil {
		defer r.store.Close()
	}

	if a.cfg.Repl.Banner {
		a.printInfo(i18n.T(i18n.MsgReplBanner, version))
	}

	scanner := bufio.NewScanner(a.stdin)
	var buf strings.Builder
	prompt := a.cfg.Repl.Prompt

	for {
		fmt.Fprint(a.stdout, prompt)
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()

		// 元命令只在新输入的第一行识别
		if buf.Len() == 0 && strings.HasPrefix(strings.TrimSpace(line), ":") {
			if quit := r.meta(strings.Fields(line)); quit {
				return 0
			}
			continue
		}

		buf.WriteString(line)
		buf.WriteByte('\n')
		source := buf.String()
		if strings.TrimSpace(source) == "" {
			buf.Reset()
			continue
		}

		err := r.session.Run(source)
		if driver.Incomplete(err) {
			prompt = a.cfg.Repl.Continuation
			continue
		}

		buf.Reset()
		prompt = a.cfg.Repl.Prompt
		r.remember(source)
		if err != nil {
			a.printError(err.Error())
		}
	}

	if err := scanner.Err(); err != nil {
		a.printError(err.Error())
		return 1
	}
	fmt.Fprintln(a.stdout)
	a.printInfo(i18n.T(i18n.MsgReplBye))
	return 0
}

// openHistory 打开历史记录，失败时只给出警告
func (a *app) openHistory() *history.Store {
	path := a.cfg.History.Path
	if path == "" {
		var err error
		if path, err = history.DefaultPath(); err != nil {
			a.printWarning(i18n.T(i18n.ErrCannotOpenHistory, err))
			return nil
		}
	}

	store, err := history.Open(path, a.cfg.History.Limit)
	if err != nil {
		a.printWarning(i18n.T(i18n.ErrCannotOpenHistory, err))
		return nil
	}
	a.log.Debug("history opened", "path", path)
	return store
}

// remember 记录一次提交
func (r *repl) remember(source string) {
	if r.store == nil {
		return
	}
	if err := r.store.Append(source); err != nil {
		r.printWarning(err.Error())
		return
	}
	r.log.Debug("history append", "digest", history.Digest(strings.TrimSpace(source))[:16])
}

// meta 执行元命令，返回是否退出
func (r *repl) meta(fields []string) bool {
	switch fields[0] {
	case ":quit", ":q", ":exit":
		r.printInfo(i18n.T(i18n.MsgReplBye))
		return true

	case ":history":
		if r.store == nil {
			r.printWarning(i18n.T(i18n.MsgHistoryOff))
			return false
		}
		n := defaultHistoryShown
		if len(fields) > 1 {
			if v, err := strconv.Atoi(fields[1]); err == nil {
				n = v
			}
		}
		entries, err := r.store.Recent(n)
		if err != nil {
			r.printError(err.Error())
			return false
		}
		for _, e := range entries {
			fmt.Fprintf(r.stdout, "%5d  %s\n", e.ID, strings.ReplaceAll(e.Source, "\n", "\n       "))
		}

	case ":clear-history":
		if r.store == nil {
			r.printWarning(i18n.T(i18n.MsgHistoryOff))
			return false
		}
		if err := r.store.Clear(); err != nil {
			r.printError(err.Error())
			return false
		}
		r.printInfo(i18n.T(i18n.MsgHistoryCleared))

	case ":env":
		env := r.session.Environment()
		keys := env.Keys()
		if len(keys) == 0 {
			r.printInfo(i18n.T(i18n.MsgEnvEmpty))
			return false
		}
		for _, name := range keys {
			v, _ := env.Get(name)
			kind := "let"
			if env.IsConst(name) {
				kind = "const"
			}
			fmt.Fprintf(r.stdout, "%s %s = %s\n", kind, name, v)
		}

	default:
		r.printWarning(i18n.T(i18n.MsgReplUnknownCmd, fields[0]))
	}
	return false
}
