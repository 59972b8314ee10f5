package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"

	"github.com/tangzhangming/fddl/internal/config"
	"github.com/tangzhangming/fddl/internal/i18n"
)

const version = "0.1.0"

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

// app 一次命令行调用的运行环境
type app struct {
	cfg     *config.Config
	cfgPath string // 为空表示使用默认配置
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	log     *slog.Logger

	errColor  *color.Color
	warnColor *color.Color
	infoColor *color.Color
}

// run 解析命令行并执行，返回进程退出码
func run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	// 初始化国际化
	i18n.Init()

	a := &app{
		stdin:     stdin,
		stdout:    stdout,
		stderr:    stderr,
		errColor:  color.New(color.FgRed, color.Bold),
		warnColor: color.New(color.FgYellow),
		infoColor: color.New(color.FgCyan),
	}

	opts, optind, err := getopt.Getopts(argv, "hVc:d:e:")
	if err != nil {
		a.printError(i18n.T(i18n.ErrBadOption, err))
		a.printUsage()
		return 2
	}
	args := argv[optind:]

	var (
		configPath string
		logLevel   string
		evalSource string
		evalSet    bool
		showHelp   bool
		showVer    bool
	)
	for _, opt := range opts {
		switch opt.Option {
		case 'h':
			showHelp = true
		case 'V':
			showVer = true
		case 'c':
			configPath = opt.Value
		case 'd':
			logLevel = opt.Value
		case 'e':
			evalSource = opt.Value
			evalSet = true
		}
	}

	if err := a.loadConfig(configPath); err != nil {
		a.printError(i18n.T(i18n.ErrCannotLoadConfig, err))
		return 1
	}
	if logLevel != "" {
		a.cfg.Log.Level = logLevel
	}
	if err := a.setup(); err != nil {
		a.printError(i18n.T(i18n.ErrBadOption, err))
		return 2
	}

	switch {
	case showHelp:
		a.printUsage()
		return 0
	case showVer:
		a.printVersion()
		return 0
	case evalSet:
		return a.evalCmd(evalSource)
	}

	if len(args) == 0 {
		return a.replCmd()
	}

	switch args[0] {
	case "run":
		return a.runCmd(args[1:])
	case "repl":
		return a.replCmd()
	case "tokens":
		return a.tokensCmd(args[1:])
	case "ast":
		return a.astCmd(args[1:])
	case "version":
		a.printVersion()
		return 0
	case "help":
		a.printUsage()
		return 0
	}

	// 直接给出脚本路径
	if isScriptPath(args[0]) {
		return a.runCmd(args)
	}

	a.printError(i18n.T(i18n.MsgUnknownCommand, args[0]))
	a.printUsage()
	return 2
}

// loadConfig 加载 -c 指定的配置，否则从当前目录向上查找 fddl.toml
func (a *app) loadConfig(path string) error {
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		a.cfg = cfg
		a.cfgPath = path
		return nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		a.printError(i18n.T(i18n.ErrCannotGetCwd, err))
		return err
	}
	cfg, cfgPath, err := config.FindAndLoad(cwd)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.cfgPath = cfgPath
	return nil
}

// setup 根据配置初始化语言、颜色和日志
func (a *app) setup() error {
	if lang := i18n.ParseLanguage(a.cfg.I18n.Lang); lang != "" {
		i18n.SetLanguage(lang)
	}

	switch strings.ToLower(a.cfg.Output.Color) {
	case "always":
		for _, c := range []*color.Color{a.errColor, a.warnColor, a.infoColor} {
			c.EnableColor()
		}
	case "never":
		for _, c := range []*color.Color{a.errColor, a.warnColor, a.infoColor} {
			c.DisableColor()
		}
	}

	level, err := config.ParseLevel(a.cfg.Log.Level)
	if err != nil {
		return err
	}
	a.log = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))

	if a.cfgPath != "" {
		a.log.Debug(i18n.T(i18n.MsgUsingConfig, a.cfgPath))
	} else {
		a.log.Debug(i18n.T(i18n.MsgNoConfig))
	}
	return nil
}

func (a *app) printUsage() {
	fmt.Fprintln(a.stdout, i18n.T(i18n.MsgUsage))
	fmt.Fprintln(a.stdout)
	fmt.Fprintln(a.stdout, i18n.T(i18n.MsgCommands))
	fmt.Fprintln(a.stdout, i18n.T(i18n.MsgCmdRun))
	fmt.Fprintln(a.stdout, i18n.T(i18n.MsgCmdRepl))
	fmt.Fprintln(a.stdout, i18n.T(i18n.MsgCmdTokens))
	fmt.Fprintln(a.stdout, i18n.T(i18n.MsgCmdAst))
	fmt.Fprintln(a.stdout, i18n.T(i18n.MsgCmdVersion))
	fmt.Fprintln(a.stdout, i18n.T(i18n.MsgCmdHelp))
	fmt.Fprintln(a.stdout)
	fmt.Fprintln(a.stdout, i18n.T(i18n.MsgOptions))
	fmt.Fprintln(a.stdout, i18n.T(i18n.MsgOptConfig))
	fmt.Fprintln(a.stdout, i18n.T(i18n.MsgOptDebug))
	fmt.Fprintln(a.stdout, i18n.T(i18n.MsgOptEval))
	fmt.Fprintln(a.stdout, i18n.T(i18n.MsgOptVersion))
	fmt.Fprintln(a.stdout)
	fmt.Fprintln(a.stdout, i18n.T(i18n.MsgUseHelp))
}

func (a *app) printVersion() {
	fmt.Fprintln(a.stdout, "fddl version", version)
}

// 辅助打印函数
func (a *app) printError(msg string) {
	a.errColor.Fprintln(a.stderr, msg)
}

func (a *app) printWarning(msg string) {
	a.warnColor.Fprintln(a.stderr, msg)
}

func (a *app) printInfo(msg string) {
	a.infoColor.Fprintln(a.stdout, msg)
}
