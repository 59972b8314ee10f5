package i18n

// zhMessages contains Chinese translations
var zhMessages = map[string]string{
	// 词法错误
	ErrLexical:             "第 %d 行 %d 列: %s",
	LexUnexpectedChar:      "意外的字符 '%s'",
	LexUnterminatedString:  "字符串未闭合",
	LexUnterminatedComment: "块注释未闭合",

	// 语法错误
	ErrGeneric:               "第 %d 行 %d 列: %s",
	ParseExpected:            "期望 %s，实际为 %s",
	ParseExpectedExpression:  "期望表达式，实际为 %s",
	ParseExpectedIdent:       "'%s' 后期望标识符，实际为 %s",
	ParseInvalidAssignTarget: "无效的赋值目标",
	ParseConstNeedsValue:     "常量 '%s' 必须初始化",

	// 运行时错误
	ErrRuntime:              "第 %d 行: %s",
	ErrRuntimeNoLine:        "%s",
	RtOperandsMustBeNumbers: "'%s' 的操作数必须是数字，实际为 %s 和 %s",
	RtOperandMustBeNumber:   "一元 '%s' 的操作数必须是数字，实际为 %s",
	RtDivisionByZero:        "除数为零",
	RtModulusByZero:         "取模的除数为零",
	RtUndefinedVariable:     "未定义的变量 '%s'",
	RtConstAssign:           "不能给常量 '%s' 赋值",
	RtConstRedeclare:        "不能在同一作用域重复声明常量 '%s'",
	RtUnimplemented:         "%s 尚未实现",

	// 命令行用法
	MsgUsage:          "用法: fddl [选项] [命令] [参数]",
	MsgCommands:       "命令:",
	MsgCmdRun:         "  run <文件>      运行 fddl 脚本（直接给出路径效果相同）",
	MsgCmdRepl:        "  repl            启动交互式解释器（无参数时的默认行为）",
	MsgCmdTokens:      "  tokens <文件>   输出脚本的 token 序列",
	MsgCmdAst:         "  ast <文件>      输出脚本的语法树",
	MsgCmdVersion:     "  version         显示版本信息",
	MsgCmdHelp:        "  help            显示帮助信息",
	MsgOptions:        "选项:",
	MsgOptConfig:      "  -c <文件>       使用指定的 fddl.toml，不再向上查找",
	MsgOptDebug:       "  -d <级别>       日志级别: debug, info, warn, error",
	MsgOptEval:        "  -e <源码>       执行给定源码后退出",
	MsgOptVersion:     "  -V              显示版本信息",
	MsgUseHelp:        "使用 \"fddl help\" 查看更多信息。",
	MsgUnknownCommand: "未知命令: %s",

	// 命令行错误
	ErrInputRequired:     "%s: 需要指定输入文件",
	ErrBadOption:         "无效的选项: %v",
	ErrCannotGetCwd:      "无法获取当前目录: %v",
	ErrCannotLoadConfig:  "无法加载配置: %v",
	ErrCannotReadFile:    "无法读取文件 %s: %v",
	ErrCannotOpenHistory: "无法打开历史记录: %v",

	// 命令行信息
	MsgUsingConfig:    "使用配置: %s",
	MsgNoConfig:       "未找到 fddl.toml，使用默认配置",
	MsgReplBanner:     "fddl %s 交互模式（输入 :quit 退出）",
	MsgReplBye:        "再见",
	MsgReplUnknownCmd: "未知命令 %s（可用 :quit, :history, :clear-history, :env）",
	MsgHistoryCleared: "历史记录已清空",
	MsgHistoryOff:     "历史记录未启用",
	MsgEnvEmpty:       "（没有绑定）",
}
