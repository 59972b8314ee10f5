package i18n

// enMessages contains English translations
var enMessages = map[string]string{
	// Lexer errors
	ErrLexical:             "line %d:%d: %s",
	LexUnexpectedChar:      "unexpected character '%s'",
	LexUnterminatedString:  "unterminated string",
	LexUnterminatedComment: "unterminated block comment",

	// Parser errors
	ErrGeneric:               "line %d:%d: %s",
	ParseExpected:            "expected %s, got %s",
	ParseExpectedExpression:  "expected expression, got %s",
	ParseExpectedIdent:       "expected identifier after '%s', got %s",
	ParseInvalidAssignTarget: "invalid assignment target",
	ParseConstNeedsValue:     "constant '%s' must be initialized",

	// Runtime errors
	ErrRuntime:              "line %d: %s",
	ErrRuntimeNoLine:        "%s",
	RtOperandsMustBeNumbers: "operands for '%s' must be numbers, got %s and %s",
	RtOperandMustBeNumber:   "operand for unary '%s' must be a number, got %s",
	RtDivisionByZero:        "division by zero",
	RtModulusByZero:         "modulus by zero",
	RtUndefinedVariable:     "undefined variable '%s'",
	RtConstAssign:           "cannot assign to constant '%s'",
	RtConstRedeclare:        "cannot redeclare constant '%s' in the same scope",
	RtUnimplemented:         "%s is not implemented",

	// CLI usage
	MsgUsage:          "Usage: fddl [options] [command] [arguments]",
	MsgCommands:       "Commands:",
	MsgCmdRun:         "  run <file>      Run an fddl script (a bare path does the same)",
	MsgCmdRepl:        "  repl            Start the interactive prompt (default without arguments)",
	MsgCmdTokens:      "  tokens <file>   Print the token stream of a script",
	MsgCmdAst:         "  ast <file>      Print the syntax tree of a script",
	MsgCmdVersion:     "  version         Print version information",
	MsgCmdHelp:        "  help            Show this help message",
	MsgOptions:        "Options:",
	MsgOptConfig:      "  -c <file>       Use this fddl.toml instead of searching for one",
	MsgOptDebug:       "  -d <level>      Log level: debug, info, warn, error",
	MsgOptEval:        "  -e <source>     Evaluate source text and exit",
	MsgOptVersion:     "  -V              Print version information",
	MsgUseHelp:        "Use \"fddl help\" for more information.",
	MsgUnknownCommand: "Unknown command: %s",

	// CLI errors
	ErrInputRequired:     "%s: input file is required",
	ErrBadOption:         "invalid option: %v",
	ErrCannotGetCwd:      "cannot get current directory: %v",
	ErrCannotLoadConfig:  "cannot load config: %v",
	ErrCannotReadFile:    "cannot read file %s: %v",
	ErrCannotOpenHistory: "cannot open history: %v",

	// CLI info
	MsgUsingConfig:    "Using config: %s",
	MsgNoConfig:       "No fddl.toml found, using defaults",
	MsgReplBanner:     "fddl %s REPL (:quit to exit)",
	MsgReplBye:        "bye",
	MsgReplUnknownCmd: "unknown command %s (try :quit, :history, :clear-history, :env)",
	MsgHistoryCleared: "history cleared",
	MsgHistoryOff:     "history is disabled",
	MsgEnvEmpty:       "(no bindings)",
}
