package i18n

// Message keys for lexer errors
const (
	ErrLexical             = "lexer.error"                // args: line, column, message
	LexUnexpectedChar      = "lexer.unexpected_char"      // args: char
	LexUnterminatedString  = "lexer.unterminated_string"  //
	LexUnterminatedComment = "lexer.unterminated_comment" //
)

// Message keys for parser errors
const (
	ErrGeneric = "parser.generic" // args: line, column, message

	ParseExpected            = "parser.expected"              // args: expected, got
	ParseExpectedExpression  = "parser.expected_expression"   // args: got
	ParseExpectedIdent       = "parser.expected_ident"        // args: after, got
	ParseInvalidAssignTarget = "parser.invalid_assign_target" //
	ParseConstNeedsValue     = "parser.const_needs_value"     // args: name
)

// Message keys for runtime errors
const (
	ErrRuntime       = "runtime.error"         // args: line, message
	ErrRuntimeNoLine = "runtime.error_no_line" // args: message

	RtOperandsMustBeNumbers = "runtime.operands_must_be_numbers" // args: operator, left, right
	RtOperandMustBeNumber   = "runtime.operand_must_be_number"   // args: operator, operand
	RtDivisionByZero        = "runtime.division_by_zero"         //
	RtModulusByZero         = "runtime.modulus_by_zero"          //
	RtUndefinedVariable     = "runtime.undefined_variable"       // args: name
	RtConstAssign           = "runtime.const_assign"             // args: name
	RtConstRedeclare        = "runtime.const_redeclare"          // args: name
	RtUnimplemented         = "runtime.unimplemented"            // args: construct
)

// Message keys for CLI
const (
	// Usage and help
	MsgUsage          = "cli.usage"
	MsgCommands       = "cli.commands"
	MsgCmdRun         = "cli.cmd_run"
	MsgCmdRepl        = "cli.cmd_repl"
	MsgCmdTokens      = "cli.cmd_tokens"
	MsgCmdAst         = "cli.cmd_ast"
	MsgCmdVersion     = "cli.cmd_version"
	MsgCmdHelp        = "cli.cmd_help"
	MsgOptions        = "cli.options"
	MsgOptConfig      = "cli.opt_config"
	MsgOptDebug       = "cli.opt_debug"
	MsgOptEval        = "cli.opt_eval"
	MsgOptVersion     = "cli.opt_version"
	MsgUseHelp        = "cli.use_help"
	MsgUnknownCommand = "cli.unknown_command" // args: command

	// Common errors
	ErrInputRequired     = "cli.input_required"      // args: command
	ErrBadOption         = "cli.bad_option"          // args: error
	ErrCannotGetCwd      = "cli.cannot_get_cwd"      // args: error
	ErrCannotLoadConfig  = "cli.cannot_load_config"  // args: error
	ErrCannotReadFile    = "cli.cannot_read_file"    // args: path, error
	ErrCannotOpenHistory = "cli.cannot_open_history" // args: error

	// Info messages
	MsgUsingConfig    = "cli.using_config" // args: configPath
	MsgNoConfig       = "cli.no_config"
	MsgReplBanner     = "cli.repl_banner" // args: version
	MsgReplBye        = "cli.repl_bye"
	MsgReplUnknownCmd = "cli.repl_unknown_cmd" // args: command
	MsgHistoryCleared = "cli.history_cleared"
	MsgHistoryOff     = "cli.history_off"
	MsgEnvEmpty       = "cli.env_empty"
)
