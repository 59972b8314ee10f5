package interpreter

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/tangzhangming/fddl/internal/i18n"
	"github.com/tangzhangming/fddl/internal/parser"
	"github.com/tangzhangming/fddl/internal/runtime"
)

func TestMain(m *testing.M) {
	i18n.SetLanguage(i18n.LangEnglish)
	os.Exit(m.Run())
}

// run parses and evaluates src on a fresh interpreter.
func run(t *testing.T, src string) (*Interpreter, string, error) {
	t.Helper()
	program, err := parser.ParseString(src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	var out bytes.Buffer
	interp := New(&out)
	err = interp.Run(program)
	return interp, out.String(), err
}

func wantOutput(t *testing.T, src, want string) {
	t.Helper()
	_, got, err := run(t, src)
	if err != nil {
		t.Fatalf("run %q: %v", src, err)
	}
	if got != want {
		t.Fatalf("run %q:\n got  %q\n want %q", src, got, want)
	}
}

func wantError(t *testing.T, src string, sentinel error) *runtime.Error {
	t.Helper()
	_, _, err := run(t, src)
	if !errors.Is(err, sentinel) {
		t.Fatalf("run %q: error %v, want %v", src, err, sentinel)
	}
	var rerr *runtime.Error
	if !errors.As(err, &rerr) {
		t.Fatalf("run %q: error %T is not *runtime.Error", src, err)
	}
	return rerr
}

func TestPrintArithmetic(t *testing.T) {
	wantOutput(t, "print 1 + 2 * 3;", "7\n")
	wantOutput(t, "print (1 + 2) * 3;", "9\n")
	wantOutput(t, "print 7 / 2;", "3.5\n")
	wantOutput(t, "print 7 % 3;", "1\n")
	wantOutput(t, "print -7 % 3;", "-1\n")
	wantOutput(t, "print 0.1 + 0.2;", "0.30000000000000004\n")
	wantOutput(t, "print - -4;", "4\n")
	wantOutput(t, "print "+strings.Repeat("9", 400)+";", "inf\n")
	wantOutput(t, "print -"+strings.Repeat("9", 400)+";", "-inf\n")
}

func TestPrintValues(t *testing.T) {
	wantOutput(t, `print "hello";`, "hello\n")
	wantOutput(t, "print true; print nil;", "true\nnil\n")
	wantOutput(t, "let x; print x;", "nil\n")
}

func TestComparisonAndEquality(t *testing.T) {
	wantOutput(t, "print 1 < 2; print 2 <= 2; print 3 > 4; print 3 >= 4;", "true\ntrue\nfalse\nfalse\n")
	wantOutput(t, `print 5 == "5";`, "false\n")
	wantOutput(t, `print 5 != "5";`, "true\n")
	wantOutput(t, `print "a" == "a";`, "true\n")
	wantOutput(t, "print nil == nil; print nil == false;", "true\nfalse\n")
}

func TestUnaryOperators(t *testing.T) {
	wantOutput(t, "print not nil; print not 0; print not \"\";", "true\nfalse\nfalse\n")
	wantOutput(t, "print some nil; print some false; print some 0;", "false\ntrue\ntrue\n")
	wantOutput(t, `print ~"abc"; print ~true; print ~nil;`, "cba~\nfalse\nalmost nothing\n")
}

func TestAlmostNumberIsDeterministic(t *testing.T) {
	_, first, err := run(t, "print ~42;")
	if err != nil {
		t.Fatal(err)
	}
	_, second, _ := run(t, "print ~42;")
	if first != second {
		t.Fatalf("~42 printed %q then %q", first, second)
	}
	want := runtime.Almost(runtime.Number(42)).String() + "\n"
	if first != want {
		t.Fatalf("~42 printed %q, want %q", first, want)
	}
}

func TestLogicalOperatorsYieldBooleans(t *testing.T) {
	wantOutput(t, "print 1 and 2;", "true\n")
	wantOutput(t, "print nil or \"x\";", "true\n")
	wantOutput(t, "print nil and 1;", "false\n")
	wantOutput(t, "print false or nil;", "false\n")
}

func TestShortCircuitSkipsRightOperand(t *testing.T) {
	// the right operand would fail if it were evaluated
	wantOutput(t, "print false and undefined_name;", "false\n")
	wantOutput(t, "print true or 1 / 0;", "true\n")

	wantError(t, "print true and undefined_name;", runtime.ErrUndefinedVariable)
}

func TestBlockScopeDoesNotLeak(t *testing.T) {
	err := wantError(t, "{ let x = 1; } print x;", runtime.ErrUndefinedVariable)
	if err.Kind != runtime.UndefinedVariable {
		t.Fatalf("Kind = %s", err.Kind)
	}
}

func TestShadowingKeepsOuterBinding(t *testing.T) {
	interp, out, err := run(t, "let x = 1; { let x = 2; print x; } print x;")
	if err != nil {
		t.Fatal(err)
	}
	if out != "2\n1\n" {
		t.Fatalf("output %q", out)
	}
	v, err := interp.Environment().Get("x")
	if err != nil || v != runtime.Number(1) {
		t.Fatalf("outer x = %v, %v", v, err)
	}
}

func TestAssignment(t *testing.T) {
	wantOutput(t, "let x = 1; { x = x + 10; } print x;", "11\n")
	wantError(t, "y = 3;", runtime.ErrUndefinedVariable)
}

func TestBlockRestoresScopeAfterError(t *testing.T) {
	interp, _, err := run(t, "{ let a = 1; { let b = 2; print 1 / 0; } }")
	if !errors.Is(err, runtime.ErrDivisionByZero) {
		t.Fatalf("error %v", err)
	}
	if d := interp.Environment().Depth(); d != 1 {
		t.Fatalf("Depth() = %d after failed block, want 1", d)
	}
}

func TestDivisionByZero(t *testing.T) {
	err := wantError(t, "print 5 / 0;", runtime.ErrDivisionByZero)
	if err.Line != 1 {
		t.Fatalf("Line = %d", err.Line)
	}
	wantError(t, "print 5 % 0;", runtime.ErrDivisionByZero)
}

func TestTypeMismatch(t *testing.T) {
	err := wantError(t, `print 1 + "a";`, runtime.ErrTypeMismatch)
	if !strings.Contains(err.Message, "'+'") || !strings.Contains(err.Message, `"a"`) {
		t.Fatalf("message %q should name the operator and operands", err.Message)
	}
	wantError(t, `print "a" < "b";`, runtime.ErrTypeMismatch)
	wantError(t, "print -true;", runtime.ErrTypeMismatch)
	wantError(t, "print nil * 2;", runtime.ErrTypeMismatch)
}

func TestStopsAtFirstError(t *testing.T) {
	_, out, err := run(t, "print 1;\nprint missing;\nprint 3;")
	if out != "1\n" {
		t.Fatalf("output %q", out)
	}
	var rerr *runtime.Error
	if !errors.As(err, &rerr) || rerr.Line != 2 {
		t.Fatalf("error %v, want undefined variable on line 2", err)
	}
}

func TestIfElse(t *testing.T) {
	wantOutput(t, "if (1 < 2) print \"yes\"; else print \"no\";", "yes\n")
	wantOutput(t, "if nil print \"yes\"; else print \"no\";", "no\n")
	wantOutput(t, "if false print 1;", "")
	wantOutput(t, "if 0 { print \"zero is truthy\"; }", "zero is truthy\n")
}

func TestWhile(t *testing.T) {
	wantOutput(t, "let i = 0; while (i < 3) { print i; i = i + 1; }", "0\n1\n2\n")
	wantOutput(t, "while false print 1;", "")

	_, out, err := run(t, "let i = 0; while i < 5 { i = i + 1; if i == 3 print 1 / 0; }")
	if !errors.Is(err, runtime.ErrDivisionByZero) || out != "" {
		t.Fatalf("output %q, error %v", out, err)
	}
}

func TestConstants(t *testing.T) {
	wantOutput(t, "const N = 3; print N * 2;", "6\n")
	wantError(t, "const N = 3; N = 4;", runtime.ErrConstAssignment)
	wantError(t, "const N = 3; let N = 4;", runtime.ErrConstAssignment)
	wantOutput(t, "const N = 3; { let N = 4; print N; } print N;", "4\n3\n")
}

func TestUnimplementedConstructs(t *testing.T) {
	for _, src := range []string{
		"for (;;) print 1;",
		"func f() { return 1; }",
		"return;",
		"print f(1);",
	} {
		wantError(t, src, runtime.ErrUnimplemented)
	}
}

func TestEvaluateSharesEnvironment(t *testing.T) {
	env := runtime.NewEnvironment()
	var out bytes.Buffer

	first, _ := parser.ParseString("let greeting = \"hi\";")
	if err := Evaluate(first.Statements, env, &out); err != nil {
		t.Fatal(err)
	}
	second, _ := parser.ParseString("print greeting;")
	if err := Evaluate(second.Statements, env, &out); err != nil {
		t.Fatal(err)
	}
	if out.String() != "hi\n" {
		t.Fatalf("output %q", out.String())
	}
}
