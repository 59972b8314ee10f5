package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tangzhangming/fddl/internal/i18n"
)

func TestMain(m *testing.M) {
	i18n.SetLanguage(i18n.LangEnglish)
	os.Exit(m.Run())
}

const testConfig = `
[repl]
prompt = "> "
continuation = ".. "
banner = false

[history]
enabled = false

[output]
color = "never"

[i18n]
lang = "en"
`

// fixture writes a config plus optional files into a temp dir.
func fixture(t *testing.T, cfg string, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "fddl.toml"), []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func runCLI(t *testing.T, dir, stdin string, args ...string) (int, string, string) {
	t.Helper()
	argv := append([]string{"fddl", "-c", filepath.Join(dir, "fddl.toml")}, args...)
	var stdout, stderr bytes.Buffer
	code := run(argv, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestEval(t *testing.T) {
	dir := fixture(t, testConfig, nil)
	code, stdout, stderr := runCLI(t, dir, "", "-e", "print 1 + 2 * 3;")
	if code != 0 || stdout != "7\n" {
		t.Fatalf("code %d, stdout %q, stderr %q", code, stdout, stderr)
	}
}

func TestRunFile(t *testing.T) {
	dir := fixture(t, testConfig, map[string]string{
		"hello.fddl": "let x = 1;\n{ let x = 2; print x; }\nprint x;\n",
	})
	script := filepath.Join(dir, "hello.fddl")

	for _, args := range [][]string{{"run", script}, {script}} {
		code, stdout, stderr := runCLI(t, dir, "", args...)
		if code != 0 || stdout != "2\n1\n" {
			t.Fatalf("%v: code %d, stdout %q, stderr %q", args, code, stdout, stderr)
		}
	}
}

func TestRunFileErrors(t *testing.T) {
	dir := fixture(t, testConfig, map[string]string{
		"bad.fddl": "print 1;\nprint 2 / 0;\n",
	})

	code, stdout, stderr := runCLI(t, dir, "", "run", filepath.Join(dir, "bad.fddl"))
	if code != 1 {
		t.Fatalf("code %d", code)
	}
	if stdout != "1\n" {
		t.Fatalf("stdout %q", stdout)
	}
	if !strings.Contains(stderr, "line 2: division by zero") {
		t.Fatalf("stderr %q", stderr)
	}

	code, _, stderr = runCLI(t, dir, "", "run", filepath.Join(dir, "missing.fddl"))
	if code != 1 || !strings.Contains(stderr, "cannot read file") {
		t.Fatalf("code %d, stderr %q", code, stderr)
	}

	code, _, stderr = runCLI(t, dir, "", "run")
	if code != 2 || !strings.Contains(stderr, "run: input file is required") {
		t.Fatalf("code %d, stderr %q", code, stderr)
	}
}

func TestTokens(t *testing.T) {
	dir := fixture(t, testConfig, map[string]string{
		"t.fddl": `let s = "hi";`,
	})
	code, stdout, _ := runCLI(t, dir, "", "tokens", filepath.Join(dir, "t.fddl"))
	if code != 0 {
		t.Fatalf("code %d", code)
	}
	want := "1:1 let let\n1:5 IDENT s\n1:7 = =\n1:9 STRING \"hi\"\n1:13 ; ;\n1:14 EOF\n"
	if stdout != want {
		t.Fatalf("stdout:\n%s\nwant:\n%s", stdout, want)
	}
}

func TestAst(t *testing.T) {
	dir := fixture(t, testConfig, map[string]string{
		"a.fddl": "print 1 + 2 * 3;\nif (x) { y = 1; }\n",
		"b.fddl": "print 1;\nprint (2;\n",
	})
	code, stdout, _ := runCLI(t, dir, "", "ast", filepath.Join(dir, "a.fddl"))
	if code != 0 {
		t.Fatalf("code %d", code)
	}
	want := "(print (+ 1 (* 2 3)))\n(if (group x) (block (assign y 1)))\n"
	if stdout != want {
		t.Fatalf("stdout %q, want %q", stdout, want)
	}

	code, stdout, stderr := runCLI(t, dir, "", "ast", filepath.Join(dir, "b.fddl"))
	if code != 1 || stdout != "(print 1)\n" || !strings.Contains(stderr, "expected ')'") {
		t.Fatalf("code %d, stdout %q, stderr %q", code, stdout, stderr)
	}
}

func TestVersionAndHelp(t *testing.T) {
	dir := fixture(t, testConfig, nil)
	for _, args := range [][]string{{"version"}, {"-V"}} {
		code, stdout, _ := runCLI(t, dir, "", args...)
		if code != 0 || stdout != "fddl version "+version+"\n" {
			t.Fatalf("%v: code %d, stdout %q", args, code, stdout)
		}
	}
	code, stdout, _ := runCLI(t, dir, "", "help")
	if code != 0 || !strings.Contains(stdout, "Usage: fddl") {
		t.Fatalf("code %d, stdout %q", code, stdout)
	}
}

func TestUnknownCommand(t *testing.T) {
	dir := fixture(t, testConfig, nil)
	code, _, stderr := runCLI(t, dir, "", "frobnicate")
	if code != 2 || !strings.Contains(stderr, "Unknown command: frobnicate") {
		t.Fatalf("code %d, stderr %q", code, stderr)
	}
}

func TestBadOption(t *testing.T) {
	dir := fixture(t, testConfig, nil)
	code, _, _ := runCLI(t, dir, "", "-z")
	if code != 2 {
		t.Fatalf("code %d", code)
	}
	code, _, _ = runCLI(t, dir, "", "-d", "loud", "-e", "print 1;")
	if code != 2 {
		t.Fatalf("bad log level: code %d", code)
	}
}

func TestReplSession(t *testing.T) {
	dir := fixture(t, testConfig, nil)
	input := strings.Join([]string{
		"let x = 1;",
		"{",
		"  x = x + 1;",
		"}",
		"print x;",
		"print missing;",
		":env",
		":history",
		":nope",
		":quit",
		"print 99;",
	}, "\n") + "\n"

	code, stdout, stderr := runCLI(t, dir, input, "repl")
	if code != 0 {
		t.Fatalf("code %d, stderr %q", code, stderr)
	}
	if !strings.Contains(stdout, ".. ") {
		t.Fatalf("no continuation prompt in %q", stdout)
	}
	if !strings.Contains(stdout, "2\n") {
		t.Fatalf("block assignment was not visible: %q", stdout)
	}
	if !strings.Contains(stdout, "let x = 2\n") {
		t.Fatalf(":env output missing from %q", stdout)
	}
	if strings.Contains(stdout, "99") {
		t.Fatalf("input after :quit was evaluated: %q", stdout)
	}
	for _, want := range []string{"undefined variable 'missing'", "history is disabled", "unknown command :nope"} {
		if !strings.Contains(stderr, want) {
			t.Fatalf("stderr %q does not contain %q", stderr, want)
		}
	}
}

func TestReplHistory(t *testing.T) {
	cfg := strings.Replace(testConfig, "enabled = false", `enabled = true
path = "hist.db"`, 1)
	dir := fixture(t, cfg, nil)

	code, _, stderr := runCLI(t, dir, "print 1;\nlet y = 2;\n", "repl")
	if code != 0 {
		t.Fatalf("code %d, stderr %q", code, stderr)
	}
	if _, err := os.Stat(filepath.Join(dir, "hist.db")); err != nil {
		t.Fatalf("history database was not created: %v", err)
	}

	code, stdout, _ := runCLI(t, dir, ":history\n:clear-history\n:history\n", "repl")
	if code != 0 {
		t.Fatalf("code %d", code)
	}
	if strings.Count(stdout, "print 1;") != 1 || !strings.Contains(stdout, "let y = 2;") {
		t.Fatalf("stdout %q", stdout)
	}
	if !strings.Contains(stdout, "history cleared") {
		t.Fatalf("stdout %q", stdout)
	}
}

func TestReplEndOfInput(t *testing.T) {
	dir := fixture(t, testConfig, nil)
	code, stdout, _ := runCLI(t, dir, "print \"a\";", "repl")
	if code != 0 || !strings.Contains(stdout, "a\n") || !strings.HasSuffix(stdout, "bye\n") {
		t.Fatalf("code %d, stdout %q", code, stdout)
	}
}
