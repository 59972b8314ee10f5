package runtime

import (
	"errors"
	"math"
	"os"
	"testing"

	"github.com/tangzhangming/fddl/internal/i18n"
)

func TestMain(m *testing.M) {
	i18n.SetLanguage(i18n.LangEnglish)
	os.Exit(m.Run())
}

func TestTruthy(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{Bool(false), false},
		{Nil{}, false},
		{Bool(true), true},
		{Number(0), true},
		{String(""), true},
		{String("x"), true},
	}
	for _, c := range cases {
		if got := Truthy(c.v); got != c.want {
			t.Fatalf("Truthy(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestEqual(t *testing.T) {
	if !Equal(Number(5), Number(5)) {
		t.Fatal("5 should equal 5")
	}
	if Equal(Number(5), String("5")) {
		t.Fatal(`5 should not equal "5"`)
	}
	if !Equal(Nil{}, Nil{}) {
		t.Fatal("nil should equal nil")
	}
	if Equal(Nil{}, Bool(false)) {
		t.Fatal("nil should not equal false")
	}
	if !Equal(String("ab"), String("ab")) {
		t.Fatal(`"ab" should equal "ab"`)
	}
}

func TestNumberString(t *testing.T) {
	cases := map[float64]string{
		3:      "3",
		2.5:    "2.5",
		-0.125: "-0.125",
		1e21:   "1000000000000000000000",
		0.1:    "0.1",
	}
	for f, want := range cases {
		if got := Number(f).String(); got != want {
			t.Fatalf("Number(%v).String() = %q, want %q", f, got, want)
		}
	}
	if got := Number(math.Inf(1)).String(); got != "inf" {
		t.Fatalf("+Inf formats as %q", got)
	}
}

func TestAlmost(t *testing.T) {
	if got := Almost(Bool(true)); got != Bool(false) {
		t.Fatalf("~true = %v", got)
	}
	if got := Almost(String("héllo")); got != String("olléh~") {
		t.Fatalf(`~"héllo" = %v`, got)
	}
	if got := Almost(Nil{}); got != String("almost nothing") {
		t.Fatalf("~nil = %v", got)
	}

	a := Almost(Number(100)).(Number)
	b := Almost(Number(100)).(Number)
	if a != b {
		t.Fatalf("~100 is not deterministic: %v vs %v", a, b)
	}
	// scale stays within 1%, offset within 0.05
	if math.Abs(float64(a)-100) > 1.05 {
		t.Fatalf("~100 = %v, too far from 100", a)
	}
}

func TestEnvironmentDefineGet(t *testing.T) {
	env := NewEnvironment()
	if err := env.Define("x", Number(1)); err != nil {
		t.Fatal(err)
	}
	v, err := env.Get("x")
	if err != nil || v != Number(1) {
		t.Fatalf("Get(x) = %v, %v", v, err)
	}

	_, err = env.Get("missing")
	if !errors.Is(err, ErrUndefinedVariable) {
		t.Fatalf("Get(missing) error = %v, want undefined variable", err)
	}
}

func TestEnvironmentShadowing(t *testing.T) {
	env := NewEnvironment()
	env.Define("x", Number(1))

	env.Push()
	env.Define("x", Number(2))
	if v, _ := env.Get("x"); v != Number(2) {
		t.Fatalf("inner x = %v, want 2", v)
	}
	env.Pop()

	if v, _ := env.Get("x"); v != Number(1) {
		t.Fatalf("outer x = %v, want 1", v)
	}
}

func TestEnvironmentAssignOuter(t *testing.T) {
	env := NewEnvironment()
	env.Define("x", Number(1))

	env.Push()
	if err := env.Assign("x", Number(5)); err != nil {
		t.Fatal(err)
	}
	env.Pop()

	if v, _ := env.Get("x"); v != Number(5) {
		t.Fatalf("x = %v, want 5", v)
	}

	err := env.Assign("y", Number(1))
	if !errors.Is(err, ErrUndefinedVariable) {
		t.Fatalf("Assign(y) error = %v", err)
	}
}

func TestEnvironmentPopKeepsGlobal(t *testing.T) {
	env := NewEnvironment()
	env.Pop()
	env.Pop()
	if env.Depth() != 1 {
		t.Fatalf("Depth() = %d, want 1", env.Depth())
	}
	if err := env.Define("x", Nil{}); err != nil {
		t.Fatal(err)
	}
}

func TestEnvironmentConst(t *testing.T) {
	env := NewEnvironment()
	if err := env.DefineConst("PI", Number(3.14)); err != nil {
		t.Fatal(err)
	}
	if !env.IsConst("PI") {
		t.Fatal("PI should be constant")
	}

	err := env.Assign("PI", Number(3))
	if !errors.Is(err, ErrConstAssignment) {
		t.Fatalf("Assign(PI) error = %v", err)
	}
	err = env.Define("PI", Number(3))
	if !errors.Is(err, ErrConstAssignment) {
		t.Fatalf("Define(PI) error = %v", err)
	}

	env.Push()
	if err := env.Define("PI", Number(3)); err != nil {
		t.Fatalf("shadowing a constant: %v", err)
	}
	if env.IsConst("PI") {
		t.Fatal("inner PI should not be constant")
	}
	if err := env.Assign("PI", Number(4)); err != nil {
		t.Fatalf("assigning inner PI: %v", err)
	}
	env.Pop()

	if v, _ := env.Get("PI"); v != Number(3.14) {
		t.Fatalf("PI = %v, want 3.14", v)
	}
}

func TestEnvironmentKeys(t *testing.T) {
	env := NewEnvironment()
	env.Define("b", Nil{})
	env.Define("a", Nil{})
	env.Push()
	env.Define("inner", Nil{})

	keys := env.Keys()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("Keys() = %v", keys)
	}
}

func TestErrorMessage(t *testing.T) {
	err := NewError(DivisionByZero, i18n.RtDivisionByZero)
	if got := err.Error(); got != "division by zero" {
		t.Fatalf("Error() = %q", got)
	}
	AtLine(err, 4)
	if got := err.Error(); got != "line 4: division by zero" {
		t.Fatalf("Error() = %q", got)
	}
	AtLine(err, 9)
	if err.Line != 4 {
		t.Fatalf("AtLine overwrote line: %d", err.Line)
	}
	if !errors.Is(err, ErrDivisionByZero) || errors.Is(err, ErrTypeMismatch) {
		t.Fatal("errors.Is does not follow the kind")
	}
	if err.Kind.String() != "DivisionByZero" {
		t.Fatalf("Kind = %s", err.Kind)
	}
}
