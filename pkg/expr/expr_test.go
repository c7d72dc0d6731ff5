package expr

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/lemonberrylabs/arith/pkg/types"
)

// fixture is one case from testdata/expressions.yaml.
type fixture struct {
	Expr  string   `yaml:"expr"`
	Want  *float64 `yaml:"want"`
	Error string   `yaml:"error"`
}

func loadFixtures(t *testing.T) []fixture {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "expressions.yaml"))
	if err != nil {
		t.Fatalf("failed to read fixtures: %v", err)
	}
	var doc struct {
		Cases []fixture `yaml:"cases"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("failed to parse fixtures: %v", err)
	}
	if len(doc.Cases) == 0 {
		t.Fatal("no fixtures found")
	}
	return doc.Cases
}

func TestExpressionFixtures(t *testing.T) {
	for _, tt := range loadFixtures(t) {
		t.Run(tt.Expr, func(t *testing.T) {
			got, err := Eval(tt.Expr)
			if tt.Error != "" {
				if err == nil {
					t.Fatalf("expected error %q, got result %v", tt.Error, got)
				}
				if err.Error() != tt.Error {
					t.Errorf("error = %q, want %q", err.Error(), tt.Error)
				}
				if _, ok := types.AsArithmeticError(err); !ok {
					t.Errorf("expected *types.ArithmeticError, got %T", err)
				}
				return
			}
			if tt.Want == nil {
				t.Fatal("fixture has neither want nor error")
			}
			if err != nil {
				t.Fatalf("eval error: %v", err)
			}
			if want := Number(*tt.Want); got != want {
				t.Errorf("got %v, want %v", got, want)
			}
		})
	}
}

func TestFloat32Arithmetic(t *testing.T) {
	// Results must match float32 arithmetic, not float64.
	a, b := Number(0.1), Number(0.2)
	want := a + b

	got, err := Eval("0.1 + 0.2")
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	third, err := Eval("10 / 3")
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}
	if want := Number(10) / Number(3); third != want {
		t.Errorf("got %v, want %v", third, want)
	}
}

func TestLargeMagnitudes(t *testing.T) {
	// Overflow is not checked; it saturates to infinity.
	got, err := Eval("340000000000000000000000000000000000000 * 10")
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}
	if !math.IsInf(float64(got), 1) {
		t.Errorf("got %v, want +Inf", got)
	}
}

func TestEvalDeterministic(t *testing.T) {
	const input = "1.1 * (2.2 - 3.3) / 7 + 0.9"
	first, err := Eval(input)
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}
	for i := 0; i < 10; i++ {
		got, err := Eval(input)
		if err != nil {
			t.Fatalf("eval error: %v", err)
		}
		if math.Float32bits(got) != math.Float32bits(first) {
			t.Fatalf("run %d: got %v, want bit-identical %v", i, got, first)
		}
	}
}

func TestEvaluateDrainsTokens(t *testing.T) {
	tokens, err := Tokenize("(1 + 2) * 3")
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	got, err := Evaluate(tokens)
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}
	if got != 9 {
		t.Errorf("got %v, want 9", got)
	}
	if !tokens.Empty() {
		t.Errorf("expected all tokens consumed, %d left", tokens.Len())
	}
}

func TestTokenProperties(t *testing.T) {
	tests := []struct {
		tok        Token
		precedence Precedence
		binary     bool
		unary      bool
		text       string
	}{
		{NumberToken(1.5), 0, false, false, "1.5"},
		{Token{Type: TokenPlus}, 1, true, true, "+"},
		{Token{Type: TokenMinus}, 1, true, true, "-"},
		{Token{Type: TokenTimes}, 2, true, false, "*"},
		{Token{Type: TokenDivide}, 2, true, false, "/"},
		{Token{Type: TokenLParen}, 0, false, false, "("},
		{Token{Type: TokenRParen}, 0, false, false, ")"},
	}

	for _, tt := range tests {
		t.Run(tt.tok.Type.String(), func(t *testing.T) {
			if got := tt.tok.Precedence(); got != tt.precedence {
				t.Errorf("Precedence() = %d, want %d", got, tt.precedence)
			}
			if got := tt.tok.IsBinary(); got != tt.binary {
				t.Errorf("IsBinary() = %v, want %v", got, tt.binary)
			}
			if got := tt.tok.IsUnary(); got != tt.unary {
				t.Errorf("IsUnary() = %v, want %v", got, tt.unary)
			}
			if got := tt.tok.String(); got != tt.text {
				t.Errorf("String() = %q, want %q", got, tt.text)
			}
		})
	}
}

func TestApplyBinary(t *testing.T) {
	tests := []struct {
		op      TokenType
		l, r    Number
		want    Number
		wantErr string
	}{
		{TokenPlus, 2, 3, 5, ""},
		{TokenMinus, 2, 3, -1, ""},
		{TokenTimes, 2, 3, 6, ""},
		{TokenDivide, 3, 2, 1.5, ""},
		{TokenDivide, 3, 0, 0, types.MsgDivisionByZero},
		{TokenLParen, 1, 1, 0, types.MsgInvalidBinaryOperator},
		{TokenNumber, 1, 1, 0, types.MsgInvalidBinaryOperator},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			got, err := Token{Type: tt.op}.ApplyBinary(tt.l, tt.r)
			if tt.wantErr != "" {
				if err == nil || err.Error() != tt.wantErr {
					t.Fatalf("error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyUnary(t *testing.T) {
	if got, err := (Token{Type: TokenPlus}).ApplyUnary(4); err != nil || got != 4 {
		t.Errorf("unary plus = %v, %v", got, err)
	}
	if got, err := (Token{Type: TokenMinus}).ApplyUnary(4); err != nil || got != -4 {
		t.Errorf("unary minus = %v, %v", got, err)
	}
	for _, tt := range []TokenType{TokenTimes, TokenDivide, TokenLParen, TokenRParen, TokenNumber} {
		_, err := Token{Type: tt}.ApplyUnary(4)
		if err == nil || err.Error() != types.MsgInvalidUnaryOperator {
			t.Errorf("%s: error = %v, want %q", tt, err, types.MsgInvalidUnaryOperator)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    Number
		want string
	}{
		{14, "14"},
		{3.75, "3.75"},
		{-5, "-5"},
		{0.1, "0.1"},
		{1e20, "100000000000000000000"},
		{Number(math.Inf(1)), "+Inf"},
		{Number(math.Inf(-1)), "-Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatNumber(tt.n); got != tt.want {
				t.Errorf("FormatNumber(%v) = %q, want %q", tt.n, got, tt.want)
			}
		})
	}
}
