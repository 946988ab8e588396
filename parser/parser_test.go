package parser

import (
	"errors"
	"testing"
)

func TestCharMatch(t *testing.T) {
	value, rest, err := Char("abc", 'a')
	if err != nil {
		t.Fatalf("Failed to parse char: %v", err)
	}

	if value != 'a' {
		t.Errorf("Expected 'a', got %q", value)
	}

	if rest != "bc" {
		t.Errorf("Expected remainder \"bc\", got %q", rest)
	}
}

func TestCharMismatch(t *testing.T) {
	_, _, err := Char("abc", 'b')
	if err == nil {
		t.Fatal("Expected error for mismatched char")
	}

	var unexpected *UnexpectedCharError
	if !errors.As(err, &unexpected) {
		t.Fatalf("Expected UnexpectedCharError, got %T", err)
	}

	if unexpected.Actual != 'a' {
		t.Errorf("Expected actual 'a', got %q", unexpected.Actual)
	}

	want := "Expected character 'b', found 'a'."
	if unexpected.Message != want {
		t.Errorf("Expected %q, got %q", want, unexpected.Message)
	}
}

func TestCharEof(t *testing.T) {
	_, _, err := Char("", 'a')

	var eof *UnexpectedEofError
	if !errors.As(err, &eof) {
		t.Fatalf("Expected UnexpectedEofError, got %v", err)
	}
}

func TestLiteral(t *testing.T) {
	value, rest, err := Literal("model User", "model")
	if err != nil {
		t.Fatalf("Failed to parse literal: %v", err)
	}

	if value != "model" {
		t.Errorf("Expected \"model\", got %q", value)
	}

	if rest != " User" {
		t.Errorf("Expected remainder \" User\", got %q", rest)
	}

	if _, _, err := Literal("query", "model"); err == nil {
		t.Error("Expected error for unmatched literal")
	}

	if _, _, err := Literal("", "model"); err == nil {
		t.Error("Expected error for empty input")
	}
}

func TestManyNeverFails(t *testing.T) {
	values, rest := Many("aaab", func(input string) (byte, string, error) {
		return Char(input, 'a')
	})

	if len(values) != 3 {
		t.Errorf("Expected 3 values, got %d", len(values))
	}

	if rest != "b" {
		t.Errorf("Expected remainder \"b\", got %q", rest)
	}

	values, rest = Many("xyz", func(input string) (byte, string, error) {
		return Char(input, 'a')
	})

	if len(values) != 0 {
		t.Errorf("Expected no values, got %d", len(values))
	}

	if rest != "xyz" {
		t.Errorf("Expected untouched input, got %q", rest)
	}
}

func TestMany1(t *testing.T) {
	parse := func(input string) (byte, string, error) {
		return Char(input, 'a')
	}

	values, rest, err := Many1("aab", parse)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	if len(values) != 2 || rest != "b" {
		t.Errorf("Expected 2 values and \"b\", got %d and %q", len(values), rest)
	}

	if _, _, err := Many1("b", parse); err == nil {
		t.Error("Expected error when first repetition fails")
	}
}

func TestChoice(t *testing.T) {
	a := func(input string) (byte, string, error) { return Char(input, 'a') }
	b := func(input string) (byte, string, error) { return Char(input, 'b') }

	value, rest, err := Choice("b", a, b)
	if err != nil {
		t.Fatalf("Failed to parse choice: %v", err)
	}

	if value != 'b' || rest != "" {
		t.Errorf("Expected 'b' and empty remainder, got %q and %q", value, rest)
	}

	_, _, err = Choice("c", a, b)

	var unmatched *UnmatchedChoiceError
	if !errors.As(err, &unmatched) {
		t.Fatalf("Expected UnmatchedChoiceError, got %v", err)
	}

	if len(unmatched.Errors) != 2 {
		t.Errorf("Expected 2 gathered errors, got %d", len(unmatched.Errors))
	}
}

func TestOption(t *testing.T) {
	parse := func(input string) (byte, string, error) {
		return Char(input, 'a')
	}

	value, rest, ok := Option("ab", parse)
	if !ok || value != 'a' || rest != "b" {
		t.Errorf("Expected matched option, got %v %q %q", ok, value, rest)
	}

	_, rest, ok = Option("xy", parse)
	if ok {
		t.Error("Expected option to report no match")
	}

	if rest != "xy" {
		t.Errorf("Expected original input back, got %q", rest)
	}
}

func TestBetween(t *testing.T) {
	value, rest, err := Between("[Int]", "[", Alphabetics, "]")
	if err != nil {
		t.Fatalf("Failed to parse between: %v", err)
	}

	if value != "Int" || rest != "" {
		t.Errorf("Expected \"Int\" and empty remainder, got %q and %q", value, rest)
	}

	if _, _, err := Between("[Int", "[", Alphabetics, "]"); err == nil {
		t.Error("Expected error for missing closing literal")
	}
}

func TestMapAndTag(t *testing.T) {
	length := Map(Alphabetics, func(s string) int { return len(s) })

	value, rest, err := length("abc123")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	if value != 3 || rest != "123" {
		t.Errorf("Expected 3 and \"123\", got %d and %q", value, rest)
	}

	constant := Tag(func(input string) (string, string, error) {
		return Literal(input, "Int")
	}, 42)

	tagged, rest, err := constant("Int!")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	if tagged != 42 || rest != "!" {
		t.Errorf("Expected 42 and \"!\", got %d and %q", tagged, rest)
	}
}

func TestCharClasses(t *testing.T) {
	if _, _, err := Alphabetics("abc"); err != nil {
		t.Errorf("Expected alphabetics to match: %v", err)
	}

	_, _, err := Alphabetics("1bc")

	var unexpected *UnexpectedCharError
	if !errors.As(err, &unexpected) {
		t.Fatalf("Expected UnexpectedCharError, got %v", err)
	}

	if unexpected.Message != "Expected alphabetic character." {
		t.Errorf("Unexpected message %q", unexpected.Message)
	}

	if _, _, err := Lowercase("Abc"); err == nil {
		t.Error("Expected lowercase to reject 'A'")
	}

	if _, _, err := Uppercase("abc"); err == nil {
		t.Error("Expected uppercase to reject 'a'")
	}

	if _, _, err := Space("x"); err == nil {
		t.Error("Expected space to reject 'x'")
	}
}

func TestSpaces(t *testing.T) {
	if rest := Spaces("  \t\n x"); rest != "x" {
		t.Errorf("Expected \"x\", got %q", rest)
	}

	if rest := Spaces("x"); rest != "x" {
		t.Errorf("Expected untouched input, got %q", rest)
	}

	if rest := Spaces(""); rest != "" {
		t.Errorf("Expected empty remainder, got %q", rest)
	}
}
