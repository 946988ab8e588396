package parser

// CharIf consumes one byte satisfying pred. The description becomes the
// error message when the head byte does not match.
func CharIf(
	input string,
	pred func(byte) bool,
	description string,
) (byte, string, error) {
	if input == "" {
		return 0, "", &UnexpectedEofError{}
	}

	if !pred(input[0]) {
		return 0, "", &UnexpectedCharError{
			Actual:  input[0],
			Message: description,
		}
	}

	return input[0], input[1:], nil
}

// CharsIf consumes one or more bytes satisfying pred.
func CharsIf(
	input string,
	pred func(byte) bool,
	description string,
) (string, string, error) {
	if _, _, err := CharIf(input, pred, description); err != nil {
		return "", "", err
	}

	i := 1
	for i < len(input) && pred(input[i]) {
		i++
	}

	return input[:i], input[i:], nil
}

func isAlphabetic(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isLowercase(c byte) bool {
	return 'a' <= c && c <= 'z'
}

func isUppercase(c byte) bool {
	return 'A' <= c && c <= 'Z'
}

func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}

	return false
}

// Alphabetics consumes one or more ASCII letters.
func Alphabetics(input string) (string, string, error) {
	return CharsIf(input, isAlphabetic, "Expected alphabetic character.")
}

// Lowercase consumes one lowercase ASCII letter.
func Lowercase(input string) (byte, string, error) {
	return CharIf(input, isLowercase, "Expected lowercase character.")
}

// Uppercase consumes one uppercase ASCII letter.
func Uppercase(input string) (byte, string, error) {
	return CharIf(input, isUppercase, "Expected uppercase character.")
}

// Space consumes one whitespace byte.
func Space(input string) (byte, string, error) {
	return CharIf(input, isWhitespace, "Expected whitespace character.")
}

// Spaces skips any run of whitespace and returns the remainder. It never
// fails.
func Spaces(input string) string {
	i := 0
	for i < len(input) && isWhitespace(input[i]) {
		i++
	}

	return input[i:]
}

// Shorthands for the punctuation the grammar uses.

func BraceOpen(input string) (byte, string, error)  { return Char(input, '{') }
func BraceClose(input string) (byte, string, error) { return Char(input, '}') }
func ParenOpen(input string) (byte, string, error)  { return Char(input, '(') }
func ParenClose(input string) (byte, string, error) { return Char(input, ')') }
func Colon(input string) (byte, string, error)      { return Char(input, ':') }
func Comma(input string) (byte, string, error)      { return Char(input, ',') }
func Dollar(input string) (byte, string, error)     { return Char(input, '$') }
func At(input string) (byte, string, error)         { return Char(input, '@') }
