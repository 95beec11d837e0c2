package elevate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mvdan.cc/sh/v3/shell"
)

// splitParameterString reverses encodeParameterString using the rules
// of the standard Windows command-line tokenizer: whitespace separates
// arguments outside quotes, a double quote toggles quoted mode, and n
// backslashes before a quote collapse to n/2 (odd n escaping the
// quote). Backslashes not followed by a quote are literal.
func splitParameterString(s string) []string {
	var args []string
	i, n := 0, len(s)
	for {
		for i < n && (s[i] == ' ' || s[i] == '\t') {
			i++
		}
		if i >= n {
			break
		}
		var b strings.Builder
		inQuotes := false
		for i < n {
			c := s[i]
			if c == '\\' {
				j := i
				for j < n && s[j] == '\\' {
					j++
				}
				slashes := j - i
				if j < n && s[j] == '"' {
					b.WriteString(strings.Repeat(`\`, slashes/2))
					if slashes%2 == 1 {
						b.WriteByte('"')
						j++
					}
				} else {
					b.WriteString(strings.Repeat(`\`, slashes))
				}
				i = j
				continue
			}
			if c == '"' {
				inQuotes = !inQuotes
				i++
				continue
			}
			if !inQuotes && (c == ' ' || c == '\t') {
				break
			}
			b.WriteByte(c)
			i++
		}
		args = append(args, b.String())
	}
	return args
}

func TestEncodeParameterStringVerbatim(t *testing.T) {
	// No space, tab or quote: arguments pass through untouched.
	assert.Equal(t, "-k --", encodeParameterString([]string{"-k", "--"}))
	assert.Equal(t, `C:\Temp\x.txt`, encodeParameterString([]string{`C:\Temp\x.txt`}))
	assert.Equal(t, "a%b&c", encodeParameterString([]string{"a%b&c"}))
}

func TestEncodeParameterStringIdempotentOnSafeInput(t *testing.T) {
	first := encodeParameterString([]string{"safe-arg"})
	second := encodeParameterString([]string{first})
	assert.Equal(t, "safe-arg", first)
	assert.Equal(t, first, second)
}

func TestEncodeParameterStringEmptyArgument(t *testing.T) {
	assert.Equal(t, `""`, encodeParameterString([]string{""}))
	assert.Equal(t, `a "" b`, encodeParameterString([]string{"a", "", "b"}))
}

func TestEncodeParameterStringEscaping(t *testing.T) {
	assert.Equal(t, `"a\"b"`, encodeParameterString([]string{`a"b`}))
	assert.Equal(t, `"a\\ b"`, encodeParameterString([]string{`a\ b`}))
	assert.Equal(t, `"two words"`, encodeParameterString([]string{"two words"}))
	assert.Equal(t, "\"tab\there\"", encodeParameterString([]string{"tab\there"}))
}

func TestEncodeParameterStringRoundTrip(t *testing.T) {
	cases := [][]string{
		{"plain"},
		{"two words"},
		{"a", "b c", "d"},
		{`say "hello"`},
		{"", "x", ""},
		{"trailing space ", " leading"},
		{"mixed\ttab and space", `quoted "inner" part`},
	}
	for _, args := range cases {
		encoded := encodeParameterString(args)
		assert.Equal(t, args, splitParameterString(encoded), "encoded form: %s", encoded)
	}
}

func TestShellCommandLineRoundTrip(t *testing.T) {
	cases := [][]string{
		{"/usr/bin/touch", "/tmp/marker"},
		{"rm", "-rf", "/tmp/dir with spaces"},
		{"echo", `it's "quoted"`, "$HOME", "`whoami`"},
		{"cp", "a b", "c\td"},
	}
	for _, words := range cases {
		line := shellCommandLine(words[0], words[1:])
		fields, err := shell.Fields(line, func(string) string { return "" })
		require.NoError(t, err, "command line: %s", line)
		assert.Equal(t, words, fields, "command line: %s", line)
	}
}

func TestAppleScriptString(t *testing.T) {
	assert.Equal(t, `"plain"`, appleScriptString("plain"))
	assert.Equal(t, `"say \"hi\""`, appleScriptString(`say "hi"`))
	assert.Equal(t, `"back\\slash"`, appleScriptString(`back\slash`))
}
