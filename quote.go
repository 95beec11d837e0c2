package elevate

import (
	"strings"

	"al.essio.dev/pkg/shellescape"
)

// encodeParameterString joins arguments into the single parameter
// string the Windows shell-execute API expects, escaped so the standard
// command-line tokenizer of the launched program splits it back into
// the original arguments.
//
// This is not a general shell-escaping routine: the destination parser
// is the restricted argv tokenizer, so metacharacters like % or & need
// no treatment. Per argument: an empty string becomes "", a string
// free of space, tab and double-quote passes through verbatim, and
// anything else is wrapped in double quotes with backslashes doubled
// and embedded quotes escaped as \".
func encodeParameterString(args []string) string {
	var b strings.Builder
	for i, arg := range args {
		if i > 0 {
			b.WriteByte(' ')
		}
		encodeParameter(&b, arg)
	}
	return b.String()
}

func encodeParameter(b *strings.Builder, arg string) {
	if arg == "" {
		b.WriteString(`""`)
		return
	}
	if !strings.ContainsAny(arg, " \t\"") {
		b.WriteString(arg)
		return
	}
	b.WriteByte('"')
	for _, r := range arg {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
}

// shellCommandLine assembles program and arguments into one POSIX shell
// command line. The macOS elevation path hands this string to a shell
// via AppleScript, so every word is quoted with full POSIX rules rather
// than the restricted Windows tokenizer rules above.
func shellCommandLine(program string, args []string) string {
	words := make([]string, 0, len(args)+1)
	words = append(words, program)
	words = append(words, args...)
	return shellescape.QuoteCommand(words)
}

// appleScriptString renders s as a quoted AppleScript string literal.
// AppleScript strings only treat backslash and double-quote specially.
func appleScriptString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
