package diagram

import (
	"strings"

	"github.com/atotto/clipboard"
)

const tabWidth = 4

// ClipboardReader returns the system clipboard contents.
type ClipboardReader func() (string, error)

func systemClipboard() (string, error) {
	return clipboard.ReadAll()
}

// cleanClipboardText normalizes line endings, expands tabs and drops control
// characters so the result can be inserted into a text editor.
func cleanClipboardText(text string) string {
	if text == "" {
		return text
	}
	text = stripRTF(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var result strings.Builder
	result.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\n':
			result.WriteRune(r)
		case r == '\t':
			result.WriteString(strings.Repeat(" ", tabWidth))
		case r >= 32 && r != 127:
			result.WriteRune(r)
		}
	}
	return result.String()
}

// stripRTF reduces an RTF document to its text runs. Anything else is
// returned unchanged.
func stripRTF(text string) string {
	if !strings.HasPrefix(text, "{\\rtf") {
		return text
	}
	var result strings.Builder
	result.Grow(len(text))
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case '{', '}':
			continue
		case '\\':
		default:
			result.WriteRune(r)
			continue
		}
		if i+1 >= len(runes) {
			break
		}
		next := runes[i+1]
		switch {
		case isASCIILetter(next):
			// control word, optionally followed by one space delimiter
			i++
			for i+1 < len(runes) && !strings.ContainsRune(" \\{}\n", runes[i+1]) {
				i++
			}
			if i+1 < len(runes) && runes[i+1] == ' ' {
				i++
			}
		case next == '\\' || next == '{' || next == '}':
			result.WriteRune(next)
			i++
		case next == '\n' || next == '\r':
			result.WriteRune('\n')
			i++
		default:
			i++
		}
	}
	return result.String()
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
