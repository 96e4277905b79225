package transgen

import (
	"fmt"
	"strconv"
	"strings"
)

// Subst replaces positional {N} placeholders in template with args[N].
// Doubled braces escape literal braces. A malformed placeholder, a stray
// closing brace, or an index outside args is an error; preview callers drop
// the comment line on error and keep the record itself.
func Subst(template string, args []string) (string, error) {
	var b strings.Builder
	b.Grow(len(template))

	for i := 0; i < len(template); {
		switch template[i] {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				b.WriteByte('{')
				i += 2
				continue
			}
			end := strings.IndexByte(template[i:], '}')
			if end < 0 {
				return "", fmt.Errorf("unterminated placeholder at byte %d", i)
			}
			end += i
			idx, err := strconv.Atoi(template[i+1 : end])
			if err != nil {
				return "", fmt.Errorf("malformed placeholder %q", template[i:end+1])
			}
			if idx < 0 || idx >= len(args) {
				return "", fmt.Errorf("placeholder {%d} outside %d-argument range", idx, len(args))
			}
			b.WriteString(args[idx])
			i = end + 1
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				b.WriteByte('}')
				i += 2
				continue
			}
			return "", fmt.Errorf("stray closing brace at byte %d", i)
		default:
			b.WriteByte(template[i])
			i++
		}
	}
	return b.String(), nil
}
