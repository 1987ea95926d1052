package logger

import (
	"fmt"
	"strings"
	"time"
)

// timestampLayout renders as yyMMdd HHmmss.
const timestampLayout = "060102 150405"

const placeholder = "{}"

// buildRecord assembles one newline-terminated record.
// Console records carry local time; file records carry UTC.
func buildRecord(now time.Time, utc bool, level Level, template string, args []any) string {
	if utc {
		now = now.UTC()
	} else {
		now = now.Local()
	}
	var sb strings.Builder
	sb.Grow(len(timestampLayout) + len(template) + len(args)*10 + 16)
	sb.WriteString(now.Format(timestampLayout))
	sb.WriteByte(' ')
	sb.WriteString(level.String())
	sb.WriteString(" - ")
	if len(args) == 0 {
		sb.WriteString(template)
	} else {
		appendMessage(&sb, template, args)
	}
	sb.WriteByte('\n')
	return sb.String()
}

// appendMessage fills each {} in template with the next argument.
// Markers past the last argument are written through unchanged and
// surplus arguments are dropped.
func appendMessage(sb *strings.Builder, template string, args []any) {
	next := 0
	for {
		i := strings.Index(template, placeholder)
		if i < 0 {
			sb.WriteString(template)
			return
		}
		sb.WriteString(template[:i])
		if next < len(args) {
			sb.WriteString(fmt.Sprint(args[next]))
			next++
		} else {
			sb.WriteString(placeholder)
		}
		template = template[i+len(placeholder):]
	}
}

// Render returns the message body produced by the given template and
// arguments, without timestamp or level.
func Render(template string, args ...any) string {
	if len(args) == 0 {
		return template
	}
	var sb strings.Builder
	appendMessage(&sb, template, args)
	return sb.String()
}
