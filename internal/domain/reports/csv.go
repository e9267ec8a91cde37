package reports

import (
	"fmt"
	"strings"
)

// EncodeCSV renders rows as CSV text. Cells containing a comma, a double
// quote or a newline are quoted, with inner quotes doubled. Nil cells render
// as empty. Rows are joined with a single newline and the output carries no
// trailing newline, so re-importing yields exactly the input rows.
func EncodeCSV(rows [][]any) string {
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, cell := range row {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(escapeCSV(formatCell(cell)))
		}
	}
	return b.String()
}

func formatCell(cell any) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func escapeCSV(s string) string {
	if !strings.ContainsAny(s, ",\"\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
