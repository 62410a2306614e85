package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Table is a typed result set. Columns are lowercase column names.
type Table struct {
	Columns []string
	Rows    [][]any
}

type Renderer struct {
	out    io.Writer
	format string
}

func NewRenderer(out io.Writer, format string) *Renderer {
	if format == "" {
		format = FormatText
	}
	return &Renderer{out: out, format: format}
}

func (r *Renderer) Render(table Table) error {
	switch r.format {
	case FormatText:
		return writeText(r.out, table)
	case FormatJSON:
		return writeJSON(r.out, table)
	default:
		return fmt.Errorf("unknown render format %q", r.format)
	}
}

// Line writes a raw line, used for section separators.
func (r *Renderer) Line(text string) error {
	if r.format != FormatText {
		return nil
	}
	_, err := io.WriteString(r.out, text+"\n")
	return err
}

// writeText emits an uppercase header and one line per row, values joined by
// single spaces. Rates print with two decimals.
func writeText(w io.Writer, table Table) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for i, col := range table.Columns {
		if i > 0 {
			_ = buf.WriteByte(' ')
		}
		_, _ = buf.WriteString(strings.ToUpper(col))
	}
	_ = buf.WriteByte('\n')

	for _, row := range table.Rows {
		for i, value := range row {
			if i > 0 {
				_ = buf.WriteByte(' ')
			}
			buf.B = appendValue(buf.B, value)
		}
		_ = buf.WriteByte('\n')
	}

	_, err := buf.WriteTo(w)
	return err
}

func appendValue(dst []byte, value any) []byte {
	switch v := value.(type) {
	case nil:
		return dst
	case string:
		return append(dst, v...)
	case int:
		return strconv.AppendInt(dst, int64(v), 10)
	case int64:
		return strconv.AppendInt(dst, v, 10)
	case float64:
		return strconv.AppendFloat(dst, v, 'f', 2, 64)
	default:
		return fmt.Append(dst, v)
	}
}

func writeJSON(w io.Writer, table Table) error {
	objects := make([]map[string]any, 0, len(table.Rows))
	for _, row := range table.Rows {
		obj := make(map[string]any, len(table.Columns))
		for i, col := range table.Columns {
			if i < len(row) {
				obj[col] = row[i]
			}
		}
		objects = append(objects, obj)
	}

	encoded, err := sonic.ConfigStd.Marshal(objects)
	if err != nil {
		return fmt.Errorf("encode table: %w", err)
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	_, _ = buf.Write(encoded)
	_ = buf.WriteByte('\n')
	_, err = buf.WriteTo(w)
	return err
}
