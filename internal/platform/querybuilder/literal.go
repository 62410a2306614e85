package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// EscapeString doubles every single quote so s can sit inside a
// single-quoted SQL literal. No other character is touched.
func EscapeString(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func QuoteLiteral(value string) string {
	return "'" + EscapeString(value) + "'"
}

// FormatLiteral renders a bound value as SQL literal text. Floats keep their
// shortest natural decimal form, so 1.7 stays 1.7.
func FormatLiteral(value any) string {
	switch v := value.(type) {
	case nil:
		return "NULL"
	case string:
		return QuoteLiteral(v)
	case []byte:
		return QuoteLiteral(string(v))
	case bool:
		if v {
			return "TRUE"
		}
		return "FALSE"
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return QuoteLiteral(v.String())
	default:
		return QuoteLiteral(fmt.Sprint(v))
	}
}

// Inline substitutes $N placeholders in query with the literal form of
// args[N-1]. The result is for logs and dry runs; statements are always
// executed with bound parameters.
func Inline(query string, args []any) string {
	if len(args) == 0 {
		return query
	}

	var out strings.Builder
	out.Grow(len(query) + len(args)*4)
	for i := 0; i < len(query); i++ {
		if query[i] != '$' {
			out.WriteByte(query[i])
			continue
		}

		j := i + 1
		for j < len(query) && query[j] >= '0' && query[j] <= '9' {
			j++
		}
		n, err := strconv.Atoi(query[i+1 : j])
		if err != nil || n < 1 || n > len(args) {
			out.WriteByte('$')
			continue
		}
		out.WriteString(FormatLiteral(args[n-1]))
		i = j - 1
	}
	return out.String()
}
