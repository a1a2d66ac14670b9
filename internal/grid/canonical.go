package grid

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CompositeSeparator joins the parts of a composite column.
const CompositeSeparator = " / "

// Record is one domain record keyed by field name.
type Record map[string]any

// CanonicalValue returns the text a cell shows for rec in column c.
// It is pure: the same record and column always give the same text, and
// the result is what copy, compare and commit operate on.
func CanonicalValue(rec Record, c Column) string {
	if c.Kind == KindComposite {
		parts := make([]string, 0, len(c.Parts))
		for _, field := range c.Parts {
			if s := Canonical(rec[field]); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, CompositeSeparator)
	}

	v := Canonical(rec[c.FieldName()])
	if c.Kind == KindCheckbox {
		if b, err := strconv.ParseBool(v); err == nil {
			return strconv.FormatBool(b)
		}
	}
	return v
}

// Canonical converts a single scalar to text.
func Canonical(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int8, int16, int32, int64:
		return fmt.Sprintf("%d", x)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", x)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case time.Time:
		if x.IsZero() {
			return ""
		}
		return x.Format(time.RFC3339)
	case *string:
		if x == nil {
			return ""
		}
		return *x
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
