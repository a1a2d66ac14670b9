package clipboard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSerialize(t *testing.T) {
	require.Equal(t, "a\tb\nc\td", Serialize([][]string{{"a", "b"}, {"c", "d"}}))
	require.Equal(t, "", Serialize(nil))
	require.Equal(t, "line one two\tx", Serialize([][]string{{"line one\ntwo", "x"}}), "embedded newlines keep the shape")
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want [][]string
	}{
		{"empty", "", nil},
		{"single", "Asha", [][]string{{"Asha"}}},
		{"grid", "a\tb\nc\td", [][]string{{"a", "b"}, {"c", "d"}}},
		{"crlf and trailing newline", "a\tb\r\nc\td\r\n", [][]string{{"a", "b"}, {"c", "d"}}},
		{"ragged", "a\nb\tc\td", [][]string{{"a"}, {"b", "c", "d"}}},
		{"empty cells", "\t\n", [][]string{{"", ""}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Parse(tt.in))
		})
	}
}
