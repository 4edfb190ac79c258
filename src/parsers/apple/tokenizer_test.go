package apple

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitCSVLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain", "a,b,c", []string{"a", "b", "c"}},
		{"quoted comma is data", `"Korea, Republic of (KRW)",2,"1.20"`, []string{"Korea, Republic of (KRW)", "2", "1.20"}},
		{"doubled quotes only toggle", `"He said ""hi""",x`, []string{"He said hi", "x"}},
		{"unterminated quote swallows rest", `"a,b`, []string{"a,b"}},
		{"trailing separator", "a,", []string{"a", ""}},
		{"sentinel run", ",,,", []string{"", "", "", ""}},
		{"empty", "", []string{""}},
		{"utf8 kept", `"Türkiye (TRY)",1`, []string{"Türkiye (TRY)", "1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitCSVLine(tt.input))
		})
	}
}

func TestSplitTabLineKeepsEmptyColumns(t *testing.T) {
	assert.Equal(t, []string{"a", "", "c", ""}, SplitTabLine("a\t\tc\t"))
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "", "c"}, SplitLines("\n a\r\nb\n\nc\n\n"))
	assert.Equal(t, []string{""}, SplitLines("   "))
}

func TestField(t *testing.T) {
	values := []string{" x ", "y"}
	assert.Equal(t, "x", field(values, 0))
	assert.Equal(t, "", field(values, 5))
	assert.Equal(t, "", field(values, -1))
}
