package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlockedInShell(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"nested shell", []string{"shell"}, true},
		{"watch", []string{"watch", "--asset", "123"}, true},
		{"markets allowed", []string{"markets", "list"}, false},
		{"ctf allowed", []string{"ctf", "split", "--condition", testCondition, "--amount", "10"}, false},
		{"empty line", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, blockedInShell(tt.args))
		})
	}
}

func TestSplitShellArgs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"simple", "markets list", []string{"markets", "list"}},
		{"flags", "ctf split --condition 0x01 --amount 10",
			[]string{"ctf", "split", "--condition", "0x01", "--amount", "10"}},
		{"quoted phrase", `markets search "will bitcoin reach"`,
			[]string{"markets", "search", "will bitcoin reach"}},
		{"collapsed spaces", "markets    list", []string{"markets", "list"}},
		{"empty", "", nil},
		{"only spaces", "   ", nil},
		{"quotes glue adjacent text", `a"b c"d`, []string{"ab cd"}},
		{"unterminated quote keeps rest", `search "open ended`, []string{"search", "open ended"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitShellArgs(tt.input))
		})
	}
}
