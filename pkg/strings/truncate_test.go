package strings

import "testing"

func TestTruncateLine(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{
			name:   "short string unchanged",
			input:  "harvester started",
			maxLen: 40,
			want:   "harvester started",
		},
		{
			name:   "long string truncated with ellipsis",
			input:  "aaaaaaaaaa",
			maxLen: 8,
			want:   "aaaaa...",
		},
		{
			name:   "newlines collapsed to spaces",
			input:  "line one\nline two",
			maxLen: 40,
			want:   "line one line two",
		},
		{
			name:   "whitespace runs collapsed",
			input:  "too   many\t\tspaces",
			maxLen: 40,
			want:   "too many spaces",
		},
		{
			name:   "maxLen clamped to minimum",
			input:  "abcdefgh",
			maxLen: 1,
			want:   "a...",
		},
		{
			name:   "unicode truncated on rune boundary",
			input:  "héllo wörld goes on",
			maxLen: 10,
			want:   "héllo w...",
		},
		{
			name:   "empty string",
			input:  "",
			maxLen: 10,
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateLine(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("TruncateLine(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}
