package normalize

import "testing"

func TestName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "anna", want: "anna"},
		{name: "case", in: "ANNA Ivanova", want: "anna ivanova"},
		{name: "whitespace", in: "  Anna \t  Ivanova ", want: "anna ivanova"},
		{name: "cyrillic", in: "Сергей", want: "сергей"},
		{name: "full width", in: "Ａｎｎａ", want: "anna"},
		{name: "empty", in: "   ", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Name(tt.in); got != tt.want {
				t.Errorf("Name(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
