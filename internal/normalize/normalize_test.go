package normalize

import "testing"

func TestCountry(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "Argentina", want: "Argentina"},
		{name: "lowercase", in: "argentina", want: "Argentina"},
		{name: "accents", in: "España", want: "Espana"},
		{name: "whitespace", in: "  united   kingdom ", want: "United Kingdom"},
		{name: "empty", in: "   ", want: ""},
		{name: "mixed case", in: "MÉXICO", want: "Mexico"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Country(tt.in); got != tt.want {
				t.Errorf("Country(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
