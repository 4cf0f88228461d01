package cmd

import "testing"

func TestParseCodepoint(t *testing.T) {
	tests := []struct {
		in      string
		want    rune
		wantErr bool
	}{
		{"U+0430", 0x0430, false},
		{"u+1d41f", 0x1D41F, false},
		{"0x017F", 0x017F, false},
		{"0430", 0x0430, false},
		{"\u0430", 0x0430, false},
		{"41", 0x41, false},
		{"zz", 0, true},
		{"U+110000", 0, true},
	}
	for _, tt := range tests {
		got, err := parseCodepoint(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("expected error for %q, got %U", tt.in, got)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("parseCodepoint(%q): expected %U, got %U (%v)", tt.in, tt.want, got, err)
		}
	}
}

func TestDescribeIdentifier(t *testing.T) {
	if got := describeIdentifier("p\u0430yp\u0430l"); got != "U+0430 U+0430" {
		t.Fatalf("expected U+0430 U+0430, got %q", got)
	}
	if got := describeIdentifier("admin"); got != "" {
		t.Fatalf("expected empty description, got %q", got)
	}
}
