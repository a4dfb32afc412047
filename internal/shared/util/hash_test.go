package util

import "testing"

func TestHashSubjectKeyStable(t *testing.T) {
	a := HashSubjectKey("subject-1")
	b := HashSubjectKey("subject-1")
	if a != b {
		t.Fatalf("hash not stable: %q vs %q", a, b)
	}
	if len(a) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(a))
	}
	if a == HashSubjectKey("subject-2") {
		t.Fatal("different subjects must not collide trivially")
	}
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "plain", in: "intake.pdf", want: "intake.pdf"},
		{name: "slashes replaced", in: "a/b\\c.pdf", want: "a_b_c.pdf"},
		{name: "traversal rejected", in: "../etc/passwd", wantErr: true},
		{name: "empty rejected", in: "   ", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeFileName(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("SanitizeFileName(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("SanitizeFileName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
