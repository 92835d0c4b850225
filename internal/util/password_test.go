package util

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("password123")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if hash == "password123" {
		t.Fatal("Hash() returned the plain password")
	}
	if !h.Check("password123", hash) {
		t.Error("Check() = false for correct password")
	}
	if h.Check("password124", hash) {
		t.Error("Check() = true for wrong password")
	}
	if h.Check("password123", "not-a-bcrypt-hash") {
		t.Error("Check() = true for malformed hash")
	}

	dummy, err := h.DummyHash()
	if err != nil {
		t.Fatalf("DummyHash() error = %v", err)
	}
	if h.Check("password123", dummy) {
		t.Error("dummy hash matched a real password")
	}
}

func TestNewPasswordHasher_InvalidCost(t *testing.T) {
	if got := NewPasswordHasher(100).cost; got != bcrypt.DefaultCost {
		t.Errorf("cost = %d, want %d", got, bcrypt.DefaultCost)
	}
}

func TestMaskUsername(t *testing.T) {
	tests := map[string]string{
		"alice": "ali***",
		"bob":   "***",
		"ab":    "***",
		"":      "***",
		"张三丰大侠": "张三丰***",
	}
	for in, want := range tests {
		if got := MaskUsername(in); got != want {
			t.Errorf("MaskUsername(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDisplayUsername(t *testing.T) {
	tests := map[string]string{
		"alice": "ali***",
		"bob":   "bob***",
		"ab":    "ab***",
		"张三丰大侠": "张三丰***",
	}
	for in, want := range tests {
		if got := DisplayUsername(in); got != want {
			t.Errorf("DisplayUsername(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEscapeText(t *testing.T) {
	got := EscapeText(`<script>alert("x")</script> & more`)
	want := "&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt; &amp; more"
	if got != want {
		t.Errorf("EscapeText() = %q, want %q", got, want)
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		in     string
		want   uint
		wantOK bool
	}{
		{"1", 1, true},
		{"42", 42, true},
		{"0", 0, false},
		{"-1", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{"99999999999999999999", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseID(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseID(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
