package constraint

import (
	"errors"
	"testing"
)

func TestParse_CaretRange(t *testing.T) {
	tests := []struct {
		expr    string
		version string
		want    bool
	}{
		{"^1.13.2", "1.13.2", true},
		{"^1.13.2", "1.13.5", true},
		{"^1.13.2", "1.14.0", true},
		{"^1.13.2", "2.0.0", false},
		{"^1.13.2", "1.13.1", false},
		{"^1.13.2", "1.12.9", false},
		{"^0.2.3", "0.2.5", true},
		{"^0.2.3", "0.3.0", false},
		{"^0.0.3", "0.0.3", true},
		{"^0.0.3", "0.0.4", false},
		{"^3.6", "3.6.0", true},
		{"^3.6", "3.9.1", true},
		{"^3.6", "4.0.0", false},
		{"^3.6", "3.5.9", false},
	}

	for _, tt := range tests {
		t.Run(tt.expr+"/"+tt.version, func(t *testing.T) {
			c, err := Parse(tt.expr)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.expr, err)
			}
			got, err := c.Check(tt.version)
			if err != nil {
				t.Fatalf("Check(%q) error: %v", tt.version, err)
			}
			if got != tt.want {
				t.Errorf("Check(%q) = %v, want %v", tt.version, got, tt.want)
			}
		})
	}
}

func TestParse_CompoundRange(t *testing.T) {
	tests := []struct {
		expr    string
		version string
		want    bool
	}{
		{"^3.6,<3.9", "3.7.0", true},
		{"^3.6,<3.9", "3.6.0", true},
		{"^3.6,<3.9", "3.8.9", true},
		{"^3.6,<3.9", "3.9.0", false},
		{"^3.6,<3.9", "3.5.9", false},
		{">=1.0.0, <2.0.0", "1.5.0", true},
		{">=1.0.0, <2.0.0", "2.0.0", false},
		{">=1.0.0,<=1.0.0", "1.0.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.expr+"/"+tt.version, func(t *testing.T) {
			c, err := Parse(tt.expr)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.expr, err)
			}
			got, err := c.Check(tt.version)
			if err != nil {
				t.Fatalf("Check(%q) error: %v", tt.version, err)
			}
			if got != tt.want {
				t.Errorf("Check(%q) = %v, want %v", tt.version, got, tt.want)
			}
		})
	}
}

func TestParse_Unsatisfiable(t *testing.T) {
	exprs := []string{
		"^3.6,<3.0",
		">2.0.0,<1.0.0",
		">=1.0.0,<1.0.0",
		">1.0.0,<=1.0.0",
		"=1.2.3,=2.0.0",
		"^1.0.0,^2.0.0",
	}

	for _, expr := range exprs {
		t.Run(expr, func(t *testing.T) {
			_, err := Parse(expr)
			if err == nil {
				t.Fatalf("Parse(%q) expected error, got nil", expr)
			}
			if !errors.Is(err, ErrUnsatisfiable) {
				t.Errorf("Parse(%q) error = %v, want ErrUnsatisfiable", expr, err)
			}
		})
	}
}

func TestParse_Syntax(t *testing.T) {
	exprs := []string{
		"",
		"   ",
		"garbage",
		"^",
		"^x.y.z",
		"<>1.0.0",
		"1.0.0,",
	}

	for _, expr := range exprs {
		t.Run(expr, func(t *testing.T) {
			_, err := Parse(expr)
			if err == nil {
				t.Fatalf("Parse(%q) expected error, got nil", expr)
			}
			if errors.Is(err, ErrUnsatisfiable) {
				t.Errorf("Parse(%q) reported unsatisfiable, want syntax error", expr)
			}
		})
	}
}

func TestParse_ExactVersion(t *testing.T) {
	c, err := Parse("1.13.2")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	ok, err := c.Check("1.13.2")
	if err != nil {
		t.Fatalf("Check error: %v", err)
	}
	if !ok {
		t.Error("Check(1.13.2) = false, want true")
	}
	ok, err = c.Check("1.13.3")
	if err != nil {
		t.Fatalf("Check error: %v", err)
	}
	if ok {
		t.Error("Check(1.13.3) = true, want false")
	}
}

func TestCheck_VPrefix(t *testing.T) {
	c, err := Parse("^1.13.2")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	ok, err := c.Check("v1.13.5")
	if err != nil {
		t.Fatalf("Check error: %v", err)
	}
	if !ok {
		t.Error("Check(v1.13.5) = false, want true")
	}
}

func TestCheck_BadVersion(t *testing.T) {
	c, err := Parse("^1.0.0")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if _, err := c.Check("not-a-version"); err == nil {
		t.Fatal("expected error for malformed version, got nil")
	}
}

func TestString_ReturnsExpression(t *testing.T) {
	c, err := Parse("  ^3.6,<3.9  ")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if c.String() != "^3.6,<3.9" {
		t.Errorf("String() = %q, want %q", c.String(), "^3.6,<3.9")
	}
}
