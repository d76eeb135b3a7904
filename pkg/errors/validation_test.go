package errors

import (
	"slices"
	"strings"
	"testing"
)

func TestValidateLayoutID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "Home", false},
		{"valid with at", "Home@Games", false},
		{"valid with dash", "side-bar_1", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 129), true},
		{"slash", "Home/Games", true},
		{"backslash", "Home\\Games", true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLayoutID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLayoutID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidIdentifier) {
				t.Errorf("ValidateLayoutID(%q) code = %v", tt.input, GetCode(err))
			}
		})
	}
}

func TestValidateFocusID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid button", "BTN@GAMES", false},
		{"valid uuid", "9b2e6f1c-5a7d-4f0e-8c1a-2d3b4e5f6a7b", false},
		{"valid with slash", "games/celeste", false},

		{"empty", "", true},
		{"blank", "   ", true},
		{"too long", strings.Repeat("x", 257), true},
		{"control char", "foo\x01bar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFocusID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFocusID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestParseLayoutPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{"root", "", nil, false},
		{"root slash", "/", nil, false},
		{"single", "Home@Games", []string{"Home@Games"}, false},
		{"nested", "/side/inner/", []string{"side", "inner"}, false},

		{"empty segment", "side//inner", nil, true},
		{"control char", "side/in\x00ner", nil, true},
		{"too deep", strings.Repeat("a/", 40) + "a", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLayoutPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLayoutPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if !Is(err, ErrCodeInvalidPath) {
					t.Errorf("ParseLayoutPath(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidPath)
				}
				return
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("ParseLayoutPath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateFilePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid relative", "examples/home.toml", false},
		{"valid absolute", "/etc/focusgrid/home.hcl", false},
		{"valid dots in name", "my..layout.json", false},

		{"empty", "", true},
		{"traversal", "../secrets.toml", true},
		{"nested traversal", "examples/../../x.toml", true},
		{"null byte", "home\x00.toml", true},
		{"too long", strings.Repeat("a", 501), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFilePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFilePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
