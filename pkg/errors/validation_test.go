package errors

import (
	"strings"
	"testing"
)

func TestValidateLocationName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "pallet-town", false},
		{"valid with spaces", "Viridian Forest", false},
		{"valid unicode", "Pokémon Center", false},

		{"empty", "", true},
		{"blank", "   ", true},
		{"leading space", " cave", true},
		{"trailing space", "cave ", true},
		{"too long", strings.Repeat("a", 129), true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
		{"tab", "foo\tbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLocationName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLocationName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateWorldFile(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "worlds/kanto.toml", false},
		{"absolute", "/srv/worlds/kanto.toml", false},
		{"upper extension", "KANTO.TOML", false},

		{"empty", "", true},
		{"wrong extension", "kanto.json", true},
		{"no extension", "kanto", true},
		{"control char", "kan\x01to.toml", true},
		{"too long", strings.Repeat("a", 500) + ".toml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWorldFile(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateWorldFile(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	supported := []string{"dot", "svg"}

	if err := ValidateFormat("svg", supported); err != nil {
		t.Errorf("ValidateFormat(svg) = %v, want nil", err)
	}

	err := ValidateFormat("png", supported)
	if err == nil {
		t.Fatal("ValidateFormat(png) = nil, want error")
	}
	if !Is(err, ErrCodeInvalidFormat) {
		t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidFormat)
	}
	if !strings.Contains(err.Error(), "dot, svg") {
		t.Errorf("error should list supported formats: %v", err)
	}
}

func TestValidateRedisURL(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"redis://localhost:6379/0", false},
		{"rediss://cache.internal:6380", false},
		{"", true},
		{"http://localhost:6379", true},
		{"localhost:6379", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateRedisURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRedisURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
