package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "demo", false},
		{"hyphenated", "my-chittyapp", false},
		{"dots and underscores", "my.app_2", false},
		{"digits after first char", "app2", false},
		{"empty", "", true},
		{"uppercase", "MyApp", true},
		{"leading digit", "1app", true},
		{"all digits", "123", true},
		{"leading dot", ".hidden", true},
		{"leading underscore", "_private", true},
		{"space", "my app", true},
		{"illegal character", "my@app", true},
		{"too long", strings.Repeat("a", 215), true},
		{"max length ok", strings.Repeat("a", 214), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ProjectName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
