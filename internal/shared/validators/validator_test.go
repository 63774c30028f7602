package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServerNameTag(t *testing.T) {
	t.Parallel()

	type report struct {
		Name string `validate:"servername"`
	}

	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"plain", "edge1", true},
		{"with dash and dot", "edge-1.fra", true},
		{"empty", "", false},
		{"leading space", " edge1", false},
		{"trailing newline", "edge1\n", false},
		{"embedded control", "ed\x00ge", false},
	}

	validate := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(&report{Name: tt.input})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
