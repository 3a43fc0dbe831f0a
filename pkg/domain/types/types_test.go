package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/muster/pkg/domain/types"
)

func TestNewDirectoryID(t *testing.T) {
	tests := []struct {
		raw      string
		expected types.DirectoryID
	}{
		{"abc", "abc"},
		{"abc@realm", "abc"},
		{"  abc@realm@other ", "abc"},
		{"", ""},
		{"@realm", ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			gt.Equal(t, tt.expected, types.NewDirectoryID(tt.raw))
		})
	}
}

func TestParseIncidentID(t *testing.T) {
	t.Run("valid id", func(t *testing.T) {
		id, err := types.ParseIncidentID("42")
		gt.NoError(t, err).Required()
		gt.Equal(t, types.IncidentID(42), id)
		gt.Equal(t, "42", id.String())
	})

	t.Run("zero is rejected", func(t *testing.T) {
		_, err := types.ParseIncidentID("0")
		gt.Error(t, err)
	})

	t.Run("not a number", func(t *testing.T) {
		_, err := types.ParseIncidentID("abc")
		gt.Error(t, err)
	})
}

func TestVisibilityIsValid(t *testing.T) {
	tests := []struct {
		name       string
		visibility types.Visibility
		expected   bool
	}{
		{"Public", types.VisibilityPublic, true},
		{"Private", types.VisibilityPrivate, true},
		{"lowercase", types.Visibility("private"), false},
		{"empty", types.Visibility(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.visibility.IsValid(); got != tt.expected {
				t.Errorf("Visibility(%q).IsValid() = %v, want %v", tt.visibility, got, tt.expected)
			}
		})
	}
}

func TestNewRequestID(t *testing.T) {
	a := types.NewRequestID()
	b := types.NewRequestID()
	gt.NotEqual(t, a, b)
	gt.Equal(t, 36, len(a.String()))
}
