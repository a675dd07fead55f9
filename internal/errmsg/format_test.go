//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpSearchCatalog,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpSearchCatalog,
			err:      errors.New("connection refused"),
			expected: "Failed to search catalog: connection refused",
		},
		{
			name:     "import operation",
			op:       OpImportVolume,
			err:      errors.New("server returned 409: volume already imported"),
			expected: "Failed to import volume: server returned 409: volume already imported",
		},
		{
			name:     "settings operation",
			op:       OpSaveSettings,
			err:      errors.New("database is locked"),
			expected: "Failed to save settings: database is locked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.op, tt.err); got != tt.expected {
				t.Errorf("Format() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	err := errors.New("not found")

	got := FormatWith(OpResolveCover, "Saga #4", err)
	want := "Failed to resolve issue cover 'Saga #4': not found"
	if got != want {
		t.Errorf("FormatWith() = %q, want %q", got, want)
	}

	if got := FormatWith(OpResolveCover, "", err); got != Format(OpResolveCover, err) {
		t.Errorf("FormatWith with empty context = %q", got)
	}

	if got := FormatWith(OpResolveCover, "Saga #4", nil); got != "" {
		t.Errorf("FormatWith with nil error = %q, want empty", got)
	}
}
