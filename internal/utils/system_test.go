package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"LowercaseSimple", "WebApp", "webapp"},
		{"SpacesToHyphens", "My Service", "my-service"},
		{"RemoveSeparators", "api/v2\\core", "apiv2core"},
		{"RemoveConsecutiveHyphens", "my--app", "my-app"},
		{"TrimHyphensAndDots", "-.app.-", "app"},
		{"EmptyToDefault", "", "project"},
		{"OnlySpecialChars", "@#$%", "project"},
		{"PreserveUnderscoresAndDots", "my_app.v1", "my_app.v1"},
		{"ComplexName", "  Billing API! #2  ", "billing-api-2"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := SanitizeFileName(tc.input)
			if result != tc.expected {
				t.Errorf("SanitizeFileName(%q) = %q, expected %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestGetUsername(t *testing.T) {
	username, err := GetUsername()
	if err != nil {
		t.Skipf("no current user: %v", err)
	}
	if username == "" {
		t.Error("Expected non-empty username")
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0700); err != nil {
		t.Fatalf("Failed to create dirs: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, ".hold-config.json"), []byte("{}"), 0600); err != nil {
		t.Fatalf("Failed to write marker: %v", err)
	}

	found, err := FindProjectRoot(nested, ".hold-config.json")
	if err != nil {
		t.Fatalf("FindProjectRoot failed: %v", err)
	}
	want, _ := filepath.Abs(root)
	if found != want {
		t.Errorf("Expected %q, got %q", want, found)
	}
}

func TestFindProjectRootNoMarker(t *testing.T) {
	found, err := FindProjectRoot(t.TempDir(), ".does-not-exist-marker")
	if err != nil {
		t.Fatalf("FindProjectRoot failed: %v", err)
	}
	if found != "" {
		t.Errorf("Expected no root, got %q", found)
	}
}
