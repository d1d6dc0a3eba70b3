package assets

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestBuiltin_LoadTemplate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		template    string
		wantErr     error
		wantContain string
	}{
		{name: "default", template: DefaultTemplateName, wantContain: "{{ Content }}"},
		{name: "unknown", template: "nonexistent-template-xyz", wantErr: ErrTemplateNotFound},
		{name: "empty", template: "", wantErr: ErrInvalidTemplateName},
		{name: "traversal", template: "../secret", wantErr: ErrInvalidTemplateName},
		{name: "with extension", template: "default.html", wantErr: ErrInvalidTemplateName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := NewBuiltin().LoadTemplate(tt.template)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadTemplate(%q) error = %v, want %v", tt.template, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadTemplate(%q) unexpected error: %v", tt.template, err)
			}
			if !strings.Contains(got, tt.wantContain) {
				t.Errorf("LoadTemplate(%q) should contain %q", tt.template, tt.wantContain)
			}
		})
	}
}

func TestBuiltin_Names(t *testing.T) {
	t.Parallel()

	names := NewBuiltin().Names()
	if !slices.Contains(names, DefaultTemplateName) {
		t.Errorf("Names() = %v, want to contain %q", names, DefaultTemplateName)
	}
	if !slices.IsSorted(names) {
		t.Errorf("Names() = %v, want sorted", names)
	}
}
