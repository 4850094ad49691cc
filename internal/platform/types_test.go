package platform

import (
	"errors"
	"testing"
)

func TestPromptOptionsResolve(t *testing.T) {
	unmark := PromptOptions{
		Choices:         []string{"(Remove All)", "a", "b"},
		Values:          []string{"", "a", "b"},
		RequireNonEmpty: true,
	}
	tests := []struct {
		name  string
		opts  PromptOptions
		reply string
		want  string
	}{
		{"no values returns reply", PromptOptions{Choices: []string{"x"}}, "x", "x"},
		{"matching choice maps to value", unmark, "(Remove All)", ""},
		{"second choice maps to value", unmark, "b", "b"},
		{"free text passes through", unmark, "typed", "typed"},
		{"match is exact", unmark, "(remove all)", "(remove all)"},
		{"empty allowed when optional", PromptOptions{}, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.opts.Resolve(tt.reply)
			if err != nil {
				t.Fatalf("Resolve(%q): %v", tt.reply, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.reply, got, tt.want)
			}
		})
	}
}

func TestPromptOptionsResolve_EmptyRequired(t *testing.T) {
	opts := PromptOptions{Choices: []string{"a"}, RequireNonEmpty: true}
	if _, err := opts.Resolve(""); !errors.Is(err, ErrEmptyReply) {
		t.Errorf("expected ErrEmptyReply, got %v", err)
	}
}

func TestPromptOptionsValidate(t *testing.T) {
	if err := (PromptOptions{Choices: []string{"a"}}).Validate(); err != nil {
		t.Errorf("nil values should validate: %v", err)
	}
	if err := (PromptOptions{Choices: []string{"a"}, Values: []string{}}).Validate(); err == nil {
		t.Error("mismatched values should fail validation")
	}
}

type stubWM struct{ WindowManager }
type stubChooser struct{ Chooser }

func TestNewProvider(t *testing.T) {
	p, err := NewProvider(stubWM{}, stubChooser{})
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	if p.WindowManager == nil || p.Chooser == nil {
		t.Error("provider should carry both backends")
	}
}

func TestNewProvider_Incomplete(t *testing.T) {
	if _, err := NewProvider(nil, stubChooser{}); !errors.Is(err, ErrIncomplete) {
		t.Errorf("expected ErrIncomplete, got %v", err)
	}
	if _, err := NewProvider(stubWM{}, nil); !errors.Is(err, ErrIncomplete) {
		t.Errorf("expected ErrIncomplete, got %v", err)
	}
}
