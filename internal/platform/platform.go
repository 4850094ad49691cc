package platform

import "context"

// WindowManager queries and mutates window marks in the running session.
type WindowManager interface {
	// Marks returns every mark currently set, in the order the window
	// manager reports them.
	Marks(ctx context.Context) ([]string, error)

	// Mark attaches name to the focused window.
	Mark(ctx context.Context, name string) error

	// Focus focuses the window carrying exactly the mark name.
	Focus(ctx context.Context, name string) error

	// Unmark removes name from whichever window holds it. The empty name
	// removes all marks.
	Unmark(ctx context.Context, name string) error
}

// Chooser asks the user to pick or type one line of text.
type Chooser interface {
	Prompt(ctx context.Context, opts PromptOptions) (string, error)
}
