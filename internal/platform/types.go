package platform

import "errors"

// ErrEmptyReply is returned by a Chooser when a reply was required but the
// user dismissed the prompt or entered nothing.
var ErrEmptyReply = errors.New("empty reply from picker")

// PromptOptions configures one interactive prompt.
type PromptOptions struct {
	Title           string   // Prompt label shown by the picker
	Choices         []string // Lines offered to the user, in order
	Values          []string // Optional values parallel to Choices (nil = reply is returned as-is)
	RequireNonEmpty bool     // Fail with ErrEmptyReply on an empty reply
}

// Resolve maps a raw reply to its result. A reply matching Choices[i]
// exactly yields Values[i]; any other reply is returned unchanged.
func (o PromptOptions) Resolve(reply string) (string, error) {
	if o.RequireNonEmpty && reply == "" {
		return "", ErrEmptyReply
	}
	if o.Values == nil {
		return reply, nil
	}
	for i, c := range o.Choices {
		if c == reply {
			return o.Values[i], nil
		}
	}
	return reply, nil
}

// Validate reports options that cannot be resolved.
func (o PromptOptions) Validate() error {
	if o.Values != nil && len(o.Values) != len(o.Choices) {
		return errors.New("prompt values must parallel choices")
	}
	return nil
}
