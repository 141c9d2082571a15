package cli

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
)

// ConfirmFunc prompts the user for confirmation and returns true if confirmed.
type ConfirmFunc func(prompt string) (bool, error)

// NewConfirmFunc creates a ConfirmFunc using huh's interactive confirm component.
func NewConfirmFunc() ConfirmFunc {
	return func(prompt string) (bool, error) {
		var result bool
		err := huh.NewConfirm().
			Title(prompt).
			Value(&result).
			Run()
		return result, err
	}
}

// AlwaysYes returns a ConfirmFunc that always confirms.
func AlwaysYes() ConfirmFunc {
	return func(_ string) (bool, error) {
		return true, nil
	}
}

// PromptFunc prompts the user for free-text input and returns the response.
type PromptFunc func(prompt string) (string, error)

var errEmptySentence = errors.New("describe the event, e.g. lunch with bob tomorrow at noon")

// validateSentence rejects input with nothing to parse.
func validateSentence(s string) error {
	if strings.TrimSpace(s) == "" {
		return errEmptySentence
	}
	return nil
}

// NewPromptFunc asks for the event sentence with huh's input component. Dates
// and times are taken out of the sentence; what is left becomes the message.
func NewPromptFunc() PromptFunc {
	return func(prompt string) (string, error) {
		var result string
		err := huh.NewInput().
			Title(prompt).
			Description("dates and times are read out of the sentence").
			Placeholder("lunch with bob tomorrow at noon").
			Validate(validateSentence).
			Value(&result).
			Run()
		return result, err
	}
}
