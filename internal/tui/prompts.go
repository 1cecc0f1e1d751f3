package tui

import (
	"errors"
	"os"

	"github.com/AlecAivazis/survey/v2"
)

// ErrInteractiveDisabled is returned when interactive prompts are disabled via COMMITKIT_NON_INTERACTIVE
var ErrInteractiveDisabled = errors.New("interactive prompts are disabled (COMMITKIT_NON_INTERACTIVE is set)")

// ErrCanceled is returned when the user aborts a prompt.
var ErrCanceled = errors.New("canceled")

func checkInteractiveAllowed() error {
	if os.Getenv("COMMITKIT_NON_INTERACTIVE") != "" {
		return ErrInteractiveDisabled
	}
	return nil
}

// InteractiveAllowed reports whether prompts may be shown: a terminal is
// attached and COMMITKIT_NON_INTERACTIVE is unset.
func InteractiveAllowed() bool {
	return checkInteractiveAllowed() == nil && IsTTY()
}

// PromptConfirm asks a yes/no question.
func PromptConfirm(message string, defaultValue bool) (bool, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return false, err
	}

	var answer bool
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return false, ErrCanceled
	}
	return answer, nil
}
