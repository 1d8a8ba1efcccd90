package interaction

import (
	"github.com/charmbracelet/huh"
)

// HuhPrompter implements Prompter with huh forms.
type HuhPrompter struct{}

func (HuhPrompter) Input(title string) (string, error) {
	var input string
	err := huh.NewInput().
		Title(title).
		Value(&input).
		Run()
	if err != nil {
		return "", err
	}
	return input, nil
}

func (HuhPrompter) Select(title string, options []string) (int, error) {
	huhOptions := make([]huh.Option[int], len(options))
	for i, opt := range options {
		huhOptions[i] = huh.NewOption(opt, i)
	}

	var selected int
	err := huh.NewSelect[int]().
		Title(title).
		Options(huhOptions...).
		Value(&selected).
		Run()
	if err != nil {
		return 0, err
	}
	return selected, nil
}

func (HuhPrompter) Confirm(title string) (bool, error) {
	var confirmed bool
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed).
		Run()
	if err != nil {
		return false, err
	}
	return confirmed, nil
}
