package generation

import (
	"errors"

	"github.com/manifoldco/promptui"
)

// PromptConfirmer asks on the terminal before overwriting a file
type PromptConfirmer struct{}

// Confirm implements Confirmer
func (PromptConfirmer) Confirm(path string) (bool, error) {
	p := promptui.Prompt{
		Label:     path + " exists. Overwrite",
		IsConfirm: true,
	}
	if _, err := p.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
