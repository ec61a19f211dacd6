package snake

import (
	"errors"
	"io"
	"strings"

	"github.com/manifoldco/promptui"
)

// PromptText asks for a non-blank line of text.
func PromptText(label string, in io.Reader, out io.Writer) (string, error) {
	validate := func(input string) error {
		if strings.TrimSpace(input) == "" {
			return errors.New("empty")
		}
		return nil
	}

	templates := &promptui.PromptTemplates{
		Prompt:  "{{ . }}: ",
		Valid:   "{{ . | green }}: ",
		Invalid: "{{ . | red }}: ",
		Success: "{{ . | bold }}: ",
	}

	prompt := promptui.Prompt{
		Label:     label,
		Templates: templates,
		Validate:  validate,
		Stdin:     readCloser(in),
		Stdout:    writeCloser(out),
	}

	result, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(result), nil
}
