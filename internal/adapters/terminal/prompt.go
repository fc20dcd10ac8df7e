package terminal

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"

	"fileboard-client/internal/domain"
)

// Prompter reads text interactively. Ctrl+C dismisses the prompt.
type Prompter struct {
	show func(label, defaultValue string) (string, bool, error)
}

func NewPrompter() *Prompter {
	return &Prompter{show: showTextInput}
}

func (p *Prompter) PromptForText(ctx context.Context, label, defaultValue string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	return p.show(label, defaultValue)
}

func showTextInput(label, defaultValue string) (string, bool, error) {
	interrupted := false
	value, err := pterm.DefaultInteractiveTextInput.
		WithDefaultText(label).
		WithDefaultValue(defaultValue).
		WithOnInterruptFunc(func() { interrupted = true }).
		Show()
	if err != nil {
		return "", false, fmt.Errorf("text input: %w", err)
	}
	if interrupted {
		return "", false, domain.ErrPromptCancelled
	}
	return value, true, nil
}

// Confirmer asks yes/no questions, defaulting to no.
type Confirmer struct {
	show func(question string) (bool, error)
}

func NewConfirmer() *Confirmer {
	return &Confirmer{show: showConfirm}
}

func (c *Confirmer) ConfirmAction(ctx context.Context, question string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return c.show(question)
}

func showConfirm(question string) (bool, error) {
	interrupted := false
	answer, err := pterm.DefaultInteractiveConfirm.
		WithDefaultText(question).
		WithDefaultValue(false).
		WithOnInterruptFunc(func() { interrupted = true }).
		Show()
	if err != nil {
		return false, fmt.Errorf("confirm: %w", err)
	}
	return answer && !interrupted, nil
}

// StaticPrompter answers every prompt with Value; an empty Value counts as dismissed.
type StaticPrompter struct {
	Value string
}

func (s StaticPrompter) PromptForText(context.Context, string, string) (string, bool, error) {
	return s.Value, s.Value != "", nil
}

// StaticConfirmer answers every question with Answer.
type StaticConfirmer struct {
	Answer bool
}

func (s StaticConfirmer) ConfirmAction(context.Context, string) (bool, error) {
	return s.Answer, nil
}
