package app

import "context"

// Confirmer asks the user to approve a destructive action.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

// Confirm implements Confirmer.
func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

var (
	// AlwaysConfirm approves every prompt.
	AlwaysConfirm Confirmer = ConfirmFunc(func(context.Context, string) (bool, error) { return true, nil })
	// NeverConfirm declines every prompt.
	NeverConfirm Confirmer = ConfirmFunc(func(context.Context, string) (bool, error) { return false, nil })
)

// DeletePrompt is the question asked before deleting a non-empty baggage.
func DeletePrompt(displayName string) string {
	return "Are you sure you want to delete " + displayName + "? This action cannot be undone."
}

// ClearPrompt is the question asked before clearing every baggage.
const ClearPrompt = "Are you sure you want to clear all luggage data? This action cannot be undone."
