// Package errors defines typed errors with categories for user-friendly reporting.
// Each error carries a machine-readable Kind naming the workflow step that failed,
// a short human message, and the underlying cause. Callers match on Kind with
// KindOf, and the standard errors.Is/As keep working through Unwrap.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// RegistrationFailed indicates the webhook registration call failed.
	RegistrationFailed Kind = "registration_failed"
	// InvalidGrant indicates the registration response lacked a webhook URL or token.
	InvalidGrant Kind = "invalid_grant"
	// SubmissionFailed indicates the solution submission call failed.
	SubmissionFailed Kind = "submission_failed"
	// QuerySelectionFailed indicates the registration number could not pick a query.
	QuerySelectionFailed Kind = "query_selection_failed"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// KindOf returns the kind of the outermost *E in err's chain, or "" if none.
func KindOf(err error) Kind {
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}
