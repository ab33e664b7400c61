// Package errors layers a classification error over the error that caused it.
package errors

import "strings"

// With returns an error that matches both kind and cause under errors.Is and
// errors.As. Its message is the kind followed by the cause.
func With(cause, kind error) error {
	if cause == nil && kind == nil {
		return nil
	}
	if kind == nil {
		return cause
	}
	if cause == nil {
		return kind
	}
	return layered{cause: cause, kind: kind}
}

type layered struct {
	cause error
	kind  error
}

func (l layered) Error() string {
	var sb strings.Builder
	sb.WriteString(l.kind.Error())
	sb.WriteString(": ")
	sb.WriteString(l.cause.Error())
	return sb.String()
}

// Unwrap exposes kind before cause, so errors.As prefers the classification.
func (l layered) Unwrap() []error {
	return []error{l.kind, l.cause}
}
