package services

import "errors"

// Kind classifies a service failure. The handler layer maps kinds onto HTTP
// status codes; services never pick status codes themselves.
type Kind string

const (
	KindAuthRequired     Kind = "auth_required"
	KindInvalidToken     Kind = "invalid_token"
	KindForbidden        Kind = "forbidden"
	KindNotFound         Kind = "not_found"
	KindValidationFailed Kind = "validation_failed"
	KindInvalidState     Kind = "invalid_state"
	KindConflict         Kind = "conflict"
	KindUnexpected       Kind = "unexpected"
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func fail(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

// KindOf extracts the kind from a service error; anything that is not a
// *services.Error counts as unexpected.
func KindOf(err error) Kind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return KindUnexpected
}
