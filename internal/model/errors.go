package model

import "errors"

// ErrUnauthorized is returned when a user tries to mutate content they do not
// own, or to delete a question that still has someone else's live answer.
var ErrUnauthorized = errors.New("unauthorized")
