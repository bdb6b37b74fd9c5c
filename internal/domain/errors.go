package domain

import "errors"

// ErrMissingFields is returned by usecases when required fields are empty or
// absent. Handlers map it to a 400 with the endpoint's fixed message.
var ErrMissingFields = errors.New("required fields missing")
