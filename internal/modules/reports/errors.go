package reports

import "errors"

var ErrValidation = errors.New("validation error")
