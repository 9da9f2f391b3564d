package models

import "errors"

var ErrProfileNotFound = errors.New("profile not found")
