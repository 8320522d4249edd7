package settings

import "errors"

// ErrSettingsNotFound is returned when a user has no settings row yet
var ErrSettingsNotFound = errors.New("settings not found")
