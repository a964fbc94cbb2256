// internal/configurator/errors.go
package configurator

import "errors"

// Recoverable error taxonomy for the configurator core. None of these are
// fatal; the caller decides how to present them.
var (
	ErrAlreadyInCart    = errors.New("item is already in the cart")
	ErrNotInCart        = errors.New("item is not in the cart")
	ErrIncompatibleItem = errors.New("item is not compatible with the selected vehicle")
	ErrNoVehicle        = errors.New("no vehicle selected for this session")
	ErrSaveFailed       = errors.New("failed to save project")
	ErrLoadFailed       = errors.New("failed to load project")
	ErrCorruptState     = errors.New("persisted customization state is corrupt")
)
