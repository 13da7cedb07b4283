package navigation

import "errors"

var (
	ErrEmptyLabel     = errors.New("navigation: entry label is empty")
	ErrDuplicateLabel = errors.New("navigation: duplicate entry label")
	ErrDuplicatePath  = errors.New("navigation: duplicate entry path")
	ErrInvalidPath    = errors.New("navigation: entry path is not a normalized route")
	ErrNoEntries      = errors.New("navigation: model has no entries")
)
