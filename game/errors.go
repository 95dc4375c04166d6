package game

import "github.com/pkg/errors"

var (
	ErrInvalidDimensions = errors.New("invalid board dimensions")
	ErrInvalidMineCount  = errors.New("invalid mine count")
	ErrInvalidLayout     = errors.New("invalid board layout")
	ErrInvalidAction     = errors.New("invalid action")
	ErrDirectorStuck     = errors.New("director has no move left")
)
