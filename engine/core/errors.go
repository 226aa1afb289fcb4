package core

import (
	"errors"
)

var (
	// Platform, window or rendering context setup failed.
	ErrInit = errors.New("initialization failed")
	// An image could not be read or decoded.
	ErrAsset = errors.New("asset load failed")
	// The surface could not report its output size.
	ErrQuery = errors.New("surface query failed")
	// A draw, clear, present or texture upload failed.
	ErrDraw = errors.New("draw failed")
	// Invalid configuration value.
	ErrConfig = errors.New("invalid configuration")
)
