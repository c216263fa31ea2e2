package widget

import "errors"

// ErrClosed is returned when a widget or registry is used after Close.
var ErrClosed = errors.New("widget closed")
