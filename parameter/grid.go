package parameter

// Grid defaults
const (
	DefaultGridWidth  = 40
	DefaultGridHeight = 12
	DefaultFill       = ' '
	DefaultPolicy     = "reflect"

	// LineSeparator splits sprite text and joins rendered rows
	LineSeparator = '\n'
)
