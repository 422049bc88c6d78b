package parameter

// Screen defaults
const (
	// DefaultScreenWidth is the configured viewport width before terminal clipping
	DefaultScreenWidth = 80

	// DefaultScreenHeight is the configured viewport height before terminal clipping
	DefaultScreenHeight = 24

	// DefaultScreenMargin is subtracted from the terminal size on each axis
	// Keeps the cursor off the last column and row so the terminal never scrolls
	DefaultScreenMargin = 1
)

// Text defaults
const (
	// DefaultFillChar pads ragged texture rows
	DefaultFillChar = ' '

	// DefaultTabSize is the number of fill glyphs a tab expands to in labels
	DefaultTabSize = 4

	// DefaultTabFill is the glyph a tab expands into
	DefaultTabFill = ' '

	// DefaultTabChar is the glyph labels collapse tab runs back into
	DefaultTabChar = '\t'

	// DefaultNewline separates label rows
	DefaultNewline = "\n"
)

// Panel defaults
const (
	DefaultPanelWidth  = 12
	DefaultPanelHeight = 8

	// MinPanelSize leaves room for both borders
	MinPanelSize = 2
)

// Camera dead zone configuration
// Dead zone is the inner area where follow-target movement doesn't trigger camera scroll
const (
	// CameraDeadZoneMarginX is horizontal margin in cells from viewport edge
	CameraDeadZoneMarginX = 12

	// CameraDeadZoneMarginY is vertical margin in cells from viewport edge
	CameraDeadZoneMarginY = 6
)
