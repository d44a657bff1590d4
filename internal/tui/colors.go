package tui

// Color constants for the shiftshift TUI theme
const (
	// Base Colors
	ColorAppBackground  = ""        // Use terminal default background
	ColorCardBackground = "#0F1A2B" // Dark navy
	ColorBorder         = "#33415C" // Grey-blue

	// Text Colors
	ColorPrimaryText   = "#E8EDF4" // Primary text (labels, user input, titles)
	ColorSecondaryText = "#A9B4C4" // Secondary text
	ColorDisabledText  = "#66708A" // Disabled/muted text
	ColorPlaceholder   = "#A9B4C4" // Same as secondary
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (Amber theme)
	ColorAccentMain   = "#D97706" // Logo, accent elements, active borders
	ColorAccentBright = "#FBBF24" // Hover, highlights, current step

	// State Colors
	ColorError   = "#EF4444" // Validation errors
	ColorSuccess = "#22C55E" // Success, confirmations
	ColorWarning = "#F59E0B" // Warnings
	ColorBreak   = "#60A5FA" // Break timer accents
)
