package tui

// Color constants for the punch status view
const (
	ColorBorder = "#3A3F55" // Grey-blue

	ColorPrimaryText   = "#E6EAF2" // Task name, elapsed clock
	ColorSecondaryText = "#B1B8C7" // Labels, start time
	ColorHelpText      = "240"     // Dark grey for the key hints

	ColorAccentMain   = "#7C3AED" // Header accents
	ColorAccentBright = "#A78BFA" // Spinner, highlights

	ColorSuccess = "#22C55E" // Punched-out confirmation
)
