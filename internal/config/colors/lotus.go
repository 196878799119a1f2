package colors

// Lotus returns the Kanagawa Lotus color scheme (light theme with cream/paper background)
func Lotus() *ColorScheme {
	return &ColorScheme{
		Preset: "lotus",

		Accent: palette.lotusViolet4,

		Create: palette.lotusGreen,
		Paid:   palette.lotusGreen,
		Unpaid: palette.lotusRed,

		HeaderFg: palette.lotusBlue4,
		Border:   palette.lotusWhite4,

		Title:  palette.lotusBlue4,
		Subtle: palette.lotusGray3,
		Normal: palette.lotusInk1,

		InfoFg:    palette.lotusTeal3,
		InfoBg:    palette.lotusBlue2,
		WarningFg: palette.lotusOrange2,
		WarningBg: palette.lotusYellow4,
		ErrorFg:   palette.lotusRed3,
		ErrorBg:   palette.lotusRed4,
	}
}
