package colors

// Dragon returns the Kanagawa Dragon color scheme (dark theme with warm earth tones)
func Dragon() *ColorScheme {
	return &ColorScheme{
		Preset: "dragon",

		Accent: palette.dragonViolet,

		Create: palette.dragonGreen2,
		Paid:   palette.dragonGreen2,
		Unpaid: palette.dragonRed,

		HeaderFg: palette.dragonBlue2,
		Border:   palette.dragonBlack4,

		Title:  palette.dragonBlue2,
		Subtle: palette.dragonAsh,
		Normal: palette.dragonWhite,

		InfoFg:    palette.dragonBlue,
		InfoBg:    palette.winterBlue,
		WarningFg: palette.carpYellow,
		WarningBg: palette.winterYellow,
		ErrorFg:   palette.samuraiRed,
		ErrorBg:   palette.winterRed,
	}
}
