package colors

// palette holds the Kanagawa colors used by the wave, dragon and lotus presets
var palette = struct {
	// wave
	sumiInk4, fujiGray, fujiWhite, oniViolet, crystalBlue, springGreen, peachRed string
	// dragon
	dragonBlack4, dragonAsh, dragonWhite, dragonViolet, dragonBlue2, dragonGreen2, dragonRed string
	// lotus
	lotusWhite4, lotusGray3, lotusInk1, lotusViolet4, lotusBlue4, lotusGreen, lotusRed string
	lotusTeal3, lotusBlue2, lotusOrange2, lotusYellow4, lotusRed3, lotusRed4          string
	// shared notification colors
	dragonBlue, winterBlue, roninYellow, carpYellow, winterYellow, samuraiRed, winterRed string
}{
	sumiInk4:    "#363646",
	fujiGray:    "#727169",
	fujiWhite:   "#DCD7BA",
	oniViolet:   "#957FB8",
	crystalBlue: "#7E9CD8",
	springGreen: "#98BB6C",
	peachRed:    "#FF5D62",

	dragonBlack4: "#282727",
	dragonAsh:    "#737C73",
	dragonWhite:  "#C5C9C5",
	dragonViolet: "#8992A7",
	dragonBlue2:  "#8BA4B0",
	dragonGreen2: "#8A9A7B",
	dragonRed:    "#C4746E",

	lotusWhite4:  "#D5CEA3",
	lotusGray3:   "#8A8980",
	lotusInk1:    "#545464",
	lotusViolet4: "#624C83",
	lotusBlue4:   "#4D699B",
	lotusGreen:   "#6F894E",
	lotusRed:     "#C84053",
	lotusTeal3:   "#5A7785",
	lotusBlue2:   "#B5CBD2",
	lotusOrange2: "#E98A00",
	lotusYellow4: "#F9E7C0",
	lotusRed3:    "#E82424",
	lotusRed4:    "#D9A594",

	dragonBlue:   "#658594",
	winterBlue:   "#252535",
	roninYellow:  "#FF9E3B",
	carpYellow:   "#E6C384",
	winterYellow: "#49443C",
	samuraiRed:   "#E82424",
	winterRed:    "#43242B",
}
