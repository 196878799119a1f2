package huhforms

import "charm.land/huh/v2"

// Choice is one entry of a selection menu
type Choice struct {
	Label string
	Value string
}

// CreateMenuForm creates a single-select menu writing the picked value to choice
func CreateMenuForm(title string, choices []Choice, choice *string) *huh.Form {
	options := make([]huh.Option[string], len(choices))
	for i, c := range choices {
		options[i] = huh.NewOption(c.Label, c.Value)
	}

	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Key("choice").
			Title(title).
			Options(options...).
			Value(choice),
	))
}
