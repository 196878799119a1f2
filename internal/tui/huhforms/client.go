package huhforms

import (
	"fmt"

	"charm.land/huh/v2"

	"github.com/thenoetrevino/trench/internal/models"
	"github.com/thenoetrevino/trench/internal/types"
)

// ClientInput holds the values collected by the add client form
type ClientInput struct {
	Name    string
	Contact string
	Email   string
	Confirm bool
}

// CreateClientForm creates a huh form for adding a new client
func CreateClientForm(in *ClientInput) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("name").
			Title("Client Name").
			Placeholder("Enter client name...").
			Value(&in.Name),

		huh.NewInput().
			Key("contact").
			Title("Contact Number").
			Placeholder("555-0100").
			Value(&in.Contact),

		huh.NewInput().
			Key("email").
			Title("Email").
			Placeholder("office@example.com").
			Value(&in.Email),

		huh.NewConfirm().
			Key("confirm").
			Title("Add this client?").
			Affirmative("Yes").
			Negative("No").
			Value(&in.Confirm),
	}

	return huh.NewForm(huh.NewGroup(fields...))
}

// ClientOptions returns one select option per client
func ClientOptions(clients []*models.Client) []huh.Option[types.ClientID] {
	options := make([]huh.Option[types.ClientID], len(clients))
	for i, c := range clients {
		options[i] = huh.NewOption(fmt.Sprintf("#%d %s", c.ID, c.Name), c.ID)
	}
	return options
}
