package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/trench/internal/database"
	"github.com/thenoetrevino/trench/internal/events"
	"github.com/thenoetrevino/trench/internal/models"
	"github.com/thenoetrevino/trench/internal/testutil"
	"github.com/thenoetrevino/trench/internal/validation"
)

// failingRepo returns errStore from every call
type failingRepo struct{}

var errStore = errors.New("disk I/O error")

func (failingRepo) AddClient(context.Context, string, string, string) (*models.Client, error) {
	return nil, errStore
}

func (failingRepo) ListClients(context.Context) ([]*models.Client, error) {
	return nil, errStore
}

func TestAddClient(t *testing.T) {
	t.Parallel()
	db := testutil.SetupTestDB(t)
	svc := NewService(database.NewRepository(db), nil)
	ctx := context.Background()

	c, err := svc.AddClient(ctx, AddClientRequest{Name: "A", ContactNumber: "1", Email: "a@x.com"})
	require.NoError(t, err)

	clients, err := svc.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, c.ID, clients[0].ID)
	assert.Equal(t, "A", clients[0].Name)
	assert.Equal(t, "1", clients[0].ContactNumber)
	assert.Equal(t, "a@x.com", clients[0].Email)
}

func TestAddClient_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     AddClientRequest
		wantErr error
		fields  []string
	}{
		{
			name:    "empty name",
			req:     AddClientRequest{Name: "", ContactNumber: "1", Email: "a@x.com"},
			wantErr: ErrEmptyName,
			fields:  []string{"name"},
		},
		{
			name:    "whitespace contact",
			req:     AddClientRequest{Name: "A", ContactNumber: "   ", Email: "a@x.com"},
			wantErr: ErrEmptyContact,
			fields:  []string{"contact_number"},
		},
		{
			name:    "empty email",
			req:     AddClientRequest{Name: "A", ContactNumber: "1", Email: "\t"},
			wantErr: ErrEmptyEmail,
			fields:  []string{"email"},
		},
		{
			name:    "everything empty",
			req:     AddClientRequest{},
			wantErr: ErrEmptyName,
			fields:  []string{"contact_number", "email", "name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			db := testutil.SetupTestDB(t)
			svc := NewService(database.NewRepository(db), nil)

			_, err := svc.AddClient(context.Background(), tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, validation.ErrInvalid)
			assert.ErrorIs(t, err, tt.wantErr)

			var verr *validation.Error
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.fields, verr.Fields())

			assert.Equal(t, 0, testutil.CountRows(t, db, "clients"), "validation failure must insert nothing")
		})
	}
}

func TestAddClient_PublishesEvent(t *testing.T) {
	t.Parallel()
	db := testutil.SetupTestDB(t)
	bus := events.NewBus()
	var got []events.Event
	require.NoError(t, bus.Subscribe(events.EventClientAdded, func(e events.Event) { got = append(got, e) }))

	svc := NewService(database.NewRepository(db), bus)
	c, err := svc.AddClient(context.Background(), AddClientRequest{Name: "Acme", ContactNumber: "1", Email: "a@x.com"})
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, c.ID.ToInt(), got[0].EntityID)
	assert.Equal(t, "Acme", got[0].Summary)
}

func TestAddClient_RejectedPublishesNothing(t *testing.T) {
	t.Parallel()
	db := testutil.SetupTestDB(t)
	bus := events.NewBus()
	published := 0
	require.NoError(t, bus.SubscribeAll(func(events.Event) { published++ }))

	svc := NewService(database.NewRepository(db), bus)
	_, err := svc.AddClient(context.Background(), AddClientRequest{})
	require.Error(t, err)
	assert.Zero(t, published)
}

func TestStoreErrorsAreWrapped(t *testing.T) {
	t.Parallel()
	svc := NewService(failingRepo{}, nil)
	ctx := context.Background()

	_, err := svc.AddClient(ctx, AddClientRequest{Name: "A", ContactNumber: "1", Email: "a@x.com"})
	assert.ErrorIs(t, err, errStore)
	assert.NotErrorIs(t, err, validation.ErrInvalid)

	_, err = svc.ListClients(ctx)
	assert.ErrorIs(t, err, errStore)
}
