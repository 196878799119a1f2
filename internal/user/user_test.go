package user

import (
	"errors"
	"os/user"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withCurrentUser(t *testing.T, fn func() (*user.User, error)) {
	t.Helper()
	orig := currentUser
	currentUser = fn
	t.Cleanup(func() { currentUser = orig })
}

func TestOperator(t *testing.T) {
	tests := []struct {
		name    string
		lookup  func() (*user.User, error)
		envUser string
		want    string
	}{
		{
			name:   "os account",
			lookup: func() (*user.User, error) { return &user.User{Username: "digger"}, nil },
			want:   "digger",
		},
		{
			name:    "falls back to USER",
			lookup:  func() (*user.User, error) { return nil, errors.New("no passwd") },
			envUser: "foreman",
			want:    "foreman",
		},
		{
			name:   "falls back to unknown",
			lookup: func() (*user.User, error) { return nil, errors.New("no passwd") },
			want:   "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withCurrentUser(t, tt.lookup)
			t.Setenv("USER", tt.envUser)
			assert.Equal(t, tt.want, Operator())
		})
	}
}
