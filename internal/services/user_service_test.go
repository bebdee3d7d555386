package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/expense-api/internal/models"
	"github.com/baharkarakas/expense-api/internal/repository/memory"
)

func TestUserService(t *testing.T) {
	ctx := context.Background()
	r := memory.NewUsers()
	require.NoError(t, r.EnsureSeed(ctx, []models.User{
		{ID: "u1", Name: "Ada", Role: models.RoleAdmin},
		{ID: "u2", Name: "Bo", Role: models.RoleEmployee},
	}))
	s := NewUserService(r)

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	u, err := s.Get(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, "Bo", u.Name)

	_, err = s.Get(ctx, "u3")
	assert.ErrorIs(t, err, ErrNotFound)
}
