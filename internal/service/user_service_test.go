package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkstone-app/inkstone/internal/domain"
	"github.com/inkstone-app/inkstone/internal/repository"
	"github.com/inkstone-app/inkstone/internal/testutil"
)

func TestUserService_CreateNormalizesEmail(t *testing.T) {
	conn := testutil.NewTestDB(t)
	svc := NewUserService(repository.NewSQLiteUserRepo(conn))

	u := &domain.User{Email: "  Ada@Example.COM ", Name: "Ada", InsightStyle: domain.StyleGentle}
	require.NoError(t, svc.Create(context.Background(), u))

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "ada@example.com", u.Email)

	got, err := svc.GetByEmail(context.Background(), "ADA@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestUserService_CreateRejectsInvalid(t *testing.T) {
	conn := testutil.NewTestDB(t)
	svc := NewUserService(repository.NewSQLiteUserRepo(conn))

	assert.Error(t, svc.Create(context.Background(), &domain.User{Email: ""}))
	assert.Error(t, svc.Create(context.Background(), &domain.User{Email: "not-an-email"}))
	assert.Error(t, svc.Create(context.Background(), &domain.User{
		Email:        "a@b.com",
		InsightStyle: "sarcastic",
	}))
}

func TestUserService_Update(t *testing.T) {
	conn := testutil.NewTestDB(t)
	u := testutil.SeedUser(t, conn, "u1")
	svc := NewUserService(repository.NewSQLiteUserRepo(conn))

	u.Name = "Renamed"
	u.RemindersEnabled = true
	require.NoError(t, svc.Update(context.Background(), u))

	got, err := svc.GetByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	assert.True(t, got.RemindersEnabled)
}
