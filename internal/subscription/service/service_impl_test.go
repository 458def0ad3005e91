package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/facturable/facturable/internal/subscription/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func ptr[T any](v T) *T { return &v }

func setup(t *testing.T) domain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Subscription{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{DB: db, Log: zap.NewNop(), GenID: node})
}

func TestList_ActiveFilterKeepsFalse(t *testing.T) {
	svc := setup(t)

	_, err := svc.Create(context.Background(), &domain.Record{
		Name: ptr("Hosting"), Price: ptr(12.0), Active: ptr(true),
	})
	require.NoError(t, err)

	retired, err := svc.Create(context.Background(), &domain.Record{
		Name: ptr("Dominio legacy"), Price: ptr(8.0), Active: ptr(false),
	})
	require.NoError(t, err)

	inactive, err := svc.List(context.Background(), ptr(false))
	require.NoError(t, err)
	require.Len(t, inactive, 1)
	assert.Equal(t, retired.ID, inactive[0].ID)

	all, err := svc.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
