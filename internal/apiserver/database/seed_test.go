package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func TestSeedIfEmpty(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, SeedIfEmpty(ctx, db, zap.NewNop()))

	users, err := db.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 7)

	admin, err := db.GetUserByEmail(ctx, "john.mitchell@evmanufacturing.com")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("password123")))

	materials, err := db.ListMaterials(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, materials, 12)

	schedules, err := db.ListSchedules(ctx, "")
	require.NoError(t, err)
	assert.Len(t, schedules, 6)

	assemblies, err := db.ListAssemblies(ctx)
	require.NoError(t, err)
	assert.Len(t, assemblies, 7)

	inspections, err := db.ListInspections(ctx, "")
	require.NoError(t, err)
	assert.Len(t, inspections, 8)

	costs, err := db.ListCosts(ctx)
	require.NoError(t, err)
	assert.Len(t, costs, 5)

	metrics, err := db.ListRecentMetrics(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, metrics, 7)

	activities, err := db.ListRecentActivities(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, activities, 6)
}

func TestSeedIfEmpty_Idempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, SeedIfEmpty(ctx, db, zap.NewNop()))
	require.NoError(t, SeedIfEmpty(ctx, db, zap.NewNop()))

	count, err := db.CountUsers(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 7, count)

	materials, err := db.ListMaterials(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, materials, 12)
}

func TestSeedIfEmpty_SkipsNonEmptyStore(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.CreateUser(ctx, &User{Name: "Existing", Email: "existing@example.com", Password: "x"}))
	require.NoError(t, SeedIfEmpty(ctx, db, zap.NewNop()))

	count, err := db.CountUsers(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
