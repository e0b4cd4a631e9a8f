package database_test

import (
	"testing"

	"homeserve_backend/database"
	"homeserve_backend/internal/auth"
	"homeserve_backend/internal/models"
	"homeserve_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestSeedIsIdempotent(t *testing.T) {
	db := helpers.NewTestDB(t)

	require.NoError(t, database.Seed(db, true))
	require.NoError(t, database.Seed(db, true))

	assert.Equal(t, int64(6), countRows(t, db, &models.ServiceCategory{}))
	assert.Equal(t, int64(6), countRows(t, db, &models.Provider{}))
	assert.Equal(t, int64(1), countRows(t, db, &models.User{}))

	var categories []models.ServiceCategory
	require.NoError(t, db.Order("id").Find(&categories).Error)
	assert.Equal(t, "Plumbing", categories[0].Name)
	assert.Equal(t, "Carpentry", categories[5].Name)
}

func TestSeedDemoAccountsCanLogIn(t *testing.T) {
	db := helpers.NewTestDB(t)
	require.NoError(t, database.Seed(db, true))

	var user models.User
	require.NoError(t, db.Where("email = ?", "user@example.com").First(&user).Error)
	assert.True(t, auth.CheckPasswordHash(database.DemoPassword, user.PasswordHash))

	var provider models.Provider
	require.NoError(t, db.Where("email = ?", "john@example.com").First(&provider).Error)
	assert.True(t, auth.CheckPasswordHash(database.DemoPassword, provider.PasswordHash))
	assert.NotZero(t, provider.ServiceCategoryID)
	assert.True(t, provider.IsVerified)
}

func TestSeedWithoutDemoData(t *testing.T) {
	db := helpers.NewTestDB(t)
	require.NoError(t, database.Seed(db, false))

	assert.Equal(t, int64(6), countRows(t, db, &models.ServiceCategory{}))
	assert.Zero(t, countRows(t, db, &models.Provider{}))
	assert.Zero(t, countRows(t, db, &models.User{}))
}
