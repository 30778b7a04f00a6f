package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"heavyrent-backend/internal/model"
)

// newTestDB opens an in-memory SQLite database unique to the test and
// migrates the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Machine{},
		&model.RentalRequest{},
		&model.PushSubscription{},
	))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// seedUser inserts a user directly, bypassing the service under test.
func seedUser(t *testing.T, db *gorm.DB, name, email string) model.User {
	t.Helper()
	user := model.User{Name: name, Email: email, Role: model.RoleCustomer}
	require.NoError(t, db.Create(&user).Error)
	return user
}
