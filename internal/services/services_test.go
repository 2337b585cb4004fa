package services

import (
	"context"
	"io"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/hirehub/backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection keeps the in-memory database alive for the whole test.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Company{},
		&models.User{},
		&models.Job{},
		&models.JobApplication{},
	))
	return db
}

// stubUploader records uploads and returns a canned URL.
type stubUploader struct {
	uploads int
	url     string
}

func (u *stubUploader) Upload(_ context.Context, r io.Reader, _ string) (string, error) {
	if _, err := io.ReadAll(r); err != nil {
		return "", err
	}
	u.uploads++
	if u.url == "" {
		return "https://media.test/file", nil
	}
	return u.url, nil
}

func seedCompany(t *testing.T, db *gorm.DB, name, email string) *models.Company {
	t.Helper()
	company := &models.Company{
		Name:     name,
		Email:    email,
		Password: []byte("irrelevant"),
		Image:    "https://media.test/logo",
	}
	require.NoError(t, db.Create(company).Error)
	return company
}

func seedUser(t *testing.T, db *gorm.DB, id, email string) *models.User {
	t.Helper()
	user := &models.User{ID: id, Name: "Test User", Email: email}
	require.NoError(t, db.Create(user).Error)
	return user
}
