package database

import (
	"io/fs"
	"net/url"
	"strings"
	"testing"

	"golden-thread/internal/config"
	"golden-thread/migrations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationFilesHaveUpAndDown(t *testing.T) {
	files, err := fs.Glob(migrations.FS, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, name := range files {
		content, err := fs.ReadFile(migrations.FS, name)
		require.NoError(t, err)

		body := string(content)
		for _, directive := range []string{"-- +goose Up", "-- +goose Down", "-- +goose StatementBegin", "-- +goose StatementEnd"} {
			assert.Contains(t, body, directive, name)
		}
	}
}

func TestMigrationFilesCreateExpectedTables(t *testing.T) {
	expected := map[string]string{
		"users":            "00001_create_users_table.sql",
		"categories":       "00002_create_categories_table.sql",
		"products":         "00003_create_products_table.sql",
		"orders":           "00004_create_orders_table.sql",
		"blogs":            "00005_create_blogs_table.sql",
		"reviews":          "00006_create_reviews_table.sql",
		"contact_messages": "00007_create_contact_messages_table.sql",
	}

	for table, file := range expected {
		content, err := fs.ReadFile(migrations.FS, file)
		require.NoError(t, err, file)

		assert.Contains(t, string(content), "CREATE TABLE IF NOT EXISTS "+table+" (", file)
		assert.Contains(t, string(content), "DROP TABLE IF EXISTS "+table+";", file)
	}
}

func TestOrdersTableHasStatusConstraint(t *testing.T) {
	content, err := fs.ReadFile(migrations.FS, "00004_create_orders_table.sql")
	require.NoError(t, err)

	for _, status := range []string{"'Placed'", "'Packed'", "'Shipped'", "'Delivered'"} {
		assert.Contains(t, string(content), status)
	}
	assert.True(t, strings.Contains(string(content), "items_json TEXT NOT NULL"))
}

func TestDSN(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{
		Host:     "db.internal",
		Port:     "5433",
		User:     "shop",
		Password: "p@ss/word",
		Database: "golden",
		Schema:   "store",
		SSLMode:  "disable",
	})

	u, err := url.Parse(dsn)
	require.NoError(t, err)
	assert.Equal(t, "postgres", u.Scheme)
	assert.Equal(t, "db.internal:5433", u.Host)
	assert.Equal(t, "/golden", u.Path)
	assert.Equal(t, "shop", u.User.Username())
	pwd, _ := u.User.Password()
	assert.Equal(t, "p@ss/word", pwd)
	assert.Equal(t, "disable", u.Query().Get("sslmode"))
	assert.Equal(t, "store", u.Query().Get("search_path"))
}
