package database

import (
	"testing"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationSource_EmbedsInitialSchema(t *testing.T) {
	found, err := MigrationSource().FindMigrations()
	require.NoError(t, err)
	require.NotEmpty(t, found)

	first := found[0]
	assert.Equal(t, "001_init.sql", first.Id)
	require.NotEmpty(t, first.Up)
	require.NotEmpty(t, first.Down)

	var up string
	for _, stmt := range first.Up {
		up += stmt
	}
	for _, table := range []string{"users", "companies", "company_contacts", "meetings", "meeting_with", "meeting_participants", "meeting_minutes", "zoom_meetings"} {
		assert.Contains(t, up, "CREATE TABLE IF NOT EXISTS "+table+" ")
	}
}

func TestMigrationSource_Type(t *testing.T) {
	var _ migrate.MigrationSource = MigrationSource()
}
