package migrations

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"testing/fstest"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFiles() fstest.MapFS {
	return fstest.MapFS{
		"002_catalog.sql": {Data: []byte("CREATE TABLE subjects (id BIGSERIAL)")},
		"001_users.sql":   {Data: []byte("CREATE TABLE users (id BIGSERIAL)")},
		"README.md":       {Data: []byte("ignored")},
	}
}

func TestMigrationsSortedAndFiltered(t *testing.T) {
	m := NewMigrator(nil, testFiles(), zerolog.Nop())

	got, err := m.Migrations()
	require.NoError(t, err)
	assert.Equal(t, []Migration{
		{Version: "001", Name: "001_users.sql"},
		{Version: "002", Name: "002_catalog.sql"},
	}, got)
}

func TestUpSkipsAppliedAndRecordsInTransaction(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	existsSQL := regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`)
	recordSQL := regexp.QuoteMeta(`INSERT INTO schema_migrations (version) VALUES ($1)`)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectQuery(existsSQL).WithArgs("001").WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(existsSQL).WithArgs("002").WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE subjects (id BIGSERIAL)")).WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectExec(recordSQL).WithArgs("002").WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	applied, err := NewMigrator(mock, testFiles(), zerolog.Nop()).Up(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpStopsOnFailedMigration(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	boom := errors.New("syntax error")
	existsSQL := regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectQuery(existsSQL).WithArgs("001").WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE users (id BIGSERIAL)")).WillReturnError(boom)
	mock.ExpectRollback()

	applied, err := NewMigrator(mock, testFiles(), zerolog.Nop()).Up(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}
