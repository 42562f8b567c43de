package kvstore

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "postgres"), mock
}

func TestPostgresReadHit(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewPostgres(db)

	mock.ExpectQuery(`SELECT value FROM kv_blobs`).
		WithArgs("maSchedule").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`{"Senin":[]}`))

	value, err := store.Read(context.Background(), "maSchedule")
	require.NoError(t, err)
	assert.Equal(t, `{"Senin":[]}`, string(value))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresReadMiss(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewPostgres(db)

	mock.ExpectQuery(`SELECT value FROM kv_blobs`).
		WithArgs("maSchedule").
		WillReturnError(sql.ErrNoRows)

	_, err := store.Read(context.Background(), "maSchedule")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestPostgresWriteUpserts(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewPostgres(db)

	mock.ExpectExec(`INSERT INTO kv_blobs`).
		WithArgs("teachingAssignments", `[]`, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Write(context.Background(), "teachingAssignments", []byte(`[]`)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRemove(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewPostgres(db)

	mock.ExpectExec(`DELETE FROM kv_blobs`).
		WithArgs("mtsSchedule").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Remove(context.Background(), "mtsSchedule"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
