package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLookupDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestStatusRepository_GetByID(t *testing.T) {
	db, mock := setupLookupDB(t)
	defer db.Close()

	repo := NewStatusRepository(db)

	mock.ExpectQuery(`FROM status WHERE status_id`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"status_id", "name", "description"}).
			AddRow(1, "Active", "The medical record is in force"))

	status, err := repo.GetByID(context.Background(), 1)

	require.NoError(t, err)
	require.NotNil(t, status)
	assert.Equal(t, "Active", status.Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatusRepository_GetByName(t *testing.T) {
	db, mock := setupLookupDB(t)
	defer db.Close()

	repo := NewStatusRepository(db)

	mock.ExpectQuery(`FROM status WHERE name`).
		WithArgs("Inactive").
		WillReturnRows(sqlmock.NewRows([]string{"status_id", "name", "description"}).
			AddRow(2, "Inactive", "The medical record was soft deleted"))

	status, err := repo.GetByName(context.Background(), "Inactive")

	require.NoError(t, err)
	require.NotNil(t, status)
	assert.Equal(t, 2, status.StatusID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatusRepository_GetByName_NotFound(t *testing.T) {
	db, mock := setupLookupDB(t)
	defer db.Close()

	repo := NewStatusRepository(db)

	mock.ExpectQuery(`FROM status WHERE name`).
		WithArgs("Archived").
		WillReturnRows(sqlmock.NewRows([]string{"status_id", "name", "description"}))

	status, err := repo.GetByName(context.Background(), "Archived")

	require.NoError(t, err)
	assert.Nil(t, status)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatusRepository_ExistsByID(t *testing.T) {
	db, mock := setupLookupDB(t)
	defer db.Close()

	repo := NewStatusRepository(db)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.ExistsByID(context.Background(), 99)

	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMedicalRecordTypeRepository_GetByID(t *testing.T) {
	db, mock := setupLookupDB(t)
	defer db.Close()

	repo := NewMedicalRecordTypeRepository(db)

	mock.ExpectQuery(`FROM medical_record_type WHERE medical_record_type_id`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"medical_record_type_id", "name", "description"}).
			AddRow(1, "Periodic", "Scheduled periodic examination"))

	recordType, err := repo.GetByID(context.Background(), 1)

	require.NoError(t, err)
	require.NotNil(t, recordType)
	assert.Equal(t, "Periodic", recordType.Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMedicalRecordTypeRepository_ExistsByID(t *testing.T) {
	db, mock := setupLookupDB(t)
	defer db.Close()

	repo := NewMedicalRecordTypeRepository(db)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByID(context.Background(), 1)

	require.NoError(t, err)
	assert.True(t, exists)

	assert.NoError(t, mock.ExpectationsWereMet())
}
