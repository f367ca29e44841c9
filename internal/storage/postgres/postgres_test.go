package postgres

import (
	"context"
	"errors"
	"regexp"
	"serviceBooker/internal/booking"
	"serviceBooker/internal/lib/logger/handlers/slogdiscard"
	"serviceBooker/internal/models"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{"id", "name", "email", "phone", "service", "date", "time", "notes", "timestamp", "status"}

func newMock(t *testing.T) (*Storage, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return New(db), mock
}

func TestLoadAll(t *testing.T) {
	t.Parallel()

	s, mock := newMock(t)
	ts := time.Date(2025, 1, 5, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings")).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("BK1", "Jane", "jane@example.com", "", "consultation", "2025-01-10", "09:00", "", ts, "pending").
			AddRow("BK2", "John", "john@example.com", "555", "other", "2025-01-11", "10:30", "gate code 12", ts, "pending"))

	bookings, err := s.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "BK1", bookings[0].ID)
	assert.Equal(t, "gate code 12", bookings[1].Notes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadAllEmpty(t *testing.T) {
	t.Parallel()

	s, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings")).WillReturnRows(sqlmock.NewRows(columns))

	bookings, err := s.LoadAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, bookings)
	assert.Empty(t, bookings)
}

func TestSaveAll(t *testing.T) {
	t.Parallel()

	s, mock := newMock(t)
	ts := time.Date(2025, 1, 5, 8, 0, 0, 0, time.UTC)
	bookings := []models.Booking{
		{ID: "BK1", Name: "Jane", Email: "jane@example.com", Service: "consultation", Date: "2025-01-10", Time: "09:00", Timestamp: ts, Status: "pending"},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM bookings")).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bookings")).
		WithArgs("BK1", "Jane", "jane@example.com", "", "consultation", "2025-01-10", "09:00", "", ts, "pending").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, s.SaveAll(context.Background(), bookings))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveAllRollsBackOnInsertError(t *testing.T) {
	t.Parallel()

	s, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM bookings")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bookings")).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := s.SaveAll(context.Background(), []models.Booking{{ID: "BK1"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert booking BK1")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate(t *testing.T) {
	t.Parallel()

	s, mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS bookings")).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerLoadFailureKeepsStoredRows(t *testing.T) {
	t.Parallel()

	s, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings")).WillReturnError(errors.New("connection reset by peer"))

	ledger := booking.NewLedger(slogdiscard.NewDiscardLogger(), s)

	_, err := ledger.Book(context.Background(), models.Booking{
		ID:      "BK1",
		Name:    "Jane",
		Email:   "jane@example.com",
		Service: "other",
		Date:    "2025-01-10",
		Time:    "09:00",
		Status:  models.StatusPending,
	})
	require.ErrorContains(t, err, "connection reset by peer")

	// No DELETE or INSERT may follow a failed read.
	assert.NoError(t, mock.ExpectationsWereMet())
}
