package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"serviceBooker/internal/config"
	"serviceBooker/internal/models"

	_ "github.com/lib/pq"
)

const schema = `
	CREATE TABLE IF NOT EXISTS bookings (
		seq       BIGSERIAL PRIMARY KEY,
		id        TEXT NOT NULL,
		name      TEXT NOT NULL,
		email     TEXT NOT NULL,
		phone     TEXT NOT NULL DEFAULT '',
		service   TEXT NOT NULL,
		date      TEXT NOT NULL,
		time      TEXT NOT NULL,
		notes     TEXT NOT NULL DEFAULT '',
		timestamp TIMESTAMPTZ NOT NULL,
		status    TEXT NOT NULL
	)`

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	s := New(db)
	if err = s.Migrate(context.Background()); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

func New(db *sql.DB) *Storage {
	return &Storage{DB: db}
}

func (s *Storage) Migrate(ctx context.Context) error {
	if _, err := s.DB.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create bookings table: %w", err)
	}

	return nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// LoadAll returns the collection in insertion order.
func (s *Storage) LoadAll(ctx context.Context) ([]models.Booking, error) {
	query := `
		SELECT id, name, email, phone, service, date, time, notes, timestamp, status
		FROM bookings
		ORDER BY seq ASC`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	defer rows.Close()

	bookings := []models.Booking{}
	for rows.Next() {
		var booking models.Booking
		err = rows.Scan(
			&booking.ID,
			&booking.Name,
			&booking.Email,
			&booking.Phone,
			&booking.Service,
			&booking.Date,
			&booking.Time,
			&booking.Notes,
			&booking.Timestamp,
			&booking.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}

// SaveAll replaces the table content with bookings in one transaction, the
// same full-overwrite contract as the file storage.
func (s *Storage) SaveAll(ctx context.Context, bookings []models.Booking) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `DELETE FROM bookings`); err != nil {
		return fmt.Errorf("failed to clear bookings: %w", err)
	}

	insertQuery := `
		INSERT INTO bookings (id, name, email, phone, service, date, time, notes, timestamp, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	for _, b := range bookings {
		_, err = tx.ExecContext(ctx, insertQuery,
			b.ID, b.Name, b.Email, b.Phone, b.Service, b.Date, b.Time, b.Notes, b.Timestamp, b.Status,
		)
		if err != nil {
			return fmt.Errorf("failed to insert booking %s: %w", b.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit bookings: %w", err)
	}

	return nil
}
