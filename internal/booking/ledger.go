package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"serviceBooker/internal/lib/logger/sl"
	"serviceBooker/internal/models"
	"serviceBooker/internal/storage"
	"sync"
)

const (
	MessageConfirmed = "Booking confirmed!"
	MessageConflict  = "Time slot already booked."
)

// Outcome is the business result of a create request. A conflict is not an
// error.
type Outcome int

const (
	OutcomeConfirmed Outcome = iota + 1
	OutcomeConflict
)

func (o Outcome) String() string {
	switch o {
	case OutcomeConfirmed:
		return "confirmed"
	case OutcomeConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// Message is the text returned to the client for the outcome.
func (o Outcome) Message() string {
	if o == OutcomeConflict {
		return MessageConflict
	}

	return MessageConfirmed
}

type Store interface {
	LoadAll(ctx context.Context) ([]models.Booking, error)
	SaveAll(ctx context.Context, bookings []models.Booking) error
}

// Ledger owns the booking collection. Book runs load, conflict scan, append
// and save as one critical section.
type Ledger struct {
	log   *slog.Logger
	store Store
	mu    sync.Mutex
}

func NewLedger(log *slog.Logger, store Store) *Ledger {
	return &Ledger{
		log:   log,
		store: store,
	}
}

func (l *Ledger) Book(ctx context.Context, b models.Booking) (Outcome, error) {
	const op = "booking.Ledger.Book"

	log := l.log.With(
		slog.String("op", op),
		slog.String("booking_id", b.ID),
	)

	var outcome Outcome

	err := l.withLock(func() error {
		bookings, err := l.store.LoadAll(ctx)
		switch {
		case errors.Is(err, storage.ErrUnreadable):
			log.Warn("stored bookings are unreadable, starting from an empty collection", sl.Err(err))
			bookings = nil
		case err != nil:
			return fmt.Errorf("%s: %w", op, err)
		}

		for _, existing := range bookings {
			if existing.SameSlot(b) {
				log.Info("time slot already booked",
					slog.String("date", b.Date),
					slog.String("time", b.Time),
					slog.String("existing_id", existing.ID),
				)
				outcome = OutcomeConflict
				return nil
			}
		}

		bookings = append(bookings, b)

		if err = l.store.SaveAll(ctx, bookings); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		log.Info("booking stored", slog.Int("total", len(bookings)))
		outcome = OutcomeConfirmed

		return nil
	})
	if err != nil {
		return 0, err
	}

	return outcome, nil
}

func (l *Ledger) List(ctx context.Context) ([]models.Booking, error) {
	const op = "booking.Ledger.List"

	var bookings []models.Booking

	err := l.withLock(func() error {
		var err error
		bookings, err = l.store.LoadAll(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return bookings, nil
}

func (l *Ledger) Get(ctx context.Context, id string) (models.Booking, error) {
	const op = "booking.Ledger.Get"

	bookings, err := l.List(ctx)
	if err != nil {
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	for _, b := range bookings {
		if b.ID == id {
			return b, nil
		}
	}

	return models.Booking{}, fmt.Errorf("%s: %w", op, storage.ErrBookingNotFound)
}

// withLock serializes access to the store. Swapping it for a storage-level
// transaction does not change callers.
func (l *Ledger) withLock(fn func() error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return fn()
}
