package client

import (
	"context"
	"log/slog"
	"serviceBooker/internal/config"
	"serviceBooker/internal/lib/clock"
	"serviceBooker/internal/lib/logger/sl"
	"serviceBooker/internal/localcache"
	"serviceBooker/internal/models"
	"time"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Remote
type Remote interface {
	Create(ctx context.Context, b models.Booking) (Reply, error)
}

// Confirmation is the result of a submission. Remote is false when the
// booking service was unreachable or answered with something that is not
// JSON; the booking then only lives in the local cache.
type Confirmation struct {
	Booking models.Booking
	Remote  bool
	Message string
	View    View
}

type Timings struct {
	Confirmation   time.Duration
	Simulated      time.Duration
	Error          time.Duration
	SimulatedDelay time.Duration
}

func TimingsFromConfig(cfg config.Panel) Timings {
	return Timings{
		Confirmation:   cfg.ConfirmationTTL,
		Simulated:      cfg.SimulatedTTL,
		Error:          cfg.ErrorTTL,
		SimulatedDelay: cfg.SimulatedDelay,
	}
}

type Handler struct {
	log       *slog.Logger
	remote    Remote
	cache     localcache.Cache
	panel     *Panel
	clock     clock.Clock
	validator *formValidator
	timings   Timings
	newID     func(time.Time) string
}

// NewHandler wires the submission flow. remote may be nil, in which case
// every booking is confirmed locally only.
func NewHandler(
	log *slog.Logger,
	remote Remote,
	cache localcache.Cache,
	panel *Panel,
	clk clock.Clock,
	timings Timings,
) *Handler {
	return &Handler{
		log:       log,
		remote:    remote,
		cache:     cache,
		panel:     panel,
		clock:     clk,
		validator: newFormValidator(clk),
		timings:   timings,
		newID:     GenerateBookingID,
	}
}

func (h *Handler) Panel() *Panel {
	return h.panel
}

func (h *Handler) Clock() clock.Clock {
	return h.clock
}

// Submit validates the form, sends the booking, records it in the local cache
// and shows the confirmation. Field values are trimmed before any of that.
// Only validation failures are returned as errors; the form is reset on
// success.
func (h *Handler) Submit(ctx context.Context, form *Form) (Confirmation, error) {
	const op = "client.Handler.Submit"

	log := h.log.With(slog.String("op", op))

	f := form.trimmed()

	if err := h.validator.Validate(f); err != nil {
		log.Info("booking form rejected", sl.Err(err))
		h.reject()
		return Confirmation{}, err
	}

	now := h.clock.Now()
	b := f.booking(h.newID(now), now)

	log = log.With(slog.String("booking_id", b.ID))

	conf := Confirmation{Booking: b}

	if h.remote != nil {
		reply, err := h.remote.Create(ctx, b)
		if err != nil {
			log.Warn("booking service unavailable, confirming locally", sl.Err(err))
		} else {
			conf.Remote = true
			conf.Message = reply.Text()
			log.Info("booking service replied", slog.String("message", conf.Message))
		}
	}

	if err := h.cache.Append(ctx, b); err != nil {
		log.Error("failed to save booking locally", sl.Err(err))
	} else if all, err := h.cache.ReadAll(ctx); err == nil {
		log.Debug("booking saved locally", slog.Int("total", len(all)))
	}

	conf.View = confirmationView(conf)
	h.panel.Show(conf.View, h.timings.Confirmation)

	form.Reset()

	return conf, nil
}

// Simulate runs the offline demo flow: validate, wait, confirm. Nothing is
// sent or cached.
func (h *Handler) Simulate(ctx context.Context, form *Form) (View, error) {
	const op = "client.Handler.Simulate"

	log := h.log.With(slog.String("op", op))

	f := form.trimmed()

	if err := h.validator.Validate(f); err != nil {
		log.Info("booking form rejected", sl.Err(err))
		h.reject()
		return View{}, err
	}

	timer := time.NewTimer(h.timings.SimulatedDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return View{}, ctx.Err()
	case <-timer.C:
	}

	v := View{
		Kind:      PanelSuccess,
		Simulated: true,
		Service:   f.Service,
		Date:      FormatDate(f.Date),
		Time:      FormatTime(f.Time),
		Customer:  f.Name,
		Email:     f.Email,
		Phone:     f.Phone,
	}

	h.panel.Show(v, h.timings.Simulated)
	form.Reset()

	log.Info("simulated booking confirmed")

	return v, nil
}

// Bookings returns everything cached on this device.
func (h *Handler) Bookings(ctx context.Context) ([]models.Booking, error) {
	return h.cache.ReadAll(ctx)
}

// ClearBookings wipes the local cache.
func (h *Handler) ClearBookings(ctx context.Context) error {
	if err := h.cache.Clear(ctx); err != nil {
		return err
	}

	h.log.Info("all local bookings cleared")

	return nil
}

func (h *Handler) reject() {
	h.panel.Show(View{Kind: PanelError, Error: RejectionMessage}, h.timings.Error)
}

func confirmationView(conf Confirmation) View {
	b := conf.Booking

	return View{
		Kind:          PanelSuccess,
		BookingID:     b.ID,
		Service:       models.ServiceLabel(b.Service),
		Date:          FormatDate(b.Date),
		Time:          FormatTime(b.Time),
		Customer:      b.Name,
		Email:         b.Email,
		Phone:         b.Phone,
		Notes:         b.Notes,
		ServerMessage: conf.Message,
		LocalOnly:     !conf.Remote,
	}
}
