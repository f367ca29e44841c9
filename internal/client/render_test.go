package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTextConfirmation(t *testing.T) {
	t.Parallel()

	out := RenderText(View{
		Kind:          PanelSuccess,
		BookingID:     "BK1",
		Service:       "Room Cleaning",
		Date:          "Friday, January 10, 2025",
		Time:          "2:30 PM",
		Customer:      "Jane Doe",
		Email:         "jane@example.com",
		ServerMessage: "Booking confirmed!",
	})

	assert.Contains(t, out, "Booking Confirmed!")
	assert.Contains(t, out, "Booking ID: BK1")
	assert.Contains(t, out, "Service:  Room Cleaning")
	assert.Contains(t, out, "Date:     Friday, January 10, 2025")
	assert.Contains(t, out, "Time:     2:30 PM")
	assert.Contains(t, out, "Customer: Jane Doe")
	assert.Contains(t, out, "Confirmation details sent to: jane@example.com")
	assert.Contains(t, out, "Server response: Booking confirmed!")
	assert.NotContains(t, out, "We'll contact you")
	assert.NotContains(t, out, "Notes:")
	assert.NotContains(t, out, "could not be reached")
}

func TestRenderTextLocalOnly(t *testing.T) {
	t.Parallel()

	out := RenderText(View{Kind: PanelSuccess, BookingID: "BK1", Phone: "555", Notes: "gate", LocalOnly: true})

	assert.Contains(t, out, "We'll contact you at: 555")
	assert.Contains(t, out, "Notes: gate")
	assert.Contains(t, out, "could not be reached")
	assert.NotContains(t, out, "Server response")
}

func TestRenderTextSimulatedAndError(t *testing.T) {
	t.Parallel()

	out := RenderText(View{
		Kind:      PanelSuccess,
		Simulated: true,
		Customer:  "Jane",
		Service:   "consultation",
		Date:      "Friday, January 10, 2025",
		Time:      "9:00 AM",
		Email:     "jane@example.com",
	})
	assert.Contains(t, out, "Thank you Jane! Your consultation appointment is scheduled for")
	assert.Contains(t, out, "Friday, January 10, 2025 at 9:00 AM")
	assert.Contains(t, out, "A confirmation email will be sent to jane@example.com")
	assert.NotContains(t, out, "Booking ID")

	out = RenderText(View{Kind: PanelError, Error: RejectionMessage})
	assert.Equal(t, "Error: Please fill in all required fields correctly.\n", out)
}
