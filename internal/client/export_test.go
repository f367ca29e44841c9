package client

import "time"

type FakeTimers = fakeTimers

func (f *fakeTimers) TTLs() []time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]time.Duration(nil), f.ttls...)
}

func NewPanelWithFakeTimers() (*Panel, *FakeTimers) {
	return newTestPanel()
}

func SetIDGenerator(h *Handler, fn func(time.Time) string) {
	h.newID = fn
}
