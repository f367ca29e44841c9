package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"serviceBooker/internal/lib/api"
	"serviceBooker/internal/models"
	"strings"
	"syscall"
	"time"
)

const defaultTimeout = 10 * time.Second

var ErrMalformedReply = errors.New("malformed reply")

// Reply is the body returned by the booking service.
type Reply struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Text is the message to show the user.
func (r Reply) Text() string {
	if r.Message != "" {
		return r.Message
	}

	return r.Error
}

// RemoteClient talks to the booking service over HTTP.
type RemoteClient struct {
	baseURL string
	ua      string
	http    *http.Client
}

func NewRemoteClient(baseURL string, timeout time.Duration, ua string) *RemoteClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &RemoteClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		ua:      ua,
		http: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// Create posts the booking. Any well-formed JSON reply is returned without
// error, whatever its status code; transport failures and bodies that are not
// JSON are errors.
func (c *RemoteClient) Create(ctx context.Context, b models.Booking) (Reply, error) {
	payload, err := json.Marshal(b)
	if err != nil {
		return Reply{}, fmt.Errorf("booking create request error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+api.BookPath, bytes.NewReader(payload))
	if err != nil {
		return Reply{}, fmt.Errorf("booking create request error: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.ua != "" {
		req.Header.Set("User-Agent", c.ua)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Reply{}, classifyRequestError(ctx, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Reply{}, classifyRequestError(ctx, err)
	}

	var reply Reply
	if err = json.Unmarshal(body, &reply); err != nil {
		return Reply{}, fmt.Errorf("booking create %w: status=%d: %v", ErrMalformedReply, resp.StatusCode, err)
	}

	return reply, nil
}

func classifyRequestError(ctx context.Context, err error) error {
	if isTimeoutError(ctx, err) {
		return fmt.Errorf("booking create timeout: %w", err)
	}
	if isNetworkError(err) {
		return fmt.Errorf("booking create network error: %w", err)
	}
	return fmt.Errorf("booking create request error: %w", err)
}

func isTimeoutError(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isNetworkError(err error) bool {
	if err == nil {
		return false
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		err = urlErr.Err
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	return errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ENETUNREACH) ||
		errors.Is(err, syscall.EHOSTUNREACH)
}
