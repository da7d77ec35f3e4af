package practicum

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"homework_status_bot/internal/domain/homework"

	"github.com/sirupsen/logrus"
)

const defaultHTTPTimeout = 10 * time.Second

// Config controls how the client reaches the homework status API.
type Config struct {
	Endpoint   string
	Token      string
	HTTPClient *http.Client
	Timeout    time.Duration
	Logger     *logrus.Entry
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches homework statuses from the review API.
type Client struct {
	endpoint   string
	token      string
	httpClient httpDoer
	logger     *logrus.Entry
}

var _ homework.Source = (*Client)(nil)

func NewClient(cfg Config) *Client {
	return &Client{
		endpoint:   cfg.Endpoint,
		token:      cfg.Token,
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		logger:     resolveLogger(cfg.Logger),
	}
}

// FetchHomeworks asks for homeworks updated since from and returns the decoded JSON body.
// Shape checks are left to homework.ValidateResponse.
func (c *Client) FetchHomeworks(ctx context.Context, from time.Time) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, homework.NewError(homework.KindConnectivity, "build request", err)
	}

	q := req.URL.Query()
	q.Set("from_date", strconv.FormatInt(from.Unix(), 10))
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Authorization", "OAuth "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, homework.NewError(homework.KindConnectivity, "", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// The body often carries request ids, so it stays out of the error text
		// that the poller deduplicates on and is only logged.
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.WithFields(logrus.Fields{
			"status_code": resp.StatusCode,
			"body":        strings.TrimSpace(string(body)),
		}).Error("Homework API returned non-200 status")
		return nil, homework.NewError(homework.KindConnectivity, fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
	}

	var payload any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, homework.NewError(homework.KindDataFormat, "decode response", err)
	}
	return payload, nil
}

func resolveHTTPClient(client *http.Client, timeout time.Duration) httpDoer {
	if client != nil {
		return client
	}
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &http.Client{Timeout: timeout}
}

func resolveLogger(l *logrus.Entry) *logrus.Entry {
	if l != nil {
		return l
	}
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	return logrus.NewEntry(discard)
}
