package exchangerate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"exchange-service/internal/entity"
	"exchange-service/internal/metrics"

	"github.com/sirupsen/logrus"
)

const redacted = "***"

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *logrus.Logger
	metrics    *metrics.Metrics
}

// NewClient builds a client for baseURL (e.g. https://v6.exchangerate-api.com/v6).
// A zero timeout leaves the request bounded only by the caller's context.
func NewClient(baseURL string, timeout time.Duration, m *metrics.Metrics, logger *logrus.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
		metrics: m,
	}
}

func (c *Client) latestURL(keySegment, base string) string {
	return fmt.Sprintf("%s/%s/latest/%s", c.baseURL, keySegment, url.PathEscape(base))
}

func (c *Client) FetchLatest(ctx context.Context, apiKey, base string) (*entity.RateTable, error) {
	logURL := c.latestURL(redacted, base)
	c.logger.Debugf("Fetching latest rates from URL: %s", logURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.latestURL(url.PathEscape(apiKey), base), nil)
	if err != nil {
		c.logger.Errorf("Failed to create request: %v", err)
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveUpstream("error", time.Since(start))
		// *url.Error embeds the full URL, key included
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		c.logger.Debugf("Failed to fetch %s: %v", logURL, err)
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	c.metrics.ObserveUpstream(strconv.Itoa(resp.StatusCode), time.Since(start))
	c.logger.Debugf("Response status: %d", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	var body LatestResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.logger.Debugf("Failed to decode response for base %s: %v", base, err)
		return nil, &DecodeError{Err: err}
	}

	if body.Result != resultSuccess {
		errType := body.ErrorType
		if errType == "" {
			errType = "unknown"
		}
		c.logger.Warnf("Provider returned result=%q error-type=%q", body.Result, errType)
		return nil, &APIError{Type: errType}
	}

	c.logger.Debugf("Successfully parsed %d rates for base %s", len(body.ConversionRates), base)

	return body.ToRateTable(base), nil
}
