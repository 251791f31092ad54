package stats

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

const (
	appName    = "event-hub"
	timeLayout = "2006-01-02 15:04:05"
)

// Client talks to the external hit/view statistics service. With an empty
// base URL it stays disabled: hits are dropped and view counts are zero.
type Client struct {
	baseURL  string
	http     *http.Client
	strategy retry.Strategy
	logger   logger.Logger
}

func New(baseURL string, timeout time.Duration, log logger.Logger) *Client {
	if baseURL == "" {
		log.Warn("stats base url is empty, view statistics disabled")
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
		logger: log,
	}
}

type hitRequest struct {
	App       string `json:"app"`
	URI       string `json:"uri"`
	IP        string `json:"ip"`
	Timestamp string `json:"timestamp"`
}

type viewStat struct {
	App  string `json:"app"`
	URI  string `json:"uri"`
	Hits int64  `json:"hits"`
}

// Hit records one endpoint view. Failures are logged, not surfaced: a public
// read must not fail because the stats service is down.
func (c *Client) Hit(ctx context.Context, uri, ip string) {
	if c.baseURL == "" {
		return
	}

	body, err := json.Marshal(hitRequest{
		App:       appName,
		URI:       uri,
		IP:        ip,
		Timestamp: time.Now().UTC().Format(timeLayout),
	})
	if err != nil {
		c.logger.Error("marshal hit", logger.String("error", err.Error()))
		return
	}

	err = retry.Do(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/hit", bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= http.StatusBadRequest {
			return fmt.Errorf("stats service returned %d", resp.StatusCode)
		}
		return nil
	}, c.strategy)
	if err != nil {
		c.logger.Error("failed to record hit",
			logger.String("uri", uri),
			logger.String("error", err.Error()),
		)
	}
}

// Views returns view counts keyed by event id.
func (c *Client) Views(ctx context.Context, eventIDs []string) (map[string]int64, error) {
	res := make(map[string]int64, len(eventIDs))
	if c.baseURL == "" || len(eventIDs) == 0 {
		return res, nil
	}

	params := url.Values{}
	params.Set("start", time.Time{}.Format(timeLayout))
	params.Set("end", time.Now().UTC().Format(timeLayout))
	params.Set("unique", "true")
	for _, id := range eventIDs {
		params.Add("uris", "/events/"+id)
	}

	var stats []viewStat
	err := retry.Do(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/stats?"+params.Encode(), nil)
		if err != nil {
			return err
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("stats service returned %d", resp.StatusCode)
		}
		return json.NewDecoder(resp.Body).Decode(&stats)
	}, c.strategy)
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}

	for _, stat := range stats {
		id := strings.TrimPrefix(stat.URI, "/events/")
		res[id] = stat.Hits
	}

	return res, nil
}
