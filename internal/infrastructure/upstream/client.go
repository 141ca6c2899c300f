package upstream

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// Client forwards unhandled routes to the secondary API. The gateway does not
// interpret the payload; it relays bytes and status.
type Client interface {
	Forward(ctx context.Context, method, path, rawQuery string, header http.Header, body []byte) (*Result, error)
}

type Result struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

type httpClient struct {
	baseURL string
	client  *http.Client
	logger  *log.Logger
}

func NewClient(baseURL string, logger *log.Logger) Client {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil
	}
	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}
}

func (c *httpClient) Forward(ctx context.Context, method, path, rawQuery string, header http.Header, body []byte) (*Result, error) {
	if c == nil || c.client == nil {
		return nil, errors.New("nil upstream client")
	}

	endpoint := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if rawQuery != "" {
		endpoint += "?" + rawQuery
	}

	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, err
	}

	// Host and Content-Length are owned by the transport on each hop.
	for key, values := range header {
		if strings.EqualFold(key, "Host") || strings.EqualFold(key, "Content-Length") {
			continue
		}
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if c.logger != nil {
			c.logger.Printf("[Upstream] forward error method=%s path=%s err=%v", method, path, err)
		}
		return nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if c.logger != nil {
			c.logger.Printf("[Upstream] non-success method=%s path=%s status=%d", method, path, resp.StatusCode)
		}
		return nil, fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}

	return &Result{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        b,
	}, nil
}

var _ Client = (*httpClient)(nil)
