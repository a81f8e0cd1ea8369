package blobd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/futliga/liga-api/internal/platform/logging"
	"github.com/futliga/liga-api/internal/usecase"
)

// Client stores and removes photo objects in the league's object store.
// Objects live under /o/{path}; a successful upload returns the public URL.
type Client struct {
	httpClient *http.Client
	baseURL    string
	publicURL  string
	accessKey  string
	logger     *logging.Logger
}

func NewClient(httpClient *http.Client, baseURL, publicURL, accessKey string, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	publicURL = strings.TrimSuffix(strings.TrimSpace(publicURL), "/")
	if publicURL == "" {
		publicURL = baseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		publicURL:  publicURL,
		accessKey:  accessKey,
		logger:     logger,
	}
}

func (c *Client) Upload(ctx context.Context, path, contentType string, data []byte) (string, error) {
	path = strings.Trim(strings.TrimSpace(path), "/")
	if path == "" {
		return "", fmt.Errorf("object path is required")
	}
	if len(data) == 0 {
		return "", fmt.Errorf("object payload is empty")
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	_, _ = buf.Write(data)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.objectURL(path), bytes.NewReader(buf.B))
	if err != nil {
		return "", fmt.Errorf("create upload request: %w", err)
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Content-Type", contentType)
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "upload object")
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("upload object failed with status %d", resp.StatusCode)
	}

	return c.publicURL + "/o/" + path, nil
}

func (c *Client) Delete(ctx context.Context, path string) error {
	path = strings.Trim(strings.TrimSpace(path), "/")
	if path == "" {
		return fmt.Errorf("object path is required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.objectURL(path), nil)
	if err != nil {
		return fmt.Errorf("create delete request: %w", err)
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "delete object")
	}
	defer drainAndClose(resp.Body)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: object %s", usecase.ErrNotFound, path)
	case resp.StatusCode >= http.StatusMultipleChoices:
		return fmt.Errorf("delete object failed with status %d", resp.StatusCode)
	}

	return nil
}

func (c *Client) objectURL(path string) string {
	segments := strings.Split(path, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}

	return c.baseURL + "/o/" + strings.Join(segments, "/")
}

func (c *Client) authorize(req *http.Request) {
	if c.accessKey != "" {
		req.Header.Set("x-access-key", c.accessKey)
	}
}

func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, 1<<16))
	_ = body.Close()
}
