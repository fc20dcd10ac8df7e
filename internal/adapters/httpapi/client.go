package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"

	"fileboard-client/internal/domain"
)

// Doer sends a single HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the file-management API rooted at endpoint.
// It keeps no state between requests.
type Client struct {
	endpoint string
	http     Doer
}

type moveBody struct {
	Destination string `json:"destination"`
}

// NewClient validates endpoint. A nil doer means an http.Client without timeout.
func NewClient(endpoint string, doer Doer) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("endpoint %q: %w", endpoint, domain.ErrInvalidEndpoint)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("endpoint %q must be absolute: %w", endpoint, domain.ErrInvalidEndpoint)
	}
	if doer == nil {
		doer = &http.Client{}
	}
	return &Client{
		endpoint: endpoint,
		http:     doer,
	}, nil
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

// Upload posts every file as a part of the repeated "files" field in one request.
func (c *Client) Upload(ctx context.Context, files domain.FileSelection) (domain.Response, error) {
	if files.Empty() {
		return domain.Response{}, domain.ErrEmptySelection
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for _, f := range files {
		part, err := writer.CreateFormFile(FormFieldFiles, f.Name)
		if err != nil {
			return domain.Response{}, fmt.Errorf("failed to create form part for '%s': %w", f.Name, err)
		}
		if _, copyErr := io.Copy(part, f.Content); copyErr != nil {
			return domain.Response{}, fmt.Errorf("failed to read '%s': %w", f.Name, copyErr)
		}
	}
	if err := writer.Close(); err != nil {
		return domain.Response{}, fmt.Errorf("failed to finish multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &body)
	if err != nil {
		return domain.Response{}, err
	}
	req.Header.Set(HeaderContentType, writer.FormDataContentType())

	return c.send(req)
}

func (c *Client) CreateDirectory(ctx context.Context, name string) (domain.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.ResolveURL(name), nil)
	if err != nil {
		return domain.Response{}, err
	}
	return c.send(req)
}

func (c *Client) Move(ctx context.Context, move domain.MoveRequest) (domain.Response, error) {
	if err := move.Validate(); err != nil {
		return domain.Response{}, err
	}

	payload, err := json.Marshal(moveBody{Destination: move.Destination})
	if err != nil {
		return domain.Response{}, fmt.Errorf("failed to encode move request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.ResolveURL(move.Source), bytes.NewReader(payload))
	if err != nil {
		return domain.Response{}, err
	}
	req.Header.Set(HeaderContentType, domain.MIMEJSON)

	return c.send(req)
}

// Delete asks the server to move fileName to its trash.
func (c *Client) Delete(ctx context.Context, fileName string) (domain.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.ResolveURL(fileName), nil)
	if err != nil {
		return domain.Response{}, err
	}
	return c.send(req)
}

// Fetch loads the listing at path, the way a browser reloads the current page.
func (c *Client) Fetch(ctx context.Context, path string) (domain.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ResolveURL(path), nil)
	if err != nil {
		return domain.Response{}, err
	}
	return c.send(req)
}

// ResolveURL appends suffix to the endpoint. Segments are escaped, separators kept.
func (c *Client) ResolveURL(suffix string) string {
	if strings.HasSuffix(c.endpoint, domain.PathSeparator) {
		suffix = strings.TrimPrefix(suffix, domain.PathSeparator)
	}
	return c.endpoint + escapePath(suffix)
}

func escapePath(path string) string {
	segments := strings.Split(path, domain.PathSeparator)
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, domain.PathSeparator)
}

func (c *Client) send(req *http.Request) (domain.Response, error) {
	logrus.WithFields(logrus.Fields{
		"method": req.Method,
		"url":    req.URL.String(),
	}).Debug(LogRequestSent)

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.Response{}, err
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logrus.Warnf("Failed to close response body for %s %s: %v", req.Method, req.URL, closeErr)
		}
	}()

	// the body is shown as text whatever its declared type
	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Response{}, fmt.Errorf("failed to read response body: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"method": req.Method,
		"url":    req.URL.String(),
		"status": resp.StatusCode,
	}).Debug(LogResponseReceived)

	return domain.Response{
		StatusCode: resp.StatusCode,
		Body:       string(text),
	}, nil
}
