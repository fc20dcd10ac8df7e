package httpapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fileboard-client/internal/domain"
)

type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

type capturedRequest struct {
	method      string
	path        string
	escapedPath string
	contentType string
	body        string
	files       map[string]string
}

// newTestServer records every request and answers with status and body.
func newTestServer(t *testing.T, status int, body string) (*httptest.Server, *[]capturedRequest) {
	t.Helper()
	var captured []capturedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := capturedRequest{
			method:      r.Method,
			path:        r.URL.Path,
			escapedPath: r.URL.EscapedPath(),
			contentType: r.Header.Get(HeaderContentType),
		}
		if strings.HasPrefix(req.contentType, "multipart/form-data") {
			require.NoError(t, r.ParseMultipartForm(1<<20))
			req.files = map[string]string{}
			for _, fh := range r.MultipartForm.File[FormFieldFiles] {
				f, err := fh.Open()
				require.NoError(t, err)
				data, err := io.ReadAll(f)
				require.NoError(t, err)
				_ = f.Close()
				req.files[fh.Filename] = string(data)
			}
		} else {
			data, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			req.body = string(data)
		}
		captured = append(captured, req)
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, &captured
}

func newTestClient(t *testing.T, endpoint string) *Client {
	t.Helper()
	c, err := NewClient(endpoint, nil)
	require.NoError(t, err)
	return c
}

func TestNewClient(t *testing.T) {
	t.Run("valid endpoint", func(t *testing.T) {
		c, err := NewClient("http://localhost:3000/", nil)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:3000/", c.Endpoint())
		assert.IsType(t, &http.Client{}, c.http)
		assert.Zero(t, c.http.(*http.Client).Timeout)
	})

	t.Run("relative endpoint", func(t *testing.T) {
		_, err := NewClient("/files/", nil)
		assert.ErrorIs(t, err, domain.ErrInvalidEndpoint)
	})

	t.Run("unparsable endpoint", func(t *testing.T) {
		_, err := NewClient("http://[::1", nil)
		assert.ErrorIs(t, err, domain.ErrInvalidEndpoint)
	})
}

func TestClient_ResolveURL(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		suffix   string
		want     string
	}{
		{"plain name", "http://h/", "a.txt", "http://h/a.txt"},
		{"leading slash trimmed once", "http://h/", "/docs/a.txt", "http://h/docs/a.txt"},
		{"endpoint without slash", "http://h/files", "/a.txt", "http://h/files/a.txt"},
		{"space escaped", "http://h/", "my file.txt", "http://h/my%20file.txt"},
		{"question mark escaped", "http://h/", "what?.txt", "http://h/what%3F.txt"},
		{"empty suffix", "http://h/", "", "http://h/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, tt.endpoint)
			assert.Equal(t, tt.want, c.ResolveURL(tt.suffix))
		})
	}
}

func TestClient_Upload(t *testing.T) {
	t.Run("all files in one request", func(t *testing.T) {
		srv, captured := newTestServer(t, http.StatusCreated, "ok")
		c := newTestClient(t, srv.URL+"/")

		resp, err := c.Upload(context.Background(), domain.FileSelection{
			{Name: "a.txt", Content: strings.NewReader("alpha")},
			{Name: "b.txt", Content: strings.NewReader("beta")},
			{Name: "c.txt", Content: strings.NewReader("gamma")},
		})
		require.NoError(t, err)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "ok", resp.Body)
		assert.True(t, resp.OK())
		require.Len(t, *captured, 1)

		req := (*captured)[0]
		assert.Equal(t, http.MethodPost, req.method)
		assert.Equal(t, "/", req.path)
		assert.Equal(t, map[string]string{"a.txt": "alpha", "b.txt": "beta", "c.txt": "gamma"}, req.files)
	})

	t.Run("empty selection sends nothing", func(t *testing.T) {
		srv, captured := newTestServer(t, http.StatusCreated, "ok")
		c := newTestClient(t, srv.URL+"/")

		_, err := c.Upload(context.Background(), nil)
		assert.ErrorIs(t, err, domain.ErrEmptySelection)
		assert.Empty(t, *captured)
	})

	t.Run("unreadable file", func(t *testing.T) {
		srv, captured := newTestServer(t, http.StatusCreated, "ok")
		c := newTestClient(t, srv.URL+"/")

		_, err := c.Upload(context.Background(), domain.FileSelection{
			{Name: "broken.bin", Content: io.MultiReader(strings.NewReader("x"), errReader{})},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "broken.bin")
		assert.Empty(t, *captured)
	})
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) {
	return 0, errors.New("disk read error")
}

func TestClient_CreateDirectory(t *testing.T) {
	srv, captured := newTestServer(t, http.StatusCreated, "Created")
	c := newTestClient(t, srv.URL+"/")

	resp, err := c.CreateDirectory(context.Background(), "photos 2024")
	require.NoError(t, err)

	assert.Equal(t, "Created", resp.Body)
	require.Len(t, *captured, 1)
	assert.Equal(t, http.MethodPut, (*captured)[0].method)
	assert.Equal(t, "/photos 2024", (*captured)[0].path)
	assert.Equal(t, "/photos%202024", (*captured)[0].escapedPath)
	assert.Empty(t, (*captured)[0].body)
}

func TestClient_Move(t *testing.T) {
	t.Run("patch with json destination", func(t *testing.T) {
		srv, captured := newTestServer(t, http.StatusOK, "Move successful")
		c := newTestClient(t, srv.URL+"/")

		resp, err := c.Move(context.Background(), domain.MoveRequest{Source: "a.txt", Destination: "/docs/b.txt"})
		require.NoError(t, err)

		assert.Equal(t, "Move successful", resp.Body)
		require.Len(t, *captured, 1)
		req := (*captured)[0]
		assert.Equal(t, http.MethodPatch, req.method)
		assert.Equal(t, "/a.txt", req.path)
		assert.Equal(t, domain.MIMEJSON, req.contentType)
		assert.Equal(t, `{"destination":"/docs/b.txt"}`, req.body)
	})

	t.Run("empty destination", func(t *testing.T) {
		srv, captured := newTestServer(t, http.StatusOK, "")
		c := newTestClient(t, srv.URL+"/")

		_, err := c.Move(context.Background(), domain.MoveRequest{Source: "a.txt", Destination: " "})
		assert.ErrorIs(t, err, domain.ErrEmptyDestination)
		assert.Empty(t, *captured)
	})

	t.Run("conflict body kept verbatim", func(t *testing.T) {
		srv, _ := newTestServer(t, http.StatusConflict, "Destination already exists. Trash that first.")
		c := newTestClient(t, srv.URL+"/")

		resp, err := c.Move(context.Background(), domain.MoveRequest{Source: "a.txt", Destination: "b.txt"})
		require.NoError(t, err)
		assert.False(t, resp.OK())
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "Destination already exists. Trash that first.", resp.Body)
	})
}

func TestClient_Delete(t *testing.T) {
	srv, captured := newTestServer(t, http.StatusInternalServerError, "disk full")
	c := newTestClient(t, srv.URL+"/")

	resp, err := c.Delete(context.Background(), "old.log")
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "disk full", resp.Body)
	require.Len(t, *captured, 1)
	assert.Equal(t, http.MethodDelete, (*captured)[0].method)
	assert.Equal(t, "/old.log", (*captured)[0].path)
}

func TestClient_Fetch(t *testing.T) {
	srv, captured := newTestServer(t, http.StatusOK, "<html>listing</html>")
	c := newTestClient(t, srv.URL+"/")

	resp, err := c.Fetch(context.Background(), "/docs")
	require.NoError(t, err)

	assert.Equal(t, "<html>listing</html>", resp.Body)
	require.Len(t, *captured, 1)
	assert.Equal(t, http.MethodGet, (*captured)[0].method)
	assert.Equal(t, "/docs", (*captured)[0].path)
}

func TestClient_TransportError(t *testing.T) {
	doer := &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("ECONNRESET")
	})}
	c, err := NewClient("http://files.invalid/", doer)
	require.NoError(t, err)

	_, err = c.Delete(context.Background(), "a.txt")
	require.Error(t, err)

	var urlErr *url.Error
	require.ErrorAs(t, err, &urlErr)
	assert.Equal(t, "ECONNRESET", urlErr.Err.Error())
}
