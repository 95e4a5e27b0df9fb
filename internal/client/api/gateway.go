// Package api implements the HTTP gateway to the ludoan72-news backend:
// one configured client that attaches the bearer credential, unwraps the
// response envelope, and centrally invalidates the session on
// authentication failures.
package api

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
	"time"

	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/session"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/common"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/logging"
)

// Gateway is the single configured client wrapping the backend base URL.
type Gateway struct {
	baseURL        string
	http           *http.Client
	session        *session.Store
	log            logging.Logger
	onUnauthorized func()
}

// Option customizes a Gateway.
type Option func(*Gateway)

// WithHTTPClient swaps the underlying http.Client (tests).
func WithHTTPClient(c *http.Client) Option {
	return func(g *Gateway) { g.http = c }
}

// WithUnauthorizedHook registers the redirect-to-login side effect. It runs
// at most once per failing call, after the credential has been cleared.
func WithUnauthorizedHook(fn func()) Option {
	return func(g *Gateway) { g.onUnauthorized = fn }
}

// New builds a Gateway. The timeout is a generous ceiling rather than an
// interactive one so large media uploads survive it.
func New(baseURL string, timeout time.Duration, sess *session.Store, log logging.Logger, opts ...Option) *Gateway {
	g := &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		session: sess,
		log:     log,
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// GetJSON fetches path and decodes the envelope's data into out.
func (g *Gateway) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	return g.do(ctx, http.MethodGet, path, query, nil, "", out)
}

// PostJSON sends body as JSON and decodes the envelope's data into out
// (out may be nil).
func (g *Gateway) PostJSON(ctx context.Context, path string, body, out any) error {
	r, err := encodeJSON(body)
	if err != nil {
		return err
	}
	return g.do(ctx, http.MethodPost, path, nil, r, "application/json", out)
}

// PutJSON sends body as JSON via PUT.
func (g *Gateway) PutJSON(ctx context.Context, path string, body, out any) error {
	r, err := encodeJSON(body)
	if err != nil {
		return err
	}
	return g.do(ctx, http.MethodPut, path, nil, r, "application/json", out)
}

// Delete issues a DELETE against path.
func (g *Gateway) Delete(ctx context.Context, path string) error {
	return g.do(ctx, http.MethodDelete, path, nil, nil, "", nil)
}

// PostMultipart uploads one file under the given form field name.
func (g *Gateway) PostMultipart(ctx context.Context, path, field, filename string, file io.Reader, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return fmt.Errorf("multipart form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("multipart copy: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("multipart close: %w", err)
	}
	return g.do(ctx, http.MethodPost, path, nil, &buf, mw.FormDataContentType(), out)
}

func encodeJSON(body any) (io.Reader, error) {
	if body == nil {
		return nil, nil
	}
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	return bytes.NewReader(b), nil
}

func (g *Gateway) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	u := g.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := g.session.Token(); token != "" {
		req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
	}

	resp, err := g.http.Do(req)
	if err != nil {
		g.log.Warn(ctx, "request failed", "method", method, "path", path, "err", err)
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", common.ErrUnavailable, err)
	}

	// The envelope is best-effort here: error paths still want its message
	// when the backend bothered to send one.
	var env Envelope
	envErr := json.Unmarshal(raw, &env)

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return g.invalidate(ctx, method, path)
	case http.StatusNotFound:
		if envErr == nil && env.Message != "" {
			return fmt.Errorf("%s: %w", env.Message, common.ErrNotFound)
		}
		return common.ErrNotFound
	}

	if envErr != nil {
		g.log.Warn(ctx, "malformed response", "method", method, "path", path, "status", resp.StatusCode)
		return fmt.Errorf("%w: malformed response (status %d)", common.ErrUnavailable, resp.StatusCode)
	}

	if env.StatusCode == common.StatusCodeSessionExpired {
		return g.invalidate(ctx, method, path)
	}

	if !env.ok() {
		return &BusinessError{Code: env.StatusCode, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 && !bytes.Equal(env.Data, []byte("null")) {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("%w: decode data: %v", common.ErrUnavailable, err)
		}
	}
	return nil
}

// invalidate clears the credential and fires the unauthorized hook exactly
// once for this failing call. Callers receive ErrUnauthorized and must not
// apply any further state from the request.
func (g *Gateway) invalidate(ctx context.Context, method, path string) error {
	g.log.Warn(ctx, "session invalidated", "method", method, "path", path)
	g.session.Clear()
	if g.onUnauthorized != nil {
		g.onUnauthorized()
	}
	return common.ErrUnauthorized
}
