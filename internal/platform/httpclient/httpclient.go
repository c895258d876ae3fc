package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultTimeout = 10 * time.Second

	// tope de lectura del body; un dataset de curvas no debería acercarse
	DefaultMaxBody = 4 << 20
)

var ErrBodyTooLarge = errors.New("httpclient: body too large")

// Client envuelve *http.Client para traer documentos remotos (datasets).
type Client struct {
	HTTP    *http.Client
	MaxBody int64
}

// New crea un Client con timeout razonable.
func New(timeout time.Duration) *Client {
	return NewWithTransport(timeout, nil)
}

// NewWithTransport permite inyectar un Transport (p.ej. para tests).
func NewWithTransport(timeout time.Duration, tr http.RoundTripper) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if tr == nil {
		tr = http.DefaultTransport
	}
	return &Client{
		HTTP: &http.Client{
			Timeout:   timeout,
			Transport: tr,
		},
		MaxBody: DefaultMaxBody,
	}
}

// HTTPError representa una respuesta no-2xx.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("http error: status=%d body=%s", e.StatusCode, e.Body)
}

// Document es el body crudo de un GET junto con su Content-Type.
type Document struct {
	Body        []byte
	ContentType string
}

// Get descarga rawURL (http/https absoluta). Retorna *HTTPError si el status no es 2xx.
func (c *Client) Get(ctx context.Context, rawURL string) (Document, error) {
	if c == nil || c.HTTP == nil {
		return Document{}, errors.New("httpclient: nil client")
	}

	u, err := url.ParseRequestURI(strings.TrimSpace(rawURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return Document{}, fmt.Errorf("httpclient: invalid url %q", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Document{}, fmt.Errorf("httpclient: new request: %w", err)
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9, */*;q=0.1")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return Document{}, fmt.Errorf("httpclient: do request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := readAtMost(resp.Body, c.MaxBody)
	if err != nil {
		return Document{}, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Document{}, &HTTPError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	return Document{
		Body:        raw,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}

// readAtMost lee hasta max bytes; si hay más, falla en vez de truncar.
func readAtMost(r io.Reader, max int64) ([]byte, error) {
	if max <= 0 {
		max = DefaultMaxBody
	}
	raw, err := io.ReadAll(io.LimitReader(r, max+1))
	if err != nil {
		return nil, err
	}
	if int64(len(raw)) > max {
		return nil, fmt.Errorf("%w: body exceeds %d bytes", ErrBodyTooLarge, max)
	}
	return raw, nil
}
