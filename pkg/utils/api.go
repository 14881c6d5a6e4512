package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

type API struct {
	client  *http.Client
	baseURL string
}

func NewAPI(baseURL string, client *http.Client) *API {
	if client == nil {
		client = http.DefaultClient
	}
	return &API{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

func (a *API) BaseURL() string {
	return a.baseURL
}

// Post sends body to path. The caller owns the returned response body.
func (a *API) Post(ctx context.Context, path, contentType string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "image/*, application/json")
	return a.client.Do(req)
}

func (a *API) Get(ctx context.Context, path string, params url.Values, v any) error {
	if params != nil {
		path += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s%s", a.baseURL, path), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("bad status: %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}
