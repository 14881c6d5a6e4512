package swapper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/kerbaras/faceswap/pkg/data"
	"github.com/kerbaras/faceswap/pkg/utils"
)

const (
	SwapPath = "/swap_faces/"

	SourceField = "source_image"
	TargetField = "target_image"

	defaultResultType = "image/jpeg"
	defaultResultName = "swapped_result.jpg"
)

type Client struct {
	api *utils.API
}

type Option func(*clientOptions)

type clientOptions struct {
	httpClient *http.Client
	timeout    time.Duration
}

// WithHTTPClient replaces the transport used for requests.
func WithHTTPClient(c *http.Client) Option {
	return func(o *clientOptions) { o.httpClient = c }
}

// WithTimeout bounds each request at the transport level. Zero means no limit.
func WithTimeout(d time.Duration) Option {
	return func(o *clientOptions) { o.timeout = d }
}

func NewClient(baseURL string, opts ...Option) *Client {
	var o clientOptions
	for _, opt := range opts {
		opt(&o)
	}
	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if o.timeout > 0 {
		c := *httpClient
		c.Timeout = o.timeout
		httpClient = &c
	}
	return &Client{api: utils.NewAPI(baseURL, httpClient)}
}

func (c *Client) Endpoint() string {
	return c.api.BaseURL() + SwapPath
}

// Swap uploads both images in a single request. A non-2xx reply with a readable detail
// comes back as *data.SwapError; anything else that goes wrong is a plain error.
func (c *Client) Swap(ctx context.Context, request data.SwapRequest) (*data.SwapResult, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	body, contentType, err := encodeForm(request)
	if err != nil {
		return nil, fmt.Errorf("failed to encode form: %w", err)
	}

	resp, err := c.api.Post(ctx, SwapPath, contentType, body)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeError(resp)
	}

	image, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read swapped image: %w", err)
	}

	result := &data.SwapResult{
		Image:       image,
		ContentType: resp.Header.Get("Content-Type"),
		Filename:    defaultResultName,
	}
	if result.ContentType == "" {
		result.ContentType = defaultResultType
	}
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil && params["filename"] != "" {
		result.Filename = params["filename"]
	}
	return result, nil
}

// Ping checks that the service is up and advertises the swap route.
func (c *Client) Ping(ctx context.Context) error {
	var schema struct {
		Paths map[string]json.RawMessage `json:"paths"`
	}
	if err := c.api.Get(ctx, "/openapi.json", nil, &schema); err != nil {
		return fmt.Errorf("service unreachable: %w", err)
	}
	if _, ok := schema.Paths[SwapPath]; !ok {
		return fmt.Errorf("service at %s does not expose %s", c.api.BaseURL(), SwapPath)
	}
	return nil
}

func encodeForm(request data.SwapRequest) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := writeFilePart(w, SourceField, request.Source); err != nil {
		return nil, "", err
	}
	if err := writeFilePart(w, TargetField, request.Target); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func writeFilePart(w *multipart.Writer, field string, file *data.SelectedFile) error {
	name := file.Name
	if name == "" {
		name = field
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(field), quoteEscaper.Replace(name)))
	contentType := file.MimeType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h.Set("Content-Type", contentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return fmt.Errorf("failed to create %s part: %w", field, err)
	}
	if _, err := part.Write(file.Content); err != nil {
		return fmt.Errorf("failed to write %s part: %w", field, err)
	}
	return nil
}

// decodeError reads the {"detail": ...} body the service sends on failure.
func decodeError(resp *http.Response) error {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return fmt.Errorf("malformed error response (%s): %w", resp.Status, err)
	}
	detail, err := detailText(payload.Detail)
	if err != nil {
		return fmt.Errorf("malformed error detail (%s): %w", resp.Status, err)
	}
	return &data.SwapError{StatusCode: resp.StatusCode, Detail: detail}
}

func detailText(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", fmt.Errorf("missing detail field")
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text, nil
	}

	// request validation errors carry a list of {"loc": [...], "msg": "..."}
	var issues []struct {
		Loc []any  `json:"loc"`
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(raw, &issues); err != nil {
		return "", err
	}
	msgs := make([]string, 0, len(issues))
	for _, issue := range issues {
		if issue.Msg == "" {
			continue
		}
		if len(issue.Loc) > 0 {
			msgs = append(msgs, fmt.Sprintf("%v: %s", issue.Loc[len(issue.Loc)-1], issue.Msg))
		} else {
			msgs = append(msgs, issue.Msg)
		}
	}
	if len(msgs) == 0 {
		return "", fmt.Errorf("empty detail list")
	}
	return strings.Join(msgs, "; "), nil
}
