package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ukeSJTU/termoj/types"
)

// DefaultBaseURL is the public judge API.
const DefaultBaseURL = "https://acm.sjtu.edu.cn/OnlineJudge/api/v1"

// responses larger than this are judged nonsense and truncated
const maxBodySize = 4 << 20

// Client talks to the judge's REST API. Construct one with NewClient and
// pass it around explicitly; methods are safe for concurrent use. The
// client never retries on its own, so callers keep full control of retry
// policy.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Token      func() string // returns the bearer token, or "" when logged out
	UserAgent  string
	Dump       bool // log full requests and responses
	Log        *logrus.Logger
}

// NewClient builds a client for the given base URL ("" means the public
// judge). token may be nil for anonymous access.
func NewClient(baseURL string, token func() string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
		Token:      token,
		UserAgent:  "termoj/" + types.CurrentVersion.Version,
		Log:        logrus.StandardLogger(),
	}
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, download interface{}) error {
	return c.do(ctx, http.MethodGet, path, params, nil, download)
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values, download interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, form, download)
}

// do performs one API call. params become the query string, a non-nil
// form is sent urlencoded, and a non-nil download is filled from the
// JSON response body. A 204 counts as success with no body.
func (c *Client) do(ctx context.Context, method, path string, params, form url.Values, download interface{}) error {
	if !strings.HasPrefix(path, "/") {
		panic(fmt.Sprintf("api request path must start with /: %s", path))
	}
	target := c.BaseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return &Error{Kind: KindTransient, Message: "building request", Err: err}
	}

	// set the headers
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if c.Token != nil {
		if token := c.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	c.dumpRequest(req, form)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		// a cancelled context is the caller's doing, not the network's
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &Error{Kind: KindTransient, Message: fmt.Sprintf("request to %s failed", c.BaseURL), Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &Error{Kind: KindTransient, Status: resp.StatusCode, Message: "reading response", Err: err}
	}
	c.dumpResponse(resp, raw)

	if err := classifyStatus(resp.StatusCode, raw); err != nil {
		return err
	}

	// parse the result if any
	if download != nil && resp.StatusCode != http.StatusNoContent && len(raw) > 0 {
		if err := json.Unmarshal(raw, download); err != nil {
			return &Error{Kind: KindMalformed, Status: resp.StatusCode, Message: "decoding response", Err: err}
		}
	}
	return nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) logger() *logrus.Logger {
	if c.Log != nil {
		return c.Log
	}
	return logrus.StandardLogger()
}

func (c *Client) dumpRequest(req *http.Request, form url.Values) {
	if !c.Dump {
		return
	}
	entry := c.logger().WithFields(logrus.Fields{
		"method": req.Method,
		"url":    req.URL.String(),
	})
	if form != nil {
		entry = entry.WithField("form", form.Encode())
	}
	entry.Debug("api request")
}

func (c *Client) dumpResponse(resp *http.Response, body []byte) {
	if !c.Dump {
		return
	}
	c.logger().WithFields(logrus.Fields{
		"status": resp.Status,
		"bytes":  len(body),
	}).Debugf("api response: %s", body)
}

// classifyStatus maps an HTTP status onto the error taxonomy. The judge
// reports auth failures as 401 or 403, unknown resources as 404, and
// overload as 429 or a 5xx.
func classifyStatus(status int, body []byte) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &Error{Kind: KindUnauthorized, Status: status,
			Message: serverMessage(body, "authentication failed, please login first")}
	case status == http.StatusNotFound:
		return &Error{Kind: KindNotFound, Status: status,
			Message: serverMessage(body, "not found")}
	case status == http.StatusRequestTimeout || status == http.StatusTooManyRequests || status >= 500:
		return &Error{Kind: KindTransient, Status: status,
			Message: serverMessage(body, fmt.Sprintf("server error: %s", http.StatusText(status)))}
	default:
		return &Error{Kind: KindMalformed, Status: status,
			Message: serverMessage(body, fmt.Sprintf("unexpected status: %s", http.StatusText(status)))}
	}
}

// serverMessage pulls the judge's own error message out of a JSON error
// body, falling back to the given text.
func serverMessage(body []byte, fallback string) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(body, &payload) == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return fallback
}

// nextCursor pulls the cursor query parameter out of the judge's
// next-page URL, or returns "" when there are no more pages.
func nextCursor(next string) string {
	if next == "" {
		return ""
	}
	u, err := url.Parse(next)
	if err != nil {
		return ""
	}
	return u.Query().Get("cursor")
}
