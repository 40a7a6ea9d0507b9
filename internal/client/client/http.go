package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/candidatetracker/internal/candidate"
	"github.com/dmitrijs2005/candidatetracker/internal/client/models"
	"github.com/dmitrijs2005/candidatetracker/internal/common"
)

// HTTPClient talks JSON to the backend.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	tokens  TokenSource
}

// NewHTTPClient returns a client for baseURL. tokens may be nil for
// anonymous use; hc nil means a fresh http.Client.
func NewHTTPClient(baseURL string, hc *http.Client, tokens TokenSource) *HTTPClient {
	if hc == nil {
		hc = &http.Client{}
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      hc,
		tokens:  tokens,
	}
}

func (c *HTTPClient) Close() error {
	c.hc.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

func (c *HTTPClient) Register(ctx context.Context, email, password, role string) error {
	return c.do(ctx, http.MethodPost, "/register", credentials{Email: email, Password: password, Role: role}, nil)
}

type loginResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (models.User, string, error) {
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/login", credentials{Email: email, Password: password}, &resp); err != nil {
		return models.User{}, "", err
	}
	if resp.Token == "" {
		return models.User{}, "", fmt.Errorf("login response without token")
	}
	return resp.User, resp.Token, nil
}

func (c *HTTPClient) ListCandidates(ctx context.Context) ([]candidate.Candidate, error) {
	var list []candidate.Candidate
	if err := c.do(ctx, http.MethodGet, "/candidates", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) CreateCandidate(ctx context.Context, in candidate.Candidate) (candidate.Candidate, error) {
	var out candidate.Candidate
	if err := c.do(ctx, http.MethodPost, "/candidates", in, &out); err != nil {
		return candidate.Candidate{}, err
	}
	return out, nil
}

func (c *HTTPClient) MarkViewed(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, "/candidates/"+url.PathEscape(id)+"/mark-viewed", nil, nil)
}

func (c *HTTPClient) DeleteCandidate(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/candidates/"+url.PathEscape(id), nil, nil)
}

type uploadURLResponse struct {
	UploadURL string `json:"uploadUrl"`
}

func (c *HTTPClient) ResumeUploadURL(ctx context.Context, id string) (string, error) {
	var resp uploadURLResponse
	if err := c.do(ctx, http.MethodPost, "/candidates/"+url.PathEscape(id)+"/resume", nil, &resp); err != nil {
		return "", err
	}
	return resp.UploadURL, nil
}

func (c *HTTPClient) ConfirmResume(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, "/candidates/"+url.PathEscape(id)+"/resume", nil, nil)
}

// do sends one request. in is encoded as the JSON body when non-nil; out
// receives the decoded 2xx body when non-nil.
func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+tok)
		}
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func transportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

type errorBody struct {
	Detail json.RawMessage   `json:"detail"`
	Errors map[string]string `json:"errors"`
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var eb errorBody
	if json.Unmarshal(raw, &eb) == nil {
		var detail string
		if json.Unmarshal(eb.Detail, &detail) == nil {
			apiErr.Detail = detail
		}
		apiErr.Fields = eb.Errors
	}
	return apiErr
}
