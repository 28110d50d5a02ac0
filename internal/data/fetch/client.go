package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/bytedance/sonic"

	"github.com/convoview/go-convo-monitor/internal/core/model"
	"github.com/convoview/go-convo-monitor/internal/util"
)

// Client is a read-only client for the AudioHook server's conversation API.
type Client struct {
	endpoint string
	http     *http.Client

	mu     sync.RWMutex
	apiKey string
}

// apiError is the error body the server returns on failed requests.
type apiError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// NewClient creates a new Client. The endpoint is the server base URL
// without a trailing slash, e.g. "https://monitor.example.com".
func NewClient(endpoint, apiKey string, timeout time.Duration) *Client {
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		apiKey:   apiKey,
		http:     &http.Client{Timeout: timeout},
	}
}

// SetAPIKey replaces the key sent on subsequent requests, used when the
// config file is reloaded while watching.
func (c *Client) SetAPIKey(apiKey string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apiKey = apiKey
}

func (c *Client) currentAPIKey() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.apiKey
}

// Conversations fetches the full conversation list. When activeOnly is set
// the server filters to conversations whose capture is still in progress.
func (c *Client) Conversations(ctx context.Context, activeOnly bool) ([]model.Conversation, error) {
	query := url.Values{}
	if activeOnly {
		query.Set("active", "true")
	}

	body, err := c.get(ctx, "/api/conversations", query)
	if err != nil {
		return nil, err
	}

	var resp model.ConversationsResponse
	if err := sonic.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode conversations response: %w", err)
	}

	util.LogDebugf("Fetched %d conversations", len(resp.Conversations))
	return resp.Conversations, nil
}

// Conversation fetches a single conversation by id.
func (c *Client) Conversation(ctx context.Context, id string) (*model.Conversation, error) {
	body, err := c.get(ctx, "/api/conversation/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	var conv model.Conversation
	if err := sonic.Unmarshal(body, &conv); err != nil {
		return nil, fmt.Errorf("failed to decode conversation %s: %w", id, err)
	}
	return &conv, nil
}

// get performs an authenticated GET and returns the response body. The API
// key travels both as the ?key= query parameter and the X-Api-Key header;
// the server accepts either form.
func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	apiKey := c.currentAPIKey()
	if query == nil {
		query = url.Values{}
	}
	query.Set("key", apiKey)

	reqURL := c.endpoint + path + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("X-Api-Key", apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", path, err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if err := sonic.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Code != "" {
			return nil, fmt.Errorf("server rejected %s: %s (%s)", path, apiErr.Error.Message, apiErr.Error.Code)
		}
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}

	return body, nil
}
