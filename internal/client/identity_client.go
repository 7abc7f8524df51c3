// internal/client/identity_client.go

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// IdentityClient talks to the external identity store that owns user records.
type IdentityClient interface {
	GetUser(ctx context.Context, userID string) (*UserInfo, error)
}

type identityClient struct {
	baseURL    string
	httpClient *http.Client
}

type UserInfo struct {
	UserID      string `json:"userId"`
	Username    string `json:"username"`
	ProfileName string `json:"profileName,omitempty"`
}

func NewIdentityClient(baseURL string, timeout time.Duration) IdentityClient {
	return &identityClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *identityClient) GetUser(ctx context.Context, userID string) (*UserInfo, error) {
	url := fmt.Sprintf("%s/users/%s", c.baseURL, userID)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("get user failed: status=%d, body=%s", resp.StatusCode, string(body))
	}

	var result UserInfo
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &result, nil
}
