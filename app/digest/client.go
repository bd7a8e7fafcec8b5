package digest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

// chatClient talks to an OpenAI-compatible chat completions endpoint.
// Provider resolution prefers Zhipu when its key is present, then falls
// back to the OpenAI variables.
type chatClient struct {
	httpClient *http.Client
	apiKey     string
	apiBase    string
	model      string
}

func newChatClient() *chatClient {
	client := &chatClient{
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}

	if key := os.Getenv("ZHIPU_API_KEY"); key != "" {
		client.apiKey = key
		client.apiBase = envOr("ZHIPU_API_BASE", "https://open.bigmodel.cn/api/paas/v4")
		client.model = envOr("ZHIPU_MODEL", "glm-4.7-flash")
		return client
	}

	client.apiKey = os.Getenv("OPENAI_API_KEY")
	client.apiBase = envOr("OPENAI_API_BASE", "https://api.openai.com/v1")
	client.model = envOr("OPENAI_MODEL", "gpt-4o-mini")
	return client
}

func (c *chatClient) enabled() bool {
	return c.apiKey != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *chatClient) complete(system, user string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode chat request: %w", err)
	}

	url := strings.TrimRight(c.apiBase, "/") + "/chat/completions"
	req, err := http.NewRequest("POST", url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected chat API status: %d", resp.StatusCode)
	}

	var decoded chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("failed to decode chat response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return "", fmt.Errorf("chat response contains no choices")
	}

	return strings.TrimSpace(decoded.Choices[0].Message.Content), nil
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
