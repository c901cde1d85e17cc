package scenario

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const apiKeyHeader = "X-API-KEY"

var httpClient = &http.Client{Timeout: 15 * time.Second}

// errorBody is the error envelope both services answer with.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Call performs one JSON request. A nil out discards the body.
// It returns the status code and, for non-2xx answers, the decoded error code.
func Call(ctx context.Context, method, url, apiKey string, in, out any) (int, string, error) {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return 0, "", fmt.Errorf("encode %s %s: %w", method, url, err)
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return 0, "", fmt.Errorf("build %s %s: %w", method, url, err)
	}
	if apiKey != "" {
		req.Header.Set(apiKeyHeader, apiKey)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, "", fmt.Errorf("read %s %s: %w", method, url, err)
	}
	if resp.StatusCode >= 300 {
		var eb errorBody
		_ = json.Unmarshal(raw, &eb)
		return resp.StatusCode, eb.Error.Code, nil
	}
	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return resp.StatusCode, "", fmt.Errorf("decode %s %s: %w", method, url, err)
		}
	}
	return resp.StatusCode, "", nil
}

// Expect performs the call and fails unless it answers with the wanted status and error code.
func Expect(ctx context.Context, call, method, url, apiKey string, in, out any, want int, wantCode string) error {
	status, code, err := Call(ctx, method, url, apiKey, in, out)
	if err != nil {
		return err
	}
	if status != want || (wantCode != "" && code != wantCode) {
		return &UnexpectedResponseError{Call: call, StatusCode: status, Want: want, Code: code, WantCode: wantCode}
	}
	return nil
}
