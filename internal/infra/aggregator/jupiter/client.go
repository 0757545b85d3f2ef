// Package jupiter implements the swap aggregator interface against the
// Jupiter v6 swap API. The quote is forwarded untouched; Jupiter builds and
// returns the unsigned transaction that executes it.
package jupiter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/solvault/solvault/internal/swap"
)

// swapRequest is the body of a POST {endpoint}/swap call.
type swapRequest struct {
	QuoteResponse    json.RawMessage `json:"quoteResponse"`
	UserPublicKey    string          `json:"userPublicKey"`
	WrapAndUnwrapSol bool            `json:"wrapAndUnwrapSol"`
}

// swapResponse is the subset of Jupiter's response the relay needs.
type swapResponse struct {
	SwapTransaction string `json:"swapTransaction"`
}

// client calls the Jupiter swap endpoint over a retrying HTTP client.
type client struct {
	httpClient *retryablehttp.Client
	endpoint   string
}

var _ swap.Aggregator = (*client)(nil)

// NewClient creates a Jupiter client for the given API endpoint
// (e.g. "https://quote-api.jup.ag/v6").
func NewClient(httpClient *retryablehttp.Client, endpoint string) *client {
	return &client{
		httpClient: httpClient,
		endpoint:   strings.TrimRight(endpoint, "/"),
	}
}

// SwapTransaction exchanges a quote for a base64-encoded unsigned transaction
// executing it for user. Native SOL legs are wrapped and unwrapped
// automatically so the wallet never holds wrapped SOL.
func (c *client) SwapTransaction(ctx context.Context, quote json.RawMessage, user solana.PublicKey) (string, error) {
	body, err := json.Marshal(swapRequest{
		QuoteResponse:    quote,
		UserPublicKey:    user.String(),
		WrapAndUnwrapSol: true,
	})
	if err != nil {
		return "", fmt.Errorf("encoding swap request: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/swap", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building swap request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling swap endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("swap endpoint returned %d: %s", resp.StatusCode, payload)
	}

	var parsed swapResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decoding swap response: %w", err)
	}
	if parsed.SwapTransaction == "" {
		return "", fmt.Errorf("swap response missing transaction")
	}

	return parsed.SwapTransaction, nil
}
