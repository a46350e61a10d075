package airtel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dukamart/storefront/pkg/credentials"
	"github.com/dukamart/storefront/pkg/httpclient"
	"github.com/shopspring/decimal"
)

const (
	tokenEndpoint    = "/auth/oauth2/token"
	paymentsEndpoint = "/merchant/v1/payments/"

	countryCode     = "KE"
	currencyCode    = "KES"
	transactionType = "merchant"
	tokenCacheKey   = "airtel"
	defaultTokenTTL = time.Hour
)

type Gateway interface {
	Authenticate(ctx context.Context) (string, error)
	BuildPushRequest(phone string, amount decimal.Decimal, reference string) PushRequest
	SendPush(ctx context.Context, request PushRequest, token string) (PushResponse, error)
}

type gateway struct {
	cfg    Config
	client httpclient.HTTPClient
	tokens credentials.Cache
}

func NewGateway(cfg Config, client httpclient.HTTPClient, tokens credentials.Cache) Gateway {
	return &gateway{cfg: cfg, client: client, tokens: tokens}
}

func (g *gateway) Authenticate(ctx context.Context) (string, error) {
	if token, ok := g.tokens.Get(tokenCacheKey); ok {
		return token, nil
	}

	body := tokenRequest{
		ClientID:     g.cfg.ClientID,
		ClientSecret: g.cfg.ClientSecret,
		GrantType:    "client_credentials",
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return "", fmt.Errorf("encoding error: %w", err)
	}

	headers := map[string]string{"Content-Type": "application/json"}

	resp, err := g.client.Post(ctx, g.cfg.BaseURL+tokenEndpoint, &buf, headers)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return "", ErrTimeout
		}

		return "", ErrNetwork
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", ErrAuthFailed
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("decoding error: %w", err)
	}

	if token.AccessToken == "" {
		return "", ErrAuthFailed
	}

	ttl := defaultTokenTTL
	if token.ExpiresIn > 0 {
		ttl = time.Duration(token.ExpiresIn) * time.Second
	}

	g.tokens.Put(tokenCacheKey, token.AccessToken, ttl)

	return token.AccessToken, nil
}

func (g *gateway) BuildPushRequest(phone string, amount decimal.Decimal, reference string) PushRequest {
	return PushRequest{
		Reference: reference,
		Subscriber: Subscriber{
			Country:  countryCode,
			Currency: currencyCode,
			MSISDN:   phone,
		},
		Transaction: Transaction{
			Amount:   amount.String(),
			Country:  countryCode,
			Currency: currencyCode,
			ID:       reference,
			Type:     transactionType,
		},
	}
}

func (g *gateway) SendPush(ctx context.Context, request PushRequest, token string) (PushResponse, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(request); err != nil {
		return PushResponse{}, fmt.Errorf("encoding error: %w", err)
	}

	headers := map[string]string{
		"Authorization": "Bearer " + token,
		"Content-Type":  "application/json",
		"X-Country":     countryCode,
		"X-Currency":    currencyCode,
	}

	resp, err := g.client.Post(ctx, g.cfg.BaseURL+paymentsEndpoint, &buf, headers)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return PushResponse{}, ErrTimeout
		}

		return PushResponse{}, ErrNetwork
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return PushResponse{}, ErrRequestRejected
	}

	var response PushResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return PushResponse{}, fmt.Errorf("decoding error: %w", err)
	}

	return response, nil
}
