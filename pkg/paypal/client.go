package paypal

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/dukamart/storefront/pkg/credentials"
	"github.com/dukamart/storefront/pkg/httpclient"
	"github.com/shopspring/decimal"
)

const (
	tokenEndpoint  = "/v1/oauth2/token"
	ordersEndpoint = "/v2/checkout/orders"

	currencyCode    = "USD"
	tokenCacheKey   = "paypal"
	defaultTokenTTL = 8 * time.Hour
)

type Gateway interface {
	Authenticate(ctx context.Context) (string, error)
	CreateOrder(ctx context.Context, amount decimal.Decimal, token string) (Order, error)
	CaptureOrder(ctx context.Context, orderID string, token string) (Order, error)
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

	encoded := base64.StdEncoding.EncodeToString([]byte(g.cfg.ClientID + ":" + g.cfg.ClientSecret))
	headers := map[string]string{"Authorization": "Basic " + encoded}
	form := url.Values{"grant_type": {"client_credentials"}}

	resp, err := g.client.PostForm(ctx, g.cfg.BaseURL+tokenEndpoint, form, headers)
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

func (g *gateway) CreateOrder(ctx context.Context, amount decimal.Decimal, token string) (Order, error) {
	request := orderRequest{
		Intent: "CAPTURE",
		PurchaseUnits: []PurchaseUnit{
			{Amount: Amount{CurrencyCode: currencyCode, Value: amount.StringFixed(2)}},
		},
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(request); err != nil {
		return Order{}, fmt.Errorf("encoding error: %w", err)
	}

	return g.post(ctx, g.cfg.BaseURL+ordersEndpoint, &buf, token, http.StatusCreated)
}

func (g *gateway) CaptureOrder(ctx context.Context, orderID string, token string) (Order, error) {
	endpoint := fmt.Sprintf("%s%s/%s/capture", g.cfg.BaseURL, ordersEndpoint, orderID)
	return g.post(ctx, endpoint, bytes.NewBufferString("{}"), token, http.StatusCreated)
}

func (g *gateway) post(ctx context.Context, endpoint string, body *bytes.Buffer, token string, accepted int) (Order, error) {
	headers := map[string]string{
		"Authorization": "Bearer " + token,
		"Content-Type":  "application/json",
	}

	resp, err := g.client.Post(ctx, endpoint, body, headers)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return Order{}, ErrTimeout
		}

		return Order{}, ErrNetwork
	}

	defer resp.Body.Close()

	if resp.StatusCode != accepted && resp.StatusCode != http.StatusOK {
		return Order{}, ErrRequestRejected
	}

	var order Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return Order{}, fmt.Errorf("decoding error: %w", err)
	}

	return order, nil
}
