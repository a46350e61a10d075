package mpesa

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/dukamart/storefront/pkg/credentials"
	"github.com/dukamart/storefront/pkg/httpclient"
	"github.com/shopspring/decimal"
)

const (
	tokenEndpoint   = "/oauth/v1/generate?grant_type=client_credentials"
	stkPushEndpoint = "/mpesa/stkpush/v1/processrequest"

	transactionType = "CustomerPayBillOnline"
	timestampFormat = "20060102150405"
	tokenCacheKey   = "mpesa"
	defaultTokenTTL = 3599 * time.Second
)

type Gateway interface {
	Authenticate(ctx context.Context) (string, error)
	BuildSTKPushRequest(phone string, amount decimal.Decimal, reference string) STKPushRequest
	SendSTKPush(ctx context.Context, request STKPushRequest, token string) (STKPushResponse, error)
}

type gateway struct {
	cfg    Config
	client httpclient.HTTPClient
	tokens credentials.Cache
	now    func() time.Time
}

func NewGateway(cfg Config, client httpclient.HTTPClient, tokens credentials.Cache) Gateway {
	return &gateway{cfg: cfg, client: client, tokens: tokens, now: time.Now}
}

func (g *gateway) Authenticate(ctx context.Context) (string, error) {
	if token, ok := g.tokens.Get(tokenCacheKey); ok {
		return token, nil
	}

	encoded := base64.StdEncoding.EncodeToString([]byte(g.cfg.ConsumerKey + ":" + g.cfg.ConsumerSecret))
	headers := map[string]string{"Authorization": "Basic " + encoded}

	resp, err := g.client.Get(ctx, g.cfg.BaseURL+tokenEndpoint, headers)
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

	g.tokens.Put(tokenCacheKey, token.AccessToken, tokenTTL(token.ExpiresIn))

	return token.AccessToken, nil
}

func (g *gateway) BuildSTKPushRequest(phone string, amount decimal.Decimal, reference string) STKPushRequest {
	timestamp := g.now().Format(timestampFormat)

	return STKPushRequest{
		BusinessShortCode: g.cfg.ShortCode,
		Password:          Password(g.cfg.ShortCode, g.cfg.Passkey, timestamp),
		Timestamp:         timestamp,
		TransactionType:   transactionType,
		Amount:            amount.InexactFloat64(),
		PartyA:            phone,
		PartyB:            g.cfg.ShortCode,
		PhoneNumber:       phone,
		CallBackURL:       g.cfg.CallbackURL,
		AccountReference:  reference,
		TransactionDesc:   "Payment for goods",
	}
}

func (g *gateway) SendSTKPush(ctx context.Context, request STKPushRequest, token string) (STKPushResponse, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(request); err != nil {
		return STKPushResponse{}, fmt.Errorf("encoding error: %w", err)
	}

	headers := map[string]string{
		"Authorization": "Bearer " + token,
		"Content-Type":  "application/json",
	}

	resp, err := g.client.Post(ctx, g.cfg.BaseURL+stkPushEndpoint, &buf, headers)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return STKPushResponse{}, ErrTimeout
		}

		return STKPushResponse{}, ErrNetwork
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return STKPushResponse{}, ErrRequestRejected
	}

	var response STKPushResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return STKPushResponse{}, fmt.Errorf("decoding error: %w", err)
	}

	return response, nil
}

// Password derives the Daraja STK password: base64 of shortcode, passkey and
// timestamp concatenated.
func Password(shortCode, passkey, timestamp string) string {
	return base64.StdEncoding.EncodeToString([]byte(shortCode + passkey + timestamp))
}

func tokenTTL(expiresIn string) time.Duration {
	seconds, err := strconv.Atoi(expiresIn)
	if err != nil || seconds <= 0 {
		return defaultTokenTTL
	}

	return time.Duration(seconds) * time.Second
}
