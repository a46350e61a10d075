package paypal_test

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/dukamart/storefront/pkg/credentials"
	"github.com/dukamart/storefront/pkg/mocks"
	"github.com/dukamart/storefront/pkg/paypal"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testConfig() paypal.Config {
	return paypal.Config{
		BaseURL:      "https://api-m.sandbox.paypal.com",
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		Timeout:      30 * time.Second,
	}
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{StatusCode: status, Body: io.NopCloser(strings.NewReader(body))}
}

func TestGateway_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("exchanges client credentials", func(t *testing.T) {
		client := &mocks.HTTPClient{}
		gw := paypal.NewGateway(testConfig(), client, credentials.NewCache())

		client.On("PostForm", ctx, "https://api-m.sandbox.paypal.com/v1/oauth2/token",
			url.Values{"grant_type": {"client_credentials"}}, mock.Anything).
			Return(jsonResponse(http.StatusOK, `{"access_token":"token-1","expires_in":32400}`), nil).
			Once()

		token, err := gw.Authenticate(ctx)

		assert.NoError(t, err)
		assert.Equal(t, "token-1", token)

		token, err = gw.Authenticate(ctx)

		assert.NoError(t, err)
		assert.Equal(t, "token-1", token)
		client.AssertExpectations(t)
	})

	t.Run("rejected credentials", func(t *testing.T) {
		client := &mocks.HTTPClient{}
		gw := paypal.NewGateway(testConfig(), client, credentials.NewCache())

		client.On("PostForm", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(jsonResponse(http.StatusUnauthorized, `{}`), nil)

		_, err := gw.Authenticate(ctx)

		assert.ErrorIs(t, err, paypal.ErrAuthFailed)
	})
}

func TestGateway_CreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("created order", func(t *testing.T) {
		client := &mocks.HTTPClient{}
		gw := paypal.NewGateway(testConfig(), client, credentials.NewCache())

		body := `{"id": "5O190127TN364715T", "status": "CREATED"}`

		client.On("Post", ctx, "https://api-m.sandbox.paypal.com/v2/checkout/orders",
			mock.Anything, mock.Anything).
			Return(jsonResponse(http.StatusCreated, body), nil)

		order, err := gw.CreateOrder(ctx, decimal.RequireFromString("25.00"), "token-1")

		assert.NoError(t, err)
		assert.Equal(t, "5O190127TN364715T", order.ID)
		assert.Equal(t, "CREATED", order.Status)
		assert.False(t, order.Completed())
	})

	t.Run("rejected order", func(t *testing.T) {
		client := &mocks.HTTPClient{}
		gw := paypal.NewGateway(testConfig(), client, credentials.NewCache())

		client.On("Post", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(jsonResponse(http.StatusUnprocessableEntity, `{}`), nil)

		_, err := gw.CreateOrder(ctx, decimal.RequireFromString("25.00"), "token-1")

		assert.ErrorIs(t, err, paypal.ErrRequestRejected)
	})
}

func TestGateway_CaptureOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("completed capture", func(t *testing.T) {
		client := &mocks.HTTPClient{}
		gw := paypal.NewGateway(testConfig(), client, credentials.NewCache())

		body := `{
			"id": "5O190127TN364715T",
			"status": "COMPLETED",
			"purchase_units": [{"amount": {"currency_code": "USD", "value": "25.00"}}],
			"payer": {"payer_id": "PAYER1", "email_address": "buyer@example.com"}
		}`

		client.On("Post", ctx, "https://api-m.sandbox.paypal.com/v2/checkout/orders/5O190127TN364715T/capture",
			mock.Anything, mock.Anything).
			Return(jsonResponse(http.StatusCreated, body), nil)

		order, err := gw.CaptureOrder(ctx, "5O190127TN364715T", "token-1")

		assert.NoError(t, err)
		assert.True(t, order.Completed())
		assert.Equal(t, "PAYER1", order.Payer.PayerID)
		assert.Equal(t, "25.00", order.PurchaseUnits[0].Amount.Value)
	})

	t.Run("capture answered with 200", func(t *testing.T) {
		client := &mocks.HTTPClient{}
		gw := paypal.NewGateway(testConfig(), client, credentials.NewCache())

		client.On("Post", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(jsonResponse(http.StatusOK, `{"id": "5O190127TN364715T", "status": "COMPLETED"}`), nil)

		order, err := gw.CaptureOrder(ctx, "5O190127TN364715T", "token-1")

		assert.NoError(t, err)
		assert.True(t, order.Completed())
	})
}
