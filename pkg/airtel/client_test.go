package airtel_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/dukamart/storefront/pkg/airtel"
	"github.com/dukamart/storefront/pkg/credentials"
	"github.com/dukamart/storefront/pkg/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testConfig() airtel.Config {
	return airtel.Config{
		BaseURL:      "https://openapiuat.airtel.africa",
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

	t.Run("fetches and caches token", func(t *testing.T) {
		client := &mocks.HTTPClient{}
		gw := airtel.NewGateway(testConfig(), client, credentials.NewCache())

		client.On("Post", ctx, "https://openapiuat.airtel.africa/auth/oauth2/token",
			mock.Anything, mock.Anything).
			Return(jsonResponse(http.StatusOK, `{"access_token":"token-1","expires_in":180,"token_type":"bearer"}`), nil).
			Once()

		token, err := gw.Authenticate(ctx)

		assert.NoError(t, err)
		assert.Equal(t, "token-1", token)

		token, err = gw.Authenticate(ctx)

		assert.NoError(t, err)
		assert.Equal(t, "token-1", token)
		client.AssertExpectations(t)
	})

	t.Run("empty token rejected", func(t *testing.T) {
		client := &mocks.HTTPClient{}
		gw := airtel.NewGateway(testConfig(), client, credentials.NewCache())

		client.On("Post", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(jsonResponse(http.StatusOK, `{}`), nil)

		_, err := gw.Authenticate(ctx)

		assert.ErrorIs(t, err, airtel.ErrAuthFailed)
	})

	t.Run("network failure", func(t *testing.T) {
		client := &mocks.HTTPClient{}
		gw := airtel.NewGateway(testConfig(), client, credentials.NewCache())

		client.On("Post", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("connection reset"))

		_, err := gw.Authenticate(ctx)

		assert.ErrorIs(t, err, airtel.ErrNetwork)
	})
}

func TestGateway_BuildPushRequest(t *testing.T) {
	gw := airtel.NewGateway(testConfig(), &mocks.HTTPClient{}, credentials.NewCache())

	request := gw.BuildPushRequest("254733000000", decimal.RequireFromString("99.50"), "1700000000000-7")

	assert.Equal(t, "1700000000000-7", request.Reference)
	assert.Equal(t, "1700000000000-7", request.Transaction.ID)
	assert.Equal(t, "99.5", request.Transaction.Amount)
	assert.Equal(t, "254733000000", request.Subscriber.MSISDN)
	assert.Equal(t, "KE", request.Subscriber.Country)
	assert.Equal(t, "KES", request.Transaction.Currency)
	assert.Equal(t, "merchant", request.Transaction.Type)
}

func TestGateway_SendPush(t *testing.T) {
	ctx := context.Background()

	t.Run("accepted push", func(t *testing.T) {
		client := &mocks.HTTPClient{}
		gw := airtel.NewGateway(testConfig(), client, credentials.NewCache())

		body := `{
			"data": {"id": "AIRTEL-TX-1"},
			"status": {"code": "200", "message": "SUCCESS", "success": true}
		}`

		client.On("Post", ctx, "https://openapiuat.airtel.africa/merchant/v1/payments/",
			mock.Anything, mock.Anything).
			Return(jsonResponse(http.StatusOK, body), nil)

		response, err := gw.SendPush(ctx, airtel.PushRequest{}, "token-1")

		assert.NoError(t, err)
		assert.Equal(t, "AIRTEL-TX-1", response.Data.ID)
		assert.True(t, response.Status.Success)
	})

	t.Run("rejected push", func(t *testing.T) {
		client := &mocks.HTTPClient{}
		gw := airtel.NewGateway(testConfig(), client, credentials.NewCache())

		client.On("Post", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(jsonResponse(http.StatusForbidden, `{}`), nil)

		_, err := gw.SendPush(ctx, airtel.PushRequest{}, "token-1")

		assert.ErrorIs(t, err, airtel.ErrRequestRejected)
	})
}
