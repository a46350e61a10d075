package airtel_test

import (
	"testing"

	"github.com/dukamart/storefront/pkg/airtel"
	"github.com/stretchr/testify/assert"
)

func TestParseCallback(t *testing.T) {
	t.Run("successful payment", func(t *testing.T) {
		payload := []byte(`{
			"data": {"id": "AIRTEL-TX-1"},
			"status": {"code": "200", "message": "Success", "success": true}
		}`)

		result, err := airtel.ParseCallback(payload)

		assert.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "AIRTEL-TX-1", result.CorrelationID)
		assert.Equal(t, "Success", result.Description)
	})

	t.Run("failed payment", func(t *testing.T) {
		payload := []byte(`{
			"data": {"id": "AIRTEL-TX-2"},
			"status": {"code": "403", "message": "Insufficient balance"}
		}`)

		result, err := airtel.ParseCallback(payload)

		assert.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, "Insufficient balance", result.Description)
	})

	t.Run("id nested under transaction", func(t *testing.T) {
		payload := []byte(`{
			"transaction": {"id": "AIRTEL-TX-3"},
			"status": {"code": "200"}
		}`)

		result, err := airtel.ParseCallback(payload)

		assert.NoError(t, err)
		assert.Equal(t, "AIRTEL-TX-3", result.CorrelationID)
		assert.Equal(t, "No status message", result.Description)
	})

	t.Run("missing transaction id", func(t *testing.T) {
		payload := []byte(`{"status": {"code": "200"}}`)

		_, err := airtel.ParseCallback(payload)

		assert.ErrorIs(t, err, airtel.ErrMalformedCallback)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := airtel.ParseCallback([]byte(`<xml/>`))

		assert.ErrorIs(t, err, airtel.ErrMalformedCallback)
	})
}
