package mpesa_test

import (
	"testing"

	"github.com/dukamart/storefront/pkg/mpesa"
	"github.com/stretchr/testify/assert"
)

func TestParseCallback(t *testing.T) {
	t.Run("successful payment", func(t *testing.T) {
		payload := []byte(`{
			"Body": {
				"stkCallback": {
					"MerchantRequestID": "29115-34620561-1",
					"CheckoutRequestID": "ws_CO_191220191020363925",
					"ResultCode": 0,
					"ResultDesc": "The service request is processed successfully.",
					"CallbackMetadata": {
						"Item": [
							{"Name": "Amount", "Value": 1.00},
							{"Name": "MpesaReceiptNumber", "Value": "NLJ7RT61SV"},
							{"Name": "PhoneNumber", "Value": 254708374149}
						]
					}
				}
			}
		}`)

		result, err := mpesa.ParseCallback(payload)

		assert.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "ws_CO_191220191020363925", result.CorrelationID)
		assert.Equal(t, "29115-34620561-1", result.SecondaryID)
		assert.Equal(t, "NLJ7RT61SV", result.ReceiptNumber)
		assert.Equal(t, "The service request is processed successfully.", result.Description)
	})

	t.Run("cancelled by user", func(t *testing.T) {
		payload := []byte(`{
			"Body": {
				"stkCallback": {
					"MerchantRequestID": "29115-34620561-1",
					"CheckoutRequestID": "ws_CO_191220191020363925",
					"ResultCode": 1032,
					"ResultDesc": "Request cancelled by user."
				}
			}
		}`)

		result, err := mpesa.ParseCallback(payload)

		assert.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, "ws_CO_191220191020363925", result.CorrelationID)
		assert.Equal(t, "Request cancelled by user.", result.Description)
		assert.Empty(t, result.ReceiptNumber)
	})

	t.Run("missing checkout request id", func(t *testing.T) {
		payload := []byte(`{"Body": {"stkCallback": {"ResultCode": 0}}}`)

		_, err := mpesa.ParseCallback(payload)

		assert.ErrorIs(t, err, mpesa.ErrMalformedCallback)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := mpesa.ParseCallback([]byte(`not json`))

		assert.ErrorIs(t, err, mpesa.ErrMalformedCallback)
	})

	t.Run("non-string receipt value ignored", func(t *testing.T) {
		payload := []byte(`{
			"Body": {
				"stkCallback": {
					"CheckoutRequestID": "ws_CO_1",
					"ResultCode": 0,
					"CallbackMetadata": {
						"Item": [{"Name": "MpesaReceiptNumber", "Value": 12345}]
					}
				}
			}
		}`)

		result, err := mpesa.ParseCallback(payload)

		assert.NoError(t, err)
		assert.True(t, result.Success)
		assert.Empty(t, result.ReceiptNumber)
	})
}
