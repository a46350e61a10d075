package mpesa

import "encoding/json"

const receiptItemName = "MpesaReceiptNumber"

// CallbackResult is the normalized outcome of an STK push notification.
type CallbackResult struct {
	CorrelationID string
	SecondaryID   string
	ReceiptNumber string
	Description   string
	Success       bool
}

type callbackEnvelope struct {
	Body struct {
		STKCallback struct {
			MerchantRequestID string `json:"MerchantRequestID"`
			CheckoutRequestID string `json:"CheckoutRequestID"`
			ResultCode        int    `json:"ResultCode"`
			ResultDesc        string `json:"ResultDesc"`
			CallbackMetadata  struct {
				Item []metadataItem `json:"Item"`
			} `json:"CallbackMetadata"`
		} `json:"stkCallback"`
	} `json:"Body"`
}

type metadataItem struct {
	Name  string `json:"Name"`
	Value any    `json:"Value"`
}

// ParseCallback normalizes a raw STK push notification. Success is encoded as
// ResultCode zero; the receipt number is a named entry in a flat metadata list
// that is only present on success.
func ParseCallback(raw []byte) (CallbackResult, error) {
	var envelope callbackEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return CallbackResult{}, ErrMalformedCallback
	}

	callback := envelope.Body.STKCallback
	if callback.CheckoutRequestID == "" {
		return CallbackResult{}, ErrMalformedCallback
	}

	result := CallbackResult{
		CorrelationID: callback.CheckoutRequestID,
		SecondaryID:   callback.MerchantRequestID,
		Description:   callback.ResultDesc,
		Success:       callback.ResultCode == 0,
	}

	if result.Success {
		result.ReceiptNumber = findReceipt(callback.CallbackMetadata.Item)
	}

	return result, nil
}

func findReceipt(items []metadataItem) string {
	for _, item := range items {
		if item.Name != receiptItemName {
			continue
		}

		if value, ok := item.Value.(string); ok {
			return value
		}
	}

	return ""
}
