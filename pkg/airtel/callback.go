package airtel

import "encoding/json"

const successStatusCode = "200"

// CallbackResult is the normalized outcome of an Airtel Money notification.
type CallbackResult struct {
	CorrelationID string
	Description   string
	Success       bool
}

type callbackEnvelope struct {
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
	Transaction struct {
		ID string `json:"id"`
	} `json:"transaction"`
	Status struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"status"`
}

// ParseCallback normalizes a raw Airtel Money notification. The transaction ID
// echoed back is the reference supplied at initiation; some gateway versions
// nest it under data, others under transaction.
func ParseCallback(raw []byte) (CallbackResult, error) {
	var envelope callbackEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return CallbackResult{}, ErrMalformedCallback
	}

	correlationID := envelope.Data.ID
	if correlationID == "" {
		correlationID = envelope.Transaction.ID
	}

	if correlationID == "" {
		return CallbackResult{}, ErrMalformedCallback
	}

	description := envelope.Status.Message
	if description == "" {
		description = "No status message"
	}

	return CallbackResult{
		CorrelationID: correlationID,
		Description:   description,
		Success:       envelope.Status.Code == successStatusCode,
	}, nil
}
