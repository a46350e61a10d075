package airtel

// PushRequest is the Airtel Money merchant payment payload. The amount is
// stringified and country/currency are fixed by the merchant account.
type PushRequest struct {
	Reference   string      `json:"reference"`
	Subscriber  Subscriber  `json:"subscriber"`
	Transaction Transaction `json:"transaction"`
}

type Subscriber struct {
	Country  string `json:"country"`
	Currency string `json:"currency"`
	MSISDN   string `json:"msisdn"`
}

type Transaction struct {
	Amount   string `json:"amount"`
	Country  string `json:"country"`
	Currency string `json:"currency"`
	ID       string `json:"id"`
	Type     string `json:"type"`
}

type tokenRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	GrantType    string `json:"grant_type"`
}
