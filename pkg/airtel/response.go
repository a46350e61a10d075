package airtel

type PushResponse struct {
	Data   PushData   `json:"data"`
	Status PushStatus `json:"status"`
}

type PushData struct {
	ID string `json:"id"`
}

type PushStatus struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Success bool   `json:"success"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}
