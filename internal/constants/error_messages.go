package constants

const (
	ErrCodeValidationFailed     = "VALIDATION_FAILED"
	ErrCodeInvalidRequestBody   = "INVALID_REQUEST_BODY"
	ErrCodeInvalidPaymentMethod = "INVALID_PAYMENT_METHOD"
	ErrCodeUserNotFound         = "USER_NOT_FOUND"
	ErrCodeUserExisted          = "USER_EXISTED"
	ErrCodeInvalidCredentials   = "INVALID_CREDENTIALS"
	ErrCodeUnauthorized         = "UNAUTHORIZED"
	ErrCodeProductNotFound      = "PRODUCT_NOT_FOUND"
	ErrCodeCartItemNotFound     = "CART_ITEM_NOT_FOUND"
	ErrCodeCartEmpty            = "CART_EMPTY"
	ErrCodeOrderNotFound        = "ORDER_NOT_FOUND"
	ErrCodeTransactionNotFound  = "TRANSACTION_NOT_FOUND"
	ErrCodePaymentFailed        = "PAYMENT_FAILED"
	ErrCodeMalformedCallback    = "MALFORMED_CALLBACK"
	ErrCodeInternalError        = "INTERNAL_ERROR"
)

const (
	ErrMsgValidationFailed     = "request validation failed"
	ErrMsgInvalidRequestBody   = "failed to parse request body"
	ErrMsgInvalidPaymentMethod = "unsupported payment method"
	ErrMsgUserNotFound         = "user not found"
	ErrMsgUserExisted          = "user already exists"
	ErrMsgInvalidCredentials   = "invalid email or password"
	ErrMsgUnauthorized         = "not authenticated"
	ErrMsgProductNotFound      = "product not found"
	ErrMsgCartItemNotFound     = "item not found in cart"
	ErrMsgCartEmpty            = "cart is empty"
	ErrMsgOrderNotFound        = "order not found"
	ErrMsgTransactionNotFound  = "transaction not found"
	ErrMsgPaymentFailed        = "payment failed"
	ErrMsgMalformedCallback    = "failed to process callback"
	ErrMsgInternalError        = "Internal server error"
)

var errorMessages = map[string]string{
	ErrCodeValidationFailed:     ErrMsgValidationFailed,
	ErrCodeInvalidRequestBody:   ErrMsgInvalidRequestBody,
	ErrCodeInvalidPaymentMethod: ErrMsgInvalidPaymentMethod,
	ErrCodeUserNotFound:         ErrMsgUserNotFound,
	ErrCodeUserExisted:          ErrMsgUserExisted,
	ErrCodeInvalidCredentials:   ErrMsgInvalidCredentials,
	ErrCodeUnauthorized:         ErrMsgUnauthorized,
	ErrCodeProductNotFound:      ErrMsgProductNotFound,
	ErrCodeCartItemNotFound:     ErrMsgCartItemNotFound,
	ErrCodeCartEmpty:            ErrMsgCartEmpty,
	ErrCodeOrderNotFound:        ErrMsgOrderNotFound,
	ErrCodeTransactionNotFound:  ErrMsgTransactionNotFound,
	ErrCodePaymentFailed:        ErrMsgPaymentFailed,
	ErrCodeMalformedCallback:    ErrMsgMalformedCallback,
	ErrCodeInternalError:        ErrMsgInternalError,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}
