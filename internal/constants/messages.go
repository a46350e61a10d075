package constants

const MessageErrorFormat = "%s is invalid"

const (
	MsgUserCreated      = "user registered successfully"
	MsgLoginSuccessful  = "login successful"
	MsgLogoutSuccessful = "logout successful"
	MsgPaymentInitiated = "payment initiated"
	MsgPaymentCaptured  = "payment captured"
	MsgCallbackAccepted = "callback accepted"
	MsgOrderCreated     = "order created"
	MsgProductCreated   = "product created"
	MsgProductUpdated   = "product updated"
	MsgProductDeleted   = "product deleted"
	MsgReviewSubmitted  = "review submitted"
)
