package v1

type SignupRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type InitiatePaymentRequest struct {
	Method  string `json:"method" validate:"required,oneof=mpesa airtel"`
	Phone   string `json:"phone" validate:"required,msisdn"`
	Amount  string `json:"amount" validate:"required,amount"`
	OrderID *int64 `json:"order_id"`
}

type CreatePaypalOrderRequest struct {
	Amount string `json:"amount" validate:"required,amount"`
}

type CapturePaypalRequest struct {
	ProviderOrderID string `json:"provider_order_id" validate:"required"`
	OrderID         *int64 `json:"order_id"`
}

type AddCartItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,min=1"`
	Quantity  int   `json:"quantity" validate:"required,min=1"`
}

type UpdateCartItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,min=1"`
	Quantity  int   `json:"quantity" validate:"min=0"`
}

type SubmitReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=1000"`
}

type SaveProductRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
	Category    string `json:"category" validate:"required,max=50"`
	Subcategory string `json:"subcategory" validate:"max=50"`
	Price       string `json:"price" validate:"required,amount"`
	Image       string `json:"image" validate:"max=500"`
	Stock       int    `json:"stock" validate:"min=0"`
}
