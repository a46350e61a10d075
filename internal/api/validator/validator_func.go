package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	msisdnPattern = regexp.MustCompile(`^(?:\+?254|0)?[17]\d{8}$`)
	amountPattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)
)

const (
	MsisdnTag = "msisdn"
	AmountTag = "amount"
)

var valid = map[string]func(fl validator.FieldLevel) bool{
	MsisdnTag: ValidateMsisdn,
	AmountTag: ValidateAmount,
}

// tagMessages overrides the caller's generic format for rules whose failure
// deserves a more precise hint.
var tagMessages = map[string]string{
	MsisdnTag: "%s must be a Kenyan mobile number",
	AmountTag: "%s must be an amount with at most two decimal places",
}

// ValidateMsisdn accepts Kenyan mobile numbers in international or local form.
func ValidateMsisdn(fl validator.FieldLevel) bool {
	return msisdnPattern.MatchString(fl.Field().String())
}

func ValidateAmount(fl validator.FieldLevel) bool {
	return amountPattern.MatchString(fl.Field().String())
}
