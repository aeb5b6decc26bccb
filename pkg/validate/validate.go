package validate

import (
	"sync"

	"github.com/ShiraazMoollatjie/goluhn"
	"github.com/go-playground/validator/v10"
)

const ReferralCodeLength = 10

var (
	once     sync.Once
	instance *validator.Validate
)

func IsLuhn(s string) bool {
	return goluhn.Validate(s) == nil
}

// NewReferralCode returns a numeric code whose last digit is a Luhn check
// digit, so typos are rejected before any lookup.
func NewReferralCode() string {
	return goluhn.Generate(ReferralCodeLength)
}

// Struct validates a request DTO against its `validate` tags.
func Struct(v any) error {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
	})
	return instance.Struct(v)
}
