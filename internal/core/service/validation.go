package service

import (
	"fmt"
	"net/mail"
	"sort"
	"strings"
)

const (
	PaymentEMoney         = "eMoney"
	PaymentCashOnDelivery = "cashOnDelivery"
)

// CheckoutForm is the buyer-entered billing, shipping and payment data.
type CheckoutForm struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zipCode"`
	Country       string `json:"country"`
	PaymentMethod string `json:"paymentMethod"`
	EMoneyNumber  string `json:"eMoneyNumber,omitempty"`
	EMoneyPin     string `json:"eMoneyPin,omitempty"`
}

// ValidationErrors maps field name to the violated rule. All violations
// are collected in one pass, never short-circuited to the first.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("invalid fields: %s", strings.Join(fields, ", "))
}

// Validate checks every field rule and returns the full set of violations,
// or nil when the form is acceptable.
func (f CheckoutForm) Validate() ValidationErrors {
	errs := ValidationErrors{}

	if len(f.Name) < 2 {
		errs["name"] = "name must be at least 2 characters"
	}
	if _, err := mail.ParseAddress(f.Email); err != nil {
		errs["email"] = "invalid email address"
	}
	if len(f.Phone) < 10 {
		errs["phone"] = "phone number must be at least 10 digits"
	}
	if len(f.Address) < 5 {
		errs["address"] = "address must be at least 5 characters"
	}
	if len(f.City) < 2 {
		errs["city"] = "city is required"
	}
	if len(f.State) < 2 {
		errs["state"] = "state is required"
	}
	if len(f.ZipCode) < 5 {
		errs["zipCode"] = "ZIP code must be at least 5 characters"
	}
	if len(f.Country) < 2 {
		errs["country"] = "country is required"
	}

	switch f.PaymentMethod {
	case PaymentEMoney:
		if len(f.EMoneyNumber) < 9 {
			errs["eMoneyNumber"] = "e-Money number must be at least 9 digits"
		}
		if len(f.EMoneyPin) != 4 {
			errs["eMoneyPin"] = "e-Money PIN must be exactly 4 digits"
		}
	case PaymentCashOnDelivery:
		// no extra fields
	default:
		errs["paymentMethod"] = "payment method must be eMoney or cashOnDelivery"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
