package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type footerForm struct {
	ContactPhone *string `json:"contact_phone" validate:"omitempty,ir_mobile"`
	ContactEmail *string `json:"contact_email" validate:"omitempty,email"`
	TelegramLink *string `json:"telegram_link" validate:"omitempty,url"`
}

type couponForm struct {
	Code      string `json:"code" validate:"required"`
	Percent   *int   `json:"percent" validate:"required"`
	ExpiresAt string `json:"expires_at" validate:"required,datetime=2006/01/02 15:04:05"`
}

func strPtr(s string) *string { return &s }

func TestValidateStructPasses(t *testing.T) {
	percent := 10
	errs := ValidateStruct(&couponForm{Code: "NOWRUZ", Percent: &percent, ExpiresAt: "2025/03/20 00:00:00"})
	assert.Nil(t, errs)

	errs = ValidateStruct(&footerForm{ContactPhone: strPtr("09121234567")})
	assert.Nil(t, errs)
}

func TestValidateStructUsesJSONNames(t *testing.T) {
	errs := ValidateStruct(&couponForm{ExpiresAt: "2025-03-20"})
	require.NotNil(t, errs)

	assert.Equal(t, []string{"The code field is required."}, errs["code"])
	assert.Equal(t, []string{"The percent field is required."}, errs["percent"])
	assert.Equal(t, []string{"The expires at field must match the format Y/m/d H:i:s."}, errs["expires_at"])
}

func TestIranianMobile(t *testing.T) {
	for _, bad := range []string{"0912123456", "09521234567", "+989121234567"} {
		errs := ValidateStruct(&footerForm{ContactPhone: strPtr(bad)})
		require.NotNil(t, errs, bad)
		assert.Contains(t, errs, "contact_phone")
	}
}

func TestErrorsAdd(t *testing.T) {
	errs := Errors{}
	errs.Add("name", "The name has already been taken.")
	errs.Add("name", "second")
	assert.Len(t, errs["name"], 2)
}
