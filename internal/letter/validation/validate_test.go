package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"letter-engine/internal/common/errors"
	"letter-engine/internal/models"
)

func validBankDisputeRequest() *models.LetterRequest {
	return &models.LetterRequest{
		LetterType: "BANK_DISPUTE",
		Reason:     "UNAUTHORIZED",
		Identity: models.RequesterIdentity{
			FullName: "Jane Doe",
			Email:    "jane@x.com",
		},
		Transaction: models.TransactionDetails{
			MerchantName: "Acme Co",
		},
	}
}

func validMerchantRefundRequest() *models.LetterRequest {
	return &models.LetterRequest{
		LetterType: "MERCHANT_REFUND",
		Reason:     "DEFECTIVE",
		Identity: models.RequesterIdentity{
			FullName: "John Smith",
			Email:    "john@example.com",
		},
		Transaction: models.TransactionDetails{
			MerchantName: "Gadget World",
		},
	}
}

func TestValidate_Success(t *testing.T) {
	assert.Nil(t, Validate(validBankDisputeRequest()))
	assert.Nil(t, Validate(validMerchantRefundRequest()))
}

func TestValidate_InvalidType(t *testing.T) {
	tests := []struct {
		name       string
		letterType string
	}{
		{"empty type", ""},
		{"unknown type", "SMALL_CLAIMS"},
		{"lowercase key", "bank_dispute"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validBankDisputeRequest()
			req.LetterType = tt.letterType

			stdErr := Validate(req)
			require.NotNil(t, stdErr)
			assert.Equal(t, errors.ErrCodeInvalidLetterType, stdErr.Code)
		})
	}
}

func TestValidate_MissingRequiredField(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*models.LetterRequest)
		expectedField string
	}{
		{
			name:          "missing full name",
			mutate:        func(r *models.LetterRequest) { r.Identity.FullName = "" },
			expectedField: "fullName",
		},
		{
			name:          "whitespace full name",
			mutate:        func(r *models.LetterRequest) { r.Identity.FullName = "   " },
			expectedField: "fullName",
		},
		{
			name:          "missing email",
			mutate:        func(r *models.LetterRequest) { r.Identity.Email = "" },
			expectedField: "email",
		},
		{
			name:          "missing merchant name",
			mutate:        func(r *models.LetterRequest) { r.Transaction.MerchantName = "" },
			expectedField: "merchantName",
		},
	}

	for _, build := range []struct {
		name string
		req  func() *models.LetterRequest
	}{
		{"bank dispute", validBankDisputeRequest},
		{"merchant refund", validMerchantRefundRequest},
	} {
		for _, tt := range tests {
			t.Run(build.name+"/"+tt.name, func(t *testing.T) {
				req := build.req()
				tt.mutate(req)

				stdErr := Validate(req)
				require.NotNil(t, stdErr)
				assert.Equal(t, errors.ErrCodeMissingRequiredField, stdErr.Code)
				assert.Equal(t, tt.expectedField, stdErr.Field)
			})
		}
	}
}

func TestValidate_FirstFailureWins(t *testing.T) {
	req := validBankDisputeRequest()
	req.Identity.FullName = ""
	req.Identity.Email = ""
	req.Reason = ""

	stdErr := Validate(req)
	require.NotNil(t, stdErr)
	assert.Equal(t, errors.ErrCodeMissingRequiredField, stdErr.Code)
	assert.Equal(t, "fullName", stdErr.Field)
}

func TestValidate_MissingReason(t *testing.T) {
	req := validBankDisputeRequest()
	req.Reason = ""

	stdErr := Validate(req)
	require.NotNil(t, stdErr)
	assert.Equal(t, errors.ErrCodeMissingReason, stdErr.Code)
}

func TestValidate_ReasonTypeMismatch(t *testing.T) {
	// DEFECTIVE only exists in the refund catalog.
	req := validBankDisputeRequest()
	req.Reason = "DEFECTIVE"

	stdErr := Validate(req)
	require.NotNil(t, stdErr)
	assert.Equal(t, errors.ErrCodeReasonTypeMismatch, stdErr.Code)

	// UNAUTHORIZED only exists in the dispute catalog.
	req = validMerchantRefundRequest()
	req.Reason = "UNAUTHORIZED"

	stdErr = Validate(req)
	require.NotNil(t, stdErr)
	assert.Equal(t, errors.ErrCodeReasonTypeMismatch, stdErr.Code)
}

func TestValidate_SharedReasonKeyIsNotAMismatch(t *testing.T) {
	// NOT_AS_DESCRIBED exists in both catalogs, so it is valid for both types.
	req := validBankDisputeRequest()
	req.Reason = "NOT_AS_DESCRIBED"
	assert.Nil(t, Validate(req))

	req = validMerchantRefundRequest()
	req.Reason = "NOT_AS_DESCRIBED"
	assert.Nil(t, Validate(req))
}

func TestValidate_ReasonNotFoundInEitherCatalog(t *testing.T) {
	req := validBankDisputeRequest()
	req.Reason = "NO_SUCH_REASON"

	stdErr := Validate(req)
	require.NotNil(t, stdErr)
	assert.Equal(t, errors.ErrCodeReasonNotFound, stdErr.Code)
}

func TestValidate_MalformedOptionalDataIsAllowed(t *testing.T) {
	req := validBankDisputeRequest()
	req.Transaction.TransactionDate = "not-a-date"
	req.Transaction.TransactionAmount = "lots of money"

	assert.Nil(t, Validate(req))
}
