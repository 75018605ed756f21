// Package validation gates letter generation. Checks run in a fixed order and
// the first failure wins; a nil return means the request may be rendered as-is.
package validation

import (
	"strings"

	"letter-engine/internal/common/errors"
	"letter-engine/internal/models"
	"letter-engine/pkg/catalog"
	"letter-engine/pkg/lettertypes"
)

// fieldValue resolves a registry field name against the request's field
// groups. Only fields that can appear in a required set are listed.
func fieldValue(req *models.LetterRequest, field string) string {
	switch field {
	case "fullName":
		return req.Identity.FullName
	case "email":
		return req.Identity.Email
	case "merchantName":
		return req.Transaction.MerchantName
	default:
		return ""
	}
}

// Validate applies the generation-gating rules:
//  1. the letter type must be known;
//  2. every field the type's registry marks required must be non-empty,
//     reported with the exact field name, in registry order;
//  3. the reason key must be present and resolve inside the type's catalog.
//
// Dates and amounts are never semantically validated here; malformed optional
// data renders with fallbacks instead of blocking generation.
func Validate(req *models.LetterRequest) *errors.StandardError {
	letterType := lettertypes.LetterType(req.LetterType)
	if !lettertypes.IsValid(letterType) {
		return errors.NewInvalidLetterTypeError(req.LetterType)
	}

	for _, field := range lettertypes.RequiredFields(letterType) {
		if strings.TrimSpace(fieldValue(req, field)) == "" {
			return errors.NewMissingRequiredFieldError(field)
		}
	}

	if strings.TrimSpace(req.Reason) == "" {
		return errors.NewMissingReasonError()
	}

	own := lettertypes.ReasonCatalog(letterType)
	if !catalog.Contains(own, req.Reason) {
		if catalog.Contains(otherCatalog(own), req.Reason) {
			return errors.NewReasonTypeMismatchError(req.Reason, req.LetterType)
		}
		return errors.NewReasonNotFoundError(string(own), req.Reason)
	}

	return nil
}

func otherCatalog(id catalog.ID) catalog.ID {
	if id == catalog.DisputeReasons {
		return catalog.RefundReasons
	}
	return catalog.DisputeReasons
}
