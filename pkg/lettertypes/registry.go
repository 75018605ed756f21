// Package lettertypes is the registry of supported letter categories. All
// type-specific knowledge outside the renderers lives here: display metadata,
// required-field sets, catalog bindings, wire schemas, and the export filename
// rule.
package lettertypes

import (
	"fmt"
	"regexp"
	"strings"

	"letter-engine/pkg/catalog"
)

// LetterType is the wire-stable key of a letter category.
type LetterType string

const (
	BankDispute    LetterType = "BANK_DISPUTE"
	MerchantRefund LetterType = "MERCHANT_REFUND"
)

// TypeMetadata describes a letter type for selection UIs.
type TypeMetadata struct {
	Key         LetterType `json:"key"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
}

type definition struct {
	metadata       TypeMetadata
	reasonCatalog  catalog.ID
	requiredFields []string
	optionalFields []string
	filenamePrefix string
}

var definitions = map[LetterType]definition{
	BankDispute: {
		metadata: TypeMetadata{
			Key:         BankDispute,
			Name:        "Bank/Card Dispute",
			Description: "Dispute a charge with your credit card company or bank",
			Icon:        "bank",
		},
		reasonCatalog:  catalog.DisputeReasons,
		requiredFields: []string{"fullName", "email", "merchantName"},
		optionalFields: []string{
			"phone", "address", "transactionDate", "transactionAmount",
			"accountLast4", "cardType", "bankName", "bankAddress",
			"additionalDetails", "supportingDocs",
		},
		filenamePrefix: "dispute",
	},
	MerchantRefund: {
		metadata: TypeMetadata{
			Key:         MerchantRefund,
			Name:        "Merchant Refund Request",
			Description: "Request a refund directly from a merchant or company",
			Icon:        "store",
		},
		reasonCatalog:  catalog.RefundReasons,
		requiredFields: []string{"fullName", "email", "merchantName"},
		optionalFields: []string{
			"phone", "address", "transactionDate", "transactionAmount",
			"orderNumber", "productDescription",
			"additionalDetails", "previousContact",
		},
		filenamePrefix: "refund",
	},
}

// declaration order for listings
var order = []LetterType{BankDispute, MerchantRefund}

// IsValid reports whether t names a known letter type.
func IsValid(t LetterType) bool {
	_, ok := definitions[t]
	return ok
}

// All returns the letter types in declaration order.
func All() []TypeMetadata {
	out := make([]TypeMetadata, 0, len(order))
	for _, t := range order {
		out = append(out, definitions[t].metadata)
	}
	return out
}

// Metadata returns the display metadata of a letter type.
func Metadata(t LetterType) (TypeMetadata, bool) {
	def, ok := definitions[t]
	return def.metadata, ok
}

// RequiredFields returns the ordered field names whose absence blocks
// generation for the given type.
func RequiredFields(t LetterType) []string {
	def, ok := definitions[t]
	if !ok {
		return nil
	}
	out := make([]string, len(def.requiredFields))
	copy(out, def.requiredFields)
	return out
}

// OptionalFields returns the field names the type accepts beyond the required
// set; used by presentation logic to decide what to surface.
func OptionalFields(t LetterType) []string {
	def, ok := definitions[t]
	if !ok {
		return nil
	}
	out := make([]string, len(def.optionalFields))
	copy(out, def.optionalFields)
	return out
}

// ReasonCatalog returns the catalog the type's reasons are drawn from.
func ReasonCatalog(t LetterType) catalog.ID {
	return definitions[t].reasonCatalog
}

var whitespace = regexp.MustCompile(`\s+`)

// SuggestedFilename derives the export filename the download collaborator
// relies on: {dispute|refund}-letter-{merchant lowercased, whitespace runs
// replaced with hyphens}.txt.
func SuggestedFilename(t LetterType, merchantName string) string {
	slug := whitespace.ReplaceAllString(strings.ToLower(merchantName), "-")
	return fmt.Sprintf("%s-letter-%s.txt", definitions[t].filenamePrefix, slug)
}
