// Package models holds the wire-level data structures of the letter engine.
package models

// RequesterIdentity identifies the person the letter is sent on behalf of.
// FullName and Email are required for every letter type; Address is required
// in practice for bank disputes but only hinted at, never enforced.
type RequesterIdentity struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

// TransactionDetails describes the charge being disputed or refunded. Dates
// arrive as ISO-8601 date strings or empty; amounts are unvalidated free text.
type TransactionDetails struct {
	MerchantName      string `json:"merchantName"`
	TransactionDate   string `json:"transactionDate,omitempty"`
	TransactionAmount string `json:"transactionAmount,omitempty"`

	// Merchant refund only
	OrderNumber        string `json:"orderNumber,omitempty"`
	ProductDescription string `json:"productDescription,omitempty"`

	// Bank dispute only
	AccountLast4 string `json:"accountLast4,omitempty"`
	CardType     string `json:"cardType,omitempty"`
	BankName     string `json:"bankName,omitempty"`
	BankAddress  string `json:"bankAddress,omitempty"`
}

// AdditionalInfo carries the optional narrative fields. Each renders as a
// labeled block only when non-empty.
type AdditionalInfo struct {
	AdditionalDetails string `json:"additionalDetails,omitempty"`
	SupportingDocs    string `json:"supportingDocs,omitempty"`
	PreviousContact   string `json:"previousContact,omitempty"`
}

// LetterRequest is the engine input: a letter type, a reason key scoped to
// that type's catalog, and the three field groups.
type LetterRequest struct {
	LetterType  string             `json:"letterType"`
	Reason      string             `json:"reason"`
	Identity    RequesterIdentity  `json:"identity"`
	Transaction TransactionDetails `json:"transaction"`
	Additional  AdditionalInfo     `json:"additional"`
}

// GeneratedLetter is the engine output. Text is an immutable plain-text blob;
// edits the caller makes afterwards are outside the engine's contract.
type GeneratedLetter struct {
	LetterType        string `json:"letterType"`
	Text              string `json:"letter"`
	SuggestedFilename string `json:"suggestedFilename"`
}
