// Package catalog holds the immutable reason catalogs the letter types draw
// from. Both tables are fixed at process start; nothing adds, removes, or
// mutates an entry at runtime.
package catalog

import (
	"fmt"

	"letter-engine/internal/common/errors"
)

// ID names one of the two reason catalogs.
type ID string

const (
	DisputeReasons ID = "dispute_reasons"
	RefundReasons  ID = "refund_reasons"
)

// Reason is a single catalog entry. Tips are ordered guidance strings for the
// presentation layer; they never appear in the rendered letter.
type Reason struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tips        []string `json:"tips"`
}

// DisplayText returns the form the renderer inserts into the letter.
func (r Reason) DisplayText() string {
	return fmt.Sprintf("%s: %s", r.Name, r.Description)
}

// Bank dispute reasons, in selection-list order.
var disputeReasons = []Reason{
	{
		Key:         "UNAUTHORIZED",
		Name:        "Unauthorized/Fraudulent Charge",
		Description: "A charge you did not make or authorize",
		Tips: []string{
			"Report immediately if card was lost/stolen",
			"Federal law limits liability to $50 for credit cards",
			"Check for other suspicious activity",
		},
	},
	{
		Key:         "NOT_RECEIVED",
		Name:        "Item/Service Not Received",
		Description: "You paid but never received the product or service",
		Tips: []string{
			"Document expected vs actual delivery date",
			"Include any tracking information",
			"Note attempts to contact the merchant",
		},
	},
	{
		Key:         "NOT_AS_DESCRIBED",
		Name:        "Not As Described/Defective",
		Description: "Product or service differs significantly from what was advertised",
		Tips: []string{
			"Take photos of the item received",
			"Save the original listing/description",
			"Document the specific differences",
		},
	},
	{
		Key:         "DUPLICATE_CHARGE",
		Name:        "Duplicate/Incorrect Amount",
		Description: "Charged twice or charged the wrong amount",
		Tips: []string{
			"Note both charge dates and amounts",
			"Include the correct amount if overcharged",
			"Check if one charge is pending vs posted",
		},
	},
	{
		Key:         "CANCELLED_RECURRING",
		Name:        "Cancelled Subscription Still Charged",
		Description: "Charged for a subscription you already cancelled",
		Tips: []string{
			"Include cancellation confirmation if available",
			"Note the date you cancelled",
			"Reference any confirmation numbers",
		},
	},
	{
		Key:         "REFUND_NOT_PROCESSED",
		Name:        "Refund Not Received",
		Description: "Merchant agreed to refund but it was never processed",
		Tips: []string{
			"Include refund confirmation/promise",
			"Note how long you have waited",
			"Document merchant communications",
		},
	},
}

// Merchant refund reasons, in selection-list order.
var refundReasons = []Reason{
	{
		Key:         "DEFECTIVE",
		Name:        "Defective/Damaged Product",
		Description: "Item arrived broken, damaged, or does not work",
		Tips: []string{
			"Take photos before and after opening",
			"Keep all original packaging",
			"Note if damage was visible on delivery",
		},
	},
	{
		Key:         "NOT_AS_DESCRIBED",
		Name:        "Not As Described",
		Description: "Product differs from the listing or advertisement",
		Tips: []string{
			"Screenshot the original listing",
			"Document specific differences",
			"Compare advertised vs received specs",
		},
	},
	{
		Key:         "NOT_DELIVERED",
		Name:        "Never Received",
		Description: "Order was never delivered",
		Tips: []string{
			"Check tracking status",
			"Verify delivery address was correct",
			"Note expected delivery date",
		},
	},
	{
		Key:         "SERVICE_NOT_RENDERED",
		Name:        "Service Not Provided",
		Description: "Paid for a service that was not delivered",
		Tips: []string{
			"Document the agreed service terms",
			"Note any missed appointments",
			"Include contract or agreement details",
		},
	},
	{
		Key:         "SUBSCRIPTION_ISSUE",
		Name:        "Subscription/Billing Issue",
		Description: "Unwanted renewal, trial conversion, or billing error",
		Tips: []string{
			"Note when you expected billing to stop",
			"Include any cancellation attempts",
			"Reference terms of service",
		},
	},
	{
		Key:         "DISSATISFACTION",
		Name:        "General Dissatisfaction",
		Description: "Product or service did not meet expectations",
		Tips: []string{
			"Check the return policy first",
			"Be specific about the issue",
			"Propose a reasonable resolution",
		},
	},
}

var catalogs = map[ID][]Reason{
	DisputeReasons: disputeReasons,
	RefundReasons:  refundReasons,
}

// index gives O(1) lookup by key; the slices above keep declaration order.
var index = func() map[ID]map[string]Reason {
	idx := make(map[ID]map[string]Reason, len(catalogs))
	for id, entries := range catalogs {
		byKey := make(map[string]Reason, len(entries))
		for _, r := range entries {
			byKey[r.Key] = r
		}
		idx[id] = byKey
	}
	return idx
}()

// List returns the catalog's reasons in declaration order. The slice is a
// copy; mutating it does not touch the catalog.
func List(id ID) []Reason {
	entries := catalogs[id]
	out := make([]Reason, len(entries))
	copy(out, entries)
	return out
}

// Get looks up a reason by key within one catalog. A key that exists only in
// the other catalog is still REASON_NOT_FOUND here.
func Get(id ID, key string) (Reason, error) {
	if r, ok := index[id][key]; ok {
		return r, nil
	}
	return Reason{}, errors.NewReasonNotFoundError(string(id), key)
}

// Contains reports whether key resolves inside the catalog.
func Contains(id ID, key string) bool {
	_, err := Get(id, key)
	return err == nil
}
