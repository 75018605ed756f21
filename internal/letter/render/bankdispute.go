package render

import (
	"strings"
	"time"

	"letter-engine/internal/models"
)

// BankDispute renders the card-issuer dispute letter. Input is assumed to
// have passed validation; quasi-required fields that are still empty render
// as bracket placeholders rather than failing.
//
// The Fair Credit Billing Act language and the 30-day acknowledgement /
// two-billing-cycle (90-day) resolution window are part of the template's
// contract and must not be reworded.
func BankDispute(now time.Time, identity models.RequesterIdentity, txn models.TransactionDetails, extra models.AdditionalInfo, reasonText string) string {
	var b strings.Builder

	// Sender block. The phone line is emitted even when empty, matching the
	// fixed header shape.
	b.WriteString(identity.FullName + "\n")
	b.WriteString(orPlaceholder(identity.Address, "[Your Address]") + "\n")
	b.WriteString(identity.Email + "\n")
	b.WriteString(identity.Phone + "\n")
	b.WriteString("\n")

	b.WriteString(headerDate(now) + "\n")
	b.WriteString("\n")

	// Recipient block
	b.WriteString(orPlaceholder(txn.BankName, "[Card Issuer Name]") + "\n")
	b.WriteString("Billing Inquiries Department\n")
	b.WriteString(orPlaceholder(txn.BankAddress, "[Card Issuer Address]") + "\n")
	b.WriteString("\n")

	last4 := orPlaceholder(txn.AccountLast4, "XXXX")
	b.WriteString("RE: Notice of Disputed Charge - Account ending in " + last4 + "\n")
	b.WriteString("\n")

	b.WriteString("Dear Billing Inquiries Division,\n")
	b.WriteString("\n")

	cardType := orPlaceholder(txn.CardType, "credit card")
	b.WriteString("I am writing to dispute a charge on my " + cardType + " account as permitted under the Fair Credit Billing Act.\n")
	b.WriteString("\n")

	b.WriteString("Disputed Transaction Details:\n")
	b.WriteString("- Merchant Name: " + txn.MerchantName + "\n")
	b.WriteString("- Transaction Date: " + transactionDate(txn.TransactionDate) + "\n")
	b.WriteString("- Transaction Amount: $" + amount(txn.TransactionAmount) + "\n")
	b.WriteString("- Account Number (last 4 digits): " + last4 + "\n")
	b.WriteString("\n")

	b.WriteString("Reason for Dispute:\n")
	b.WriteString(orPlaceholder(reasonText, "[Reason]") + "\n")
	b.WriteString("\n")

	writeOptionalBlock(&b, "Additional Details:", extra.AdditionalDetails)
	b.WriteString("I am requesting that this charge be investigated and removed from my account. I am also requesting that any finance charges or fees related to this disputed amount be credited to my account.\n")
	b.WriteString("\n")

	writeOptionalBlock(&b, "I have enclosed copies of the following supporting documents:", extra.SupportingDocs)
	b.WriteString("Please investigate this dispute and provide written confirmation of the resolution. As required by law, please acknowledge receipt of this dispute within 30 days and resolve this matter within two billing cycles (not to exceed 90 days).\n")
	b.WriteString("\n")

	b.WriteString("I understand that I am not required to pay the disputed amount or related charges while this investigation is pending.\n")
	b.WriteString("\n")

	b.WriteString("Please send all correspondence to the address above or email me at " + identity.Email + ".\n")
	b.WriteString("\n")

	b.WriteString("Sincerely,\n")
	b.WriteString("\n")
	b.WriteString(identity.FullName + "\n")
	b.WriteString("\n")
	b.WriteString("Enclosures: " + orPlaceholder(extra.SupportingDocs, "[List of enclosed documents]"))

	return b.String()
}
