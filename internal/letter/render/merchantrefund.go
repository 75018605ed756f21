package render

import (
	"strings"
	"time"

	"letter-engine/internal/models"
)

// MerchantRefund renders the direct-to-merchant refund request. The
// 10-business-day processing ask and the chargeback escalation sentence are
// fixed template text.
func MerchantRefund(now time.Time, identity models.RequesterIdentity, txn models.TransactionDetails, extra models.AdditionalInfo, reasonText string) string {
	var b strings.Builder

	b.WriteString(identity.FullName + "\n")
	b.WriteString(identity.Email + "\n")
	b.WriteString(identity.Phone + "\n")
	b.WriteString("\n")

	b.WriteString(headerDate(now) + "\n")
	b.WriteString("\n")

	b.WriteString(txn.MerchantName + "\n")
	b.WriteString("Customer Service Department\n")
	b.WriteString("\n")

	orderNumber := orPlaceholder(txn.OrderNumber, "[Order Number]")
	b.WriteString("RE: Refund Request - Order #" + orderNumber + "\n")
	b.WriteString("\n")

	b.WriteString("Dear " + txn.MerchantName + " Customer Service,\n")
	b.WriteString("\n")

	b.WriteString("I am writing to request a refund for a recent purchase.\n")
	b.WriteString("\n")

	amt := amount(txn.TransactionAmount)
	b.WriteString("Order Details:\n")
	b.WriteString("- Order Number: " + orderNumber + "\n")
	b.WriteString("- Purchase Date: " + transactionDate(txn.TransactionDate) + "\n")
	b.WriteString("- Amount Paid: $" + amt + "\n")
	b.WriteString("- Product/Service: " + orPlaceholder(txn.ProductDescription, "[Description]") + "\n")
	b.WriteString("\n")

	b.WriteString("Reason for Refund Request:\n")
	b.WriteString(orPlaceholder(reasonText, "[Reason]") + "\n")
	b.WriteString("\n")

	writeOptionalBlock(&b, "Additional Details:", extra.AdditionalDetails)
	b.WriteString("I am requesting a full refund of $" + amt + " to my original payment method.\n")
	b.WriteString("\n")

	writeOptionalBlock(&b, "I have previously attempted to resolve this issue:", extra.PreviousContact)
	contact := identity.Email
	if identity.Phone != "" {
		contact += " or " + identity.Phone
	}
	b.WriteString("Please process this refund within 10 business days. If you require any additional information or documentation, please contact me at " + contact + ".\n")
	b.WriteString("\n")

	b.WriteString("If I do not receive a response or refund within a reasonable timeframe, I may need to dispute this charge with my credit card company or pursue other remedies available to me.\n")
	b.WriteString("\n")

	b.WriteString("Thank you for your prompt attention to this matter.\n")
	b.WriteString("\n")

	b.WriteString("Sincerely,\n")
	b.WriteString("\n")
	b.WriteString(identity.FullName)

	return b.String()
}
