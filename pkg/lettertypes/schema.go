package lettertypes

// Wire schemas for the generate request, one per letter type. The API boundary
// validates the raw body against these before the engine sees it; the engine's
// own validator re-checks presence semantics and never reads the schemas.
//
// All fields are free-text strings on the wire. The only constraint beyond
// shape is the additional-details length cap carried over from the original
// form. Dates and amounts are deliberately unconstrained.

// DefaultAdditionalDetailsMaxLength mirrors the original form's cap.
const DefaultAdditionalDetailsMaxLength = 500

func stringProp() map[string]interface{} {
	return map[string]interface{}{"type": "string"}
}

func identitySchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"fullName": stringProp(),
			"email":    stringProp(),
			"phone":    stringProp(),
			"address":  stringProp(),
		},
		"additionalProperties": false,
	}
}

func additionalSchema(maxLen int, fields ...string) map[string]interface{} {
	props := map[string]interface{}{
		"additionalDetails": map[string]interface{}{
			"type":      "string",
			"maxLength": maxLen,
		},
	}
	for _, f := range fields {
		props[f] = stringProp()
	}
	return map[string]interface{}{
		"type":                 "object",
		"properties":           props,
		"additionalProperties": false,
	}
}

func transactionSchema(fields ...string) map[string]interface{} {
	props := map[string]interface{}{
		"merchantName":      stringProp(),
		"transactionDate":   stringProp(),
		"transactionAmount": stringProp(),
	}
	for _, f := range fields {
		props[f] = stringProp()
	}
	return map[string]interface{}{
		"type":                 "object",
		"properties":           props,
		"additionalProperties": false,
	}
}

func requestSchema(transaction, additional map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"letterType":  stringProp(),
			"reason":      stringProp(),
			"identity":    identitySchema(),
			"transaction": transaction,
			"additional":  additional,
		},
		"required":             []interface{}{"letterType"},
		"additionalProperties": false,
	}
}

// InputSchemaWithLimit builds the wire schema for a letter type with a custom
// additional-details cap. Returns nil for an unknown type.
func InputSchemaWithLimit(t LetterType, maxLen int) map[string]interface{} {
	switch t {
	case BankDispute:
		return requestSchema(
			transactionSchema("accountLast4", "cardType", "bankName", "bankAddress"),
			additionalSchema(maxLen, "supportingDocs"),
		)
	case MerchantRefund:
		return requestSchema(
			transactionSchema("orderNumber", "productDescription"),
			additionalSchema(maxLen, "previousContact"),
		)
	default:
		return nil
	}
}

// InputSchema returns the JSON Schema document describing the wire request
// for the given letter type with the default cap, or nil for an unknown type.
func InputSchema(t LetterType) map[string]interface{} {
	return InputSchemaWithLimit(t, DefaultAdditionalDetailsMaxLength)
}
