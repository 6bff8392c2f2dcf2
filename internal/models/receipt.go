package models

// Item is a single purchasable line on a bill.
//
// Items arrive either from the OCR endpoint, where the server mints ids
// i0, i1, ... in top-to-bottom order, or directly from the client in a
// calculate request.
type Item struct {
	// ID identifies the item within one request.
	ID string `json:"id"`

	// Description is the merchant text for the line (e.g. "COKE 12OZ").
	Description string `json:"description"`

	// PriceCents is the line price in integer US cents. OCR results may
	// carry negative values for voided lines; calculate requests must
	// send values >= 0.
	PriceCents int64 `json:"price_cents"`
}

// OCRResponse is the body returned by POST /api/ocr.
type OCRResponse struct {
	// Items are the parsed receipt lines in top-to-bottom order. An empty
	// slice means the image yielded no recognizable items.
	Items []Item `json:"items"`

	// Currency is always "USD".
	Currency string `json:"currency"`
}
