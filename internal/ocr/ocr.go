// Package ocr turns receipt images into text.
package ocr

import "context"

// TextExtractor produces the raw text of a receipt image. Implementations
// must preserve line breaks: the receipt parser recognizes prices only at
// the end of a line.
type TextExtractor interface {
	ExtractText(ctx context.Context, image []byte) (string, error)
}
