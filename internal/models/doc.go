// Package models defines the wire types for the Split-It HTTP API.
//
// # Types
//
// The following types make up the public API surface:
//   - Participant: a person taking part in a split
//   - Item: one receipt line with its price in integer cents
//   - OCRResponse: items recovered from a receipt image
//   - CalculateRequest / CalculateResponse: the split computation round-trip
//
// # Design Principles
//
// 1. **Integer cents only**: prices and totals are int64 cents, never floats
// 2. **Caller-owned ids**: participant and item ids are opaque strings chosen
//    by the client; the server only mints the i0, i1, ... sequence on OCR
//    results
// 3. **Flat shapes**: assignments reference items and participants by id
//    instead of nesting objects
package models
