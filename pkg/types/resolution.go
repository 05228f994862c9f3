package types

// Resolution is the inferred settled outcome of a market.
type Resolution string

const (
	ResolutionYes     Resolution = "YES"
	ResolutionNo      Resolution = "NO"
	ResolutionPending Resolution = "PENDING"
)

// Resolved reports whether the market settled on a known side.
func (r Resolution) Resolved() bool {
	return r == ResolutionYes || r == ResolutionNo
}
