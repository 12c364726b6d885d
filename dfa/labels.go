package dfa

import "strconv"

// Labels of the two singleton states.
const (
	StartLabel  = "q_start"
	RejectLabel = "q_rej"
)

// LabelFn names the idx-th minted state (0-based, start and reject excluded).
// It must be deterministic.
type LabelFn func(idx int) string

// DefaultLabel returns "q_<idx>", e.g. 0→"q_0", 12→"q_12".
func DefaultLabel(idx int) string {
	return "q_" + strconv.Itoa(idx)
}

// PrefixLabel returns prefix + decimal index, e.g. PrefixLabel("s")(3) → "s3".
func PrefixLabel(prefix string) LabelFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}
