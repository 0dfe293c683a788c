// Package conv provides checked integer conversions for values read from
// untrusted snapshot bytes.
package conv

import (
	"fmt"
	"math"
)

// Uint64ToInt converts uint64 to int, failing instead of wrapping around.
func Uint64ToInt(v uint64) (int, error) {
	if v > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int", v)
	}
	return int(v), nil
}
