// Package safecast implements checked integer conversions for the wire codecs
package safecast

import (
	"fmt"
	"math"

	"github.com/spf13/cast"
)

// IntToUint32 converts a length to uint32, failing on negative values and overflow.
func IntToUint32(value int) (uint32, error) {
	if value < 0 || uint64(value) > math.MaxUint32 {
		return 0, fmt.Errorf("value %d exceeds uint32 range", value)
	}

	return cast.ToUint32E(value)
}

// Uint32ToUint8 narrows a decoded variant index to uint8.
func Uint32ToUint8(value uint32) (uint8, error) {
	if value > math.MaxUint8 {
		return 0, fmt.Errorf("value %d exceeds uint8 range", value)
	}

	return cast.ToUint8E(value)
}
