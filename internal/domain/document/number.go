package document

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/digitalnexcode/invoiceflow/internal/types"
)

// GenerateNumber returns a fresh human-readable document number,
// ex INV-123456-007 or QUO-654321-042. The middle part is the last six
// digits of the current epoch millis, the suffix a random three digit
// counter. Uniqueness is not guaranteed here; the service retries against
// the repository until an unused number is found.
func GenerateNumber(kind types.DocumentKind) string {
	millis := fmt.Sprintf("%d", time.Now().UnixMilli())
	if len(millis) > 6 {
		millis = millis[len(millis)-6:]
	}
	random := fmt.Sprintf("%03d", rand.Intn(1000))
	return fmt.Sprintf("%s-%s-%s", kind.NumberPrefix(), millis, random)
}

// SuffixedNumber returns baseNumber with a collision counter appended,
// ex INV-123456-007-1, INV-123456-007-2, ...
func SuffixedNumber(baseNumber string, counter int) string {
	return fmt.Sprintf("%s-%d", baseNumber, counter)
}
