package audit

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// ComputeHash computes a hash of the content using xxhash.
func ComputeHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
