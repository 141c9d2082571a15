package hashutil

import (
	"crypto/sha256"
	"fmt"
	"strings"
)

// uidDomain is the right-hand side of generated event UIDs.
const uidDomain = "nickel"

// StableUID derives an event UID from parts, so exporting the same event
// twice yields the same UID and calendar apps update instead of duplicating.
func StableUID(parts ...string) string {
	hash := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return fmt.Sprintf("%x@%s", hash[:8], uidDomain)
}

// UIDSequence returns a func handing out seeds' UIDs in order. Once the seeds
// are used up it keeps numbering from the last seed.
func UIDSequence(seeds []string) func() string {
	i := 0
	return func() string {
		var uid string
		switch {
		case i < len(seeds):
			uid = StableUID(seeds[i])
		case len(seeds) > 0:
			uid = StableUID(seeds[len(seeds)-1], fmt.Sprint(i))
		default:
			uid = StableUID(fmt.Sprint(i))
		}
		i++
		return uid
	}
}
