package guest

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// newGuestID synthesizes a local id for an entry that has no server id yet.
// The prefix marks it as non-server-authoritative.
func newGuestID() string {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("guest-%d", time.Now().UTC().UnixNano())
	}
	return fmt.Sprintf("guest-%d-%s", time.Now().UTC().UnixMilli(), hex.EncodeToString(b[:]))
}
