package booking

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

const (
	referencePrefix = "CIN"
	// referenceRetries bounds the regenerate-and-retry loop when the
	// generated number collides with an existing booking.
	referenceRetries = 3
)

// generateReferenceNumber builds a human-readable booking reference:
// prefix, the last 8 digits of the current unix-milli timestamp, and 4
// random digits. Collisions are possible but rare; the UNIQUE column
// plus the caller's retry loop handles them.
func generateReferenceNumber() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 10)
	if len(ts) > 8 {
		ts = ts[len(ts)-8:]
	}
	return fmt.Sprintf("%s-%s%04d", referencePrefix, ts, rand.Intn(10000))
}
