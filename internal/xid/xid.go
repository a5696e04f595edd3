package xid

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// New returns a prefixed identifier that sorts roughly by creation time.
func New(prefix string) string {
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixNano(), uuid.NewString()[:8])
}
