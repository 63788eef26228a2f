package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateID returns a fresh entity id in the form
// "<unix-millis>-<random suffix>". Ids only need to be unique within one
// state document, so a millisecond timestamp plus a short random suffix is
// plenty, and the leading timestamp keeps ids roughly sortable by creation.
func GenerateID() string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), suffix)
}
