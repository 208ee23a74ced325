package pipeline

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GenerateProjectID mints a project identifier with format
// YYYYMMDD-HHMMSS-xxxxxxxx. The timestamp keeps IDs sortable by creation
// time; the uuid suffix keeps concurrent runs within the same second from
// colliding.
func GenerateProjectID() string {
	now := time.Now().UTC()
	return fmt.Sprintf("%s-%s-%s",
		now.Format("20060102"),
		now.Format("150405"),
		uuid.NewString()[:8])
}
