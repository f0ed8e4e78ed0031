package instance

import (
	"os"

	"github.com/google/uuid"
)

// GetID returns the process instance identifier. DYNO wins over STOREFRONT_INSTANCE_ID;
// without either a random id is generated so log lines from separate processes stay distinct.
func GetID() string {
	for _, key := range []string{"DYNO", "STOREFRONT_INSTANCE_ID"} {
		if id := os.Getenv(key); id != "" {
			return id
		}
	}
	return "local-" + uuid.NewString()[:8]
}
