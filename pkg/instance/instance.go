package instance

import "os"

// GetID identifies this process in logs. VELORA_INSTANCE_ID wins, then the
// hostname (pod name under kubernetes), then a fixed fallback.
func GetID() string {
	if id := os.Getenv("VELORA_INSTANCE_ID"); id != "" {
		return id
	}
	if host, err := os.Hostname(); err == nil && host != "" {
		return host
	}
	return "velora-0"
}
