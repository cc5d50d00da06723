package constants

import (
	"fmt"
	"time"
)

// Cache TTLs: staged uploads and cached reads both live one hour.
const (
	StagedFileTTL     = time.Hour
	ContractRecordTTL = time.Hour
)

// StagedFileKey names the cache entry holding raw upload bytes while a
// request is in flight. Keys are namespaced per user; uniqueness relies
// on millisecond timestamp granularity, so two uploads from the same user
// in the same millisecond would collide.
func StagedFileKey(userID string, ts time.Time) string {
	return fmt.Sprintf("file:%s:%d", userID, ts.UnixMilli())
}

// ContractRecordKey names the read-through cache entry for a persisted
// analysis, keyed by record ID.
func ContractRecordKey(id string) string {
	return fmt.Sprintf("contract:%s", id)
}
