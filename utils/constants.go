// File: utils/constants.go
package utils

import "time"

// DoctorCachePrefix is the prefix used for Redis doctor cache keys.
const DoctorCachePrefix = "doctor:"

// ScheduleCachePrefix is the prefix used for Redis schedule cache keys.
const ScheduleCachePrefix = "schedule:"

// ProfileCacheTTL is the time-to-live for cached doctor and schedule entries.
const ProfileCacheTTL = 10 * time.Minute
