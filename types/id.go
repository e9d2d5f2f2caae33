package types

import "strconv"

// IDPrefix is prepended to every generated article identifier.
const IDPrefix = "news_"

// GenerateID derives a stable, compact identifier from an article's source URL.
// The same URL always maps to the same ID across fetches. The hash is a 32-bit
// rolling hash; collisions are theoretically possible and are not resolved.
func GenerateID(url string) string {
	var h int32
	for _, c := range url {
		h = h<<5 - h + int32(c)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return IDPrefix + strconv.FormatInt(v, 36)
}
