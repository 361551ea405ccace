// Package cache holds rasterized label masks between draws.
//
// Cache is a thread-safe map with a soft size limit. When the limit is
// exceeded the least recently used quarter of the entries is dropped.
//
//	masks := cache.New[string, *image.Alpha](256)
//	m, err := masks.GetOrCreate("+30", render)
package cache
