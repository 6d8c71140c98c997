// Package mapper holds generic slice-mapping helpers used between the
// persistence, domain and DTO layers.
package mapper

// MapSlice applies mapFunc to each element. An empty or nil input yields an
// empty, non-nil slice so that JSON lists render as [] rather than null.
func MapSlice[T any, R any](items []T, mapFunc func(T) R) []R {
	result := make([]R, 0, len(items))
	for _, item := range items {
		result = append(result, mapFunc(item))
	}
	return result
}

// GroupBy buckets items by key while preserving their original order.
func GroupBy[T any, K comparable](items []T, key func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, item := range items {
		k := key(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}
