package utils

// SafeSlice 返回前 max 个元素，不足 max 个时原样返回
func SafeSlice[T any](slice []T, max int) []T {
	if max < 0 {
		max = 0
	}
	if len(slice) < max {
		return slice
	}
	return slice[:max]
}
