package usecase

// coalesce keeps the existing value when the update leaves a field empty.
func coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}
