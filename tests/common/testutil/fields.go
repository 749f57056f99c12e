//go:build unit || e2e

package testutil

// Field sets key in a request body map, or removes it when value is nil.
func Field(key string, value any) func(map[string]any) {
	return func(body map[string]any) {
		if value == nil {
			delete(body, key)
			return
		}
		body[key] = value
	}
}

// Blank sets key to an empty string, which the API treats the same as missing.
func Blank(key string) func(map[string]any) {
	return Field(key, "")
}
