package logging

// TruncateURL shortens u to at most maxLen bytes for log output,
// appending "..." when it was cut.
func TruncateURL(u string, maxLen int) string {
	if maxLen <= 3 || len(u) <= maxLen {
		return u
	}
	return u[:maxLen-3] + "..."
}
