package window

// Fallback window size when no monitor geometry is available.
const (
	FallbackWidth  = 1280
	FallbackHeight = 800
)

// Size picks the initial window size from the primary monitor geometry.
// Non-positive dimensions fall back individually.
func Size(monitorWidth, monitorHeight int) (width, height int) {
	width, height = monitorWidth, monitorHeight
	if width <= 0 {
		width = FallbackWidth
	}
	if height <= 0 {
		height = FallbackHeight
	}
	return width, height
}
