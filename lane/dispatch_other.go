//go:build !amd64 && !arm64

package lane

func init() {
	// Other architectures fall back to scalar mode for now.
	currentLevel = DispatchScalar
	currentWidth = 16 // Use 16-byte vectors even in scalar mode for consistency
	currentName = "scalar"
}
