package usage

// RenderingUnavailable is returned when image output is requested but no
// rasterizer endpoint is configured. Silently degrading to text would
// surprise a caller who explicitly asked for an image.
func RenderingUnavailable() *Error {
	return &Error{
		Kind:    ErrRenderingUnavailable,
		Message: "cmdtree: image rendering requested but no rasterizer is configured (set renderer_url)",
	}
}
