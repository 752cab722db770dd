// Package imgrender rasterizes markup fragments through an external
// HTTP renderer service.
package imgrender

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/cmdtree-tools/cli/internal/domain"
)

// maxImageBytes caps how much we read back from the rasterizer.
const maxImageBytes = 32 << 20

// HTTPRenderer posts markup to a rasterizer endpoint and returns the
// image bytes. Timeouts and cancellation are whatever the injected client
// and context provide; the renderer adds none of its own.
type HTTPRenderer struct {
	endpoint string
	client   *http.Client
}

// NewHTTP creates a renderer for the given endpoint. Returns nil when the
// endpoint is empty; callers treat a nil renderer as "rasterizer absent".
func NewHTTP(endpoint string, client *http.Client) *HTTPRenderer {
	if endpoint == "" {
		return nil
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPRenderer{endpoint: endpoint, client: client}
}

// Render implements domain.ImageRenderer.
func (r *HTTPRenderer) Render(ctx context.Context, markup string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("imgrender: build request: %w", err)
	}
	req.Header.Set("Content-Type", "text/html; charset=utf-8")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("imgrender: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("imgrender: rasterizer returned %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("imgrender: read image: %w", err)
	}

	return data, nil
}

// ArtifactPath returns out unchanged when set, otherwise a fresh
// collision-free file name in the working directory.
func ArtifactPath(out string) string {
	if out != "" {
		return out
	}
	return fmt.Sprintf("tree-%s.png", uuid.NewString())
}

// WriteArtifact stores the rendered image on disk.
func WriteArtifact(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("imgrender: write artifact: %w", err)
	}
	return nil
}

// Verify HTTPRenderer implements domain.ImageRenderer.
var _ domain.ImageRenderer = (*HTTPRenderer)(nil)
