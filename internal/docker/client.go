package docker

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
)

// ImageAPI is the slice of the Docker SDK used by Client. It exists so
// tests can run against a mock without a Docker daemon.
type ImageAPI interface {
	ImageList(ctx context.Context, options image.ListOptions) ([]image.Summary, error)
	Close() error
}

// Client wraps the Docker SDK for image inspection.
type Client struct {
	api ImageAPI
}

// NewClient connects to the Docker daemon using the environment config.
func NewClient() (*Client, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("create docker client: %w", err)
	}

	return &Client{api: cli}, nil
}

// NewClientWithAPI creates a client over a custom API implementation,
// primarily for tests.
func NewClientWithAPI(api ImageAPI) *Client {
	return &Client{api: api}
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	if c.api == nil {
		return nil
	}
	return c.api.Close()
}

// ImageInfo summarizes one locally built image tag.
type ImageInfo struct {
	Ref     string
	ID      string
	Size    int64
	Created time.Time
}

// ListImages returns local images whose repository matches name, one
// entry per tag.
func (c *Client) ListImages(ctx context.Context, name string) ([]ImageInfo, error) {
	opts := image.ListOptions{
		Filters: filters.NewArgs(filters.Arg("reference", name)),
	}

	summaries, err := c.api.ImageList(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}

	var infos []ImageInfo
	for _, s := range summaries {
		for _, tag := range s.RepoTags {
			infos = append(infos, ImageInfo{
				Ref:     tag,
				ID:      shortID(s.ID),
				Size:    s.Size,
				Created: time.Unix(s.Created, 0),
			})
		}
	}

	return infos, nil
}

// shortID trims the sha256: prefix and truncates to the familiar
// 12-character form.
func shortID(id string) string {
	const prefix = "sha256:"
	if len(id) > len(prefix) && id[:len(prefix)] == prefix {
		id = id[len(prefix):]
	}
	if len(id) > 12 {
		id = id[:12]
	}
	return id
}
