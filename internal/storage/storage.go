package storage

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/pagemint/pagemint/internal/config"
	"github.com/pagemint/pagemint/pkg/clients"
)

// Object storage namespaces. Image assets and rendered pages live in
// separate buckets with independent public prefixes.
const (
	NamespaceImages = "images"
	NamespaceSites  = "sites"
)

type Client struct {
	address string
	key     string
	client  clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		address: cfg.StorageAddress,
		key:     cfg.StorageKey,
		client:  client,
	}
}

// Upload stores data under namespace/path and returns its public URL.
func (c *Client) Upload(ctx context.Context, namespace, path string, data []byte, contentType string) (string, error) {
	url := fmt.Sprintf("%s/object/%s/%s", c.address, namespace, path)

	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+c.key)
	headers.Set("Content-Type", contentType)

	statusCode, body, err := c.client.Post(url, headers, data)
	if err != nil {
		zap.L().Error("storage upload failed", zap.String("path", path), zap.Error(err))
		return "", err
	}
	if statusCode != http.StatusOK && statusCode != http.StatusCreated {
		zap.L().Error("storage upload rejected",
			zap.String("path", path),
			zap.Int("status", statusCode),
			zap.ByteString("body", body),
		)
		return "", fmt.Errorf("storage returned status %d for %s", statusCode, path)
	}
	return c.PublicURL(namespace, path), nil
}

// PublicURL returns the public address of an object without touching
// the storage service.
func (c *Client) PublicURL(namespace, path string) string {
	return fmt.Sprintf("%s/object/public/%s/%s", c.address, namespace, path)
}

// Remove deletes one object. Used for best-effort cleanup only;
// callers log and continue on error.
func (c *Client) Remove(ctx context.Context, namespace, path string) error {
	url := fmt.Sprintf("%s/object/%s/%s", c.address, namespace, path)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, http.NoBody)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.key)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("storage returned status %d for delete %s", resp.StatusCode, path)
	}
	return nil
}
