package qr

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/pagemint/pagemint/internal/config"
	"github.com/pagemint/pagemint/pkg/clients"
)

type Client struct {
	address string
	client  clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		address: cfg.QRAddress,
		client:  client,
	}
}

// Render fetches a QR bitmap for target at size x size pixels.
func (c *Client) Render(target string, size int) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/v1/create-qr-code/?size=%dx%d&data=%s",
		c.address, size, size, url.QueryEscape(target))

	statusCode, body, _, err := c.client.Get(endpoint, nil)
	if err != nil {
		return nil, err
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("qr renderer returned status %d", statusCode)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("qr renderer returned empty image")
	}
	return body, nil
}
