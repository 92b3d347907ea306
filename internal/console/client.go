package console

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/callebjorkell/openlcd/internal/device"
	"github.com/pkg/errors"
)

// Client talks to the console of a running device.
type Client struct {
	BaseUrl *url.URL
}

func NewClient(baseUrl string) (*Client, error) {
	u, err := url.Parse(baseUrl)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid console URL %s", baseUrl)
	}
	return &Client{BaseUrl: u}, nil
}

func (c *Client) Do(r *http.Request, responseBody any) error {
	resp, err := http.DefaultClient.Do(r)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("console responded with %s", resp.Status)
	}
	if responseBody == nil {
		return nil
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if raw, ok := responseBody.(*[]byte); ok {
		*raw = payload
		return nil
	}
	return json.Unmarshal(payload, responseBody)
}

func (c *Client) Snapshot(ctx context.Context) (device.Snapshot, error) {
	var s device.Snapshot
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseUrl.JoinPath("settings").String(), nil)
	if err != nil {
		return s, err
	}
	req.Header.Set("Accept", "application/json")
	err = c.Do(req, &s)
	return s, err
}

func (c *Client) Dump(ctx context.Context) (string, error) {
	var dump []byte
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseUrl.JoinPath("eeprom").String(), nil)
	if err != nil {
		return "", err
	}
	err = c.Do(req, &dump)
	return string(dump), err
}

// Write sends bytes to the device as if they came from the host.
func (c *Client) Write(ctx context.Context, p []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseUrl.JoinPath("write").String(), bytes.NewReader(p))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	return c.Do(req, nil)
}
