package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/bayesimpact/gitreview/pkg/domain/interfaces"
	"github.com/bayesimpact/gitreview/pkg/domain/types"
	"github.com/bayesimpact/gitreview/pkg/utils/safe"
)

// HTTPClient is the part of http.Client the Slack client needs.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client posts messages to Slack through an incoming webhook.
type Client struct {
	webhookURL types.SlackWebhookURL
	httpClient HTTPClient
}

var _ interfaces.Notifier = (*Client)(nil)

type Option func(*Client)

func WithHTTPClient(httpClient HTTPClient) Option {
	return func(x *Client) {
		x.httpClient = httpClient
	}
}

func New(webhookURL types.SlackWebhookURL, options ...Option) (*Client, error) {
	if webhookURL == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "slack webhook URL is empty")
	}

	client := &Client{
		webhookURL: webhookURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range options {
		opt(client)
	}
	return client, nil
}

type payload struct {
	Channel types.SlackChannel `json:"channel"`
	Text    string             `json:"text"`
}

// Post delivers one message to one channel. Any non-200 response is an
// error surfaced to the caller.
func (x *Client) Post(ctx context.Context, channel types.SlackChannel, text string) error {
	body, err := json.Marshal(payload{Channel: channel, Text: text})
	if err != nil {
		return goerr.Wrap(err, "marshaling slack payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, string(x.webhookURL), bytes.NewReader(body))
	if err != nil {
		return goerr.Wrap(err, "building slack request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "posting to slack")
	}
	defer safe.Close(resp.Body)

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return goerr.New("slack webhook refused the message",
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(respBody)),
			goerr.V("channel", channel),
		)
	}

	return nil
}
