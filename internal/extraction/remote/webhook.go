package remote

import (
	"context"

	"caretask/internal/extraction"
	"caretask/pkg/airesponse"
	"caretask/pkg/n8n"
)

// webhookRemote forwards the raw input to an n8n workflow.
type webhookRemote struct {
	client n8n.IWebhook
}

// NewWebhook wraps an n8n webhook client as an extraction.Remote.
func NewWebhook(client n8n.IWebhook) extraction.Remote {
	return &webhookRemote{client: client}
}

func (r *webhookRemote) Name() string { return ProviderWebhook }

func (r *webhookRemote) Process(ctx context.Context, rawInput string) (any, error) {
	body, err := r.client.SendMessage(ctx, rawInput)
	if err != nil {
		return nil, err
	}
	return airesponse.Decode(body)
}
