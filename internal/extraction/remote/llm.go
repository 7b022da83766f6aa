package remote

import (
	"context"
	"fmt"

	"caretask/internal/extraction"
	"caretask/pkg/airesponse"
	"caretask/pkg/llmprovider"
)

const llmTemperature = 0.2

// llmRemote asks a language model, or a chain of them, for the
// {"tasks", "summary"} shape.
type llmRemote struct {
	provider llmprovider.Provider
}

// NewLLM wraps an llmprovider.Provider as an extraction.Remote.
func NewLLM(provider llmprovider.Provider) extraction.Remote {
	return &llmRemote{provider: provider}
}

func (r *llmRemote) Name() string { return r.provider.Name() }

func (r *llmRemote) Process(ctx context.Context, rawInput string) (any, error) {
	resp, err := r.provider.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: SystemPrompt,
		Prompt:            BuildPrompt(rawInput),
		Temperature:       llmTemperature,
		JSONOutput:        true,
	})
	if err != nil {
		return nil, err
	}
	return decodeLLMText(resp.Text)
}

// decodeLLMText parses model output as JSON after removing code fences or
// surrounding prose. Text that still is not JSON is handed on as a plain
// string so numbered lists in prose can be recovered.
func decodeLLMText(text string) (any, error) {
	if text == "" {
		return nil, fmt.Errorf("empty response from LLM")
	}
	if v, err := airesponse.Decode([]byte(sanitizeJSONResponse(text))); err == nil {
		return v, nil
	}
	return text, nil
}
