package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// ErrNotConfigured is returned when no provider credential was supplied.
// The client fails closed: no network call is attempted without a key.
var ErrNotConfigured = errors.New("llm provider credential not configured")

// Request carries everything needed to compose one model invocation.
// Context is the optional grounding fact string; nil means the model
// answers without database facts.
type Request struct {
	SystemInstruction string
	Directive         string
	Query             string
	Context           *string
}

// CompletionKind discriminates the possible shapes of a provider answer.
type CompletionKind int

const (
	// CompletionText carries usable model output.
	CompletionText CompletionKind = iota
	// CompletionRejected means the provider's own safety filter declined
	// to answer.  This is a displayable outcome, not a transport failure.
	CompletionRejected
	// CompletionEmpty means the provider returned no usable text and no
	// safety flag.
	CompletionEmpty
)

// Completion is the adapter-level result of a provider call.  The sanitizer
// operates on this closed type instead of probing the SDK response shape.
type Completion struct {
	Kind CompletionKind
	Text string
}

// Client defines the single operation the assistant needs from a model
// provider.
type Client interface {
	Generate(ctx context.Context, req Request) (Completion, error)
}

// chatCompleter is the slice of the OpenAI SDK the client uses.  Narrowing
// it to one method lets tests substitute a counting double.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIClient calls an OpenAI-compatible chat completion API with fixed,
// low-variance generation parameters.
type OpenAIClient struct {
	api        chatCompleter
	model      string
	timeout    time.Duration
	configured bool
}

// NewOpenAIClient constructs the provider client.  The credential is
// injected here, once, at startup; an empty key produces a client whose
// Generate immediately returns ErrNotConfigured.
func NewOpenAIClient(apiKey, model string, timeout time.Duration) *OpenAIClient {
	c := &OpenAIClient{model: model, timeout: timeout}
	if apiKey != "" {
		c.api = openai.NewClient(apiKey)
		c.configured = true
	}
	return c
}

// Generate composes the grounded prompt and performs one blocking provider
// call bounded by the configured timeout.  Temperature and the output-length
// ceiling are fixed to bias toward terse, factual phrasing.
func (c *OpenAIClient) Generate(ctx context.Context, req Request) (Completion, error) {
	if !c.configured || c.api == nil {
		return Completion{}, ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.SystemInstruction + "\n\n" + req.Directive},
			{Role: openai.ChatMessageRoleUser, Content: ComposePrompt(req)},
		},
		Temperature: 0.2,
		MaxTokens:   600,
	})
	if err != nil {
		return Completion{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Completion{Kind: CompletionEmpty}, nil
	}

	choice := resp.Choices[0]
	if choice.FinishReason == openai.FinishReasonContentFilter {
		return Completion{Kind: CompletionRejected, Text: choice.Message.Content}, nil
	}
	if strings.TrimSpace(choice.Message.Content) == "" {
		return Completion{Kind: CompletionEmpty}, nil
	}
	return Completion{Kind: CompletionText, Text: choice.Message.Content}, nil
}

// ComposePrompt builds the user message: the original query plus, when
// grounding facts are available, a delimited database-context block with a
// mandatory-use instruction.
func ComposePrompt(req Request) string {
	var b strings.Builder
	b.WriteString("Consulta del Usuario: ")
	b.WriteString(req.Query)
	b.WriteString("\n\n")
	if req.Context != nil {
		b.WriteString("CONTEXTO DE LA BASE DE DATOS PARA RESPONDER (usa estos datos obligatoriamente):\n")
		b.WriteString(*req.Context)
		b.WriteString("\n\n")
	}
	return b.String()
}
