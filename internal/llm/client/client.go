package client

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"elemental/internal/models"
)

// ErrEmptyResult is returned when the model answered with no content.
var ErrEmptyResult = errors.New("model returned an empty result")

// NewOpenAIChatModel builds a chat model for the OpenAI-compatible endpoint and
// model named in the configuration record.
func NewOpenAIChatModel(ctx context.Context, record models.ConfigRecord, apiKey string) (model.BaseChatModel, error) {
	cm, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:  apiKey,
		BaseURL: record.BaseURL,
		Model:   record.Model,
	})
	if err != nil {
		log.Printf("Error creating OpenAI chat model: %v", err)
		return nil, err
	}
	return cm, nil
}

// BuildMessages turns the configuration into a few-shot conversation: the
// system prompt, one user/assistant turn per example, then the input.
func BuildMessages(record models.ConfigRecord, input string) []*schema.Message {
	messages := make([]*schema.Message, 0, len(record.Examples)*2+2)
	if strings.TrimSpace(record.SystemMsg) != "" {
		messages = append(messages, schema.SystemMessage(record.SystemMsg))
	}
	for _, ex := range record.Examples {
		messages = append(messages,
			schema.UserMessage(ex.FromStr),
			schema.AssistantMessage(ex.ResultStr, nil),
		)
	}
	return append(messages, schema.UserMessage(input))
}

// Combiner asks a chat model for the result of combining elements.
type Combiner struct {
	Model model.BaseChatModel
}

func NewCombiner(m model.BaseChatModel) *Combiner {
	return &Combiner{Model: m}
}

// Combine returns the first non-empty line of the model's answer.
func (c *Combiner) Combine(ctx context.Context, record models.ConfigRecord, input string) (string, error) {
	msg, err := c.Model.Generate(ctx, BuildMessages(record, input))
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}
	if msg == nil {
		return "", ErrEmptyResult
	}
	for _, line := range strings.Split(msg.Content, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line, nil
		}
	}
	return "", ErrEmptyResult
}

// FormatInput joins element names the way the example pairs are written.
func FormatInput(elements ...string) string {
	parts := make([]string, 0, len(elements))
	for _, e := range elements {
		if e = strings.TrimSpace(e); e != "" {
			parts = append(parts, e)
		}
	}
	return strings.Join(parts, " + ")
}
