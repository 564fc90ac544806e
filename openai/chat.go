package openai

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/rs/zerolog/log"

	"github.com/rockerto/rigbot-go/redis"
	"github.com/rockerto/rigbot-go/tenant"
)

// Respond answers a non-scheduling message with an LLM completion grounded
// in the tenant's business profile. When the model captures a lead through
// the capture_lead tool, the lead is returned alongside the reply so the
// caller can notify the owner.
func (c *Client) Respond(ctx context.Context, t *tenant.Tenant, chatHistory []redis.ChatMessage) (string, *Lead, error) {
	messages := convertChatHistory(t.Profile, chatHistory)

	chatCompletion, err := c.client.Chat.Completions.New(
		ctx,
		openai.ChatCompletionNewParams{
			Messages: messages,
			Model:    openai.ChatModelGPT4_1Mini,
			Tools:    []openai.ChatCompletionToolParam{captureLeadTool},
		},
	)
	if err != nil {
		return "", nil, err
	}

	toolCalls := chatCompletion.Choices[0].Message.ToolCalls
	if len(toolCalls) == 0 {
		return chatCompletion.Choices[0].Message.Content, nil, nil
	}

	messages = append(messages, chatCompletion.Choices[0].Message.ToParam())

	var lead *Lead
	for _, toolCall := range toolCalls {
		if toolCall.Function.Name != "capture_lead" {
			continue
		}
		if parsed := parseLead(toolCall.Function.Arguments); parsed != nil {
			lead = parsed
			log.Info().
				Str("tenant_id", t.ID).
				Str("lead_phone", parsed.Phone).
				Msg("Lead captured from conversation")
			messages = append(messages, openai.ToolMessage("Datos registrados, el negocio contactará a la persona.", toolCall.ID))
		} else {
			messages = append(messages, openai.ToolMessage("No se pudieron registrar los datos, falta el teléfono.", toolCall.ID))
		}
	}

	chatCompletion, err = c.client.Chat.Completions.New(
		ctx,
		openai.ChatCompletionNewParams{
			Messages: messages,
			Model:    openai.ChatModelGPT4_1Mini,
		},
	)
	if err != nil {
		return "", lead, err
	}

	return chatCompletion.Choices[0].Message.Content, lead, nil
}

// convertChatHistory converts stored chat messages to the OpenAI message
// format, prepending the tenant-grounded system prompt.
func convertChatHistory(p tenant.Profile, chatHistory []redis.ChatMessage) []openai.ChatCompletionMessageParamUnion {
	messages := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(buildSystemPrompt(p)),
	}
	for _, msg := range chatHistory {
		switch msg.Role {
		case "user":
			messages = append(messages, openai.UserMessage(msg.Content))
		case "assistant":
			messages = append(messages, openai.AssistantMessage(msg.Content))
		}
	}
	return messages
}
