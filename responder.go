package main

import (
	"context"
	"errors"
	"fmt"

	"kisanmitra/agri"
)

// responder answers a chat message in the preferred language. The variant is
// chosen once at startup based on whether an AI credential is configured;
// both resolve every failure to a user-displayable string.
type responder interface {
	Respond(ctx context.Context, message, langCode string) string
}

// offlineResponder serves canned answers from the keyword knowledge base.
type offlineResponder struct{}

func (*offlineResponder) Respond(_ context.Context, message, _ string) string {
	return agri.MatchKnowledge(message)
}

const chatPromptTemplate = `You are a helpful farming assistant for Indian farmers.
Answer the following question about agriculture in %s.
Keep your response concise and practical.

Question: %s`

// Apology strings for the online path. Errors never reach the caller.
const (
	msgUpstreamError = "Error: %s."
	msgNoAnswer      = "Sorry, I couldn't generate a response."
	msgNoConnection  = "Sorry, I couldn't connect to the server."
)

// onlineResponder relays the question to Gemini with the target language
// baked into the prompt.
type onlineResponder struct {
	client *GeminiClient
}

func (r *onlineResponder) Respond(ctx context.Context, message, langCode string) string {
	prompt := fmt.Sprintf(chatPromptTemplate, agri.LanguageName(langCode), message)

	text, err := r.client.Generate(ctx, []geminiPart{textPart(prompt)})
	if err == nil {
		return text
	}

	var upstream *UpstreamError
	switch {
	case errors.As(err, &upstream):
		return fmt.Sprintf(msgUpstreamError, upstream.Message)
	case errors.Is(err, ErrNoCandidates):
		return msgNoAnswer
	default:
		return msgNoConnection
	}
}
