// Package gemini answers questions about courseware pages with Google
// Gemini, using the page summary as context.
package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/cwsummary"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Asker implements cwsummary.Asker at compile time.
var _ cwsummary.Asker = (*Asker)(nil)

// Asker implements cwsummary.Asker using Google Gemini.
type Asker struct {
	client *genai.Client
	model  string
}

// NewAsker creates a new Asker. An empty model selects DefaultModel.
func NewAsker(client *genai.Client, model string) *Asker {
	if model == "" {
		model = DefaultModel
	}
	return &Asker{client: client, model: model}
}

// NewClient creates a Gemini API client for apiKey, typically the key stored
// in the page's range config.
func NewClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	if apiKey == "" {
		return nil, cwsummary.Errorf(cwsummary.EINVALID, "API key required")
	}
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
}

// Ask answers question using summary as the only context.
func (a *Asker) Ask(ctx context.Context, summary, question string) (string, error) {
	if strings.TrimSpace(summary) == "" {
		return "", cwsummary.Errorf(cwsummary.EINVALID, "summary required")
	}
	if strings.TrimSpace(question) == "" {
		return "", cwsummary.Errorf(cwsummary.EINVALID, "question required")
	}

	result, err := a.client.Models.GenerateContent(ctx, a.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildUserPrompt(summary, question)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", cwsummary.Errorf(cwsummary.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a teaching assistant answering questions about a course page. Answer based only on the page content provided. If the answer is not in the page, say so.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing the page summary and
// the question.
func BuildUserPrompt(summary, question string) string {
	var sb strings.Builder
	sb.WriteString("<page>\n")
	sb.WriteString(summary)
	sb.WriteString("\n</page>\n\n")
	sb.WriteString("Question: ")
	sb.WriteString(question)
	return sb.String()
}
