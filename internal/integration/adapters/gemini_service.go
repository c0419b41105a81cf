// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/lopesbrenda/FinApp/internal/application/adapter"
	"github.com/lopesbrenda/FinApp/internal/domain/entity"
)

// GeminiService implements the AssistantService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey, modelName string) *GeminiService {
	if modelName == "" {
		modelName = "gemini-2.5-flash-lite"
	}
	return &GeminiService{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Reply generates an assistant reply to the user's message, grounded in the
// snapshot of goals and recent transactions.
func (s *GeminiService) Reply(ctx context.Context, message string, assistantCtx *adapter.AssistantContext) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.7)

	prompt := s.buildPrompt(message, assistantCtx)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	reply, err := s.parseResponse(resp)
	if err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	return reply, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiService) buildPrompt(message string, assistantCtx *adapter.AssistantContext) string {
	var sb strings.Builder

	sb.WriteString(`You are a personal finance assistant inside a budgeting app. You help the user understand their savings goals, recurring transactions, and spending.

RULES:
- Answer in the user's language.
- Be concise and practical; no generic financial disclaimers.
- Ground every number in the data below. If the data does not cover the question, say so instead of guessing.
- Never invent transactions, goals, or amounts.
- Amounts are in ` + assistantCtx.CurrencyCode + `.

`)

	sb.WriteString("SAVINGS GOALS:\n")
	if len(assistantCtx.Goals) == 0 {
		sb.WriteString("(no goals)\n")
	}
	for _, g := range assistantCtx.Goals {
		state := "active"
		if g.Archived {
			state = "archived"
		} else if g.IsComplete() {
			state = "completed"
		}
		sb.WriteString(fmt.Sprintf("- %q: target %.2f, saved %.2f, monthly plan %.2f, %s",
			g.Name, g.TargetAmount, g.CurrentAmount, g.MonthlyContribution, state))
		if g.DueDate != nil {
			sb.WriteString(", due " + g.DueDate.Format(time.DateOnly))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\nRECENT TRANSACTIONS (including projected recurring occurrences):\n")
	if len(assistantCtx.Recent) == 0 {
		sb.WriteString("(no transactions)\n")
	}
	for _, occ := range assistantCtx.Recent {
		kind := ""
		if occ.VirtualOccurrence {
			kind = ", recurring"
		}
		sb.WriteString(fmt.Sprintf("- %s: %q %s %s (%s%s)\n",
			occ.Date.Format(time.DateOnly), occ.Description, occ.Amount.StringFixed(2), string(occ.Type), occ.Category, kind))
	}

	if len(assistantCtx.History) > 0 {
		sb.WriteString("\nCONVERSATION SO FAR:\n")
		for _, m := range assistantCtx.History {
			sb.WriteString(fmt.Sprintf("%s: %s\n", senderLabel(m.Sender), m.Message))
		}
	}

	sb.WriteString("\nUSER MESSAGE:\n")
	sb.WriteString(message)
	sb.WriteString("\n")

	return sb.String()
}

func senderLabel(sender entity.ChatSender) string {
	if sender == entity.ChatSenderAssistant {
		return "Assistant"
	}
	return "User"
}

// parseResponse extracts the reply text from the Gemini response.
func (s *GeminiService) parseResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from gemini")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	reply := strings.TrimSpace(sb.String())
	if reply == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return reply, nil
}
