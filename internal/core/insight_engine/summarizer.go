package insight_engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gecf-kip/insight/internal/core"
)

// NoRelevantContent is the fixed summary returned when no page mentioned any
// registry entity. The provider is never contacted in that case.
const NoRelevantContent = "No relevant content found for the configured entities."

// Summarizer turns an assembled context into prose via the completion
// provider. A single outbound call per invocation; failures are classified
// and terminal for the request, with no retry here.
type Summarizer struct {
	llm      core.LLMProvider
	template string
	timeout  time.Duration
}

func NewSummarizer(llm core.LLMProvider, template string, timeout time.Duration) *Summarizer {
	return &Summarizer{llm: llm, template: template, timeout: timeout}
}

// Summarize generates a summary of contextText grounded on the matched
// entities. An empty context short-circuits to NoRelevantContent.
func (s *Summarizer) Summarize(ctx context.Context, contextText string, entities []string) (string, error) {
	if contextText == "" {
		return NoRelevantContent, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	userPrompt := buildUserPrompt(contextText, entities)
	summary, err := s.llm.Generate(ctx, s.template, userPrompt)
	if err != nil {
		return "", core.ClassifySummarization(err)
	}
	if strings.TrimSpace(summary) == "" {
		return "", &core.SummarizationError{
			Kind: core.SummarizationMalformed,
			Err:  fmt.Errorf("provider returned no text"),
		}
	}
	return summary, nil
}

func buildUserPrompt(contextText string, entities []string) string {
	var sb strings.Builder
	if len(entities) > 0 {
		sb.WriteString("Countries of interest: ")
		sb.WriteString(strings.Join(entities, ", "))
		sb.WriteString("\n\n")
	}
	sb.WriteString("CONTEXT:\n")
	sb.WriteString(contextText)
	return sb.String()
}
