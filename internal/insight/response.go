package insight

import (
	"fmt"

	"github.com/inkstone-app/inkstone/internal/ai"
	"github.com/inkstone-app/inkstone/internal/domain"
)

// aiInsightResponse is the parsing target for the model's raw text. It
// mirrors the output contract in prompt.go exactly. The model's own
// goalTitle, if present, is ignored in favor of the stored title.
type aiInsightResponse struct {
	Reflection    []string        `json:"reflection"`
	GoalSummaries []aiGoalSummary `json:"goalSummaries"`
	Suggestion    string          `json:"suggestion"`
}

type aiGoalSummary struct {
	GoalID      string `json:"goalId"`
	Status      string `json:"status"`
	Explanation string `json:"explanation"`
}

// parseResponse parses and validates the model's raw output against the
// output contract. Any shape violation fails the whole parse; there is
// no repair beyond code-fence stripping.
func parseResponse(raw string) (*aiInsightResponse, error) {
	parsed, err := ai.ExtractJSON[aiInsightResponse](raw, validateResponse)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedAIResponse, err)
	}
	return &parsed, nil
}

func validateResponse(r aiInsightResponse) error {
	if len(r.Reflection) < 4 || len(r.Reflection) > 6 {
		return fmt.Errorf("reflection must have 4-6 bullets, got %d", len(r.Reflection))
	}
	// A missing or null goalSummaries field violates the contract even
	// though an empty array is fine.
	if r.GoalSummaries == nil {
		return fmt.Errorf("goalSummaries must be an array")
	}
	for i, gs := range r.GoalSummaries {
		if gs.GoalID == "" {
			return fmt.Errorf("goalSummaries[%d]: missing goalId", i)
		}
		if _, err := domain.ParseAlignmentStatus(gs.Status); err != nil {
			return fmt.Errorf("goalSummaries[%d]: %v", i, err)
		}
	}
	return nil
}
