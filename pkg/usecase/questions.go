package usecase

import (
	"fmt"

	"github.com/tribu-ai/tribuai/pkg/domain/types"
)

// CategoryPrompt controls how the engine asks about a missing category.
// Topic is the human phrase substituted into the standard question templates.
// Question, when set, replaces the templates entirely and is used verbatim.
type CategoryPrompt struct {
	Topic    string
	Question string
}

func defaultCategoryPrompts() map[types.Category]CategoryPrompt {
	return map[types.Category]CategoryPrompt{
		types.CategoryMusic:     {Topic: "music"},
		types.CategoryArt:       {Topic: "art and aesthetics"},
		types.CategoryFashion:   {Topic: "fashion and style"},
		types.CategoryValues:    {Topic: "values and causes"},
		types.CategoryPlaces:    {Topic: "places and destinations"},
		types.CategoryAudiences: {Topic: "communities"},
	}
}

// questionFor renders the clarifying question for a missing category. When the
// session already carries conversational context, the question references it
// to keep the exchange personal; otherwise a context-free form is used.
func (uc *ConversationUseCase) questionFor(cat types.Category, context string) string {
	prompt, ok := uc.prompts[cat]
	if !ok {
		prompt = CategoryPrompt{Topic: string(cat)}
	}
	if prompt.Question != "" {
		return prompt.Question
	}
	if context != "" {
		return fmt.Sprintf("Based on your interest in %s, what kind of %s do you love?", context, prompt.Topic)
	}
	return fmt.Sprintf("What kind of %s do you love?", prompt.Topic)
}
