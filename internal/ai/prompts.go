// Prompt templates for the chat providers. The wording tracks the behavior
// the assistant is expected to keep: brief location blurb plus flight
// options, with intent-specific focus mixed in by the router.
package ai

import "fmt"

// systemPrompt constrains response shape and tone for free-text providers.
const systemPrompt = `You are a friendly travel assistant. Keep your responses extremely brief and only focus on:
1. Very brief comment about the location (1 short sentence)
2. Quick overview of flight options (1-2 flight options with prices)

Example response: "Paris is the beautiful capital of France. Direct flights available from $400 (8h) or $550 (7h) with Air France."

Keep it conversational and simple. No extra details about culture, weather, or other topics.`

// jsonInstruction is appended for providers queried in JSON mode.
const jsonInstruction = `
Respond in JSON format with: { "message": { "role": "assistant", "content": "your response", "timestamp": timestamp }, "location": "mentioned location" }`

// BudgetPrompt frames a budget-focused travel query.
func BudgetPrompt(message string) string {
	return fmt.Sprintf(`You are a travel assistant. Please provide helpful budget travel advice for this query: %s.
Include specific suggestions about destinations, accommodation, and activities within their budget range.
Keep the response focused on practical travel advice.`, message)
}

// CulturalPrompt frames a culture/language query.
func CulturalPrompt(message string) string {
	return fmt.Sprintf(`You are a travel assistant. Please provide accurate cultural and language information for this query: %s.
Include specific details about languages spoken, cultural practices, and important customs.
Keep the response informative and respectful.`, message)
}

// NearbyPrompt frames a nearby-place query for a specific category.
func NearbyPrompt(message, category string) string {
	return fmt.Sprintf(`You are a travel assistant. The user is looking for %s options close to them or to a destination. Query: %s.
Suggest a few well-known %s places a traveler would look for, with one practical tip each.
Keep the response short and actionable.`, category, message, category)
}

// GeneralPrompt frames the default travel-advice query.
func GeneralPrompt(message string) string {
	return fmt.Sprintf(`You are a travel assistant. Please provide helpful travel information for this query: %s.
Include specific details about destinations, attractions, and practical travel tips.
Keep the response focused on travel advice.`, message)
}

// WithLanguage asks the model to answer in the caller's language. English and
// empty tags leave the prompt untouched.
func WithLanguage(prompt, language string) string {
	if language == "" || language == "en" {
		return prompt
	}
	return fmt.Sprintf("%s\nRespond in the language with BCP 47 tag %q.", prompt, language)
}
