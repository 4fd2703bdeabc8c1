// Package intent classifies free-text travel messages into a closed set of
// intents and extracts a best-effort location mention.
//
// Classification is priority-ordered keyword/substring matching: greeting and
// gratitude checks short-circuit before any AI provider is consulted, then
// nearby-place, budget, and cultural checks route to category-specific
// prompts, with a generic travel query as the fallback.
//
// Location extraction is a regex heuristic, not a named-entity recognizer.
// Multi-word or punctuated names, and locations mentioned mid-sentence
// without a trigger preposition, are frequently missed. That boundary is
// deliberate and pinned by tests; absence of a match degrades to nil.
package intent

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Intent is the classified purpose of a user chat message.
type Intent int

const (
	// General is the fallback travel-advice intent.
	General Intent = iota
	// Greeting short-circuits with a canned welcome.
	Greeting
	// Thanks short-circuits with a canned acknowledgment.
	Thanks
	// Nearby asks for places of a category close to a location.
	Nearby
	// Budget asks for cost-focused travel advice.
	Budget
	// Cultural asks about languages, customs, or traditions.
	Cultural
)

// String returns a stable lowercase name for the intent.
func (i Intent) String() string {
	switch i {
	case Greeting:
		return "greeting"
	case Thanks:
		return "thanks"
	case Nearby:
		return "nearby"
	case Budget:
		return "budget"
	case Cultural:
		return "cultural"
	default:
		return "general"
	}
}

// Result is the outcome of classifying one message.
type Result struct {
	Intent   Intent
	Location *string // best-effort extraction, may be nil
	Category *string // set only for Nearby
}

// Keyword sets, checked in priority order. Greeting matches by prefix, the
// rest by substring, mirroring how users actually phrase these.
var (
	greetings       = []string{"hello", "hi", "hey", "hola", "greetings"}
	thankYouPhrases = []string{"thank you", "thanks", "thx", "thank"}
	proximityWords  = []string{"nearby", "close", "around", "near", "local", "proximity"}
	budgetKeywords  = []string{"budget", "cost", "cheap", "expensive", "afford", "price"}
	culturalWords   = []string{"language", "culture", "speak", "tradition", "custom"}

	// categoryKeywords maps a nearby-place category to its trigger words.
	categoryKeywords = map[string][]string{
		"education":  {"school", "university", "college", "education", "study"},
		"healthcare": {"hospital", "clinic", "doctor", "medical", "pharmacy", "health"},
		"tourism":    {"museum", "attraction", "landmark", "sightseeing", "monument", "tour"},
		"dining":     {"restaurant", "food", "eat", "dining", "cafe", "cuisine"},
		"shopping":   {"mall", "shop", "market", "store", "shopping"},
	}

	// categoryOrder fixes the category check sequence so classification is
	// deterministic when a message matches several sets.
	categoryOrder = []string{"education", "healthcare", "tourism", "dining", "shopping"}
)

// Classify maps a raw message to an intent plus optional location/category.
// It never fails; unmatched messages become General with nil extras.
func Classify(message string) Result {
	lower := strings.ToLower(strings.TrimSpace(message))

	res := Result{Intent: General, Location: ExtractLocation(message)}

	for _, g := range greetings {
		if strings.HasPrefix(lower, g) {
			res.Intent = Greeting
			return res
		}
	}

	for _, p := range thankYouPhrases {
		if strings.Contains(lower, p) {
			res.Intent = Thanks
			return res
		}
	}

	if containsAny(lower, proximityWords) {
		for _, cat := range categoryOrder {
			if containsAny(lower, categoryKeywords[cat]) {
				c := cat
				res.Intent = Nearby
				res.Category = &c
				return res
			}
		}
	}

	if containsAny(lower, budgetKeywords) {
		res.Intent = Budget
		return res
	}

	if containsAny(lower, culturalWords) {
		res.Intent = Cultural
		return res
	}

	return res
}

var (
	// bareLocationRE: a message that is nothing but letters and spaces can be
	// a bare destination ("Paris", "New York").
	bareLocationRE = regexp.MustCompile(`^[A-Za-z]+(?: [A-Za-z]+)*$`)

	// phraseLocationRE: text following an explicit request phrase.
	phraseLocationRE = regexp.MustCompile(`(?i)\b(?:i want to visit|show me|tell me about)\s+([A-Za-z]+(?:\s+[A-Za-z]+)*)`)

	// prepLocationRE: a capitalized run following a trigger preposition.
	// Case-sensitive on purpose so "in the city" does not capture "the".
	prepLocationRE = regexp.MustCompile(`\b(?:in|at|about|show)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`)
)

// titleCase normalizes a bare destination to title case. cases.Caser carries
// transformer state, so a fresh one is built per call to stay safe under
// concurrent requests.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// ExtractLocation pulls a candidate location out of a message, or nil.
//
// Order of attempts:
//  1. the whole trimmed message, when it is a short pure-letters phrase that
//     is not itself made of routing keywords;
//  2. text following "i want to visit" / "show me" / "tell me about";
//  3. a capitalized run after "in", "at", "about", or "show".
func ExtractLocation(message string) *string {
	msg := strings.TrimSpace(message)
	if msg == "" {
		return nil
	}

	if bareLocationRE.MatchString(msg) {
		words := strings.Fields(msg)
		if len(words) <= 3 && !anyWordIsKeyword(words) {
			loc := titleCase(strings.ToLower(msg))
			return &loc
		}
	}

	if m := phraseLocationRE.FindStringSubmatch(msg); len(m) > 1 {
		loc := strings.TrimSpace(m[1])
		if loc != "" {
			return &loc
		}
	}

	if m := prepLocationRE.FindStringSubmatch(msg); len(m) > 1 {
		loc := strings.TrimSpace(m[1])
		if loc != "" {
			return &loc
		}
	}

	return nil
}

// containsAny reports whether s contains any of the given substrings.
func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// anyWordIsKeyword reports whether any word belongs to a routing keyword set,
// which disqualifies the message from being treated as a bare destination.
func anyWordIsKeyword(words []string) bool {
	for _, w := range words {
		lw := strings.ToLower(w)
		if inSet(lw, greetings) || inSet(lw, proximityWords) ||
			inSet(lw, budgetKeywords) || inSet(lw, culturalWords) ||
			lw == "thanks" || lw == "thank" || lw == "thx" {
			return true
		}
		for _, cat := range categoryOrder {
			for _, kw := range categoryKeywords[cat] {
				if strings.Contains(lw, kw) {
					return true
				}
			}
		}
	}
	return false
}

// inSet reports exact membership of w in set.
func inSet(w string, set []string) bool {
	for _, s := range set {
		if w == s {
			return true
		}
	}
	return false
}
