package usecases

import "strings"

// Intent is the classified purpose of one chat utterance.
type Intent string

const (
	IntentPriceQuery        Intent = "price_query"
	IntentAvailabilityQuery Intent = "availability_query"
	IntentWeatherQuery      Intent = "weather_query"
	IntentGreeting          Intent = "greeting"
	IntentUnknown           Intent = "unknown"
)

// Keyword sets tested in priority order; the first set with a hit wins.
var (
	priceKeywords        = []string{"prix", "price", "igiciro", "coûte", "gura"}
	availabilityKeywords = []string{"avez-vous", "disponible", "acheter", "dufise", "shaka"}
	weatherKeywords      = []string{"météo", "weather", "ikirere", "imvura"}
	greetingKeywords     = []string{"bonjour", "salut", "bwakeye", "bite"}
)

// cropVocabulary lists the crop names and synonyms the assistant knows, in
// French and Kirundi. Order matters: when an utterance mentions several
// crops, the one declared first here is the extracted subject.
var cropVocabulary = []string{
	"haricot",
	"ibiharage",
	"maïs",
	"mais",
	"ibigori",
	"riz",
	"umuceri",
	"tomate",
	"inyanya",
	"banane",
	"ibitoke",
	"manioc",
	"imyumbati",
	"pomme de terre",
	"ibirayi",
}

// ClassifyIntent maps an utterance to an intent plus the crop subject it
// mentions, if any. Subject extraction is a plain substring scan with no word
// boundaries, so a synonym embedded in an unrelated word still matches.
// Pure function of the text.
func ClassifyIntent(text string) (Intent, string) {
	lower := strings.ToLower(text)

	subject := ""
	for _, crop := range cropVocabulary {
		if strings.Contains(lower, crop) {
			subject = crop
			break
		}
	}

	switch {
	case containsAny(lower, priceKeywords):
		return IntentPriceQuery, subject
	case containsAny(lower, availabilityKeywords):
		return IntentAvailabilityQuery, subject
	case containsAny(lower, weatherKeywords):
		return IntentWeatherQuery, subject
	case containsAny(lower, greetingKeywords):
		return IntentGreeting, subject
	}
	return IntentUnknown, subject
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
