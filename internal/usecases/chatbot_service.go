package usecases

import (
	"fmt"
	"log"

	"farmon/internal/interfaces"
)

// availabilityLimit caps the listing count quoted back to the user.
const availabilityLimit = 3

// ChatbotService turns a classified utterance into a response sentence.
// Price and availability intents trigger a single read against the store;
// everything else resolves from the phrase tables. The service keeps no
// state between calls.
type ChatbotService struct {
	prices   interfaces.PriceReader
	listings interfaces.AvailabilityReader
}

func NewChatbotService(prices interfaces.PriceReader, listings interfaces.AvailabilityReader) *ChatbotService {
	return &ChatbotService{
		prices:   prices,
		listings: listings,
	}
}

// Respond classifies the message and resolves a response in the requested
// language. The returned locale is the one actually used for rendering.
func (s *ChatbotService) Respond(message, language string) (string, string) {
	locale := NormalizeLocale(language)
	intent, subject := ClassifyIntent(message)
	return s.Resolve(intent, subject, locale), locale
}

// Resolve dispatches on intent. Store read failures degrade to an apology
// sentence; they never surface as errors.
func (s *ChatbotService) Resolve(intent Intent, subject, locale string) string {
	switch intent {
	case IntentPriceQuery:
		if subject == "" {
			return phrase(phrasePriceAsk, locale)
		}
		return s.lookupLatestPrice(subject, locale)
	case IntentAvailabilityQuery:
		if subject == "" {
			return phrase(phraseAvailAsk, locale)
		}
		return s.lookupAvailability(subject, locale)
	case IntentWeatherQuery:
		return phrase(phraseWeather, locale)
	case IntentGreeting:
		return phrase(phraseGreeting, locale)
	}
	return phrase(phraseFallback, locale)
}

func (s *ChatbotService) lookupLatestPrice(subject, locale string) string {
	record, err := s.prices.Latest(subject)
	if err != nil {
		log.Printf("chatbot: price lookup for %q failed: %v", subject, err)
		return phrase(phrasePriceError, locale)
	}
	if record == nil {
		return fmt.Sprintf(phrase(phrasePriceNone, locale), subject)
	}
	// Use the record's own crop name and location so the answer carries the
	// store's casing and spelling, not the user's.
	return fmt.Sprintf(phrase(phrasePriceFound, locale), record.CropName, record.MarketLocation, record.Price)
}

func (s *ChatbotService) lookupAvailability(subject, locale string) string {
	count, err := s.listings.CountAvailable(subject, availabilityLimit)
	if err != nil {
		log.Printf("chatbot: availability lookup for %q failed: %v", subject, err)
		return phrase(phraseAvailError, locale)
	}
	if count == 0 {
		return fmt.Sprintf(phrase(phraseAvailNone, locale), subject)
	}
	return fmt.Sprintf(phrase(phraseAvailFound, locale), count, subject)
}
