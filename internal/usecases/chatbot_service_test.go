package usecases

import (
	"errors"
	"strings"
	"testing"
	"time"

	"farmon/internal/entities"
)

type fakePriceReader struct {
	record *entities.MarketPrice
	err    error
	query  string
}

func (f *fakePriceReader) Latest(crop string) (*entities.MarketPrice, error) {
	f.query = crop
	return f.record, f.err
}

type fakeAvailabilityReader struct {
	count int
	err   error
	query string
	limit int
}

func (f *fakeAvailabilityReader) CountAvailable(name string, limit int) (int, error) {
	f.query = name
	f.limit = limit
	return f.count, f.err
}

func newTestService(prices *fakePriceReader, listings *fakeAvailabilityReader) *ChatbotService {
	if prices == nil {
		prices = &fakePriceReader{}
	}
	if listings == nil {
		listings = &fakeAvailabilityReader{}
	}
	return NewChatbotService(prices, listings)
}

func TestResolvePriceFound(t *testing.T) {
	prices := &fakePriceReader{record: &entities.MarketPrice{
		CropName:       "Maïs",
		MarketLocation: "Bujumbura Central",
		Price:          1200,
		DateRecorded:   time.Now(),
	}}
	svc := newTestService(prices, nil)

	got := svc.Resolve(IntentPriceQuery, "maïs", LocaleFrench)
	if !strings.Contains(got, "1200") {
		t.Fatalf("response %q does not contain price 1200", got)
	}
	if !strings.Contains(got, "Bujumbura Central") {
		t.Fatalf("response %q does not contain market location", got)
	}
	// The store's own crop spelling is used, not the raw subject.
	if !strings.Contains(got, "Maïs") {
		t.Fatalf("response %q does not use the record's crop name", got)
	}
	if prices.query != "maïs" {
		t.Fatalf("price lookup query = %q, want %q", prices.query, "maïs")
	}
}

func TestResolvePriceNotFoundNamesSubject(t *testing.T) {
	svc := newTestService(&fakePriceReader{record: nil}, nil)

	got := svc.Resolve(IntentPriceQuery, "betterave", LocaleFrench)
	if !strings.Contains(got, "betterave") {
		t.Fatalf("response %q does not name the subject", got)
	}
}

func TestResolvePriceWithoutSubjectAsksForCrop(t *testing.T) {
	svc := newTestService(nil, nil)

	got := svc.Resolve(IntentPriceQuery, "", LocaleFrench)
	if got != phrase(phrasePriceAsk, LocaleFrench) {
		t.Fatalf("response = %q, want clarification %q", got, phrase(phrasePriceAsk, LocaleFrench))
	}
}

func TestResolvePriceReadFailureDegrades(t *testing.T) {
	svc := newTestService(&fakePriceReader{err: errors.New("connection refused")}, nil)

	got := svc.Resolve(IntentPriceQuery, "riz", LocaleFrench)
	if got != phrase(phrasePriceError, LocaleFrench) {
		t.Fatalf("response = %q, want degrade apology %q", got, phrase(phrasePriceError, LocaleFrench))
	}
}

func TestResolveAvailabilityKirundi(t *testing.T) {
	listings := &fakeAvailabilityReader{count: 2}
	svc := newTestService(nil, listings)

	got := svc.Resolve(IntentAvailabilityQuery, "riz", LocaleKirundi)
	if !strings.Contains(got, "2") {
		t.Fatalf("response %q does not contain the offer count", got)
	}
	if !strings.Contains(got, "Ego") {
		t.Fatalf("response %q is not the Kirundi yes template", got)
	}
	if listings.limit != availabilityLimit {
		t.Fatalf("lookup limit = %d, want %d", listings.limit, availabilityLimit)
	}
}

func TestResolveAvailabilityNoneNamesSubject(t *testing.T) {
	svc := newTestService(nil, &fakeAvailabilityReader{count: 0})

	got := svc.Resolve(IntentAvailabilityQuery, "manioc", LocaleFrench)
	if !strings.Contains(got, "manioc") {
		t.Fatalf("response %q does not name the subject", got)
	}
}

func TestResolveAvailabilityReadFailureDegrades(t *testing.T) {
	svc := newTestService(nil, &fakeAvailabilityReader{err: errors.New("timeout")})

	got := svc.Resolve(IntentAvailabilityQuery, "tomate", LocaleKirundi)
	if got != phrase(phraseAvailError, LocaleKirundi) {
		t.Fatalf("response = %q, want degrade apology %q", got, phrase(phraseAvailError, LocaleKirundi))
	}
}

func TestResolveAvailabilityWithoutSubjectAsks(t *testing.T) {
	svc := newTestService(nil, nil)

	got := svc.Resolve(IntentAvailabilityQuery, "", LocaleKirundi)
	if got != phrase(phraseAvailAsk, LocaleKirundi) {
		t.Fatalf("response = %q, want clarification", got)
	}
}

func TestResolveStaticIntents(t *testing.T) {
	svc := newTestService(nil, nil)

	if got := svc.Resolve(IntentWeatherQuery, "", LocaleFrench); got != phrase(phraseWeather, LocaleFrench) {
		t.Fatalf("weather response = %q", got)
	}
	if got := svc.Resolve(IntentGreeting, "", LocaleKirundi); got != phrase(phraseGreeting, LocaleKirundi) {
		t.Fatalf("greeting response = %q", got)
	}
	if got := svc.Resolve(IntentUnknown, "", LocaleFrench); got != phrase(phraseFallback, LocaleFrench) {
		t.Fatalf("fallback response = %q", got)
	}
}

func TestRespondUnsupportedLanguageFallsBackToFrench(t *testing.T) {
	svc := newTestService(nil, nil)

	got, locale := svc.Respond("Bonjour", "xx")
	if locale != LocaleFrench {
		t.Fatalf("locale = %q, want %q", locale, LocaleFrench)
	}
	if got != phrase(phraseGreeting, LocaleFrench) {
		t.Fatalf("response = %q, want French greeting", got)
	}
}

func TestRespondKirundiAlias(t *testing.T) {
	svc := newTestService(nil, nil)

	_, locale := svc.Respond("Bwakeye", "kirundi")
	if locale != LocaleKirundi {
		t.Fatalf("locale = %q, want %q", locale, LocaleKirundi)
	}
}

func TestRespondEndToEndPriceQuestion(t *testing.T) {
	prices := &fakePriceReader{record: &entities.MarketPrice{
		CropName:       "Haricots",
		MarketLocation: "Gitega",
		Price:          1800,
	}}
	svc := newTestService(prices, nil)

	got, locale := svc.Respond("Quel est le prix des haricots ?", "fr")
	if locale != LocaleFrench {
		t.Fatalf("locale = %q, want fr", locale)
	}
	if !strings.Contains(got, "1800") || !strings.Contains(got, "Gitega") {
		t.Fatalf("response %q missing price or market", got)
	}
}
