package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"farmon/internal/entities"
	"farmon/internal/usecases"

	"github.com/gin-gonic/gin"
)

type stubPriceReader struct {
	record *entities.MarketPrice
	err    error
}

func (s *stubPriceReader) Latest(string) (*entities.MarketPrice, error) {
	return s.record, s.err
}

type stubAvailabilityReader struct {
	count int
	err   error
}

func (s *stubAvailabilityReader) CountAvailable(string, int) (int, error) {
	return s.count, s.err
}

type recordingChatLogger struct {
	turns []string
	err   error
}

func (l *recordingChatLogger) Append(_ *int, text, sender string) error {
	l.turns = append(l.turns, sender+":"+text)
	return l.err
}

func newChatbotRouter(t *testing.T, prices *stubPriceReader, logger *recordingChatLogger) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := usecases.NewChatbotService(prices, &stubAvailabilityReader{})
	h := NewHandler(svc, nil, nil, nil, nil, nil)
	h.chatLog = logger

	r := gin.New()
	r.POST("/api/chatbot/ask", h.AskChatbot)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAskChatbotMissingMessageRejected(t *testing.T) {
	r := newChatbotRouter(t, &stubPriceReader{}, &recordingChatLogger{})

	for _, body := range []string{`{}`, `{"language":"fr"}`, `{"message":""}`, `not json`} {
		w := postJSON(t, r, "/api/chatbot/ask", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %q: status = %d, want %d", body, w.Code, http.StatusBadRequest)
		}
	}
}

func TestAskChatbotReturnsResponseAndLogsTurns(t *testing.T) {
	prices := &stubPriceReader{record: &entities.MarketPrice{
		CropName:       "Maïs",
		MarketLocation: "Bujumbura Central",
		Price:          1200,
		DateRecorded:   time.Now(),
	}}
	logger := &recordingChatLogger{}
	r := newChatbotRouter(t, prices, logger)

	w := postJSON(t, r, "/api/chatbot/ask", `{"message":"prix du maïs","language":"fr"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body %s", w.Code, http.StatusOK, w.Body.String())
	}

	var resp struct {
		Message   string `json:"message"`
		Response  string `json:"response"`
		Language  string `json:"language"`
		Timestamp string `json:"timestamp"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Message != "prix du maïs" {
		t.Fatalf("echoed message = %q", resp.Message)
	}
	if !strings.Contains(resp.Response, "1200") || !strings.Contains(resp.Response, "Bujumbura Central") {
		t.Fatalf("response = %q, want price answer", resp.Response)
	}
	if resp.Language != "fr" {
		t.Fatalf("language = %q, want fr", resp.Language)
	}
	if resp.Timestamp == "" {
		t.Fatalf("timestamp missing")
	}

	if len(logger.turns) != 2 {
		t.Fatalf("logged turns = %d, want 2", len(logger.turns))
	}
	if !strings.HasPrefix(logger.turns[0], "user:") || !strings.HasPrefix(logger.turns[1], "bot:") {
		t.Fatalf("logged turns = %v, want user then bot", logger.turns)
	}
}

func TestAskChatbotLoggingFailureIsSwallowed(t *testing.T) {
	prices := &stubPriceReader{record: &entities.MarketPrice{
		CropName: "Riz", MarketLocation: "Gitega", Price: 1500,
	}}
	logger := &recordingChatLogger{err: errors.New("insert failed")}
	r := newChatbotRouter(t, prices, logger)

	w := postJSON(t, r, "/api/chatbot/ask", `{"message":"prix du riz"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d despite logging failure", w.Code, http.StatusOK)
	}

	var resp struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !strings.Contains(resp.Response, "1500") {
		t.Fatalf("response = %q, want unchanged price answer", resp.Response)
	}
}

func TestAskChatbotStoreFailureDegradesToApology(t *testing.T) {
	prices := &stubPriceReader{err: errors.New("store unreachable")}
	r := newChatbotRouter(t, prices, &recordingChatLogger{})

	w := postJSON(t, r, "/api/chatbot/ask", `{"message":"prix du riz","language":"rn"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d on degraded lookup", w.Code, http.StatusOK)
	}

	var resp struct {
		Response string `json:"response"`
		Language string `json:"language"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Language != "rn" {
		t.Fatalf("language = %q, want rn", resp.Language)
	}
	if resp.Response == "" || strings.Contains(strings.ToLower(resp.Response), "error") {
		t.Fatalf("response = %q, want apology sentence", resp.Response)
	}
}

func TestAskChatbotDefaultsLanguageToFrench(t *testing.T) {
	r := newChatbotRouter(t, &stubPriceReader{}, &recordingChatLogger{})

	w := postJSON(t, r, "/api/chatbot/ask", `{"message":"bonjour"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	var resp struct {
		Language string `json:"language"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Language != "fr" {
		t.Fatalf("language = %q, want fr", resp.Language)
	}
}
