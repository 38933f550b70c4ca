package narrative

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/mamadbah2/khamar/internal/domain/models"
	"github.com/mamadbah2/khamar/pkg/clients/gemini"
)

type stubProvider struct {
	calls   []Request
	insight models.Insight
	err     error
}

func (s *stubProvider) Generate(_ context.Context, req Request) (models.Insight, error) {
	s.calls = append(s.calls, req)
	return s.insight, s.err
}

type memoryCache struct {
	entries map[string]models.Insight
}

func (m *memoryCache) GetInsight(_ context.Context, key string) (models.Insight, bool, error) {
	insight, ok := m.entries[key]
	return insight, ok, nil
}

func (m *memoryCache) SetInsight(_ context.Context, key string, insight models.Insight) error {
	m.entries[key] = insight
	return nil
}

func TestRequest_DisabledWithoutProvider(t *testing.T) {
	r := NewRequester(nil, nil, zap.NewNop())
	if r.Enabled() {
		t.Fatal("requester without provider must report disabled")
	}
	if _, err := r.AnalyzeRecord(context.Background(), models.DailyRecord{}, models.LanguageEnglish); !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
}

func TestRequest_EmptyTextIsAnError(t *testing.T) {
	provider := &stubProvider{insight: models.Insight{Text: "   "}}
	r := NewRequester(provider, nil, zap.NewNop())

	if _, err := r.AnalyzeAnomaly(context.Background(), "For 2024-03-10: x", models.LanguageEnglish); !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("expected ErrEmptyResponse, got %v", err)
	}
	if len(provider.calls) != 1 {
		t.Errorf("expected exactly one call, no retries; got %d", len(provider.calls))
	}
}

func TestRequest_ProviderErrorSurfacesOnce(t *testing.T) {
	provider := &stubProvider{err: errors.New("boom")}
	r := NewRequester(provider, nil, zap.NewNop())

	_, err := r.AnalyzeRecord(context.Background(), models.DailyRecord{Date: "2024-01-01"}, models.LanguageBengali)
	if err == nil || err.Error() != "boom" {
		t.Fatalf("expected provider error, got %v", err)
	}
	if len(provider.calls) != 1 {
		t.Errorf("expected one call, got %d", len(provider.calls))
	}
	if !strings.Contains(provider.calls[0].Prompt, "Respond in Bengali") {
		t.Errorf("prompt should request Bengali: %s", provider.calls[0].Prompt)
	}
}

func TestMarketInsights_GroundedAndCached(t *testing.T) {
	provider := &stubProvider{insight: models.Insight{Text: "Eggs at 0.12", Sources: []string{"https://a.example"}}}
	cache := &memoryCache{entries: map[string]models.Insight{}}
	r := NewRequester(provider, cache, zap.NewNop())
	period := models.Period{Year: 2024, Month: 3}

	first, err := r.MarketInsights(context.Background(), period, models.LanguageEnglish)
	if err != nil {
		t.Fatalf("MarketInsights: %v", err)
	}
	second, err := r.MarketInsights(context.Background(), period, models.LanguageEnglish)
	if err != nil {
		t.Fatalf("MarketInsights (cached): %v", err)
	}

	if len(provider.calls) != 1 {
		t.Fatalf("expected the second call to be served from cache, got %d calls", len(provider.calls))
	}
	if !provider.calls[0].Grounded || provider.calls[0].Pipeline != models.PipelineMarket {
		t.Errorf("market request must be grounded: %+v", provider.calls[0])
	}
	if !strings.Contains(provider.calls[0].Prompt, "2024-03") {
		t.Errorf("prompt should name the month: %s", provider.calls[0].Prompt)
	}
	if first.Text != second.Text || len(second.Sources) != 1 {
		t.Errorf("cached insight mismatch: %+v vs %+v", first, second)
	}
}

func TestDailyRecordPrompt(t *testing.T) {
	prompt := DailyRecordPrompt(models.DailyRecord{
		Date:             "2024-03-10",
		CratesProduced:   12,
		EggPricePerPiece: 0.12,
		FeedTotalCost:    40,
	}, models.LanguageEnglish)

	for _, want := range []string{"Daily Record for 2024-03-10", "Crates Produced: 12", "Egg Price per Piece: $0.12", "Medicine Used: None", "Respond in English"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

type stubGemini struct {
	got gemini.GenerateRequest
}

func (s *stubGemini) Generate(_ context.Context, req gemini.GenerateRequest) (*gemini.GenerateResult, error) {
	s.got = req
	return &gemini.GenerateResult{Text: "ok", Sources: []string{"https://s.example"}}, nil
}

func TestGeminiProvider_UsesPipelineProfile(t *testing.T) {
	client := &stubGemini{}
	provider := NewGeminiProvider(client, DefaultProfiles("daily-m", "anomaly-m", "market-m"))

	insight, err := provider.Generate(context.Background(), Request{Pipeline: models.PipelineAnomaly, Prompt: "p"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if client.got.Model != "anomaly-m" || client.got.MaxOutputTokens != 400 || client.got.GoogleSearch {
		t.Errorf("unexpected gemini request %+v", client.got)
	}
	if insight.Text != "ok" || len(insight.Sources) != 1 {
		t.Errorf("unexpected insight %+v", insight)
	}
}
