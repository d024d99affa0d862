package advisor

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/careercompass/compass/internal/clients/profilestore"
	"github.com/careercompass/compass/internal/common"
	"github.com/careercompass/compass/internal/mockdata"
	"github.com/careercompass/compass/internal/models"
)

// stubReasoner plays the generative provider in pipeline tests.
type stubReasoner struct {
	responses []string
	errs      []error
	calls     int
	prompts   []string
}

func (s *stubReasoner) GenerateContent(ctx context.Context, prompt string) (string, error) {
	idx := s.calls
	s.calls++
	s.prompts = append(s.prompts, prompt)
	if idx < len(s.errs) && s.errs[idx] != nil {
		return "", s.errs[idx]
	}
	if idx < len(s.responses) {
		return s.responses[idx], nil
	}
	if len(s.responses) > 0 {
		return s.responses[len(s.responses)-1], nil
	}
	return "", models.NewFault(models.KindProviderUnavailable, "no scripted response", nil)
}

func newTestService(t *testing.T, reasoner *stubReasoner) (*Service, string) {
	t.Helper()

	logger := common.NewSilentLogger()
	srv := httptest.NewServer(mockdata.NewHandler(mockdata.NewSeedStore(), logger).Routes())
	t.Cleanup(srv.Close)

	profiles := profilestore.NewClient(
		profilestore.WithBaseURL(srv.URL),
		profilestore.WithLogger(logger),
	)

	fastRetry := WithRetryPolicy(RetryPolicy{MaxAttempts: 2, Backoff: time.Millisecond})
	if reasoner == nil {
		return NewService(profiles, nil, logger, fastRetry), srv.URL
	}
	return NewService(profiles, reasoner, logger, fastRetry), srv.URL
}

// Valid user, well-behaved provider: full success envelope.
func TestAnalyzeCareer_HappyPath(t *testing.T) {
	reasoner := &stubReasoner{responses: []string{wellFormedResponse}}
	svc, storeURL := newTestService(t, reasoner)

	envelope := svc.AnalyzeCareer(context.Background(), "user123", storeURL)

	if !envelope.Success {
		t.Fatalf("expected success, got error %+v", envelope.Error)
	}
	if envelope.UserID != "user123" {
		t.Errorf("userId = %q", envelope.UserID)
	}
	if envelope.UserProfile == "" {
		t.Error("user profile label should be set")
	}
	if envelope.Analysis == nil {
		t.Fatal("analysis should be present on success")
	}
	if envelope.Confidence != envelope.Analysis.Confidence {
		t.Error("envelope confidence must mirror the analysis confidence")
	}
	if envelope.Error != nil {
		t.Error("error info must be nil on success")
	}
	if reasoner.calls != 1 {
		t.Errorf("provider calls = %d, want 1", reasoner.calls)
	}
}

// Unknown user: the pipeline aborts with ProfileNotFound and no analysis.
func TestAnalyzeCareer_UnknownUser(t *testing.T) {
	reasoner := &stubReasoner{responses: []string{wellFormedResponse}}
	svc, storeURL := newTestService(t, reasoner)

	envelope := svc.AnalyzeCareer(context.Background(), "nobody-here", storeURL)

	if envelope.Success {
		t.Fatal("expected failure envelope")
	}
	if envelope.Analysis != nil {
		t.Error("analysis must be absent on abort")
	}
	if envelope.Error == nil || envelope.Error.Kind != models.KindProfileNotFound {
		t.Fatalf("error = %+v, want ProfileNotFound", envelope.Error)
	}
	if reasoner.calls != 0 {
		t.Errorf("provider should never be called for a missing profile, got %d calls", reasoner.calls)
	}
}

// Transient provider failure on every attempt: retried once, then aborted.
func TestAnalyzeCareer_ProviderDownAfterRetry(t *testing.T) {
	transient := models.NewFault(models.KindProviderUnavailable, "deadline exceeded", nil)
	reasoner := &stubReasoner{errs: []error{transient, transient}}
	svc, storeURL := newTestService(t, reasoner)

	envelope := svc.AnalyzeCareer(context.Background(), "user123", storeURL)

	if envelope.Success {
		t.Fatal("expected failure envelope")
	}
	if envelope.Error == nil || envelope.Error.Kind != models.KindProviderUnavailable {
		t.Fatalf("error = %+v, want ProviderUnavailable", envelope.Error)
	}
	if reasoner.calls != 2 {
		t.Errorf("provider calls = %d, want 2 (one retry)", reasoner.calls)
	}
}

// Transient failure then recovery: the retry salvages the request.
func TestAnalyzeCareer_RetryRecovers(t *testing.T) {
	transient := models.NewFault(models.KindProviderUnavailable, "deadline exceeded", nil)
	reasoner := &stubReasoner{
		errs:      []error{transient, nil},
		responses: []string{"", wellFormedResponse},
	}
	svc, storeURL := newTestService(t, reasoner)

	envelope := svc.AnalyzeCareer(context.Background(), "user123", storeURL)

	if !envelope.Success {
		t.Fatalf("expected success after retry, got %+v", envelope.Error)
	}
	if reasoner.calls != 2 {
		t.Errorf("provider calls = %d, want 2", reasoner.calls)
	}
}

// Provider rejection is terminal: exactly one attempt.
func TestAnalyzeCareer_ProviderRejectedNoRetry(t *testing.T) {
	rejected := models.NewFault(models.KindProviderRejected, "safety block", nil)
	reasoner := &stubReasoner{errs: []error{rejected}}
	svc, storeURL := newTestService(t, reasoner)

	envelope := svc.AnalyzeCareer(context.Background(), "user123", storeURL)

	if envelope.Success {
		t.Fatal("expected failure envelope")
	}
	if envelope.Error.Kind != models.KindProviderRejected {
		t.Errorf("kind = %v, want ProviderRejected", envelope.Error.Kind)
	}
	if reasoner.calls != 1 {
		t.Errorf("provider calls = %d, want 1 (terminal kinds are not retried)", reasoner.calls)
	}
}

// Garbage provider output degrades the analysis but never fails the request.
func TestAnalyzeCareer_GarbageOutputDegrades(t *testing.T) {
	reasoner := &stubReasoner{responses: []string{"I am sorry, I cannot produce JSON today."}}
	svc, storeURL := newTestService(t, reasoner)

	envelope := svc.AnalyzeCareer(context.Background(), "user123", storeURL)

	if !envelope.Success {
		t.Fatalf("degraded output must still succeed, got %+v", envelope.Error)
	}
	if envelope.Analysis == nil {
		t.Fatal("analysis should be present")
	}
	if envelope.Confidence != models.ConfidenceLow {
		t.Errorf("confidence = %v, want low for unparseable output", envelope.Confidence)
	}
	if len(envelope.Analysis.DegradedFields) == 0 {
		t.Error("degraded fields should be recorded")
	}
}

// Offline mode: nil reasoner serves curated content at medium confidence.
func TestAnalyzeCareer_OfflineMode(t *testing.T) {
	svc, storeURL := newTestService(t, nil)

	if svc.ReasoningConfigured() {
		t.Fatal("nil reasoner should report unconfigured reasoning")
	}

	envelope := svc.AnalyzeCareer(context.Background(), "user456", storeURL)

	if !envelope.Success {
		t.Fatalf("offline mode should succeed, got %+v", envelope.Error)
	}
	if envelope.Confidence != models.ConfidenceMedium {
		t.Errorf("confidence = %v, want medium in offline mode", envelope.Confidence)
	}
	if len(envelope.Analysis.RecommendedSkills) == 0 {
		t.Error("offline analysis should carry curated skills")
	}
}

// The store URL in the request overrides the client default.
func TestAnalyzeCareer_StoreUnreachable(t *testing.T) {
	reasoner := &stubReasoner{responses: []string{wellFormedResponse}}
	svc, _ := newTestService(t, reasoner)

	envelope := svc.AnalyzeCareer(context.Background(), "user123", "http://127.0.0.1:1")

	if envelope.Success {
		t.Fatal("expected failure envelope")
	}
	if envelope.Error.Kind != models.KindUpstreamUnavailable {
		t.Errorf("kind = %v, want UpstreamUnavailable", envelope.Error.Kind)
	}
}

func TestAnalyzeCareer_PromptOmitsRawTransactions(t *testing.T) {
	reasoner := &stubReasoner{responses: []string{wellFormedResponse}}
	svc, storeURL := newTestService(t, reasoner)

	svc.AnalyzeCareer(context.Background(), "user123", storeURL)

	if len(reasoner.prompts) != 1 {
		t.Fatalf("prompts captured = %d", len(reasoner.prompts))
	}
	// Seed transactions carry descriptions; none may reach the provider.
	prompt := reasoner.prompts[0]
	for _, tx := range mockdata.NewSeedStore().Get("user123").RecentTransactions {
		if strings.Contains(prompt, tx.Description) {
			t.Errorf("prompt leaked transaction description %q", tx.Description)
		}
	}
}
