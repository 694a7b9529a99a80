package session

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"biaslab/internal/biasapi"
	"biaslab/internal/disclosure"
	"biaslab/internal/highlights"
	"biaslab/internal/history"
	"biaslab/internal/narratives"
	"biaslab/internal/scoring"
)

// Recorder persists completed analyses. Implemented by history.Store.
type Recorder interface {
	Record(ctx context.Context, entry Entry) error
}

// Entry aliases the history row type so callers can satisfy Recorder without
// importing the storage package.
type Entry = history.Entry

// Orchestrator coordinates fetches for one viewing session.
type Orchestrator struct {
	api    biasapi.Service
	logger *slog.Logger

	recorder       Recorder
	articleLimit   int
	highlightLimit int
	order          biasapi.Order

	claimsDisclosure    *disclosure.Group
	highlightDisclosure *disclosure.Group

	mu         sync.Mutex
	wg         sync.WaitGroup
	generation uint64
	view       View
}

// Option configures optional Orchestrator behavior.
type Option func(*Orchestrator)

// WithRecorder attaches a history recorder. Recording is best-effort; a
// recorder failure is logged and never fails the submission.
func WithRecorder(recorder Recorder) Option {
	return func(o *Orchestrator) {
		o.recorder = recorder
	}
}

// WithArticleLimit caps the article-list refresh size.
func WithArticleLimit(limit int) Option {
	return func(o *Orchestrator) {
		if limit > 0 {
			o.articleLimit = limit
		}
	}
}

// WithHighlightLimit caps the per-article highlight fetch size.
func WithHighlightLimit(limit int) Option {
	return func(o *Orchestrator) {
		if limit > 0 {
			o.highlightLimit = limit
		}
	}
}

// WithNarrativeOrder sets the creation-time sort requested from the service.
func WithNarrativeOrder(order biasapi.Order) Option {
	return func(o *Orchestrator) {
		if order == biasapi.OrderAsc || order == biasapi.OrderDesc {
			o.order = order
		}
	}
}

// New constructs an orchestrator over the given service.
func New(api biasapi.Service, logger *slog.Logger, opts ...Option) *Orchestrator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	o := &Orchestrator{
		api:                 api,
		logger:              logger,
		articleLimit:        50,
		highlightLimit:      50,
		order:               biasapi.OrderDesc,
		claimsDisclosure:    disclosure.NewGroup(),
		highlightDisclosure: disclosure.NewGroup(),
	}
	o.view = View{State: StateIdle}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// ClaimsDisclosure returns the shared expand/collapse state for the claims
// list. Only the rendering flow may use it.
func (o *Orchestrator) ClaimsDisclosure() *disclosure.Group {
	return o.claimsDisclosure
}

// HighlightDisclosure returns the shared expand/collapse state for the
// highlights list.
func (o *Orchestrator) HighlightDisclosure() *disclosure.Group {
	return o.highlightDisclosure
}

// Submit validates and submits an analysis request. On success the result
// becomes the current subject and the dependent fetches are re-issued; the
// caller can Wait for them to settle. On failure the previously displayed
// view is left untouched.
func (o *Orchestrator) Submit(ctx context.Context, req biasapi.AnalyzeRequest, full bool) (*biasapi.AnalysisResult, error) {
	if err := ValidateSubmission(req); err != nil {
		return nil, err
	}

	o.mu.Lock()
	if o.view.State == StateSubmitting {
		o.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	o.view.State = StateSubmitting
	o.mu.Unlock()

	requestID := uuid.NewString()
	logger := o.logger.With("request_id", requestID, "title", strings.TrimSpace(req.Title))
	logger.Info("submitting analysis")

	result, err := o.api.Analyze(ctx, req, full)
	if err != nil {
		o.mu.Lock()
		o.view.State = StateFailed
		o.view.LastError = err.Error()
		o.mu.Unlock()
		logger.Warn("analysis failed", "error", err)
		return nil, err
	}

	o.mu.Lock()
	o.generation++
	generation := o.generation
	o.view.State = StateSucceeded
	o.view.Subject = result.ID
	o.view.Summary = result.Summary
	o.view.Scores = result.Scores
	o.view.Overall = result.Overall
	o.view.Claims = result.Claims
	o.view.DetailErr = ""
	o.view.LastError = ""
	o.mu.Unlock()

	logger.Info("analysis succeeded", "subject", result.ID)
	o.record(ctx, req, result, logger)
	o.refresh(ctx, result.ID, generation, true)
	return result, nil
}

// Open makes an existing article the current subject and re-issues the
// dependent fetches, plus a detail fetch for its summary and scores.
func (o *Orchestrator) Open(ctx context.Context, articleID string) error {
	articleID = strings.TrimSpace(articleID)
	if articleID == "" {
		return errors.New("article id must not be empty")
	}

	o.mu.Lock()
	o.generation++
	generation := o.generation
	o.view.Subject = articleID
	o.view.Summary = ""
	o.view.Scores = nil
	o.view.Overall = nil
	o.view.Claims = nil
	o.view.DetailErr = ""
	o.mu.Unlock()

	o.wg.Add(1)
	go o.fetchDetail(ctx, articleID, generation)
	o.refresh(ctx, articleID, generation, false)
	return nil
}

// Delete removes an article and refreshes the article list. The current
// subject and the other panels are left alone.
func (o *Orchestrator) Delete(ctx context.Context, articleID string) error {
	if err := o.api.DeleteArticle(ctx, articleID); err != nil {
		return err
	}
	o.mu.Lock()
	generation := o.generation
	o.mu.Unlock()
	o.wg.Add(1)
	go o.fetchArticles(ctx, generation)
	return nil
}

// Wait blocks until every in-flight fetch has been applied or discarded.
func (o *Orchestrator) Wait() {
	o.wg.Wait()
}

// Snapshot returns a copy of the current view.
func (o *Orchestrator) Snapshot() View {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.view
}

// Subject returns the identifier of the article currently in view.
func (o *Orchestrator) Subject() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.view.Subject
}

// refresh re-issues the three subject-keyed fetches. cluster asks the service
// to recluster narratives first; that trigger is advisory and its failure is
// swallowed.
func (o *Orchestrator) refresh(ctx context.Context, subject string, generation uint64, cluster bool) {
	o.wg.Add(3)
	go o.fetchHighlights(ctx, subject, generation)
	go o.fetchNarratives(ctx, subject, generation, cluster)
	go o.fetchArticles(ctx, generation)
}

func (o *Orchestrator) fetchDetail(ctx context.Context, subject string, generation uint64) {
	defer o.wg.Done()
	article, err := o.api.GetArticle(ctx, subject)

	o.mu.Lock()
	defer o.mu.Unlock()
	if generation != o.generation {
		o.logger.Debug("discarding stale article detail", "subject", subject)
		return
	}
	if err != nil {
		o.view.DetailErr = err.Error()
		return
	}
	o.view.Summary = article.Summary
	o.view.Scores = article.Scores
	o.view.DetailErr = ""
}

func (o *Orchestrator) fetchHighlights(ctx context.Context, subject string, generation uint64) {
	defer o.wg.Done()
	fetched, err := o.api.ListHighlights(ctx, subject, o.highlightLimit)

	o.mu.Lock()
	defer o.mu.Unlock()
	if generation != o.generation {
		o.logger.Debug("discarding stale highlights", "subject", subject)
		return
	}
	if err != nil {
		o.view.Highlights = nil
		o.view.HighlightsErr = err.Error()
		return
	}
	o.view.Highlights = highlights.Sanitize(fetched)
	o.view.HighlightsErr = ""
}

func (o *Orchestrator) fetchNarratives(ctx context.Context, subject string, generation uint64, cluster bool) {
	defer o.wg.Done()
	if cluster {
		if err := o.api.TriggerClustering(ctx); err != nil {
			// Clustering is advisory; the narrative list renders without it.
			o.logger.Debug("clustering trigger failed", "error", err)
		}
	}
	fetched, err := o.api.ListNarratives(ctx, o.order)

	o.mu.Lock()
	defer o.mu.Unlock()
	if generation != o.generation {
		o.logger.Debug("discarding stale narratives", "subject", subject)
		return
	}
	if err != nil {
		o.view.Narratives = nil
		o.view.NarrativesErr = err.Error()
		return
	}
	o.view.Narratives = narratives.ForArticle(fetched, subject)
	o.view.NarrativesErr = ""
}

func (o *Orchestrator) fetchArticles(ctx context.Context, generation uint64) {
	defer o.wg.Done()
	fetched, err := o.api.ListArticles(ctx, o.articleLimit)

	o.mu.Lock()
	defer o.mu.Unlock()
	if generation != o.generation {
		o.logger.Debug("discarding stale article list")
		return
	}
	if err != nil {
		o.view.Articles = nil
		o.view.ArticlesErr = err.Error()
		return
	}
	o.view.Articles = fetched
	o.view.ArticlesErr = ""
}

func (o *Orchestrator) record(ctx context.Context, req biasapi.AnalyzeRequest, result *biasapi.AnalysisResult, logger *slog.Logger) {
	if o.recorder == nil {
		return
	}
	overall := result.Overall
	if overall == nil {
		idx := scoring.Aggregate(result.Scores)
		overall = &biasapi.Overall{Value: idx.Value, Band: idx.Band}
	}
	entry := Entry{
		ArticleID: result.ID,
		Title:     strings.TrimSpace(req.Title),
		Outlet:    strings.TrimSpace(req.Outlet),
		Overall:   overall.Value,
		Band:      string(overall.DisplayBand()),
		Verdict:   scoring.BandVerdict(overall.DisplayBand()),
		CreatedAt: time.Now().UTC(),
	}
	if err := o.recorder.Record(ctx, entry); err != nil {
		logger.Warn("record analysis history", "error", err)
	}
}
