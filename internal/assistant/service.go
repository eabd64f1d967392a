package assistant

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"farma-vida/internal/llm"
	"farma-vida/internal/metrics"
	"farma-vida/pkg"
)

// SnapshotFetcher is the slice of the aggregate gateway the service needs.
type SnapshotFetcher interface {
	FetchSnapshot(ctx context.Context) (*pkg.AggregateSnapshot, error)
}

// Service runs the full assistant pipeline for one query: classify, fetch
// aggregates when the intent needs them, build the grounding context,
// invoke the model and sanitize its output.  It holds no mutable state
// between queries and performs no retries.
type Service struct {
	stats SnapshotFetcher
	llm   llm.Client
	log   *zap.Logger
}

// NewService constructs the assistant service.
func NewService(stats SnapshotFetcher, client llm.Client, log *zap.Logger) *Service {
	return &Service{stats: stats, llm: client, log: log}
}

// Answer handles one operator query end to end.  Failures of the aggregate
// gateway are recovered locally with an apology directive; a missing
// credential or a provider failure is terminal for the query (OK=false).
func (s *Service) Answer(ctx context.Context, query string) pkg.AssistantResult {
	start := time.Now()
	intent := ClassifyIntent(query)
	log := s.log.With(
		zap.String("query_id", uuid.NewString()),
		zap.String("intent", intent.String()),
	)
	metrics.AssistantQueries.WithLabelValues(intent.String()).Inc()

	var snap *pkg.AggregateSnapshot
	if intent.NeedsSnapshot() {
		var err error
		snap, err = s.stats.FetchSnapshot(ctx)
		if err != nil {
			// Recovered locally: the context builder substitutes an
			// apology directive and no numbers are fabricated.
			metrics.AssistantFailures.WithLabelValues("gateway").Inc()
			log.Error("aggregate snapshot fetch failed", zap.Error(err))
			snap = nil
		}
	}

	grounding, directive := BuildContext(intent, snap)
	comp, err := s.llm.Generate(ctx, llm.Request{
		SystemInstruction: SystemInstruction,
		Directive:         directive,
		Query:             query,
		Context:           grounding,
	})
	if err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			metrics.AssistantFailures.WithLabelValues("not_configured").Inc()
			log.Warn("llm provider credential missing")
			return pkg.AssistantResult{OK: false, Response: NotConfiguredMessage}
		}
		metrics.AssistantFailures.WithLabelValues("provider").Inc()
		log.Error("llm call failed", zap.Error(err))
		return pkg.AssistantResult{OK: false, Response: ProviderErrorMessage}
	}

	res := SanitizeCompletion(comp)
	log.Info("assistant query answered",
		zap.Bool("ok", res.OK),
		zap.Duration("elapsed", time.Since(start)),
	)
	metrics.AssistantDuration.WithLabelValues(intent.String()).Observe(time.Since(start).Seconds())
	return res
}
