package analytics

import "context"

// AnalyticsService derives summaries and trend buckets from the
// attendance ledger. Every call re-reads current ledger state; nothing is
// cached.
type AnalyticsService interface {
	GetSummary(ctx context.Context, req SummaryRequest) (SummaryResponse, error)
	GetAdvancedSummary(ctx context.Context, req SummaryRequest) (AdvancedSummaryResponse, error)
	GetTrends(ctx context.Context, req TrendsRequest) (TrendsResponse, error)
}
