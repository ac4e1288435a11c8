package api

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/pujadesk/pujadesk/client/internal/types"
)

// DefaultStats is the all-zero baseline used whenever the stats or
// performance sources fail. The merged stats object always starts from
// this, so the dashboard never renders missing keys.
func DefaultStats() types.Stats {
	return types.Stats{
		"totalPropositions":   float64(0),
		"pendingReview":       float64(0),
		"approved":            float64(0),
		"rejected":            float64(0),
		"approvalRate":        float64(0),
		"avgPerformanceScore": float64(0),
		"topPerformers":       []any{},
	}
}

// GetDashboardData assembles the dashboard view model from four
// independent requests issued concurrently. Each request's failure is
// isolated: a failed source contributes its fallback value instead of
// failing the aggregation. The only error returned is a context
// cancellation observed before the join completes.
func GetDashboardData(ctx context.Context, c *Caller, month, year int) (*types.DashboardData, error) {
	if r := types.ValidateMonthYear(month, year); !r.IsValid {
		return nil, &ValidationError{Result: r}
	}

	window := fmt.Sprintf("?month=%d&year=%d", month, year)

	var (
		statsRes    types.Stats
		statsErr    error
		activityRes []types.ActivityItem
		activityErr error
		upcomingRes []types.UpcomingPuja
		upcomingErr error
		perfRes     types.Stats
		perfErr     error
	)

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		statsErr = fetchInto(ctx, c, "/analytics/stats"+window, &statsRes)
	}()
	go func() {
		defer wg.Done()
		var out struct {
			Activity []types.ActivityItem `json:"activity"`
		}
		activityErr = fetchInto(ctx, c, "/analytics/recent-activity"+window, &out)
		activityRes = out.Activity
	}()
	go func() {
		defer wg.Done()
		var out struct {
			Pujas []types.UpcomingPuja `json:"pujas"`
		}
		upcomingErr = fetchInto(ctx, c, "/analytics/upcoming-pujas"+window, &out)
		upcomingRes = out.Pujas
	}()
	go func() {
		defer wg.Done()
		perfErr = fetchInto(ctx, c, "/analytics/performance-metrics"+window, &perfRes)
	}()
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, f := range []struct {
		source string
		err    error
	}{
		{"stats", statsErr},
		{"recent-activity", activityErr},
		{"upcoming-pujas", upcomingErr},
		{"performance-metrics", perfErr},
	} {
		if f.err != nil {
			log.Warn().Err(f.err).Str("source", f.source).Msg("dashboard source failed, using fallback")
		}
	}

	// Merge order matters: defaults, then stats, then performance.
	// Performance fields win on key collision.
	merged := DefaultStats()
	if statsErr == nil {
		for k, v := range statsRes {
			merged[k] = v
		}
	}
	if perfErr == nil {
		for k, v := range perfRes {
			merged[k] = v
		}
	}

	data := &types.DashboardData{
		Stats:          merged,
		RecentActivity: []types.ActivityItem{},
		UpcomingPujas:  []types.UpcomingPuja{},
		QuickStats: types.QuickStats{
			ThisMonth:     thisMonthCount(merged),
			TopPerformers: topPerformers(merged),
		},
	}
	if activityErr == nil && activityRes != nil {
		data.RecentActivity = activityRes
	}
	if upcomingErr == nil && upcomingRes != nil {
		data.UpcomingPujas = upcomingRes
	}
	return data, nil
}

// fetchInto issues one GET and decodes the envelope data into v.
func fetchInto(ctx context.Context, c *Caller, path string, v any) error {
	env, err := c.DoJSON(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return env.Decode(v)
}

// thisMonthCount resolves quickStats.thisMonth through the fallback
// chain: nested monthlyStats first, then the top-level count.
func thisMonthCount(stats types.Stats) int {
	if nested, ok := stats["monthlyStats"].(map[string]any); ok {
		if n, ok := asInt(nested["totalPropositions"]); ok {
			return n
		}
	}
	if n, ok := asInt(stats["totalPropositions"]); ok {
		return n
	}
	return 0
}

// topPerformers falls back from the performance field to the older
// stats field name.
func topPerformers(stats types.Stats) []any {
	if list, ok := stats["topPerformers"].([]any); ok && len(list) > 0 {
		return list
	}
	if list, ok := stats["bestPerforming"].([]any); ok {
		return list
	}
	return []any{}
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	default:
		return 0, false
	}
}
