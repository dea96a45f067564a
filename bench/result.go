package bench

import (
	"fmt"
	"strings"
)

// Result holds the measured per-operation costs of one run. Percentiles
// are taken over the per-batch averages of the update phase.
type Result struct {
	RunID           string  `json:"run_id"`
	Name            string  `json:"name"`
	AvgUpdateNs     float64 `json:"avg_update_ns"`
	AvgChurnNs      float64 `json:"avg_churn_ns"`
	AvgSpreadNs     float64 `json:"avg_spread_ns"`
	AvgBestBidNs    float64 `json:"avg_best_bid_ns"`
	AvgBestAskNs    float64 `json:"avg_best_ask_ns"`
	AvgRandomReadNs float64 `json:"avg_random_read_ns"`
	P50UpdateNs     float64 `json:"p50_update_ns"`
	P95UpdateNs     float64 `json:"p95_update_ns"`
	P99UpdateNs     float64 `json:"p99_update_ns"`
	TotalOps        int     `json:"total_ops"`
}

// Report renders the result as a fixed-width text block for terminals.
func (r *Result) Report() string {
	rule := strings.Repeat("=", 60)

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n%s\n", rule)
	fmt.Fprintf(&sb, "  BENCHMARK RESULTS: %s (run %s)\n", r.Name, r.RunID)
	fmt.Fprintf(&sb, "%s\n", rule)
	fmt.Fprintf(&sb, "  Total Operations: %d\n", r.TotalOps)
	fmt.Fprintf(&sb, "  ---\n")
	fmt.Fprintf(&sb, "  Update Operations:\n")
	fmt.Fprintf(&sb, "    Average: %.2f ns\n", r.AvgUpdateNs)
	fmt.Fprintf(&sb, "    P50:     %.2f ns\n", r.P50UpdateNs)
	fmt.Fprintf(&sb, "    P95:     %.2f ns\n", r.P95UpdateNs)
	fmt.Fprintf(&sb, "    P99:     %.2f ns\n", r.P99UpdateNs)
	fmt.Fprintf(&sb, "  ---\n")
	fmt.Fprintf(&sb, "  Mixed Feed Churn:\n")
	fmt.Fprintf(&sb, "    Average: %.2f ns\n", r.AvgChurnNs)
	fmt.Fprintf(&sb, "  ---\n")
	fmt.Fprintf(&sb, "  Get Best Bid:\n")
	fmt.Fprintf(&sb, "    Average: %.2f ns\n", r.AvgBestBidNs)
	fmt.Fprintf(&sb, "  ---\n")
	fmt.Fprintf(&sb, "  Get Best Ask:\n")
	fmt.Fprintf(&sb, "    Average: %.2f ns\n", r.AvgBestAskNs)
	fmt.Fprintf(&sb, "  ---\n")
	fmt.Fprintf(&sb, "  Get Spread:\n")
	fmt.Fprintf(&sb, "    Average: %.2f ns\n", r.AvgSpreadNs)
	fmt.Fprintf(&sb, "  ---\n")
	fmt.Fprintf(&sb, "  Random Reads:\n")
	fmt.Fprintf(&sb, "    Average: %.2f ns\n", r.AvgRandomReadNs)
	fmt.Fprintf(&sb, "%s\n", rule)
	return sb.String()
}
