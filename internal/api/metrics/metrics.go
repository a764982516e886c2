// Package metrics defines and registers all custom Prometheus metrics for
// the stocktake API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init and
// are exposed through the /metrics route.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "stocktake"

// SubmissionsTotal counts stock count submissions that committed successfully.
var SubmissionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_total",
		Help:      "Total number of stock submissions successfully recorded.",
	},
)

// SubmissionRecordsTotal counts individual stock records written by submissions.
var SubmissionRecordsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submission_records_total",
		Help:      "Total number of stock records persisted across all submissions.",
	},
)

// SubmissionErrorsTotal counts rejected submissions.
// Label:
//   - reason: "validation" (bad figure) or "storage" (commit failed)
var SubmissionErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submission_errors_total",
		Help:      "Total number of stock submissions that were rejected.",
	},
	[]string{"reason"},
)

// ImportsTotal counts catalog imports by outcome.
// Label:
//   - result: "ok", "malformed" (missing headers) or "failed" (commit error)
var ImportsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "imports_total",
		Help:      "Total number of catalog imports, labelled by result.",
	},
	[]string{"result"},
)

// ImportRowsSkippedTotal counts import rows dropped without aborting the file.
// Label:
//   - reason: "missing data" or "invalid par"
var ImportRowsSkippedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "import_rows_skipped_total",
		Help:      "Total number of import rows skipped, labelled by reason.",
	},
	[]string{"reason"},
)
