package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	labelStatus = "status"
	labelKind   = "kind"
	labelType   = "type"
	typeSuccess = "success"
	typeFailed  = "failed"
	typeSkipped = "skipped"
	phaseBatch  = "batch"
	phaseRetry  = "retry"
	labelPhase  = "phase"
)

var (
	attempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "relayer_attempts",
		Help: "The total number of sequence number attempts by outcome (counter)",
	}, []string{labelPhase, labelStatus})

	attemptTime = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "relayer_attempt_time",
		Help:    "A histogram of sequence number attempts duration",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 10, 30, 60},
	}, []string{labelPhase, labelStatus})

	chainSubmits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "relayer_chain_submits",
		Help: "The total number of chain submissions by tx kind (counter)",
	}, []string{labelKind, labelType})

	tickTime = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "relayer_tick_time",
		Help:    "A histogram of relayer ticks duration",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120, 300},
	})

	tickErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "relayer_tick_errors",
		Help: "The total number of ticks ended early because of a state error (counter)",
	})

	cursor = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "relayer_cursor",
		Help: "The next sequence number the forward sweep will attempt",
	})

	retrySetSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "relayer_retry_set_size",
		Help: "The total number of sequence numbers waiting in the retry set",
	})

	failedSequences = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "relayer_failed_sequences",
		Help: "The total number of failed sequence numbers in the storage",
	})
)

func AddBatchAttempt(status string, dur float64) {
	addAttempt(phaseBatch, status, dur)
}

func AddRetryAttempt(status string, dur float64) {
	addAttempt(phaseRetry, status, dur)
}

func addAttempt(phase, status string, dur float64) {
	labels := prometheus.Labels{
		labelPhase:  phase,
		labelStatus: status,
	}
	attempts.With(labels).Inc()
	attemptTime.With(labels).Observe(dur)
}

func IncSuccessChainSubmit(kind string) {
	chainSubmits.With(prometheus.Labels{
		labelKind: kind,
		labelType: typeSuccess,
	}).Inc()
}

func IncFailedChainSubmit(kind string) {
	chainSubmits.With(prometheus.Labels{
		labelKind: kind,
		labelType: typeFailed,
	}).Inc()
}

// IncSkippedChainSubmit counts submissions skipped because the chain already had the tx.
func IncSkippedChainSubmit(kind string) {
	chainSubmits.With(prometheus.Labels{
		labelKind: kind,
		labelType: typeSkipped,
	}).Inc()
}

func RecordTickDuration(dur float64) {
	tickTime.Observe(dur)
}

func IncTickErrors() {
	tickErrors.Inc()
}

func SetCursor(seq uint64) {
	cursor.Set(float64(seq))
}

func SetRetrySetSize(size int) {
	retrySetSize.Set(float64(size))
}

func SetFailedSequencesSize(size int) {
	failedSequences.Set(float64(size))
}
