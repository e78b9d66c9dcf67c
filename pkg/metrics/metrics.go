package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Contadores de negocio expuestos en /metrics. Se incrementan solo después
// de que la unidad de trabajo correspondiente haya confirmado (Commit).
var (
	TransactionsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cellar",
		Name:      "transactions_recorded_total",
		Help:      "Transacciones registradas en el libro, por nombre de tipo.",
	}, []string{"type"})

	BatchesStarted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "cellar",
		Name:      "batches_started_total",
		Help:      "Lotes iniciados.",
	})

	BatchesCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "cellar",
		Name:      "batches_completed_total",
		Help:      "Lotes completados (incluye finalizaciones por transferencia).",
	})

	Transfers = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "cellar",
		Name:      "transfers_total",
		Help:      "Transferencias tanque a tanque confirmadas.",
	})
)
