package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PlansCreated counts generated installment plans.
	PlansCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "plans_created_total",
		Help: "Number of installment plans created",
	})

	// PaymentsRecorded counts ledger payment recordings by outcome.
	PaymentsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payments_recorded_total",
		Help: "Number of installment payments recorded",
	}, []string{"status"})

	// ReceiptsIssued counts issued payment receipts.
	ReceiptsIssued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "receipts_issued_total",
		Help: "Number of payment receipts issued",
	})

	// DistributionsExecuted counts executed sale distributions (per sale,
	// not per investor row).
	DistributionsExecuted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "distributions_executed_total",
		Help: "Number of sale distributions executed",
	})

	// InstallmentsOverdue counts installments flipped by the overdue sweep.
	InstallmentsOverdue = promauto.NewCounter(prometheus.CounterOpts{
		Name: "installments_overdue_total",
		Help: "Number of installments marked overdue by sweeps",
	})
)
