// Package metrics defines and registers all custom Prometheus metrics for
// the users service. It is the single source of truth for metric names,
// labels, and help strings; registration happens at import time via
// promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "users"

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditEventsTotal counts audit events that were appended successfully.
// Label:
//   - type: the domain event type (e.g. "UserCreated", "UsersListed")
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of audit events appended, by event type.",
	},
	[]string{"type"},
)

// AuditAppendFailuresTotal counts audit appends that failed. The primary
// operation is unaffected; this counter is the main signal that the trail is
// losing records.
var AuditAppendFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_append_failures_total",
		Help:      "Total number of audit event appends that failed.",
	},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - outcome: "success", "invalid_login", "unauthorized", or "invalid_payload"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// RegistrationsTotal counts registration attempts.
// Label:
//   - outcome: "success", "email_taken", or "invalid_payload"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by outcome.",
	},
	[]string{"outcome"},
)
