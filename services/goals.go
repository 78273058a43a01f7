package services

import (
	"math"

	"axis-server/models"
)

// consistencyTolerance is the absolute billing tolerance between the
// monthly sum and the yearly target. Absolute on purpose, not relative:
// changing it changes observable behavior.
const consistencyTolerance = 100

// ScopeAll aggregates performance across every user's stored goals.
const ScopeAll = "all"

// ClampBilling coerces invalid billing input (NaN, Inf, negative) to 0 so
// bad values never reach stored state.
func ClampBilling(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// ClampContracts coerces negative contract counts to 0.
func ClampContracts(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// DefaultGoalConfig returns the quota used when nothing is stored for a
// (user, service) pair: 120 contracts / 1M billing per year, quarters at
// a fourth and months at a twelfth of that, so the default is always
// internally consistent.
func DefaultGoalConfig() models.UserGoalConfig {
	cfg := models.UserGoalConfig{
		Yearly: models.PeriodicGoal{Contracts: 120, Billing: 1_000_000},
	}
	return AutoDistribute(cfg)
}

// SetYearly returns cfg with only the yearly bucket replaced. Quarterly
// and monthly figures are untouched: a manual yearly edit does not
// propagate until AutoDistribute is invoked explicitly.
func SetYearly(cfg models.UserGoalConfig, billing float64, contracts int) models.UserGoalConfig {
	cfg.Yearly = models.PeriodicGoal{
		Contracts: ClampContracts(contracts),
		Billing:   ClampBilling(billing),
	}
	return cfg
}

// AutoDistribute recomputes quarters as yearly/4 and months as yearly/12.
// Contracts use integer floor division, billing real division; this is the
// only operation that forces the hierarchy consistent.
func AutoDistribute(cfg models.UserGoalConfig) models.UserGoalConfig {
	quarter := models.PeriodicGoal{
		Contracts: cfg.Yearly.Contracts / 4,
		Billing:   cfg.Yearly.Billing / 4,
	}
	cfg.Quarters = models.Quarters{Q1: quarter, Q2: quarter, Q3: quarter, Q4: quarter}

	month := models.PeriodicGoal{
		Contracts: cfg.Yearly.Contracts / 12,
		Billing:   cfg.Yearly.Billing / 12,
	}
	for i := range cfg.Months {
		cfg.Months[i] = month
	}
	return cfg
}

// SumMonths adds up the twelve monthly quotas.
func SumMonths(cfg models.UserGoalConfig) models.PeriodicGoal {
	var sum models.PeriodicGoal
	for _, m := range cfg.Months {
		sum.Contracts += m.Contracts
		sum.Billing += m.Billing
	}
	return sum
}

// CheckConsistency reports whether the monthly billing sum agrees with
// the yearly target within the absolute tolerance. Advisory only: an
// inconsistent config is flagged, never rejected.
func CheckConsistency(cfg models.UserGoalConfig) bool {
	return math.Abs(SumMonths(cfg).Billing-cfg.Yearly.Billing) < consistencyTolerance
}

// ServicePerformance is the actual-vs-target reduction for one business
// line in one month.
type ServicePerformance struct {
	Service        models.ServiceType `json:"service"`
	Target         float64            `json:"target"`
	Actual         float64            `json:"actual"`
	FulfillmentPct int                `json:"fulfillment_pct"`
}

// ComputePerformance reduces stored quotas and converted contacts into
// per-service performance for one month. Scope is ScopeAll or a single
// user id. Actual sums contract values of in-scope Convertido contacts;
// target sums the stored monthly goals in scope. Users without a stored
// config contribute a zero target (defaults are never materialized here).
// A zero target yields 0%, never a division error.
func ComputePerformance(goals models.GoalBook, contacts []models.Contact, scope string, monthIdx int) []ServicePerformance {
	results := make([]ServicePerformance, 0, len(models.ServiceTypes))

	for _, service := range models.ServiceTypes {
		var actual float64
		for _, c := range contacts {
			if c.ServiceType != service || c.Status != models.StatusConvertido {
				continue
			}
			if scope != ScopeAll && c.OwnerID != scope {
				continue
			}
			if c.ContractValue != nil {
				actual += *c.ContractValue
			}
		}

		var target float64
		if scope == ScopeAll {
			for _, userGoals := range goals {
				if cfg, ok := userGoals[service]; ok && monthIdx >= 0 && monthIdx < 12 {
					target += cfg.Months[monthIdx].Billing
				}
			}
		} else {
			if cfg, ok := goals.Get(scope, service); ok && monthIdx >= 0 && monthIdx < 12 {
				target = cfg.Months[monthIdx].Billing
			}
		}

		pct := 0
		if target > 0 {
			pct = int(math.Round(actual / target * 100))
		}

		results = append(results, ServicePerformance{
			Service:        service,
			Target:         target,
			Actual:         actual,
			FulfillmentPct: pct,
		})
	}

	return results
}

// GoalFor returns the stored config for (userID, service) or the default
// when absent. Single-config reads default; aggregation never does.
func GoalFor(goals models.GoalBook, userID string, service models.ServiceType) models.UserGoalConfig {
	if cfg, ok := goals.Get(userID, service); ok {
		return cfg
	}
	return DefaultGoalConfig()
}

// SanitizeGoalConfig clamps every bucket of a client-supplied config.
func SanitizeGoalConfig(cfg models.UserGoalConfig) models.UserGoalConfig {
	clamp := func(g models.PeriodicGoal) models.PeriodicGoal {
		return models.PeriodicGoal{
			Contracts: ClampContracts(g.Contracts),
			Billing:   ClampBilling(g.Billing),
		}
	}
	cfg.Yearly = clamp(cfg.Yearly)
	cfg.Quarters.Q1 = clamp(cfg.Quarters.Q1)
	cfg.Quarters.Q2 = clamp(cfg.Quarters.Q2)
	cfg.Quarters.Q3 = clamp(cfg.Quarters.Q3)
	cfg.Quarters.Q4 = clamp(cfg.Quarters.Q4)
	for i := range cfg.Months {
		cfg.Months[i] = clamp(cfg.Months[i])
	}
	return cfg
}
