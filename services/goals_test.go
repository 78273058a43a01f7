package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"axis-server/models"
)

func TestAutoDistributeSplitsYearly(t *testing.T) {
	cfg := AutoDistribute(models.UserGoalConfig{
		Yearly: models.PeriodicGoal{Contracts: 120, Billing: 1_200_000},
	})

	assert.Equal(t, 30, cfg.Quarters.Q1.Contracts)
	assert.Equal(t, 300_000.0, cfg.Quarters.Q3.Billing)
	for _, m := range cfg.Months {
		assert.Equal(t, 10, m.Contracts)
		assert.Equal(t, 100_000.0, m.Billing)
	}
}

func TestAutoDistributeFloorsContracts(t *testing.T) {
	// 10 contracts do not divide evenly: 10/4=2, 10/12=0. The remainder
	// is dropped, not redistributed.
	cfg := AutoDistribute(models.UserGoalConfig{
		Yearly: models.PeriodicGoal{Contracts: 10, Billing: 10},
	})

	assert.Equal(t, 2, cfg.Quarters.Q1.Contracts)
	assert.Equal(t, 0, cfg.Months[0].Contracts)
	assert.Equal(t, 2.5, cfg.Quarters.Q1.Billing)
}

func TestAutoDistributeBillingSumMatchesYearly(t *testing.T) {
	for _, yearly := range []float64{0, 1, 999.99, 1_000_000, 7_777_777.77} {
		cfg := AutoDistribute(models.UserGoalConfig{
			Yearly: models.PeriodicGoal{Billing: yearly},
		})
		assert.InDelta(t, yearly, SumMonths(cfg).Billing, 1e-6)
		assert.True(t, CheckConsistency(cfg), "distributed config must be consistent for yearly=%v", yearly)
	}
}

func TestDefaultGoalConfigIsConsistent(t *testing.T) {
	cfg := DefaultGoalConfig()

	assert.Equal(t, 120, cfg.Yearly.Contracts)
	assert.Equal(t, 1_000_000.0, cfg.Yearly.Billing)
	assert.True(t, CheckConsistency(cfg))
}

func TestSetYearlyDoesNotPropagate(t *testing.T) {
	cfg := DefaultGoalConfig()
	before := cfg.Months

	cfg = SetYearly(cfg, 2_000_000, 240)

	assert.Equal(t, 2_000_000.0, cfg.Yearly.Billing)
	assert.Equal(t, 240, cfg.Yearly.Contracts)
	assert.Equal(t, before, cfg.Months, "monthly quotas must stay untouched")
	assert.False(t, CheckConsistency(cfg), "doubled yearly with old months must flag inconsistent")

	// An explicit distribute reconciles the hierarchy again.
	assert.True(t, CheckConsistency(AutoDistribute(cfg)))
}

func TestCheckConsistencyTolerance(t *testing.T) {
	cfg := AutoDistribute(models.UserGoalConfig{
		Yearly: models.PeriodicGoal{Billing: 120_000},
	})

	cfg.Yearly.Billing += 99
	assert.True(t, CheckConsistency(cfg))

	cfg.Yearly.Billing += 1
	assert.False(t, CheckConsistency(cfg), "drift of exactly 100 is outside the strict tolerance")
}

func TestClampBilling(t *testing.T) {
	assert.Equal(t, 0.0, ClampBilling(math.NaN()))
	assert.Equal(t, 0.0, ClampBilling(math.Inf(1)))
	assert.Equal(t, 0.0, ClampBilling(-500))
	assert.Equal(t, 42.5, ClampBilling(42.5))
	assert.Equal(t, 0, ClampContracts(-3))
}

func TestSanitizeGoalConfig(t *testing.T) {
	cfg := models.UserGoalConfig{
		Yearly: models.PeriodicGoal{Contracts: -5, Billing: math.NaN()},
	}
	cfg.Months[3] = models.PeriodicGoal{Contracts: 7, Billing: -1}

	cfg = SanitizeGoalConfig(cfg)

	assert.Equal(t, 0, cfg.Yearly.Contracts)
	assert.Equal(t, 0.0, cfg.Yearly.Billing)
	assert.Equal(t, 7, cfg.Months[3].Contracts)
	assert.Equal(t, 0.0, cfg.Months[3].Billing)
}

func performanceFor(results []ServicePerformance, service models.ServiceType) ServicePerformance {
	for _, r := range results {
		if r.Service == service {
			return r
		}
	}
	return ServicePerformance{}
}

func TestComputePerformanceSingleUser(t *testing.T) {
	goals := models.GoalBook{}
	cfg := models.UserGoalConfig{}
	cfg.Months[0] = models.PeriodicGoal{Billing: 100_000}
	goals.Set("u2", models.ServiceDesarrollo, cfg)

	contacts := []models.Contact{
		{OwnerID: "u2", ServiceType: models.ServiceDesarrollo, Status: models.StatusConvertido, ContractValue: ptrFloat(50_000)},
		{OwnerID: "u2", ServiceType: models.ServiceDesarrollo, Status: models.StatusProspecto, ContractValue: ptrFloat(99_999)},
		{OwnerID: "u3", ServiceType: models.ServiceDesarrollo, Status: models.StatusConvertido, ContractValue: ptrFloat(10_000)},
	}

	results := ComputePerformance(goals, contacts, "u2", 0)
	require.Len(t, results, len(models.ServiceTypes))

	perf := performanceFor(results, models.ServiceDesarrollo)
	assert.Equal(t, 100_000.0, perf.Target)
	assert.Equal(t, 50_000.0, perf.Actual, "only the owner's converted contacts count")
	assert.Equal(t, 50, perf.FulfillmentPct)
}

func TestComputePerformanceScopeAll(t *testing.T) {
	goals := models.GoalBook{}
	cfgA := models.UserGoalConfig{}
	cfgA.Months[5] = models.PeriodicGoal{Billing: 40_000}
	goals.Set("u2", models.ServiceAnalitica, cfgA)
	cfgB := models.UserGoalConfig{}
	cfgB.Months[5] = models.PeriodicGoal{Billing: 60_000}
	goals.Set("u3", models.ServiceAnalitica, cfgB)

	contacts := []models.Contact{
		{OwnerID: "u2", ServiceType: models.ServiceAnalitica, Status: models.StatusConvertido, ContractValue: ptrFloat(30_000)},
		{OwnerID: "u3", ServiceType: models.ServiceAnalitica, Status: models.StatusConvertido, ContractValue: ptrFloat(45_000)},
	}

	perf := performanceFor(ComputePerformance(goals, contacts, ScopeAll, 5), models.ServiceAnalitica)
	assert.Equal(t, 100_000.0, perf.Target)
	assert.Equal(t, 75_000.0, perf.Actual)
	assert.Equal(t, 75, perf.FulfillmentPct)
}

func TestComputePerformanceMissingConfigIsZeroTarget(t *testing.T) {
	contacts := []models.Contact{
		{OwnerID: "u2", ServiceType: models.ServiceCobranzas, Status: models.StatusConvertido, ContractValue: ptrFloat(10_000)},
	}

	// No stored goals at all: targets stay zero and never fall back to the
	// single-read default.
	perf := performanceFor(ComputePerformance(models.GoalBook{}, contacts, "u2", 0), models.ServiceCobranzas)
	assert.Equal(t, 0.0, perf.Target)
	assert.Equal(t, 10_000.0, perf.Actual)
	assert.Equal(t, 0, perf.FulfillmentPct, "zero target yields 0%, not a division error")
}

func TestComputePerformanceRoundsPct(t *testing.T) {
	goals := models.GoalBook{}
	cfg := models.UserGoalConfig{}
	cfg.Months[0] = models.PeriodicGoal{Billing: 30_000}
	goals.Set("u2", models.ServiceRecaudo, cfg)

	contacts := []models.Contact{
		{OwnerID: "u2", ServiceType: models.ServiceRecaudo, Status: models.StatusConvertido, ContractValue: ptrFloat(10_000)},
	}

	perf := performanceFor(ComputePerformance(goals, contacts, "u2", 0), models.ServiceRecaudo)
	assert.Equal(t, 33, perf.FulfillmentPct)
}

func TestGoalForDefaultsOnAbsent(t *testing.T) {
	goals := models.GoalBook{}

	cfg := GoalFor(goals, "u9", models.ServiceAnalitica)
	assert.Equal(t, DefaultGoalConfig(), cfg)

	stored := models.UserGoalConfig{Yearly: models.PeriodicGoal{Billing: 5}}
	goals.Set("u9", models.ServiceAnalitica, stored)
	assert.Equal(t, stored, GoalFor(goals, "u9", models.ServiceAnalitica))
}

func ptrFloat(v float64) *float64 { return &v }
