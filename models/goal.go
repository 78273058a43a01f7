package models

// PeriodicGoal is a quota for one time bucket. Contracts are discrete,
// billing is continuous money.
type PeriodicGoal struct {
	Contracts int     `json:"contracts"`
	Billing   float64 `json:"billing"`
}

// Quarters holds the four quarterly quotas of a year.
type Quarters struct {
	Q1 PeriodicGoal `json:"q1"`
	Q2 PeriodicGoal `json:"q2"`
	Q3 PeriodicGoal `json:"q3"`
	Q4 PeriodicGoal `json:"q4"`
}

// UserGoalConfig is the three-tier quota hierarchy for one
// (user, service line) pair. The tiers are independently editable and may
// disagree; consistency is advisory, never enforced.
type UserGoalConfig struct {
	Yearly   PeriodicGoal     `json:"yearly"`
	Quarters Quarters         `json:"quarters"`
	Months   [12]PeriodicGoal `json:"months"`
}

// GoalBook maps userID -> serviceType -> config. Absent entries mean "no
// quota set": aggregation treats them as zero targets and never
// materializes defaults.
type GoalBook map[string]map[ServiceType]UserGoalConfig

// Get returns the stored config and whether it exists.
func (b GoalBook) Get(userID string, service ServiceType) (UserGoalConfig, bool) {
	cfg, ok := b[userID][service]
	return cfg, ok
}

// Set stores a config, allocating the inner map when needed.
func (b GoalBook) Set(userID string, service ServiceType, cfg UserGoalConfig) {
	if b[userID] == nil {
		b[userID] = make(map[ServiceType]UserGoalConfig)
	}
	b[userID][service] = cfg
}
