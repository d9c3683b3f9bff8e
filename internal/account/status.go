// Package account classifies a customer account by activity and
// subscription state.
package account

type Status string

const (
	StatusNotFound             Status = "not_found"
	StatusInactive             Status = "inactive"
	StatusNoSubscription       Status = "no_subscription"
	StatusExpired              Status = "expired"
	StatusInactiveSubscription Status = "inactive_subscription"
	StatusActiveNoPlan         Status = "active_no_plan"
	StatusPremiumActive        Status = "premium_active"
	StatusBasicActive          Status = "basic_active"
)

// Subscription states and plans.
const (
	SubscriptionActive  = "active"
	SubscriptionExpired = "expired"

	PlanPremium = "premium"
	PlanBasic   = "basic"
)

type Subscription struct {
	Status string `json:"status" yaml:"status"`
	Plan   string `json:"plan,omitempty" yaml:"plan,omitempty"`
}

type Account struct {
	Active       bool          `json:"active" yaml:"active"`
	Subscription *Subscription `json:"subscription,omitempty" yaml:"subscription,omitempty"`
}

// GetUserStatus classifies acc. A nil account is StatusNotFound and an empty
// plan counts as no plan.
func GetUserStatus(acc *Account) Status {
	if acc == nil {
		return StatusNotFound
	}
	if !acc.Active {
		return StatusInactive
	}

	sub := acc.Subscription
	if sub == nil {
		return StatusNoSubscription
	}
	if sub.Status != SubscriptionActive {
		if sub.Status == SubscriptionExpired {
			return StatusExpired
		}
		return StatusInactiveSubscription
	}

	switch sub.Plan {
	case PlanPremium:
		return StatusPremiumActive
	case PlanBasic:
		return StatusBasicActive
	default:
		return StatusActiveNoPlan
	}
}
