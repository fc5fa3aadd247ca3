package models

import "time"

// Provider is immutable reference data for one external aggregator,
// seeded once per deployment.
type Provider struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

const (
	ProviderSaltEdge      = "saltedge"
	ProviderSnapTrade     = "snaptrade"
	ProviderVezgo         = "vezgo"
	ProviderEnableBanking = "enablebanking"
)
