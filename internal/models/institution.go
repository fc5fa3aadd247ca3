package models

import "time"

type Institution struct {
	ID                    int       `json:"id"`
	ProviderID            int       `json:"providerId"`
	ProviderInstitutionID string    `json:"providerInstitutionId"`
	Name                  string    `json:"name"`
	LogoURL               string    `json:"logoUrl"`
	Country               string    `json:"country"`
	Enabled               bool      `json:"enabled"`
	Demo                  bool      `json:"demo"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// InstitutionUpsert is the sync write shape, keyed by
// (providerId, providerInstitutionId).
type InstitutionUpsert struct {
	ProviderID            int
	ProviderInstitutionID string
	Name                  string
	LogoURL               string
	Country               string
	Enabled               bool
	Demo                  bool
}

type InstitutionFilterOptions struct {
	ProviderID int
	Country    string
	Enabled    *bool
	Search     string
	Limit      int
	Offset     int
}

type GetListInstitutionRequest struct {
	ProviderID int    `query:"providerId" json:"providerId"`
	Country    string `query:"country" json:"country"`
	Search     string `query:"search" json:"search"`
	Enabled    *bool  `query:"enabled" json:"enabled"`
	Limit      int    `query:"limit" json:"limit" validate:"omitempty,min=1,max=100"`
	Offset     int    `query:"offset" json:"offset" validate:"omitempty,min=0"`
}

func (r GetListInstitutionRequest) ToFilterOpts() InstitutionFilterOptions {
	return InstitutionFilterOptions{
		ProviderID: r.ProviderID,
		Country:    r.Country,
		Enabled:    r.Enabled,
		Search:     r.Search,
		Limit:      r.Limit,
		Offset:     r.Offset,
	}
}
