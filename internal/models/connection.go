package models

import "time"

// ProviderConnection is a user's authorization with one provider. It owns
// zero or more institution connections; those own the accounts.
type ProviderConnection struct {
	ID         int       `json:"id"`
	UserID     string    `json:"userId"`
	ProviderID int       `json:"providerId"`
	// ProviderUserID is the identity the upstream provider assigned on
	// registration, required for deregistration on some providers.
	ProviderUserID string    `json:"providerUserId"`
	CreatedAt      time.Time `json:"createdAt"`
}

type InstitutionConnection struct {
	ID                   int       `json:"id"`
	ProviderConnectionID int       `json:"providerConnectionId"`
	InstitutionID        int       `json:"institutionId"`
	// ExternalID is the connection-level id on the provider side (SaltEdge
	// "connection", Vezgo "account", EnableBanking "session").
	ExternalID string    `json:"externalId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type CreateProviderConnection struct {
	UserID         string
	ProviderID     int
	ProviderUserID string
}

type CreateInstitutionConnection struct {
	ProviderConnectionID int
	InstitutionID        int
	ExternalID           string
}

// ConnectionDetail joins a provider connection with its provider name for
// API responses and sync scheduling.
type ConnectionDetail struct {
	ProviderConnection
	ProviderName string `json:"providerName"`
}

// RegisterOut is the registration result: the stored connection plus the
// provider's hosted-flow URL when it has one.
type RegisterOut struct {
	Connection  ProviderConnection `json:"connection"`
	RedirectURL string             `json:"redirectUrl,omitempty"`
}

// AttachInstitutionIn records a provider-side institution link after the
// user completes the provider's connect flow.
type AttachInstitutionIn struct {
	ProviderConnectionID int    `json:"providerConnectionId" validate:"required"`
	InstitutionID        int    `json:"institutionId" validate:"required"`
	ExternalID           string `json:"externalId" validate:"required"`
}

type RegisterConnectionRequest struct {
	UserID   string `json:"userId" validate:"required"`
	Provider string `json:"provider" validate:"required"`
}

type DeregisterConnectionRequest struct {
	UserID string `query:"userId" json:"userId" validate:"required"`
}

type GetConnectionsRequest struct {
	UserID string `query:"userId" json:"userId" validate:"required"`
}

// AttachInstitutionRequest is the callback payload after the user finishes
// a provider's hosted connect flow; the path carries the connection id.
type AttachInstitutionRequest struct {
	InstitutionID int    `json:"institutionId" validate:"required"`
	ExternalID    string `json:"externalId" validate:"required"`
}

// SyncTarget is one institution connection flattened with the identities an
// adapter needs to fetch its accounts.
type SyncTarget struct {
	InstitutionConnectionID int
	InstitutionID           int
	ExternalID              string
	ProviderUserID          string
	UserID                  string
}
