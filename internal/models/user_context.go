package models

import "time"

// UserContext is the set of profile attributes considered when enriching
// retrieval queries and scoring documents. All fields are optional.
type UserContext struct {
	VisaStatus string   `json:"visaStatus,omitempty"`
	IncomeType string   `json:"incomeType,omitempty"`
	Region     string   `json:"region,omitempty"`
	Language   string   `json:"language,omitempty"`
	Goals      []string `json:"goals,omitempty"`
}

// Merge applies request-supplied overrides on top of a stored context.
// Only fields actually set in the override win.
func (c UserContext) Merge(override UserContext) UserContext {
	out := c
	if override.VisaStatus != "" {
		out.VisaStatus = override.VisaStatus
	}
	if override.IncomeType != "" {
		out.IncomeType = override.IncomeType
	}
	if override.Region != "" {
		out.Region = override.Region
	}
	if override.Language != "" {
		out.Language = override.Language
	}
	if override.Goals != nil {
		out.Goals = override.Goals
	}
	return out
}

// IsEmpty reports whether no profile attribute is set at all.
func (c UserContext) IsEmpty() bool {
	return c.VisaStatus == "" && c.IncomeType == "" && c.Region == "" &&
		c.Language == "" && len(c.Goals) == 0
}

// UserProfile is the durable form of a user's financial context.
type UserProfile struct {
	ID string `json:"id"`
	UserContext
	UpdatedAt time.Time `json:"updated_at"`
}
