package entity

import "time"

// Profile describes the business behind a participant account.
// One profile per user id; created at onboarding, merged on update.
type Profile struct {
	UserID          string    `json:"userId"`
	FullName        string    `json:"fullName"`
	BusinessName    string    `json:"businessName"`
	Position        string    `json:"position"`
	BusinessType    string    `json:"businessType"`
	YearsInBusiness string    `json:"yearsInBusiness"`
	AnnualRevenue   string    `json:"annualRevenue"`
	Location        string    `json:"location"`
	OtherOwners     string    `json:"otherOwners"`
	Phone           string    `json:"phone"`
	UpdatedAt       time.Time `json:"updatedAt,omitempty"`
}

// Merge overlays non-empty fields from in onto p and returns the result.
func (p Profile) Merge(in Profile) Profile {
	if in.FullName != "" {
		p.FullName = in.FullName
	}
	if in.BusinessName != "" {
		p.BusinessName = in.BusinessName
	}
	if in.Position != "" {
		p.Position = in.Position
	}
	if in.BusinessType != "" {
		p.BusinessType = in.BusinessType
	}
	if in.YearsInBusiness != "" {
		p.YearsInBusiness = in.YearsInBusiness
	}
	if in.AnnualRevenue != "" {
		p.AnnualRevenue = in.AnnualRevenue
	}
	if in.Location != "" {
		p.Location = in.Location
	}
	if in.OtherOwners != "" {
		p.OtherOwners = in.OtherOwners
	}
	if in.Phone != "" {
		p.Phone = in.Phone
	}
	return p
}
