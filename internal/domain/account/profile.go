package account

// Profile holds the free-form applicant fields collected at signup or during
// profile completion. Which fields are required depends on the role; see
// Account.IsProfileComplete.
type Profile struct {
	FirstName            string   `json:"first_name,omitempty"`
	LastName             string   `json:"last_name,omitempty"`
	AvatarURL            string   `json:"avatar_url,omitempty"`
	Phone                string   `json:"phone,omitempty"`
	Company              string   `json:"company,omitempty"`
	Location             string   `json:"location,omitempty"`
	InvestmentRange      string   `json:"investment_range,omitempty"`
	InvestmentCategories []string `json:"investment_categories,omitempty"`
	AccreditedInvestor   *bool    `json:"accredited_investor,omitempty"`
}

// DisplayName returns the best human-readable name available.
func (p Profile) DisplayName() string {
	switch {
	case p.FirstName != "" && p.LastName != "":
		return p.FirstName + " " + p.LastName
	case p.FirstName != "":
		return p.FirstName
	case p.Company != "":
		return p.Company
	default:
		return ""
	}
}
