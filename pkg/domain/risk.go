package domain

// RiskFactor is a structured flag derived from free-text medical history
// answers. The vocabulary is fixed; factors are derived read-only and
// never stored back into the session.
type RiskFactor string

const (
	RiskFamilyHistory RiskFactor = "Family history of skin cancer"
	RiskSunExposure   RiskFactor = "History of significant sun exposure or sunburns"
	RiskPriorCancer   RiskFactor = "Previous skin cancer history"
	RiskSymptomatic   RiskFactor = "Symptomatic lesion (pain, itching, or bleeding)"
	RiskRecentChange  RiskFactor = "Recent changes in the lesion"
)
