package matching

const (
	ReasonPerfectSubject = "Perfect subject match"
	ReasonGoodSubject    = "Good subject match"
	ReasonHighlyRated    = "Highly rated tutor"
	ReasonWithinBudget   = "Within your budget"
	ReasonAvailable      = "Available when you need"
	ReasonVerified       = "Verified tutor"

	maxReasons = 3
)

// GenerateReasons формирует до трёх причин в порядке значимости
func GenerateReasons(s Scores) []string {
	reasons := make([]string, 0, maxReasons)

	switch subject := s.Get(FactorSubject); {
	case subject >= 0.9:
		reasons = append(reasons, ReasonPerfectSubject)
	case subject >= 0.5:
		reasons = append(reasons, ReasonGoodSubject)
	}
	if s.Get(FactorRating) >= 0.9 {
		reasons = append(reasons, ReasonHighlyRated)
	}
	if s.Get(FactorPrice) >= 0.8 {
		reasons = append(reasons, ReasonWithinBudget)
	}
	if s.Get(FactorAvailability) >= 0.8 {
		reasons = append(reasons, ReasonAvailable)
	}
	if s.Get(FactorVerified) == 1 {
		reasons = append(reasons, ReasonVerified)
	}

	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}
	return reasons
}
