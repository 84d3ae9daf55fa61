package assessment

import "github.com/adityasetu/health-assessment-api/internal/models"

// Score sums the weighted risk contributions of the answers. High-risk
// symptoms count 2 points, moderate symptoms and lifestyle factors 1 point,
// a household of more than 4 people 1 point, and the protective factors
// (vaccination, mask usage) subtract 1 point each. The result is clamped
// at zero.
func Score(answers Answers) int {
	score := 0

	for _, id := range []string{QFever, QShortnessBreath, QLossTasteSmell, QContactPositive} {
		if answers.IsYes(id) {
			score += 2
		}
	}

	for _, id := range []string{QCough, QFatigue, QTravelHistory, QChronicDisease, QPublicTransport} {
		if answers.IsYes(id) {
			score++
		}
	}

	if size, ok := answers.CountOf(QHouseholdSize); ok && size > 4 {
		score++
	}

	if answers.IsYes(QVaccinated) {
		score--
	}
	if answers.IsYes(QMaskUsage) {
		score--
	}

	if score < 0 {
		return 0
	}
	return score
}

// Classify buckets a risk score into a risk level. The thresholds are fixed:
// scores up to 2 are Low, 3 through 5 Moderate, 6 and above High.
func Classify(score int) models.RiskLevel {
	switch {
	case score <= 2:
		return models.RiskLow
	case score <= 5:
		return models.RiskModerate
	default:
		return models.RiskHigh
	}
}
