package assessment

import "github.com/adityasetu/health-assessment-api/internal/models"

// Recommend produces the ordered guidance lines for a risk level and answer
// set. The line order is fixed: the level's baseline block first, then the
// symptom-specific lines. The result is never empty.
func Recommend(level models.RiskLevel, answers Answers) []string {
	var recs []string

	switch level {
	case models.RiskHigh:
		recs = append(recs,
			"⚠️ HIGH RISK DETECTED",
			"Please seek immediate medical attention.",
			"Contact your healthcare provider or visit the nearest hospital.",
			"Self-isolate immediately and avoid contact with others.",
		)
		if !answers.IsYes(QVaccinated) {
			recs = append(recs, "Consider getting vaccinated as soon as possible.")
		}
	case models.RiskModerate:
		recs = append(recs,
			"⚠️ MODERATE RISK",
			"Monitor your symptoms closely.",
			"Consider consulting with a healthcare professional.",
			"Stay home and avoid unnecessary outdoor activities.",
			"Continue social distancing and wear a mask.",
		)
		if !answers.IsYes(QVaccinated) {
			recs = append(recs, "Getting vaccinated can help reduce your risk.")
		}
	default:
		recs = append(recs,
			"✅ LOW RISK",
			"Continue following health guidelines.",
			"Maintain good hygiene practices.",
			"Wear masks in public places.",
			"Maintain social distancing.",
		)
		if !answers.IsYes(QVaccinated) {
			recs = append(recs, "Consider getting vaccinated to protect yourself further.")
		} else {
			recs = append(recs, "Good job staying vaccinated! Continue following safety measures.")
		}
	}

	if answers.IsYes(QFever) || answers.IsYes(QCough) {
		recs = append(recs, "Monitor your temperature regularly and stay hydrated.")
	}
	if answers.IsYes(QChronicDisease) {
		recs = append(recs, "Since you have chronic conditions, be extra careful and consult your doctor regularly.")
	}

	return recs
}
