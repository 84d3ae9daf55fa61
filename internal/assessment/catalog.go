package assessment

import "errors"

// QuestionType tags how a question's answer is interpreted.
type QuestionType string

const (
	TypeYesNo   QuestionType = "yes_no"
	TypeNumeric QuestionType = "numeric"
)

// Question is one entry of the fixed questionnaire.
type Question struct {
	ID     string       `json:"id"`
	Prompt string       `json:"question"`
	Type   QuestionType `json:"type"`
}

// ErrUnknownQuestion is returned when a question ID is not in the catalog.
var ErrUnknownQuestion = errors.New("unknown question id")

// Question IDs referenced by the scoring and recommendation rules.
const (
	QFever           = "fever"
	QCough           = "cough"
	QShortnessBreath = "shortness_breath"
	QFatigue         = "fatigue"
	QLossTasteSmell  = "loss_taste_smell"
	QTravelHistory   = "travel_history"
	QContactPositive = "contact_positive"
	QPublicTransport = "public_transport"
	QChronicDisease  = "chronic_disease"
	QHouseholdSize   = "household_size"
	QMaskUsage       = "mask_usage"
	QVaccinated      = "vaccinated"
)

var catalog = []Question{
	{ID: QFever, Prompt: "Do you have a fever (temperature above 38°C or 100.4°F)?", Type: TypeYesNo},
	{ID: QCough, Prompt: "Do you have a cough or sore throat?", Type: TypeYesNo},
	{ID: QShortnessBreath, Prompt: "Do you experience shortness of breath or difficulty breathing?", Type: TypeYesNo},
	{ID: QFatigue, Prompt: "Do you have unusual fatigue or body aches?", Type: TypeYesNo},
	{ID: QLossTasteSmell, Prompt: "Have you experienced loss of taste or smell?", Type: TypeYesNo},
	{ID: QTravelHistory, Prompt: "Have you traveled outside your state in the past 14 days?", Type: TypeYesNo},
	{ID: QContactPositive, Prompt: "Have you been in close contact with someone who tested positive for COVID-19?", Type: TypeYesNo},
	{ID: QPublicTransport, Prompt: "Do you use public transportation regularly?", Type: TypeYesNo},
	{ID: QChronicDisease, Prompt: "Do you have any chronic medical conditions (diabetes, heart disease, respiratory issues)?", Type: TypeYesNo},
	{ID: QHouseholdSize, Prompt: "How many people live in your household?", Type: TypeNumeric},
	{ID: QMaskUsage, Prompt: "Do you always wear a mask when outside?", Type: TypeYesNo},
	{ID: QVaccinated, Prompt: "Have you been vaccinated against COVID-19?", Type: TypeYesNo},
}

var catalogByID = func() map[string]Question {
	m := make(map[string]Question, len(catalog))
	for _, q := range catalog {
		m[q.ID] = q
	}
	return m
}()

// Questions returns the fixed, ordered questionnaire. The returned slice is a
// copy; callers may not mutate the catalog.
func Questions() []Question {
	out := make([]Question, len(catalog))
	copy(out, catalog)
	return out
}

// QuestionByID looks up a single catalog entry.
func QuestionByID(id string) (Question, error) {
	q, ok := catalogByID[id]
	if !ok {
		return Question{}, ErrUnknownQuestion
	}
	return q, nil
}
