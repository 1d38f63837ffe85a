package types

// RequirementsIn seeds the first stage with the raw idea text.
type RequirementsIn struct {
	BusinessIdea string      `json:"business_idea"`
	DetailLevel  DetailLevel `json:"detail_level"`
}

// RequirementsAnalysis is the structured outcome of the requirements stage.
// ComplexityAssessment drives the delivery-timeline estimate downstream.
type RequirementsAnalysis struct {
	CoreFeatures           []string `json:"core_features"`
	UserTypes              []string `json:"user_types"`
	KeyEntities            []string `json:"key_entities"`
	BusinessModel          string   `json:"business_model"`
	ComplexityAssessment   string   `json:"complexity_assessment"` // low | medium | high
	KeyTechnicalChallenges []string `json:"key_technical_challenges,omitempty"`
}
