package entities

// HealthPlanForm is the planner form as typed by the user
type HealthPlanForm struct {
	Age        string `json:"age"`
	Symptoms   string `json:"symptoms"`
	Conditions string `json:"conditions"`
}

// HealthPlanRequest is the POST /health/planner payload
type HealthPlanRequest struct {
	UserData HealthPlanForm `json:"user_data"`
	UserID   string         `json:"user_id"`
}

// HealthPlanResponse is the POST /health/planner reply
type HealthPlanResponse struct {
	HealthPlan string `json:"health_plan"`
	PlanID     string `json:"plan_id,omitempty"`
}

// SymptomForm is the symptom checker form
type SymptomForm struct {
	Symptoms string `json:"symptoms"`
	Age      string `json:"age"`
}

// SymptomAnalysisRequest is the POST /symptoms/analyze payload
type SymptomAnalysisRequest struct {
	Symptoms string `json:"symptoms"`
	Age      string `json:"age"`
	UserID   string `json:"user_id"`
}

// SymptomAnalysisResponse is the POST /symptoms/analyze reply
type SymptomAnalysisResponse struct {
	Analysis   string `json:"analysis"`
	AnalysisID string `json:"analysis_id,omitempty"`
}
