package models

// Activity event types published to the activity topic.
const (
	ActivityEvaluationSubmitted = "evaluation.submitted"
	ActivityEvaluationDeleted   = "evaluation.deleted"
	ActivityFavoriteToggled     = "favorite.toggled"
)

// Activity represents a user action on the catalog, including actor, target and timestamp.
type Activity struct {
	ActivityID string `json:"activity_id"`           // Unique identifier of the event
	Timestamp  int64  `json:"timestamp"`             // Unix timestamp (in seconds) of the action
	UserID     string `json:"user_id"`               // Acting user
	Type       string `json:"type"`                  // One of the Activity* constants
	UseCaseID  string `json:"use_case_id,omitempty"` // Target use case, if any
	Value      string `json:"value,omitempty"`       // Evaluation value or favorite state
}
