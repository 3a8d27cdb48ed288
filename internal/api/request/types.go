package request

// RegisterPlayerRequest is the request body for registering a player
type RegisterPlayerRequest struct {
	Identity string `json:"identity"`
	StaticID string `json:"static_id"`
	Nickname string `json:"nickname"`
}

// CreateSubmissionRequest is the request body for submitting a screenshot
type CreateSubmissionRequest struct {
	Owner       string `json:"owner"`
	ResourceURL string `json:"resource_url"`
}
