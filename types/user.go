package types

// Profile is the authenticated user's account information as reported by
// the judge.
type Profile struct {
	Username     string `json:"username"`
	FriendlyName string `json:"friendly_name,omitempty"`
	StudentID    string `json:"student_id,omitempty"`
}
