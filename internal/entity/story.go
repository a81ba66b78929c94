package entity

// Story is the marketing package produced for one craft. Content is the
// opaque JSON object the model returned; ID is assigned by the store and is
// empty when persistence was unavailable.
type Story struct {
	ID      string                 `json:"story_id,omitempty" firestore:"-"`
	Content map[string]interface{} `json:"final_content"`
}
