package model

// Voice is a read-only mirror of an ElevenLabs voice catalog entry. Not owned
// by this system; refreshed on cache expiry.
type Voice struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Language    *string `json:"language,omitempty"`
	Category    *string `json:"category,omitempty"`
	Description *string `json:"description,omitempty"`
}
