package model

import "time"

// Agent is an AI agent configuration bound to exactly one organization.
// VoiceStability and VoiceSimilarityBoost are clamped to [0,1] at the API
// boundary before any store write.
type Agent struct {
	CreatedAt            time.Time `json:"created_at"`
	Name                 string    `json:"name"`
	Language             string    `json:"language"`
	SystemPrompt         string    `json:"system_prompt"`
	ElevenLabsVoiceID    string    `json:"elevenlabs_voice_id"`
	VoiceStyle           *string   `json:"voice_style,omitempty"`
	VoiceStability       float64   `json:"voice_stability"`
	VoiceSimilarityBoost float64   `json:"voice_similarity_boost"`
	ID                   int64     `json:"id,string"`
	OrgID                int64     `json:"org_id,string"`
	CreatedBy            int64     `json:"created_by,string"`
}
