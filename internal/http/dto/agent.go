package dto

import (
	"time"

	"voicedesk.app/api-server/internal/model"
	"voicedesk.app/api-server/internal/service"
)

type CreateAgentRequest struct {
	OrgID                int64    `json:"org_id,string" binding:"required"`
	Name                 string   `json:"name" binding:"required,min=1,max=100"`
	Language             string   `json:"language" binding:"required"`
	SystemPrompt         string   `json:"system_prompt" binding:"required"`
	ElevenLabsVoiceID    string   `json:"elevenlabs_voice_id" binding:"required"`
	VoiceStability       *float64 `json:"voice_stability,omitempty" binding:"omitempty,min=0,max=1"`
	VoiceSimilarityBoost *float64 `json:"voice_similarity_boost,omitempty" binding:"omitempty,min=0,max=1"`
	VoiceStyle           *string  `json:"voice_style,omitempty"`
}

func (r *CreateAgentRequest) ToParams() service.CreateAgentParams {
	return service.CreateAgentParams{
		OrgID:                r.OrgID,
		Name:                 r.Name,
		Language:             r.Language,
		SystemPrompt:         r.SystemPrompt,
		ElevenLabsVoiceID:    r.ElevenLabsVoiceID,
		VoiceStability:       r.VoiceStability,
		VoiceSimilarityBoost: r.VoiceSimilarityBoost,
		VoiceStyle:           r.VoiceStyle,
	}
}

type AgentResponse struct {
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

func ToAgentResponse(agent *model.Agent) *AgentResponse {
	return &AgentResponse{
		ID:                   agent.ID,
		OrgID:                agent.OrgID,
		Name:                 agent.Name,
		Language:             agent.Language,
		SystemPrompt:         agent.SystemPrompt,
		ElevenLabsVoiceID:    agent.ElevenLabsVoiceID,
		VoiceStability:       agent.VoiceStability,
		VoiceSimilarityBoost: agent.VoiceSimilarityBoost,
		VoiceStyle:           agent.VoiceStyle,
		CreatedBy:            agent.CreatedBy,
		CreatedAt:            agent.CreatedAt,
	}
}

func ToAgentResponses(agents []model.Agent) []AgentResponse {
	result := make([]AgentResponse, len(agents))
	for i := range agents {
		result[i] = *ToAgentResponse(&agents[i])
	}
	return result
}
