package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"voicedesk.app/api-server/internal/model"
)

type agentStore struct {
	pool *pgxpool.Pool
}

func newAgentStore(pool *pgxpool.Pool) AgentStore {
	return &agentStore{pool: pool}
}

func (s *agentStore) Create(ctx context.Context, agent *model.Agent) error {
	query := `
		INSERT INTO agents (
			id, org_id, name, language, system_prompt,
			elevenlabs_voice_id, voice_stability, voice_similarity_boost,
			voice_style, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`

	err := s.pool.QueryRow(ctx, query,
		agent.ID,
		agent.OrgID,
		agent.Name,
		agent.Language,
		agent.SystemPrompt,
		agent.ElevenLabsVoiceID,
		agent.VoiceStability,
		agent.VoiceSimilarityBoost,
		agent.VoiceStyle,
		agent.CreatedBy,
	).Scan(&agent.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating agent: %w", err)
	}
	return nil
}

func (s *agentStore) ListByOrganization(ctx context.Context, orgID int64) ([]model.Agent, error) {
	query := `
		SELECT id, org_id, name, language, system_prompt,
			elevenlabs_voice_id, voice_stability, voice_similarity_boost,
			voice_style, created_by, created_at
		FROM agents
		WHERE org_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.pool.Query(ctx, query, orgID)
	if err != nil {
		return nil, fmt.Errorf("listing agents: %w", err)
	}
	defer rows.Close()

	var agents []model.Agent
	for rows.Next() {
		var a model.Agent
		err := rows.Scan(
			&a.ID,
			&a.OrgID,
			&a.Name,
			&a.Language,
			&a.SystemPrompt,
			&a.ElevenLabsVoiceID,
			&a.VoiceStability,
			&a.VoiceSimilarityBoost,
			&a.VoiceStyle,
			&a.CreatedBy,
			&a.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning agent: %w", err)
		}
		agents = append(agents, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating agents: %w", err)
	}

	return agents, nil
}
