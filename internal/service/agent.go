package service

import (
	"context"
	"errors"
	"fmt"

	"voicedesk.app/api-server/common/id"
	"voicedesk.app/api-server/internal/model"
	"voicedesk.app/api-server/internal/store"
)

// ErrValidation marks malformed input rejected before any store write.
var ErrValidation = errors.New("validation failed")

const defaultVoiceSetting = 0.5

// CreateAgentParams carries validated-at-the-edge agent fields. Stability and
// similarity boost default to 0.5 when absent.
type CreateAgentParams struct {
	OrgID                int64
	Name                 string
	Language             string
	SystemPrompt         string
	ElevenLabsVoiceID    string
	VoiceStability       *float64
	VoiceSimilarityBoost *float64
	VoiceStyle           *string
}

type AgentService interface {
	List(ctx context.Context, userID, orgID int64) ([]model.Agent, error)
	Create(ctx context.Context, userID int64, params CreateAgentParams) (*model.Agent, error)
}

type agentService struct {
	authorizer    Authorizer
	userStores    store.Provider
	serviceStores store.Provider
}

func NewAgentService(authorizer Authorizer, userStores, serviceStores store.Provider) AgentService {
	return &agentService{
		authorizer:    authorizer,
		userStores:    userStores,
		serviceStores: serviceStores,
	}
}

// List returns the organization's agents, newest first. Membership alone
// suffices; any role may list.
func (s *agentService) List(ctx context.Context, userID, orgID int64) ([]model.Agent, error) {
	if _, err := s.authorizer.Authorize(ctx, userID, orgID); err != nil {
		return nil, err
	}

	agents, err := s.userStores.Agents().ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("listing agents: %w", err)
	}
	return agents, nil
}

// Create validates the fields, checks the caller holds a creator role, then
// inserts with elevated credentials: the row-level policy scoped to the caller
// must not second-guess an authorization already verified here.
func (s *agentService) Create(ctx context.Context, userID int64, params CreateAgentParams) (*model.Agent, error) {
	if err := validateAgentParams(params); err != nil {
		return nil, err
	}

	if _, err := s.authorizer.Authorize(ctx, userID, params.OrgID, model.AgentCreatorRoles...); err != nil {
		return nil, err
	}

	agent := &model.Agent{
		ID:                   id.New(),
		OrgID:                params.OrgID,
		Name:                 params.Name,
		Language:             params.Language,
		SystemPrompt:         params.SystemPrompt,
		ElevenLabsVoiceID:    params.ElevenLabsVoiceID,
		VoiceStability:       valueOr(params.VoiceStability, defaultVoiceSetting),
		VoiceSimilarityBoost: valueOr(params.VoiceSimilarityBoost, defaultVoiceSetting),
		VoiceStyle:           params.VoiceStyle,
		CreatedBy:            userID,
	}

	if err := s.serviceStores.Agents().Create(ctx, agent); err != nil {
		return nil, fmt.Errorf("creating agent: %w", err)
	}

	return agent, nil
}

func validateAgentParams(params CreateAgentParams) error {
	if params.Name == "" || len(params.Name) > 100 {
		return fmt.Errorf("%w: name must be between 1 and 100 characters", ErrValidation)
	}
	if params.Language == "" {
		return fmt.Errorf("%w: language is required", ErrValidation)
	}
	if params.SystemPrompt == "" {
		return fmt.Errorf("%w: system_prompt is required", ErrValidation)
	}
	if params.ElevenLabsVoiceID == "" {
		return fmt.Errorf("%w: elevenlabs_voice_id is required", ErrValidation)
	}
	if err := validateUnitInterval("voice_stability", params.VoiceStability); err != nil {
		return err
	}
	if err := validateUnitInterval("voice_similarity_boost", params.VoiceSimilarityBoost); err != nil {
		return err
	}
	return nil
}

func validateUnitInterval(field string, v *float64) error {
	if v != nil && (*v < 0 || *v > 1) {
		return fmt.Errorf("%w: %s must be between 0 and 1", ErrValidation, field)
	}
	return nil
}

func valueOr(v *float64, fallback float64) float64 {
	if v != nil {
		return *v
	}
	return fallback
}
