package dto

import (
	"time"

	"voicedesk.app/api-server/internal/model"
)

type CreateOrganizationRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

type OrganizationResponse struct {
	CreatedAt time.Time `json:"created_at"`
	Name      string    `json:"name"`
	Role      string    `json:"role,omitempty"`
	ID        int64     `json:"id,string"`
}

func ToOrganizationResponse(org *model.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		ID:        org.ID,
		Name:      org.Name,
		CreatedAt: org.CreatedAt,
	}
}

func ToOrganizationWithRoleResponses(orgs []model.OrganizationWithRole) []OrganizationResponse {
	result := make([]OrganizationResponse, len(orgs))
	for i, org := range orgs {
		result[i] = OrganizationResponse{
			ID:        org.ID,
			Name:      org.Name,
			Role:      string(org.Role),
			CreatedAt: org.CreatedAt,
		}
	}
	return result
}
