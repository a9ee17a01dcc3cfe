package model

import "time"

type Organization struct {
	CreatedAt time.Time `json:"created_at"`
	Name      string    `json:"name"`
	ID        int64     `json:"id,string"`
}

// OrganizationWithRole pairs an organization with the caller's role in it,
// as returned by the membership-joined listing.
type OrganizationWithRole struct {
	Organization
	Role Role `json:"role"`
}
