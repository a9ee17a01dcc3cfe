package model

import "time"

// User is the authenticated principal as mirrored from the identity provider.
// The WorkOS ID is the stable external identity; the snowflake ID is ours.
type User struct {
	CreatedAt time.Time `json:"created_at"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	WorkOSID  *string   `json:"-"`
	ID        int64     `json:"id,string"`
}
