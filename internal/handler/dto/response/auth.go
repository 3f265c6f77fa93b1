package response

import (
	"time"

	"campus-booking/internal/domain/session"
	"campus-booking/internal/usecase/commands"
)

type SessionResponse struct {
	Authenticated bool       `json:"authenticated"`
	UserID        string     `json:"user_id,omitempty"`
	DisplayName   string     `json:"display_name,omitempty"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
}

func FromIdentity(id session.Identity) *SessionResponse {
	if !id.Authenticated() {
		return &SessionResponse{Authenticated: false}
	}
	return &SessionResponse{
		Authenticated: true,
		UserID:        id.UserID,
		DisplayName:   id.DisplayName,
	}
}

func FromLoginResult(r *commands.LoginResult) *SessionResponse {
	resp := FromIdentity(r.Identity)
	expiresAt := r.Token.ExpiresAt
	resp.ExpiresAt = &expiresAt
	return resp
}
