package response

import "github.com/vietanh2810/training-calendar-api/internal/domain"

type Auth struct {
	Token string   `json:"token"`
	Type  string   `json:"type"`
	ID    string   `json:"id"`
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

type Me struct {
	ID    string   `json:"id"`
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

type Message struct {
	Message string `json:"message"`
}

func NewAuth(token string, id domain.Identity) Auth {
	return Auth{
		Token: token,
		Type:  "Bearer",
		ID:    id.AccountID,
		Email: id.Email,
		Roles: id.RoleNames,
	}
}

func NewMe(id domain.Identity) Me {
	return Me{
		ID:    id.AccountID,
		Email: id.Email,
		Roles: id.RoleNames,
	}
}
