package response

import "slotbook/internal/usecase/queries"

type LoginResponse struct {
	AccessToken string                      `json:"accessToken"`
	User        *queries.AuthorizedUserView `json:"user"`
}

type MeResponse struct {
	User *queries.AuthorizedUserView `json:"user"`
}
