package httpapi

import (
	"net/http"

	"github.com/futliga/liga-api/internal/domain/user"
)

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/divisions/{division}/standings", handler.ListStandings)
	mux.HandleFunc("GET /v1/divisions/{division}/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/divisions/{division}/scorers", handler.ListScorers)
	mux.HandleFunc("GET /v1/divisions/{division}/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/divisions/{division}/suspensions", handler.ListSuspensions)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /v1/teams/{teamID}/players", handler.ListTeamPlayers)
	mux.HandleFunc("GET /v1/avisos", handler.ListAvisos)
	mux.HandleFunc("GET /v1/albums", handler.ListAlbums)
	mux.HandleFunc("POST /v1/contact", handler.SubmitContactMessage)
	mux.HandleFunc("GET /v1/watch", handler.Watch)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	admin := func(h http.HandlerFunc) http.Handler {
		return RequireRole(verifier, []string{user.RoleAdmin}, h)
	}

	mux.Handle("POST /v1/teams", admin(handler.CreateTeam))
	mux.Handle("PUT /v1/teams/{teamID}", admin(handler.RenameTeam))
	mux.Handle("PUT /v1/teams/{teamID}/baseline", admin(handler.SetTeamBaseline))
	mux.Handle("PUT /v1/teams/{teamID}/penalty", admin(handler.SetTeamPenalty))
	mux.Handle("DELETE /v1/teams/{teamID}", admin(handler.DeleteTeam))

	mux.Handle("POST /v1/matches", admin(handler.ScheduleMatch))
	mux.Handle("DELETE /v1/matches/{matchID}", admin(handler.DeleteMatch))

	mux.Handle("POST /v1/players", admin(handler.RegisterPlayer))
	mux.Handle("DELETE /v1/players/{playerID}", admin(handler.DeletePlayer))

	mux.Handle("PUT /v1/suspensions/{suspensionID}/games", admin(handler.SetSuspensionGames))
	mux.Handle("POST /v1/suspensions/{suspensionID}/serve", admin(handler.ServeSuspension))

	mux.Handle("POST /v1/avisos", admin(handler.PublishAviso))
	mux.Handle("DELETE /v1/avisos/{avisoID}", admin(handler.DeleteAviso))

	mux.Handle("GET /v1/contact/messages", admin(handler.ListContactMessages))

	mux.Handle("POST /v1/albums", admin(handler.CreateAlbum))
	mux.Handle("DELETE /v1/albums/{albumID}", admin(handler.DeleteAlbum))
}

func registerRefereeRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	referee := []string{user.RoleReferee, user.RoleAdmin}

	mux.Handle("POST /v1/matches/{matchID}/finalize", RequireRole(verifier, referee, http.HandlerFunc(handler.FinalizeMatch)))
	mux.Handle("GET /v1/matches/{matchID}", RequireRole(verifier, referee, http.HandlerFunc(handler.GetMatch)))
}
