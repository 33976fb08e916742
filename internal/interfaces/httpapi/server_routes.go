package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, cfg RouterConfig) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if cfg.MetricsHandler != nil {
		mux.Handle("GET /metrics", cfg.MetricsHandler)
	}
	if !cfg.SwaggerEnabled {
		return
	}

	mux.HandleFunc("GET "+openAPIPath, handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/users", handler.RegisterUser)
	mux.HandleFunc("GET /v1/users/{userId}", handler.GetUser)
	mux.HandleFunc("POST /v1/sessions/password", handler.Login)
	mux.HandleFunc("POST /v1/login", handler.Login)

	mux.HandleFunc("GET /v1/teams/{teamId}", handler.GetTeam)

	mux.HandleFunc("GET /v1/championships", handler.ListChampionships)
	mux.HandleFunc("GET /v1/championships/{championshipId}", handler.GetChampionship)
	mux.HandleFunc("GET /v1/championships/{championshipId}/teams", handler.ListChampionshipTeams)
	mux.HandleFunc("GET /v1/championships/{championshipId}/teams/positions", handler.ListChampionshipStandings)
	mux.HandleFunc("GET /v1/championships/{championshipId}/matches", handler.ListMatches)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	registerAuthorizedUserRoutes(mux, handler, verifier)
	registerAuthorizedChampionshipRoutes(mux, handler, verifier)
	registerAuthorizedGuessRoutes(mux, handler, verifier)
}

func registerAuthorizedUserRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("DELETE /v1/logout", RequireAuth(verifier, http.HandlerFunc(handler.Logout)))
	mux.Handle("GET /v1/profile", RequireAuth(verifier, http.HandlerFunc(handler.GetProfile)))
	mux.Handle("PATCH /v1/users", RequireAuth(verifier, http.HandlerFunc(handler.UpdateUser)))
	mux.Handle("PUT /v1/password/change", RequireAuth(verifier, http.HandlerFunc(handler.ChangePassword)))
	mux.Handle("POST /v1/teams", RequireAuth(verifier, http.HandlerFunc(handler.CreateTeam)))
}

func registerAuthorizedChampionshipRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/championships", RequireAuth(verifier, http.HandlerFunc(handler.CreateChampionship)))
	mux.Handle("POST /v1/championships/{championshipId}/teams", RequireAuth(verifier, http.HandlerFunc(handler.AddChampionshipTeam)))
	mux.Handle("POST /v1/championships/{championshipId}/matches", RequireAuth(verifier, http.HandlerFunc(handler.CreateMatch)))
	mux.Handle("PUT /v1/championships/{championshipId}/matches/{matchId}/score", RequireAuth(verifier, http.HandlerFunc(handler.UpdateMatchScore)))
	mux.Handle("PUT /v1/championships/{championshipId}/matches/{matchId}/status", RequireAuth(verifier, http.HandlerFunc(handler.UpdateMatchStatus)))
}

func registerAuthorizedGuessRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/guesses", RequireAuth(verifier, http.HandlerFunc(handler.PlaceGuess)))
	mux.Handle("GET /v1/guesses", RequireAuth(verifier, http.HandlerFunc(handler.ListMyGuesses)))
}
