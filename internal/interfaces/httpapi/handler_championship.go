package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/champions-tracker/internal/domain/championship"
	"github.com/riskibarqy/champions-tracker/internal/usecase"
)

func (h *Handler) CreateChampionship(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateChampionship")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req createChampionshipRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.championshipService.Create(ctx, usecase.CreateChampionshipInput{
		OwnerUserID: principal.UserID,
		Name:        req.Name,
		Picture:     req.Picture,
		Description: req.Description,
		Type:        championship.Type(req.Type),
		Game:        req.Game,
	})
	if err != nil {
		h.fail(ctx, w, "create championship failed", err, "user_id", principal.UserID)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, championshipIDResponse{ChampionshipID: created.ID})
}

func (h *Handler) ListChampionships(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListChampionships")
	defer span.End()

	q := listChampionshipsQuery{Query: strings.TrimSpace(r.URL.Query().Get("query"))}
	var err error
	if q.Page, err = queryInt(r, "page", 0); err != nil {
		writeError(ctx, w, err)
		return
	}
	if q.PageSize, err = queryInt(r, "pageSize", championship.DefaultPageSize); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, q); err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.championshipService.List(ctx, championship.ListFilter{
		Query:    q.Query,
		Page:     q.Page,
		PageSize: q.PageSize,
	})
	if err != nil {
		h.fail(ctx, w, "list championships failed", err)
		return
	}

	out := make([]championshipListItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, championshipListItemDTO{
			ID:          item.ID,
			Name:        item.Name,
			Picture:     item.Picture,
			Type:        string(item.Type),
			Game:        item.Game,
			CreatedAt:   item.CreatedAt,
			TeamsAmount: item.TeamsAmount,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetChampionship(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetChampionship")
	defer span.End()

	championshipID, err := pathID(r, "championshipId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	details, err := h.championshipService.Get(ctx, championshipID)
	if err != nil {
		h.fail(ctx, w, "get championship failed", err, "championship_id", championshipID)
		return
	}

	item := details.Summary
	writeSuccess(ctx, w, http.StatusOK, championshipResponse{
		ID:          item.ID,
		Name:        item.Name,
		Picture:     item.Picture,
		Description: item.Description,
		Type:        string(item.Type),
		Game:        item.Game,
		CreatedAt:   item.CreatedAt,
		TeamsAmount: item.TeamsAmount,
		Owner:       ownerToDTO(details.Owner),
	})
}

func (h *Handler) AddChampionshipTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddChampionshipTeam")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	championshipID, err := pathID(r, "championshipId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req addTeamRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	err = h.championshipService.AddTeam(ctx, usecase.AddTeamInput{
		UserID:         principal.UserID,
		ChampionshipID: championshipID,
		TeamID:         req.TeamID,
	})
	if err != nil {
		h.fail(ctx, w, "add championship team failed", err,
			"championship_id", championshipID,
			"team_id", req.TeamID,
		)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, messageResponse{Message: "Team added"})
}

func (h *Handler) ListChampionshipTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListChampionshipTeams")
	defer span.End()

	championshipID, err := pathID(r, "championshipId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	entries, err := h.championshipService.ListTeams(ctx, championshipID)
	if err != nil {
		h.fail(ctx, w, "list championship teams failed", err, "championship_id", championshipID)
		return
	}

	out := make([]championshipTeamDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, championshipTeamDTO{
			ID:      e.TeamID,
			Name:    e.TeamName,
			Picture: e.TeamPicture,
			Victory: e.Victory,
			Defeat:  e.Defeat,
			Draw:    e.Draw,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListChampionshipStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListChampionshipStandings")
	defer span.End()

	championshipID, err := pathID(r, "championshipId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	standings, err := h.championshipService.Standings(ctx, championshipID)
	if err != nil {
		h.fail(ctx, w, "list championship standings failed", err, "championship_id", championshipID)
		return
	}

	out := make([]standingDTO, 0, len(standings))
	for _, s := range standings {
		out = append(out, standingDTO{
			TeamID:   s.TeamID,
			TeamName: s.TeamName,
			Wins:     s.Wins,
			Losses:   s.Losses,
			Draws:    s.Draws,
			Points:   s.Points,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}
