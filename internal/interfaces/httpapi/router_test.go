package httpapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/champions-tracker/internal/infrastructure/account/token"
	"github.com/riskibarqy/champions-tracker/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/champions-tracker/internal/platform/logging"
	"github.com/riskibarqy/champions-tracker/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	t      *testing.T
	router http.Handler
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	logger := logging.NewNop()
	store := memory.NewStore()
	users := memory.NewUserRepository(store)
	teams := memory.NewTeamRepository(store)
	championships := memory.NewChampionshipRepository(store)
	memberships := memory.NewMembershipRepository(store)
	matches := memory.NewMatchRepository(store)
	guesses := memory.NewGuessRepository(store)

	jwtService, err := token.NewJWTService(token.Config{Secret: "test-secret", TTL: time.Hour})
	require.NoError(t, err)
	events := usecase.NewEventEmitter(nil, nil, logger)

	handler := NewHandler(
		usecase.NewUserService(users, guesses, token.NewBcryptHasher(4), jwtService, events, 1000),
		usecase.NewTeamService(teams, users),
		usecase.NewChampionshipService(championships, memberships, teams, users, matches, events),
		usecase.NewMatchService(championships, memberships, teams, matches, events, logger),
		usecase.NewGuessService(guesses, matches, teams, users, events),
		SessionConfig{TTL: time.Hour},
		logger,
	)

	return &testAPI{
		t:      t,
		router: NewRouter(handler, jwtService, logger, RouterConfig{SwaggerEnabled: true}),
	}
}

func (a *testAPI) do(method, path, accessToken string, body any) *httptest.ResponseRecorder {
	a.t.Helper()

	var payload []byte
	if body != nil {
		var err error
		payload, err = sonic.Marshal(body)
		require.NoError(a.t, err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func (a *testAPI) register(email, nickname string) int64 {
	a.t.Helper()

	rec := a.do(http.MethodPost, "/v1/users", "", map[string]any{
		"email":    email,
		"password": "password123",
		"name":     "Player " + nickname,
		"nickname": nickname,
	})
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeBody[userIDResponse](a.t, rec).UserID
}

func (a *testAPI) login(email string) string {
	a.t.Helper()

	rec := a.do(http.MethodPost, "/v1/sessions/password", "", map[string]any{
		"email":    email,
		"password": "password123",
	})
	require.Equal(a.t, http.StatusOK, rec.Code, rec.Body.String())
	return decodeBody[tokenResponse](a.t, rec).Token
}

func (a *testAPI) createTeam(accessToken, name string) int64 {
	a.t.Helper()

	rec := a.do(http.MethodPost, "/v1/teams", accessToken, map[string]any{
		"name":       name,
		"maxPlayers": 5,
	})
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeBody[teamIDResponse](a.t, rec).TeamID
}

func TestRouter_ChampionshipLifecycle(t *testing.T) {
	api := newTestAPI(t)

	api.register("owner@example.com", "owner")
	ownerToken := api.login("owner@example.com")
	api.register("fan@example.com", "fan")
	fanToken := api.login("fan@example.com")

	home := api.createTeam(ownerToken, "Red Lions")
	away := api.createTeam(ownerToken, "Blue Sharks")

	rec := api.do(http.MethodPost, "/v1/championships", ownerToken, map[string]any{
		"name":        "Summer Cup",
		"description": "Weekend tournament",
		"type":        "VIRTUAL",
		"game":        "Rocket League",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	championshipID := decodeBody[championshipIDResponse](t, rec).ChampionshipID
	base := "/v1/championships/" + itoa(championshipID)

	for _, teamID := range []int64{home, away} {
		rec = api.do(http.MethodPost, base+"/teams", ownerToken, map[string]any{"teamId": teamID})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec = api.do(http.MethodPost, base+"/teams", ownerToken, map[string]any{"teamId": home})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = api.do(http.MethodPost, base+"/teams", fanToken, map[string]any{"teamId": home})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = api.do(http.MethodPost, base+"/matches", ownerToken, map[string]any{
		"homeTeamId":       home,
		"awayTeamId":       away,
		"plannedStartTime": time.Now().Add(time.Hour).UTC().Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	matchID := decodeBody[matchIDResponse](t, rec).MatchID
	matchBase := base + "/matches/" + itoa(matchID)

	rec = api.do(http.MethodPost, "/v1/guesses", fanToken, map[string]any{
		"matchId":   matchID,
		"teamId":    home,
		"guessCost": 100,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = api.do(http.MethodPost, "/v1/guesses", fanToken, map[string]any{
		"matchId":   matchID,
		"teamId":    away,
		"guessCost": 10,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(http.MethodGet, "/v1/profile", fanToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(900), decodeBody[profileResponse](t, rec).Balance)

	rec = api.do(http.MethodPut, matchBase+"/score", ownerToken, map[string]any{"teamId": home, "score": 3})
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
	rec = api.do(http.MethodPut, matchBase+"/score", ownerToken, map[string]any{"teamId": away, "score": 0})
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
	rec = api.do(http.MethodPut, matchBase+"/score", ownerToken, map[string]any{"teamId": away})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = api.do(http.MethodPut, matchBase+"/score", ownerToken, map[string]any{"teamId": away, "score": -1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(http.MethodPut, matchBase+"/status", ownerToken, map[string]any{"status": "RUNNING"})
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
	rec = api.do(http.MethodPut, matchBase+"/status", ownerToken, map[string]any{"status": "COMPLETED"})
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = api.do(http.MethodPut, matchBase+"/status", ownerToken, map[string]any{"status": "RUNNING"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = api.do(http.MethodPut, matchBase+"/score", ownerToken, map[string]any{"teamId": home, "score": 9})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(http.MethodGet, "/v1/profile", fanToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	profile := decodeBody[profileResponse](t, rec)
	assert.Equal(t, int64(1100), profile.Balance)
	assert.Equal(t, int64(100), profile.HighestGuess)
	assert.Equal(t, int64(100), profile.TotalEarnings)
	assert.Equal(t, 1, profile.TotalGuesses)
	assert.Equal(t, "Red Lions", profile.LastTeamGuessedAt)

	rec = api.do(http.MethodGet, "/v1/guesses", fanToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	guesses := decodeBody[[]guessDTO](t, rec)
	require.Len(t, guesses, 1)
	assert.Equal(t, "WIN", guesses[0].Outcome)
	assert.True(t, guesses[0].LootCollected)
	assert.Equal(t, "Summer Cup", guesses[0].Championship.Name)

	rec = api.do(http.MethodGet, base+"/teams/positions", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	standings := decodeBody[[]standingDTO](t, rec)
	require.Len(t, standings, 2)
	assert.Equal(t, home, standings[0].TeamID)
	assert.Equal(t, 3, standings[0].Points)
	assert.Equal(t, 1, standings[1].Losses)

	rec = api.do(http.MethodGet, base+"/teams", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	teams := decodeBody[[]championshipTeamDTO](t, rec)
	require.Len(t, teams, 2)

	rec = api.do(http.MethodGet, base+"/matches", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	matches := decodeBody[[]matchDTO](t, rec)
	require.Len(t, matches, 1)
	assert.Equal(t, "COMPLETED", matches[0].Status)
	assert.Equal(t, 3, matches[0].HomeTeam.Score)
	assert.Equal(t, 1, matches[0].AwayTeam.Score)

	rec = api.do(http.MethodGet, "/v1/championships?query=summer", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeBody[[]championshipListItemDTO](t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, 2, list[0].TeamsAmount)
}

func TestRouter_RegisterErrors(t *testing.T) {
	api := newTestAPI(t)
	api.register("taken@example.com", "taken")

	rec := api.do(http.MethodPost, "/v1/users", "", map[string]any{
		"email":    "taken@example.com",
		"password": "password123",
		"name":     "Someone",
		"nickname": "fresh",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"message":"Email already exists"}`, rec.Body.String())

	rec = api.do(http.MethodPost, "/v1/users", "", map[string]any{
		"email":    "not-an-email",
		"password": "short",
		"name":     "Someone",
		"nickname": "has space",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody[errorEnvelope](t, rec)
	assert.Equal(t, "Validation failed", body.Message)
	assert.Contains(t, body.Errors, "email")
	assert.Contains(t, body.Errors, "password")
	assert.Contains(t, body.Errors, "nickname")
}

func TestRouter_AuthAndLookups(t *testing.T) {
	api := newTestAPI(t)
	userID := api.register("me@example.com", "meme")

	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodGet, "/v1/profile", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodPost, "/v1/teams", "garbage", map[string]any{"name": "abc", "maxPlayers": 1}).Code)

	rec := api.do(http.MethodPost, "/v1/login", "", map[string]any{"email": "me@example.com", "password": "wrong-password"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = api.do(http.MethodPost, "/v1/login", "", map[string]any{"email": "me@example.com", "password": "password123"})
	require.Equal(t, http.StatusOK, rec.Code)
	var session *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == accessTokenCookie {
			session = c
		}
	}
	require.NotNil(t, session)
	assert.True(t, session.HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/v1/profile", nil)
	req.AddCookie(session)
	cookieRec := httptest.NewRecorder()
	api.router.ServeHTTP(cookieRec, req)
	assert.Equal(t, http.StatusOK, cookieRec.Code)

	rec = api.do(http.MethodGet, "/v1/users/"+itoa(userID), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user":{"nickname":"meme","picture":null,"score":0}}`, rec.Body.String())

	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/v1/users/999", "", nil).Code)
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/v1/teams/999", "", nil).Code)
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/v1/championships/999", "", nil).Code)
	assert.Equal(t, http.StatusBadRequest, api.do(http.MethodGet, "/v1/teams/abc", "", nil).Code)

	assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/healthz", "", nil).Code)
	assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/openapi.yaml", "", nil).Code)
}

func TestRouter_UpdateUserAndPassword(t *testing.T) {
	api := newTestAPI(t)
	api.register("first@example.com", "first")
	api.register("second@example.com", "second")
	accessToken := api.login("first@example.com")

	rec := api.do(http.MethodPatch, "/v1/users", accessToken, map[string]any{
		"data":     map[string]any{"nickname": "second"},
		"password": "password123",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = api.do(http.MethodPatch, "/v1/users", accessToken, map[string]any{
		"data":     map[string]any{"name": "Renamed"},
		"password": "nope",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = api.do(http.MethodPatch, "/v1/users", accessToken, map[string]any{
		"data":     map[string]any{"name": "Renamed Player"},
		"password": "password123",
	})
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = api.do(http.MethodPut, "/v1/password/change", accessToken, map[string]any{
		"password":    "password123",
		"newPassword": "new-password-1",
	})
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = api.do(http.MethodPost, "/v1/sessions/password", "", map[string]any{
		"email":    "first@example.com",
		"password": "new-password-1",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(http.MethodGet, "/v1/profile", accessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Renamed Player", decodeBody[profileResponse](t, rec).Name)
}

func TestRouter_UpdateUserPicture(t *testing.T) {
	api := newTestAPI(t)
	api.register("pic@example.com", "pictured")
	accessToken := api.login("pic@example.com")

	picture := func() *string {
		rec := api.do(http.MethodGet, "/v1/profile", accessToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		return decodeBody[profileResponse](t, rec).Picture
	}

	rec := api.do(http.MethodPatch, "/v1/users", accessToken, map[string]any{
		"data":     map[string]any{"picture": "https://cdn.example.com/me.png"},
		"password": "password123",
	})
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
	require.NotNil(t, picture())

	rec = api.do(http.MethodPatch, "/v1/users", accessToken, map[string]any{
		"data":     map[string]any{"name": "Still Pictured"},
		"password": "password123",
	})
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
	require.NotNil(t, picture(), "absent picture keeps the stored one")

	rec = api.do(http.MethodPatch, "/v1/users", accessToken, map[string]any{
		"data":     map[string]any{"picture": "not a url"},
		"password": "password123",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(http.MethodPatch, "/v1/users", accessToken, map[string]any{
		"data":     map[string]any{"picture": nil},
		"password": "password123",
	})
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
	assert.Nil(t, picture(), "null picture clears it")
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
