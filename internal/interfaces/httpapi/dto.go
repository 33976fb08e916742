package httpapi

import (
	"reflect"
	"time"

	"github.com/bytedance/sonic"
)

type registerUserRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	Name     string  `json:"name" validate:"required,min=3,max=50"`
	Nickname string  `json:"nickname" validate:"required,min=3,max=20,nospace"`
	Picture  *string `json:"picture" validate:"omitempty,url"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateUserData struct {
	Email    *string        `json:"email" validate:"omitempty,email"`
	Name     *string        `json:"name" validate:"omitempty,min=3,max=50"`
	Nickname *string        `json:"nickname" validate:"omitempty,min=3,max=20,nospace"`
	Picture  nullableString `json:"picture" validate:"omitempty,url"`
}

type updateUserRequest struct {
	Data     updateUserData `json:"data"`
	Password string         `json:"password" validate:"required"`
}

type changePasswordRequest struct {
	Password    string `json:"password" validate:"required,min=8"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

type userIDResponse struct {
	UserID int64 `json:"userId"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type profileResponse struct {
	Email             string  `json:"email"`
	Name              string  `json:"name"`
	Nickname          string  `json:"nickname"`
	Picture           *string `json:"picture"`
	Score             int64   `json:"score"`
	Balance           int64   `json:"balance"`
	HighestGuess      int64   `json:"highestGuess"`
	TotalEarnings     int64   `json:"totalEarnings"`
	TotalLosses       int64   `json:"totalLosses"`
	LastTeamGuessedAt string  `json:"lastTeamGuessedAt"`
	TotalGuesses      int     `json:"totalGuesses"`
}

type publicUserDTO struct {
	Nickname string  `json:"nickname"`
	Picture  *string `json:"picture"`
	Score    int64   `json:"score"`
}

type publicUserResponse struct {
	User publicUserDTO `json:"user"`
}

type ownerDTO struct {
	ID       int64   `json:"id"`
	Nickname string  `json:"nickname"`
	Picture  *string `json:"picture"`
}

type createTeamRequest struct {
	Name        string  `json:"name" validate:"required,min=3,max=30"`
	Picture     *string `json:"picture" validate:"omitempty,url"`
	Description string  `json:"description"`
	MaxPlayers  int     `json:"maxPlayers" validate:"required,gte=1"`
}

type teamIDResponse struct {
	TeamID int64 `json:"teamId"`
}

type teamResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Picture     *string  `json:"picture"`
	Description string   `json:"description"`
	MaxPlayers  int      `json:"maxPlayers"`
	Owner       ownerDTO `json:"owner"`
}

type createChampionshipRequest struct {
	Name        string  `json:"name" validate:"required,min=3,max=40"`
	Picture     *string `json:"picture" validate:"omitempty,url"`
	Description string  `json:"description" validate:"required,min=3"`
	Type        string  `json:"type" validate:"required,oneof=PHYSICAL VIRTUAL"`
	Game        string  `json:"game" validate:"required,min=3"`
}

type listChampionshipsQuery struct {
	Query    string `json:"query"`
	Page     int    `json:"page" validate:"gte=0"`
	PageSize int    `json:"pageSize" validate:"gte=1,lte=100"`
}

type championshipIDResponse struct {
	ChampionshipID int64 `json:"championshipId"`
}

type championshipListItemDTO struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Picture     *string   `json:"picture"`
	Type        string    `json:"type"`
	Game        string    `json:"game"`
	CreatedAt   time.Time `json:"createdAt"`
	TeamsAmount int       `json:"teamsAmount"`
}

type championshipResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Picture     *string   `json:"picture"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Game        string    `json:"game"`
	CreatedAt   time.Time `json:"createdAt"`
	TeamsAmount int       `json:"teamsAmount"`
	Owner       ownerDTO  `json:"owner"`
}

type addTeamRequest struct {
	TeamID int64 `json:"teamId" validate:"required,gt=0"`
}

type championshipTeamDTO struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Picture *string `json:"picture"`
	Victory int     `json:"victory"`
	Defeat  int     `json:"defeat"`
	Draw    int     `json:"draw"`
}

type standingDTO struct {
	TeamID   int64  `json:"teamId"`
	TeamName string `json:"teamName"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
	Draws    int    `json:"draws"`
	Points   int    `json:"points"`
}

type createMatchRequest struct {
	HomeTeamID       int64     `json:"homeTeamId" validate:"required,gt=0"`
	AwayTeamID       int64     `json:"awayTeamId" validate:"required,gt=0"`
	PlannedStartTime time.Time `json:"plannedStartTime" validate:"required"`
}

type matchIDResponse struct {
	MatchID int64 `json:"matchId"`
}

type participantDTO struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Picture *string `json:"picture"`
	Score   int     `json:"score"`
}

type matchDTO struct {
	ID               int64          `json:"id"`
	HomeTeam         participantDTO `json:"homeTeam"`
	AwayTeam         participantDTO `json:"awayTeam"`
	PlannedStartTime time.Time      `json:"plannedStartTime"`
	CreatedAt        time.Time      `json:"createdAt"`
	Status           string         `json:"status"`
}

type updateScoreRequest struct {
	TeamID int64 `json:"teamId" validate:"required,gt=0"`
	Score  *int  `json:"score" validate:"required,gte=0"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=SCHEDULED RUNNING COMPLETED"`
}

type placeGuessRequest struct {
	MatchID   int64 `json:"matchId" validate:"required,gt=0"`
	TeamID    int64 `json:"teamId" validate:"required,gt=0"`
	GuessCost int64 `json:"guessCost" validate:"required,gte=1"`
}

type guessIDResponse struct {
	GuessID int64 `json:"guessId"`
}

type guessChampionshipDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type guessDTO struct {
	ID            int64                `json:"id"`
	TeamName      string               `json:"teamName"`
	Championship  guessChampionshipDTO `json:"championship"`
	GuessCost     int64                `json:"guessCost"`
	Outcome       string               `json:"outcome"`
	LootCollected bool                 `json:"lootCollected"`
	CreatedAt     time.Time            `json:"createdAt"`
}

// nullableString tells an absent field apart from an explicit null.
type nullableString struct {
	Set   bool
	Value *string
}

func (n *nullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	n.Value = nil
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := sonic.Unmarshal(data, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

// change maps the field onto user.Changes: absent is nil and null is "",
// which clears the stored value.
func (n nullableString) change() *string {
	if !n.Set {
		return nil
	}
	if n.Value == nil {
		empty := ""
		return &empty
	}
	return n.Value
}

// nullableStringValue exposes the string to validator tags; null validates
// as empty.
func nullableStringValue(v reflect.Value) any {
	n, ok := v.Interface().(nullableString)
	if !ok || n.Value == nil {
		return ""
	}
	return *n.Value
}
