// Package nhl provides a client for the NHL api-web JSON API and the data
// types shared by the score, standings and player views.
package nhl

// LocalizedString is the api-web pattern for translatable strings.
type LocalizedString struct {
	Default string `json:"default"`
}

// GameState is the lifecycle state of a game.
type GameState string

const (
	GameStateFuture    GameState = "FUT"
	GameStatePreGame   GameState = "PRE"
	GameStateLive      GameState = "LIVE"
	GameStateCritical  GameState = "CRIT"
	GameStateFinal     GameState = "FINAL"
	GameStateOff       GameState = "OFF"
	GameStatePostponed GameState = "PPD"
	GameStateSuspended GameState = "SUSP"
)

// Started reports whether play has begun.
func (s GameState) Started() bool {
	return s != GameStateFuture && s != GameStatePreGame && s != GameStatePostponed && s != GameStateSuspended
}

// Finished reports whether the game has ended.
func (s GameState) Finished() bool {
	return s == GameStateFinal || s == GameStateOff
}

// PeriodType distinguishes regulation play from overtime and shootouts.
type PeriodType string

const (
	PeriodRegulation PeriodType = "REG"
	PeriodOvertime   PeriodType = "OT"
	PeriodShootout   PeriodType = "SO"
)

// PeriodDescriptor identifies the current or final period of a game.
type PeriodDescriptor struct {
	Number     int        `json:"number"`
	PeriodType PeriodType `json:"periodType"`
}

// GameClock is the in-game clock state.
type GameClock struct {
	TimeRemaining    string `json:"timeRemaining"`
	SecondsRemaining int    `json:"secondsRemaining"`
	Running          bool   `json:"running"`
	InIntermission   bool   `json:"inIntermission"`
}

// ScoreTeam is one side of a scoreboard game.
type ScoreTeam struct {
	ID     int64           `json:"id"`
	Name   LocalizedString `json:"name"`
	Abbrev string          `json:"abbrev"`
	Score  int             `json:"score"`
	SOG    int             `json:"sog"`
}

// Game is one entry of the daily scoreboard.
type Game struct {
	ID               int64            `json:"id"`
	Season           int64            `json:"season"`
	GameType         int              `json:"gameType"`
	GameDate         string           `json:"gameDate"`
	GameState        GameState        `json:"gameState"`
	StartTimeUTC     string           `json:"startTimeUTC"`
	Venue            LocalizedString  `json:"venue"`
	AwayTeam         ScoreTeam        `json:"awayTeam"`
	HomeTeam         ScoreTeam        `json:"homeTeam"`
	PeriodDescriptor PeriodDescriptor `json:"periodDescriptor"`
	Clock            GameClock        `json:"clock"`
}

// Scoreboard is the response of /v1/score/{date}.
type Scoreboard struct {
	CurrentDate string `json:"currentDate"`
	Games       []Game `json:"games"`
}

// BoxscoreTeam is one side of a boxscore.
type BoxscoreTeam struct {
	ID         int64           `json:"id"`
	CommonName LocalizedString `json:"commonName"`
	PlaceName  LocalizedString `json:"placeName"`
	Abbrev     string          `json:"abbrev"`
	Score      int             `json:"score"`
	SOG        int             `json:"sog"`
}

// SkaterStats is one skater's line in a game boxscore.
type SkaterStats struct {
	PlayerID           int64           `json:"playerId"`
	Name               LocalizedString `json:"name"`
	SweaterNumber      int             `json:"sweaterNumber"`
	Position           string          `json:"position"`
	Goals              int             `json:"goals"`
	Assists            int             `json:"assists"`
	Points             int             `json:"points"`
	PlusMinus          int             `json:"plusMinus"`
	PIM                int             `json:"pim"`
	Hits               int             `json:"hits"`
	PowerPlayGoals     int             `json:"powerPlayGoals"`
	SOG                int             `json:"sog"`
	FaceoffWinningPctg float64         `json:"faceoffWinningPctg"`
	TOI                string          `json:"toi"`
	BlockedShots       int             `json:"blockedShots"`
	Shifts             int             `json:"shifts"`
	Giveaways          int             `json:"giveaways"`
	Takeaways          int             `json:"takeaways"`
}

// GoalieStats is one goalie's line in a game boxscore.
type GoalieStats struct {
	PlayerID                 int64           `json:"playerId"`
	Name                     LocalizedString `json:"name"`
	SweaterNumber            int             `json:"sweaterNumber"`
	Position                 string          `json:"position"`
	EvenStrengthShotsAgainst string          `json:"evenStrengthShotsAgainst"`
	PowerPlayShotsAgainst    string          `json:"powerPlayShotsAgainst"`
	ShorthandedShotsAgainst  string          `json:"shorthandedShotsAgainst"`
	SavePctg                 *float64        `json:"savePctg"`
	GoalsAgainst             int             `json:"goalsAgainst"`
	ShotsAgainst             int             `json:"shotsAgainst"`
	Saves                    int             `json:"saves"`
	TOI                      string          `json:"toi"`
	PIM                      *int            `json:"pim"`
	Starter                  *bool           `json:"starter"`
	Decision                 *string         `json:"decision"`
}

// TeamPlayerStats groups a team's boxscore lines by role.
type TeamPlayerStats struct {
	Forwards []SkaterStats `json:"forwards"`
	Defense  []SkaterStats `json:"defense"`
	Goalies  []GoalieStats `json:"goalies"`
}

// PlayerByGameStats holds both teams' per-player lines.
type PlayerByGameStats struct {
	AwayTeam TeamPlayerStats `json:"awayTeam"`
	HomeTeam TeamPlayerStats `json:"homeTeam"`
}

// Boxscore is the response of /v1/gamecenter/{id}/boxscore.
type Boxscore struct {
	ID                int64             `json:"id"`
	Season            int64             `json:"season"`
	GameDate          string            `json:"gameDate"`
	Venue             LocalizedString   `json:"venue"`
	StartTimeUTC      string            `json:"startTimeUTC"`
	GameState         GameState         `json:"gameState"`
	PeriodDescriptor  PeriodDescriptor  `json:"periodDescriptor"`
	Clock             GameClock         `json:"clock"`
	AwayTeam          BoxscoreTeam      `json:"awayTeam"`
	HomeTeam          BoxscoreTeam      `json:"homeTeam"`
	PlayerByGameStats PlayerByGameStats `json:"playerByGameStats"`
}

// Standing is one team's row from /v1/standings/now.
type Standing struct {
	TeamName         LocalizedString `json:"teamName"`
	TeamCommonName   LocalizedString `json:"teamCommonName"`
	TeamAbbrev       LocalizedString `json:"teamAbbrev"`
	ConferenceName   string          `json:"conferenceName"`
	DivisionName     string          `json:"divisionName"`
	GamesPlayed      int             `json:"gamesPlayed"`
	Wins             int             `json:"wins"`
	Losses           int             `json:"losses"`
	OTLosses         int             `json:"otLosses"`
	Points           int             `json:"points"`
	GoalFor          int             `json:"goalFor"`
	GoalAgainst      int             `json:"goalAgainst"`
	GoalDifferential int             `json:"goalDifferential"`
	StreakCode       string          `json:"streakCode"`
	StreakCount      int             `json:"streakCount"`
	L10Wins          int             `json:"l10Wins"`
	L10Losses        int             `json:"l10Losses"`
	L10OTLosses      int             `json:"l10OtLosses"`
}

// StandingsResponse is the response of /v1/standings/now.
type StandingsResponse struct {
	Standings []Standing `json:"standings"`
}

// ClubSkater is a season stat line from /v1/club-stats.
type ClubSkater struct {
	PlayerID       int64           `json:"playerId"`
	FirstName      LocalizedString `json:"firstName"`
	LastName       LocalizedString `json:"lastName"`
	PositionCode   string          `json:"positionCode"`
	GamesPlayed    int             `json:"gamesPlayed"`
	Goals          int             `json:"goals"`
	Assists        int             `json:"assists"`
	Points         int             `json:"points"`
	PlusMinus      int             `json:"plusMinus"`
	PenaltyMinutes int             `json:"penaltyMinutes"`
	Shots          int             `json:"shots"`
	ShootingPctg   float64         `json:"shootingPctg"`
}

// ClubGoalie is a goalie season stat line from /v1/club-stats.
type ClubGoalie struct {
	PlayerID        int64           `json:"playerId"`
	FirstName       LocalizedString `json:"firstName"`
	LastName        LocalizedString `json:"lastName"`
	GamesPlayed     int             `json:"gamesPlayed"`
	Wins            int             `json:"wins"`
	Losses          int             `json:"losses"`
	OvertimeLosses  int             `json:"overtimeLosses"`
	GoalsAgainstAvg float64         `json:"goalsAgainstAverage"`
	SavePercentage  float64         `json:"savePercentage"`
	Shutouts        int             `json:"shutouts"`
}

// ClubStats is the response of /v1/club-stats/{team}/now.
type ClubStats struct {
	Season  string       `json:"season"`
	Skaters []ClubSkater `json:"skaters"`
	Goalies []ClubGoalie `json:"goalies"`
}

// SeasonTotal is one season row of a player landing page.
type SeasonTotal struct {
	Season       int64           `json:"season"`
	LeagueAbbrev string          `json:"leagueAbbrev"`
	TeamName     LocalizedString `json:"teamName"`
	GamesPlayed  int             `json:"gamesPlayed"`
	Goals        int             `json:"goals"`
	Assists      int             `json:"assists"`
	Points       int             `json:"points"`
	PlusMinus    int             `json:"plusMinus"`
	PIM          int             `json:"pim"`
}

// FeaturedSubSeason is the current-season block of a player landing page.
type FeaturedSubSeason struct {
	GamesPlayed int `json:"gamesPlayed"`
	Goals       int `json:"goals"`
	Assists     int `json:"assists"`
	Points      int `json:"points"`
	PlusMinus   int `json:"plusMinus"`
	PIM         int `json:"pim"`
	Shots       int `json:"shots"`
}

// FeaturedStats wraps the highlighted season of a player landing page.
type FeaturedStats struct {
	Season        int64 `json:"season"`
	RegularSeason struct {
		SubSeason FeaturedSubSeason `json:"subSeason"`
		Career    FeaturedSubSeason `json:"career"`
	} `json:"regularSeason"`
}

// PlayerLanding is the response of /v1/player/{id}/landing.
type PlayerLanding struct {
	PlayerID          int64           `json:"playerId"`
	FirstName         LocalizedString `json:"firstName"`
	LastName          LocalizedString `json:"lastName"`
	SweaterNumber     *int            `json:"sweaterNumber"`
	Position          string          `json:"position"`
	CurrentTeamAbbrev string          `json:"currentTeamAbbrev"`
	HeightInInches    int             `json:"heightInInches"`
	WeightInPounds    int             `json:"weightInPounds"`
	BirthDate         string          `json:"birthDate"`
	BirthCity         LocalizedString `json:"birthCity"`
	BirthCountry      string          `json:"birthCountry"`
	ShootsCatches     string          `json:"shootsCatches"`
	FeaturedStats     FeaturedStats   `json:"featuredStats"`
	SeasonTotals      []SeasonTotal   `json:"seasonTotals"`
}

// FullName joins the localized first and last names.
func (p *PlayerLanding) FullName() string {
	return p.FirstName.Default + " " + p.LastName.Default
}
