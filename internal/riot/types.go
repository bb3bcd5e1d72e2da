package riot

// Account is the response from /riot/account/v1/accounts/by-riot-id.
type Account struct {
	PUUID    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// LeagueEntry is one ranked entry, returned both by the per-player lookup
// and by the paginated tier leaderboard used for harvesting.
type LeagueEntry struct {
	PUUID        string `json:"puuid"`
	QueueType    string `json:"queueType"` // RANKED_SOLO_5x5, RANKED_FLEX_SR
	Tier         string `json:"tier"`      // IRON .. CHALLENGER
	Rank         string `json:"rank"`      // I, II, III, IV
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
}

// QueueSolo is the ranked queue the predictor is trained on.
const QueueSolo = "RANKED_SOLO_5x5"

// ActiveGame is the response from /lol/spectator/v5/active-games/by-summoner.
type ActiveGame struct {
	GameID            int64             `json:"gameId"`
	GameMode          string            `json:"gameMode"`
	GameQueueConfigID int               `json:"gameQueueConfigId"`
	GameStartTime     int64             `json:"gameStartTime"`
	GameLength        int64             `json:"gameLength"`
	BannedChampions   []BannedChampion  `json:"bannedChampions"`
	Participants      []GameParticipant `json:"participants"`
}

type BannedChampion struct {
	ChampionID int `json:"championId"`
	TeamID     int `json:"teamId"`
	PickTurn   int `json:"pickTurn"`
}

// GameParticipant is one of the 10 players of an in-progress game. PUUID is
// empty for players who have hidden their identity.
type GameParticipant struct {
	PUUID      string    `json:"puuid"`
	TeamID     int       `json:"teamId"`
	ChampionID int       `json:"championId"`
	Spell1ID   int       `json:"spell1Id"`
	Spell2ID   int       `json:"spell2Id"`
	RiotID     string    `json:"riotId"`
	Bot        bool      `json:"bot"`
	Perks      GamePerks `json:"perks"`
}

type GamePerks struct {
	PerkIDs      []int `json:"perkIds"`
	PerkStyle    int   `json:"perkStyle"`
	PerkSubStyle int   `json:"perkSubStyle"`
}

// Match is the response from /lol/match/v5/matches/{matchId}.
type Match struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

type MatchMetadata struct {
	MatchID string `json:"matchId"`
}

type MatchInfo struct {
	GameMode         string             `json:"gameMode"`
	GameDuration     int64              `json:"gameDuration"` // seconds
	GameEndTimestamp int64              `json:"gameEndTimestamp"`
	Participants     []MatchParticipant `json:"participants"`
}

// MatchParticipant carries the per-player telemetry of one completed match.
// Absent fields decode to zero, which downstream aggregation relies on.
type MatchParticipant struct {
	PUUID        string `json:"puuid"`
	TeamID       int    `json:"teamId"`
	TeamPosition string `json:"teamPosition"` // TOP, JUNGLE, MIDDLE, BOTTOM, UTILITY
	Win          bool   `json:"win"`

	ChampionID   int    `json:"championId"`
	ChampionName string `json:"championName"`
	ChampLevel   int    `json:"champLevel"`

	Kills   int `json:"kills"`
	Deaths  int `json:"deaths"`
	Assists int `json:"assists"`

	GoldEarned           int `json:"goldEarned"`
	GoldSpent            int `json:"goldSpent"`
	TotalMinionsKilled   int `json:"totalMinionsKilled"`
	NeutralMinionsKilled int `json:"neutralMinionsKilled"`
	ItemsPurchased       int `json:"itemsPurchased"`

	TotalDamageDealtToChampions int `json:"totalDamageDealtToChampions"`
	TrueDamageDealtToChampions  int `json:"trueDamageDealtToChampions"`
	KillingSprees               int `json:"killingSprees"`
	BountyLevel                 int `json:"bountyLevel"`

	DamageSelfMitigated int `json:"damageSelfMitigated"`
	TotalTimeSpentDead  int `json:"totalTimeSpentDead"`
	TotalHeal           int `json:"totalHeal"`

	DamageDealtToBuildings  int  `json:"damageDealtToBuildings"`
	DamageDealtToObjectives int  `json:"damageDealtToObjectives"`
	TurretKills             int  `json:"turretKills"`
	ObjectivesStolen        int  `json:"objectivesStolen"`
	ObjectivesStolenAssists int  `json:"objectivesStolenAssists"`
	DragonKills             int  `json:"dragonKills"`
	BaronKills              int  `json:"baronKills"`
	FirstBloodKill          bool `json:"firstBloodKill"`
	FirstTowerKill          bool `json:"firstTowerKill"`

	WardsPlaced      int `json:"wardsPlaced"`
	WardsKilled      int `json:"wardsKilled"`
	TotalTimeCCDealt int `json:"totalTimeCCDealt"`

	EnemyMissingPings int `json:"enemyMissingPings"`
	OnMyWayPings      int `json:"onMyWayPings"`
	AssistMePings     int `json:"assistMePings"`

	Item0 int `json:"item0"`
	Item1 int `json:"item1"`
	Item2 int `json:"item2"`
	Item3 int `json:"item3"`
	Item4 int `json:"item4"`
	Item5 int `json:"item5"`
	Item6 int `json:"item6"` // trinket

	Summoner1ID int `json:"summoner1Id"`
	Summoner2ID int `json:"summoner2Id"`

	TimePlayed int        `json:"timePlayed"`
	Perks      MatchPerks `json:"perks"`
	Challenges Challenges `json:"challenges"`
}

type MatchPerks struct {
	Styles []PerkStyle `json:"styles"`
}

type PerkStyle struct {
	Style      int             `json:"style"`
	Selections []PerkSelection `json:"selections"`
}

type PerkSelection struct {
	Perk int `json:"perk"`
}

// Challenges is the derived-stat sub-map nested in every match participant.
type Challenges struct {
	KDA                              float64 `json:"kda"`
	KillParticipation                float64 `json:"killParticipation"`
	GoldPerMinute                    float64 `json:"goldPerMinute"`
	LaneMinionsFirst10Minutes        float64 `json:"laneMinionsFirst10Minutes"`
	SurvivedSingleDigitHpCount       float64 `json:"survivedSingleDigitHpCount"`
	DamageTakenOnTeamPercentage      float64 `json:"damageTakenOnTeamPercentage"`
	TurretPlatesTaken                float64 `json:"turretPlatesTaken"`
	VisionScorePerMinute             float64 `json:"visionScorePerMinute"`
	VisionScoreAdvantageLaneOpponent float64 `json:"visionScoreAdvantageLaneOpponent"`
	ControlWardsPlaced               float64 `json:"controlWardsPlaced"`
	SaveAllyFromDeath                float64 `json:"saveAllyFromDeath"`
	SkillshotsHit                    float64 `json:"skillshotsHit"`
	SkillshotsDodged                 float64 `json:"skillshotsDodged"`
	MaxCsAdvantageOnLaneOpponent     float64 `json:"maxCsAdvantageOnLaneOpponent"`
	MaxLevelLeadLaneOpponent         float64 `json:"maxLevelLeadLaneOpponent"`
	LaningPhaseGoldExpAdvantage      float64 `json:"laningPhaseGoldExpAdvantage"`
}

// CS is total creep score: lane minions plus jungle camps.
func (p *MatchParticipant) CS() int {
	return p.TotalMinionsKilled + p.NeutralMinionsKilled
}

// Items returns the seven item slots in order, trinket last.
func (p *MatchParticipant) Items() []int {
	return []int{p.Item0, p.Item1, p.Item2, p.Item3, p.Item4, p.Item5, p.Item6}
}
