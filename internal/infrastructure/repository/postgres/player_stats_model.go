package postgres

type playerStatsTableModel struct {
	GameID     string `db:"game_id"`
	PlayerID   string `db:"player_id"`
	TeamID     string `db:"team_id"`
	Position   string `db:"position"`
	ChampionID string `db:"champion_id"`
	Kills      int    `db:"kills"`
	Deaths     int    `db:"deaths"`
	Assists    int    `db:"assists"`
	GoldEarned int    `db:"gold_earned"`
	CreepScore int    `db:"cs"`
}
