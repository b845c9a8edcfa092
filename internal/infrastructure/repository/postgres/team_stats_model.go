package postgres

type teamStatsTableModel struct {
	GameID       string `db:"game_id"`
	TeamID       string `db:"team_id"`
	TotalKills   int    `db:"total_kills"`
	TotalDeaths  int    `db:"total_deaths"`
	TotalAssists int    `db:"total_assists"`
}
