package postgres

type banTableModel struct {
	GameID     string `db:"game_id"`
	TeamID     string `db:"team_id"`
	BanOrder   int    `db:"ban_order"`
	ChampionID string `db:"champion_id"`
}

type pickTableModel struct {
	GameID     string `db:"game_id"`
	TeamID     string `db:"team_id"`
	PickOrder  int    `db:"pick_order"`
	PlayerID   string `db:"player_id"`
	ChampionID string `db:"champion_id"`
}
