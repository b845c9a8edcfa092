package postgres

type playerTableModel struct {
	PlayerID   string `db:"player_id"`
	PlayerName string `db:"player_name"`
	Position   string `db:"position"`
}
