package postgres

type championTableModel struct {
	ChampionID   string `db:"champion_id"`
	ChampionName string `db:"champion_name"`
}
