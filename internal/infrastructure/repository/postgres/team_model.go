package postgres

type teamTableModel struct {
	TeamID   string `db:"team_id"`
	TeamName string `db:"team_name"`
}
