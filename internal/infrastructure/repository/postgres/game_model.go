package postgres

import "database/sql"

type gameTableModel struct {
	GameID   string       `db:"game_id"`
	GameDate sql.NullTime `db:"game_date"`
	League   string       `db:"league"`
	Patch    string       `db:"patch"`
}
