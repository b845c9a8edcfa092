package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadCSV_SemicolonSeparatedWithShortRows(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "matches.csv")
	content := "\ufeffgameid;teamid;playerid;champion\nG1;T1;P1;Ahri\nG2;T2;P2\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	table, err := ReadCSV(path)
	require.NoError(t, err)
	require.Equal(t, []string{"gameid", "teamid", "playerid", "champion"}, table.Columns)
	require.Len(t, table.Rows, 2)
	require.Equal(t, "Ahri", table.Rows[0]["champion"])
	// Short row padded with an empty cell.
	require.Equal(t, "", table.Rows[1]["champion"])
}

func TestReadCSV_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := ReadCSV(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
}
