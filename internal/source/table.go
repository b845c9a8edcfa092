// Package source reads tabular match-record exports into row sets and maps
// the three supported column layouts onto the two canonical row shapes the
// ingestion loaders consume.
package source

// Record is one raw row keyed by column name. Missing cells are empty strings.
type Record map[string]string

// Table is an ordered header plus the rows read from one source file.
type Table struct {
	Columns []string
	Rows    []Record
}

// Require drops rows where any critical column is missing or empty. It runs
// before any store interaction so disqualified rows never reach a repository.
func Require(rows []Record, critical ...string) []Record {
	out := rows[:0]
	for _, rec := range rows {
		ok := true
		for _, col := range critical {
			if rec[col] == "" {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, rec)
		}
	}
	return out
}

// DedupFirst collapses rows sharing the same composite key to the first
// occurrence in source order. Output order is preserved.
func DedupFirst(rows []Record, keys ...string) []Record {
	if len(rows) == 0 || len(keys) == 0 {
		return rows
	}
	seen := make(map[string]struct{}, len(rows))
	out := rows[:0]
	for _, rec := range rows {
		k := compositeKey(rec, keys)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, rec)
	}
	return out
}

func compositeKey(rec Record, keys []string) string {
	// Cells never contain the unit separator.
	k := ""
	for i, col := range keys {
		if i > 0 {
			k += "\x1f"
		}
		k += rec[col]
	}
	return k
}
