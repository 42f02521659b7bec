package catalog

import "github.com/notjagan/dexbrowser/pkg/model"

type StatRow struct {
	Name   string
	First  int
	Second int
}

// Winner is -1 when the first pokemon has the higher stat, 1 for the second, 0 on a tie.
func (row StatRow) Winner() int {
	switch {
	case row.First > row.Second:
		return -1
	case row.Second > row.First:
		return 1
	default:
		return 0
	}
}

func (row StatRow) DisplayName() string {
	return model.StatDisplayName(row.Name)
}

type Comparison struct {
	Rows        []StatRow
	FirstTotal  int
	SecondTotal int
}

// Compare lines up the stats of both pokemon by name, in the first pokemon's
// order. Stats only the second has are appended at the end.
func Compare(first, second *model.Pokemon) Comparison {
	rows := make([]StatRow, 0, len(first.Stats))
	seen := make(map[string]bool, len(first.Stats))

	for _, stat := range first.Stats {
		other, _ := second.BaseStat(stat.Stat.Name)
		rows = append(rows, StatRow{Name: stat.Stat.Name, First: stat.BaseStat, Second: other})
		seen[stat.Stat.Name] = true
	}
	for _, stat := range second.Stats {
		if !seen[stat.Stat.Name] {
			rows = append(rows, StatRow{Name: stat.Stat.Name, Second: stat.BaseStat})
		}
	}

	return Comparison{
		Rows:        rows,
		FirstTotal:  first.TotalBaseStat(),
		SecondTotal: second.TotalBaseStat(),
	}
}
