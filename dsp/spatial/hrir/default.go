package hrir

import _ "embed"

//go:generate go run ../../../cmd/hrirgen -out data/default.hrtb

//go:embed data/default.hrtb
var defaultTableData []byte

var defaultTable = mustUnmarshalTable(defaultTableData)

func mustUnmarshalTable(data []byte) *Table {
	t, err := UnmarshalTable(data)
	if err != nil {
		panic("hrir: embedded default table: " + err.Error())
	}
	return t
}

// Default returns the embedded default table.
func Default() *Table {
	return defaultTable
}

// ForAzimuth returns the default table's filter pair for az. See
// [Table.ForAzimuth].
func ForAzimuth(az float64) FilterPair {
	return defaultTable.ForAzimuth(az)
}
