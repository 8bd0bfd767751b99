package model

// CategoryStats counts the records of one category by difficulty.
type CategoryStats struct {
	Label       string
	DisplayName string
	Easy        int
	Medium      int
	Hard        int
	// Total counts every record of the category, including unrecognised difficulties.
	Total int
}

// Stats is the content of the statistics table.
type Stats struct {
	Categories []CategoryStats
	Total      CategoryStats
}
