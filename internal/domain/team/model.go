package team

// Team is a club or national team stored inside one owner's career save.
type Team struct {
	Owner    string
	TeamID   int64
	TeamName string
}
