package career

// CareerUser is the active career save of one owner. Team ids are nil when
// the save does not reference that team.
type CareerUser struct {
	Owner          string
	ClubTeamID     *int64
	NationalTeamID *int64
}
