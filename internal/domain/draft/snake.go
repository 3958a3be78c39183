package draft

// Snake draft pick arithmetic. Pure functions, no shared state.

// UserPick computes the absolute 1-based pick number for the team drafting at
// position in the given round. Odd rounds run 1..T, even rounds T..1.
func UserPick(totalTeams, position, round int) int {
	if round%2 == 1 {
		return (round-1)*totalTeams + position
	}
	return (round-1)*totalTeams + (totalTeams - position + 1)
}

// Round derives the round an absolute pick number falls in.
func Round(totalTeams, pick int) int {
	if pick < 1 {
		return 1
	}
	return (pick-1)/totalTeams + 1
}

// PicksUntilMine returns how many selections remain before the user's next
// pick, given the overall pick number about to be made. Zero means the user
// is on the clock.
func PicksUntilMine(totalTeams, position, nextPick int) int {
	round := Round(totalTeams, nextPick)
	mine := UserPick(totalTeams, position, round)
	if mine < nextPick {
		mine = UserPick(totalTeams, position, round+1)
	}
	until := mine - nextPick
	if until < 0 {
		until = 0
	}
	return until
}
