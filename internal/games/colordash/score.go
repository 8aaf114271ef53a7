package colordash

// Award adds points times the current multiplier to the score and returns
// the amount added.
func Award(s *State, points int) int {
	award := points * s.Multiplier
	s.Score += award
	return award
}

// Finalize ratchets the high score up to the final score. Reports whether
// a new high score was set.
func Finalize(s *State) bool {
	if s.Score > s.HighScore {
		s.HighScore = s.Score
		return true
	}
	return false
}

// BestScore returns the high score including the round in progress.
func (s *State) BestScore() int {
	return max(s.HighScore, s.Score)
}
