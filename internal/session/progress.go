package session

import "log/slog"

// recommendedSkills is the fixed learning path offered after the analysis.
var recommendedSkills = []string{
	"Circuit Design",
	"Wiring Installation",
	"Electrical Safety",
	"Motor Control Systems",
	"PLC Programming",
}

// RecommendedSkills returns the recommended learning path.
func (s *Session) RecommendedSkills() []string {
	return append([]string(nil), recommendedSkills...)
}

// StartLearning makes skill the current skill. Existing progress is kept.
func (s *Session) StartLearning(skill string) {
	s.mu.Lock()
	s.current = skill
	if _, ok := s.progress[skill]; !ok {
		s.progress[skill] = 0
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Info("started learning", slog.String("skill", skill))
	s.dispatch([]func(){s.stateChangeEvent(snap)})
}

// UpdateProgress sets the progress percentage of a skill, clamped to [0,100].
func (s *Session) UpdateProgress(skill string, percent int) {
	s.mu.Lock()
	s.progress[skill] = max(0, min(percent, 100))
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.dispatch([]func(){s.stateChangeEvent(snap)})
}

// CompleteSkill marks skill as completed at 100% and clears the current skill.
func (s *Session) CompleteSkill(skill string) {
	s.mu.Lock()
	already := false
	for _, c := range s.completed {
		if c == skill {
			already = true
			break
		}
	}
	if !already {
		s.completed = append(s.completed, skill)
		s.progress[skill] = 100
	}
	s.current = ""
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Info("completed skill", slog.String("skill", skill), slog.Int("completed", len(snap.CompletedSkills)))
	s.dispatch([]func(){s.stateChangeEvent(snap)})
}

// Progress returns a copy of the per-skill progress percentages.
func (s *Session) Progress() map[string]int {
	return s.Snapshot().LearningProgress
}

// CompletedSkills returns the completed skills in completion order.
func (s *Session) CompletedSkills() []string {
	return s.Snapshot().CompletedSkills
}
