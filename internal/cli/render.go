package cli

import (
	"strings"

	"createathon/internal/app/service"
	"createathon/internal/app/workspace"
	"createathon/internal/domain/model"
)

func splitFields(line string) []string {
	return strings.Fields(line)
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func (s *Session) renderChallenges(challenges []model.Challenge) {
	if len(challenges) == 0 {
		s.printLine("no challenges available")
		return
	}
	s.printLine("Challenges:")
	for _, ch := range challenges {
		summary := ch.Description
		if len(summary) > 100 {
			summary = summary[:100] + "..."
		}
		s.printLine("  [%s] %s (%s)", ch.ID, ch.Title, ch.Difficulty)
		s.printLine("      %s", summary)
	}
}

func (s *Session) renderLeaderboard(entries []model.LeaderboardEntry) {
	if len(entries) == 0 {
		s.printLine("leaderboard is empty")
		return
	}
	s.printLine("Global Leaderboard:")
	for _, e := range entries {
		marker := " "
		if e.IsViewer {
			marker = "*"
		}
		s.printLine(" %s %2d. %-20s %d pts", marker, e.Rank, e.Username, e.Points)
	}
}

func (s *Session) renderDashboard(board *service.Dashboard) {
	p := board.Profile
	s.printLine("%s's Dashboard (user %s)", p.Username, p.ID)
	s.printLine("  Progress:  %d%%", p.CompletionPercent())
	s.printLine("  Completed: %d   Attempted: %d", p.QuestionsSolved, p.AttemptedQuestions)
	s.printLine("  Badges:    %d   Points:    %d", p.BadgesEarned, p.EarnedPoints)

	s.printLine("Submission History:")
	if len(board.History) == 0 {
		s.printLine("  No submissions found.")
		return
	}
	for _, rec := range board.History {
		s.printLine("  %-10s %s", rec.Status, rec.ChallengeTitle)
		s.printLine("             Submitted: %s", rec.SubmittedAt.Local().Format("2006-01-02 15:04:05"))
	}
}

func (s *Session) renderWorkspace(snap workspace.Snapshot) {
	s.printLine("--- workspace: challenge %s [%s] lang=%s ---",
		snap.ChallengeID, snap.Phase, snap.Language.Label())

	switch snap.View {
	case workspace.ViewProblem:
		switch {
		case snap.LoadErr != nil:
			s.printLine("Failed to load question. Please try again later. (%v)", snap.LoadErr)
		case snap.Challenge == nil:
			s.printLine("No problem found for this ID.")
		default:
			s.printLine("%s (%s)", snap.Challenge.Title, snap.Challenge.Difficulty)
			s.printLine("%s", snap.Challenge.Description)
		}
	case workspace.ViewOutput:
		s.renderOutput(snap)
	}
}

func (s *Session) renderOutput(snap workspace.Snapshot) {
	s.printLine("Execution Result:")
	if snap.Outcome != nil {
		s.printLine("  [%s] %s", snap.Outcome.Status, snap.Outcome.Message)
	}
	if snap.Message != "" {
		s.printLine("  %s", snap.Message)
	}
	if snap.Result != nil {
		text := snap.Result.Text()
		if text == "" {
			text = "(no output)"
		}
		for _, line := range strings.Split(text, "\n") {
			s.printLine("  %s", line)
		}
	}
	if snap.Outcome == nil && snap.Result == nil && snap.Message == "" {
		s.printLine("  Run or submit your code to see the output here")
	}
}
