package model

import (
	"fmt"
	"strings"
	"time"
)

type SubmissionStatus string

const (
	StatusPending  SubmissionStatus = "Pending"
	StatusAccepted SubmissionStatus = "Accepted"
	StatusRejected SubmissionStatus = "Rejected"
	StatusError    SubmissionStatus = "Error"
)

// NormalizeStatus capitalizes a server status string for display
// ("accepted" -> "Accepted"). Unknown statuses pass through capitalized.
func NormalizeStatus(raw string) SubmissionStatus {
	if raw == "" {
		return StatusPending
	}
	return SubmissionStatus(strings.ToUpper(raw[:1]) + raw[1:])
}

// SubmissionRequest is the immutable snapshot sent to the judge.
type SubmissionRequest struct {
	ChallengeID string   `json:"challenge_id"`
	Language    Language `json:"language"`
	Code        string   `json:"code"`
}

// SubmissionOutcome is the judge's answer to one submission attempt. The
// status is whatever the server assigned; the workflow does not poll for a
// later terminal state, so Pending is a valid display state.
type SubmissionOutcome struct {
	AttemptID string           `json:"attempt_id"`
	Status    SubmissionStatus `json:"status"`
	Message   string           `json:"message"`
	Accepted  bool             `json:"accepted"`
}

// SubmissionRecord is one row of the dashboard history. ChallengeTitle is a
// best-effort join; when the per-item lookup fails it carries the placeholder
// from PlaceholderTitle instead.
type SubmissionRecord struct {
	ID             string           `json:"id"`
	ChallengeID    string           `json:"challenge_id"`
	ChallengeTitle string           `json:"challenge_title"`
	Status         SubmissionStatus `json:"status"`
	SubmittedAt    time.Time        `json:"submitted_at"`
}

// PlaceholderTitle names the challenge id so a degraded row stays actionable.
func PlaceholderTitle(challengeID string) string {
	return fmt.Sprintf("Question %s (Title unavailable)", challengeID)
}
