package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"createathon/internal/common"
	"createathon/internal/domain/model"
)

type createSubmissionBody struct {
	ChallengeID string `json:"challenge_id"`
	Code        string `json:"code"`
	Language    string `json:"language"`
}

// SubmissionReceipt is the server's acknowledgement of a submission: the
// status it assigned at intake (usually "pending").
type SubmissionReceipt struct {
	ID     string
	Status string
}

// CreateSubmission posts the solution snapshot to the judge. A 400 with a
// structured errors object comes back as *ValidationError; a missing or
// expired token surfaces as the server's 401, there is no local pre-check.
func (c *Client) CreateSubmission(ctx context.Context, req model.SubmissionRequest) (*SubmissionReceipt, error) {
	body := createSubmissionBody{
		ChallengeID: req.ChallengeID,
		Code:        req.Code,
		Language:    string(req.Language),
	}
	status, respBody, err := c.do(ctx, http.MethodPost, "/submissions", body, true)
	if err != nil {
		return nil, err
	}
	if status == http.StatusBadRequest {
		var payload struct {
			Errors json.RawMessage `json:"errors"`
		}
		if err := json.Unmarshal(respBody, &payload); err == nil && len(payload.Errors) > 0 {
			return nil, &ValidationError{Details: payload.Errors}
		}
	}
	if err := statusError(status, respBody); err != nil {
		return nil, err
	}

	var payload struct {
		Submission struct {
			ID     json.Number `json:"id"`
			Status string      `json:"status"`
		} `json:"submission"`
	}
	if err := json.Unmarshal(respBody, &payload); err != nil {
		return nil, common.Errorf("decode submission response: %w", err)
	}
	return &SubmissionReceipt{
		ID:     payload.Submission.ID.String(),
		Status: payload.Submission.Status,
	}, nil
}

// RawSubmission is a history row before the challenge-title join.
type RawSubmission struct {
	ID          string
	ChallengeID string
	Status      string
	SubmittedAt time.Time
}

// ListUserSubmissions fetches the caller's submission history in server
// order. Requires auth.
func (c *Client) ListUserSubmissions(ctx context.Context) ([]RawSubmission, error) {
	status, body, err := c.do(ctx, http.MethodGet, "/submissions/user", nil, true)
	if err != nil {
		return nil, err
	}
	if err := statusError(status, body); err != nil {
		return nil, err
	}
	var payload struct {
		Submissions []struct {
			ID          json.Number `json:"id"`
			QuestionID  json.Number `json:"question_id"`
			Status      string      `json:"status"`
			SubmittedAt time.Time   `json:"submitted_at"`
		} `json:"submissions"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, common.Errorf("decode submissions: %w", err)
	}
	subs := make([]RawSubmission, 0, len(payload.Submissions))
	for _, s := range payload.Submissions {
		subs = append(subs, RawSubmission{
			ID:          s.ID.String(),
			ChallengeID: s.QuestionID.String(),
			Status:      s.Status,
			SubmittedAt: s.SubmittedAt,
		})
	}
	return subs, nil
}
