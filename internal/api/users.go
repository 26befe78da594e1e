package api

import (
	"context"
	"encoding/json"
	"net/http"

	"createathon/internal/common"
	"createathon/internal/domain/model"
)

type userPayload struct {
	ID                 json.Number `json:"id"`
	Username           string      `json:"username"`
	QuestionsSolved    int         `json:"no_of_questions_solved"`
	AttemptedQuestions int         `json:"attempted_questions"`
	BadgesEarned       int         `json:"badges_earned"`
	EarnedPoints       int         `json:"earned_points"`
}

func (p userPayload) toModel() model.UserProfile {
	return model.UserProfile{
		ID:                 p.ID.String(),
		Username:           p.Username,
		QuestionsSolved:    p.QuestionsSolved,
		AttemptedQuestions: p.AttemptedQuestions,
		BadgesEarned:       p.BadgesEarned,
		EarnedPoints:       p.EarnedPoints,
	}
}

// GetUser fetches one user profile. Requires auth.
func (c *Client) GetUser(ctx context.Context, id string) (*model.UserProfile, error) {
	status, body, err := c.do(ctx, http.MethodGet, "/users/"+id, nil, true)
	if err != nil {
		return nil, err
	}
	if err := statusError(status, body); err != nil {
		return nil, err
	}
	var payload userPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, common.Errorf("decode user: %w", err)
	}
	profile := payload.toModel()
	return &profile, nil
}

// ListUsers fetches every user profile for the leaderboard. Requires auth.
func (c *Client) ListUsers(ctx context.Context) ([]model.UserProfile, error) {
	status, body, err := c.do(ctx, http.MethodGet, "/users", nil, true)
	if err != nil {
		return nil, err
	}
	if err := statusError(status, body); err != nil {
		return nil, err
	}
	var payloads []userPayload
	if err := json.Unmarshal(body, &payloads); err != nil {
		return nil, common.Errorf("decode users: %w", err)
	}
	users := make([]model.UserProfile, 0, len(payloads))
	for _, p := range payloads {
		users = append(users, p.toModel())
	}
	return users, nil
}
