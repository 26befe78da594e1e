package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gosimple/slug"

	"createathon/internal/common"
	"createathon/internal/domain/model"
)

// challengePayload tolerates the server's field drift: older deployments sent
// difficulties, newer ones difficulty or difficulty_display.
type challengePayload struct {
	ID                json.Number `json:"id"`
	Title             string      `json:"title"`
	Description       string      `json:"description"`
	Difficulty        string      `json:"difficulty"`
	DifficultyDisplay string      `json:"difficulty_display"`
	Difficulties      string      `json:"difficulties"`
}

func (p challengePayload) toModel() model.Challenge {
	difficulty := p.DifficultyDisplay
	if difficulty == "" {
		difficulty = p.Difficulty
	}
	if difficulty == "" {
		difficulty = p.Difficulties
	}
	return model.Challenge{
		ID:          p.ID.String(),
		Title:       p.Title,
		Slug:        slug.Make(p.Title),
		Description: p.Description,
		Difficulty:  model.ChallengeDifficulty(difficulty),
	}
}

// GetChallenge fetches a single challenge by id. Public endpoint.
func (c *Client) GetChallenge(ctx context.Context, id string) (*model.Challenge, error) {
	status, body, err := c.do(ctx, http.MethodGet, "/challenges/"+id, nil, false)
	if err != nil {
		return nil, err
	}
	if err := statusError(status, body); err != nil {
		return nil, err
	}
	var payload challengePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, common.Errorf("decode challenge: %w", err)
	}
	ch := payload.toModel()
	return &ch, nil
}

// ListChallenges fetches the entry-page listing in server order.
func (c *Client) ListChallenges(ctx context.Context) ([]model.Challenge, error) {
	status, body, err := c.do(ctx, http.MethodGet, "/challenges", nil, false)
	if err != nil {
		return nil, err
	}
	if err := statusError(status, body); err != nil {
		return nil, err
	}
	var payloads []challengePayload
	if err := json.Unmarshal(body, &payloads); err != nil {
		return nil, common.Errorf("decode challenges: %w", err)
	}
	challenges := make([]model.Challenge, 0, len(payloads))
	for _, p := range payloads {
		challenges = append(challenges, p.toModel())
	}
	return challenges, nil
}
