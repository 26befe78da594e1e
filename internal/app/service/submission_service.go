package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"createathon/internal/api"
	"createathon/internal/domain/model"
)

// SubmissionService sends solution snapshots to the remote judge. It does no
// local token pre-check: an absent or expired token goes out anyway and the
// server's 401 comes back as ErrUnauthorized. The status the server assigns
// at intake (including "pending") is terminal for display purposes.
type SubmissionService struct {
	client *api.Client
	logger *zap.Logger
}

func NewSubmissionService(client *api.Client, logger *zap.Logger) *SubmissionService {
	return &SubmissionService{client: client, logger: logger}
}

// Submit posts the request and converts the receipt into an outcome. The
// returned error is one of the sentinel kinds (Unauthorized, Validation,
// Network, ...) for the caller to render.
func (s *SubmissionService) Submit(ctx context.Context, req model.SubmissionRequest) (*model.SubmissionOutcome, error) {
	attemptID := uuid.NewString()

	receipt, err := s.client.CreateSubmission(ctx, req)
	if err != nil {
		s.logger.Warn("submission failed",
			zap.String("attempt_id", attemptID),
			zap.String("challenge_id", req.ChallengeID),
			zap.Error(err))
		return nil, err
	}

	status := model.NormalizeStatus(receipt.Status)
	s.logger.Info("submission accepted by judge",
		zap.String("attempt_id", attemptID),
		zap.String("submission_id", receipt.ID),
		zap.String("status", string(status)))

	return &model.SubmissionOutcome{
		AttemptID: attemptID,
		Status:    status,
		Message:   "Code submitted successfully!",
		Accepted:  status == model.StatusAccepted,
	}, nil
}
