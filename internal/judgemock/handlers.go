package judgemock

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"createathon/internal/common"
	"createathon/internal/common/security"
)

// Handlers serves the judge API contract from the in-memory store.
type Handlers struct {
	store      *Store
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewHandlers(store *Store, accessTTL, refreshTTL time.Duration) *Handlers {
	return &Handlers{store: store, accessTTL: accessTTL, refreshTTL: refreshTTL}
}

type credentialsBody struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handlers) tokenPair(userID string) (map[string]string, error) {
	access, err := security.GenerateToken(userID, security.TokenAccess, h.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := security.GenerateToken(userID, security.TokenRefresh, h.refreshTTL)
	if err != nil {
		return nil, err
	}
	return map[string]string{"access": access, "refresh": refresh}, nil
}

func (h *Handlers) register(w http.ResponseWriter, r *http.Request) {
	var req credentialsBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if req.Username == "" || req.Password == "" {
		common.RespondWithValidationErrors(w, map[string]string{"username": "username and password are required"})
		return
	}

	user, err := h.store.CreateUser(req.Username, req.Password)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	pair, err := h.tokenPair(user.ID)
	if err != nil {
		common.RespondWithError(w, http.StatusInternalServerError, "failed to issue tokens")
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, pair)
}

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	var req credentialsBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	user, err := h.store.Authenticate(req.Username, req.Password)
	if err != nil {
		common.RespondWithError(w, http.StatusUnauthorized, "No active account found with the given credentials")
		return
	}
	pair, err := h.tokenPair(user.ID)
	if err != nil {
		common.RespondWithError(w, http.StatusInternalServerError, "failed to issue tokens")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, pair)
}

func (h *Handlers) refresh(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Refresh string `json:"refresh"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	token, err := security.TokenAuth.Decode(req.Refresh)
	if err != nil {
		common.RespondWithError(w, http.StatusUnauthorized, "Token is invalid or expired")
		return
	}
	claims := token.PrivateClaims()
	userID, _ := claims["user_id"].(string)
	kind, _ := claims["typ"].(string)
	if userID == "" || kind != string(security.TokenRefresh) || token.Expiration().Before(time.Now()) {
		common.RespondWithError(w, http.StatusUnauthorized, "Token is invalid or expired")
		return
	}

	access, err := security.GenerateToken(userID, security.TokenAccess, h.accessTTL)
	if err != nil {
		common.RespondWithError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]string{"access": access})
}

type challengeResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
}

func toChallengeResponse(ch ChallengeRecord) challengeResponse {
	return challengeResponse{
		ID:          ch.ID,
		Title:       ch.Title,
		Description: ch.Description,
		Difficulty:  ch.Difficulty,
	}
}

func (h *Handlers) getChallenge(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ch, err := h.store.GetChallenge(id)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), "challenge not found")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, toChallengeResponse(ch))
}

func (h *Handlers) listChallenges(w http.ResponseWriter, r *http.Request) {
	challenges := h.store.ListChallenges()
	out := make([]challengeResponse, 0, len(challenges))
	for _, ch := range challenges {
		out = append(out, toChallengeResponse(ch))
	}
	common.RespondWithJSON(w, http.StatusOK, out)
}

type submissionBody struct {
	ChallengeID json.Number `json:"challenge_id"`
	Code        string      `json:"code"`
	Language    string      `json:"language"`
}

func (h *Handlers) createSubmission(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Authorization token required")
		return
	}

	var req submissionBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	sub, fieldErrors := h.store.AddSubmission(userID, req.ChallengeID.String(), req.Code, req.Language)
	if fieldErrors != nil {
		common.RespondWithValidationErrors(w, fieldErrors)
		return
	}

	common.RespondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"submission": map[string]interface{}{
			"id":           sub.ID,
			"status":       sub.Status,
			"submitted_at": sub.SubmittedAt,
		},
	})
}

func (h *Handlers) listUserSubmissions(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Authorization token required")
		return
	}

	subs := h.store.ListSubmissions(userID)
	out := make([]map[string]interface{}, 0, len(subs))
	for _, sub := range subs {
		out = append(out, map[string]interface{}{
			"id":           sub.ID,
			"question_id":  sub.ChallengeID,
			"status":       sub.Status,
			"submitted_at": sub.SubmittedAt,
		})
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"submissions": out})
}

type userResponse struct {
	ID                 string `json:"id"`
	Username           string `json:"username"`
	QuestionsSolved    int    `json:"no_of_questions_solved"`
	AttemptedQuestions int    `json:"attempted_questions"`
	BadgesEarned       int    `json:"badges_earned"`
	EarnedPoints       int    `json:"earned_points"`
}

func toUserResponse(u UserRecord) userResponse {
	return userResponse{
		ID:                 u.ID,
		Username:           u.Username,
		QuestionsSolved:    u.Solved,
		AttemptedQuestions: u.Attempted,
		BadgesEarned:       u.Badges,
		EarnedPoints:       u.Points,
	}
}

func (h *Handlers) getUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	user, err := h.store.GetUser(id)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), "user not found")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, toUserResponse(*user))
}

func (h *Handlers) listUsers(w http.ResponseWriter, r *http.Request) {
	users := h.store.ListUsers()
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	common.RespondWithJSON(w, http.StatusOK, out)
}
