package judgemock

import (
	"strconv"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"createathon/internal/common"
)

// Store is the mock judge's in-memory state. It exists so the client can be
// developed and tested without the real judging service; nothing persists
// across restarts and that is fine.
type Store struct {
	mu sync.Mutex

	nextUserID int
	nextSubID  int

	users       map[string]*UserRecord // keyed by id
	usersByName map[string]string      // username -> id

	challengeOrder []string
	challenges     map[string]ChallengeRecord

	submissions []SubmissionRecord
}

type UserRecord struct {
	ID           string
	Username     string
	PasswordHash []byte
	Solved       int
	Attempted    int
	Badges       int
	Points       int
}

type ChallengeRecord struct {
	ID          string
	Title       string
	Description string
	Difficulty  string
}

type SubmissionRecord struct {
	ID          string
	UserID      string
	ChallengeID string
	Language    string
	Code        string
	Status      string
	SubmittedAt time.Time
}

func NewStore() *Store {
	s := &Store{
		nextUserID:  1,
		nextSubID:   1,
		users:       make(map[string]*UserRecord),
		usersByName: make(map[string]string),
		challenges:  make(map[string]ChallengeRecord),
	}
	s.seed()
	return s
}

func (s *Store) seed() {
	fixtures := []ChallengeRecord{
		{ID: "1", Title: "Two Sum", Description: "Given an array of integers and a target, return indices of the two numbers that add up to the target.", Difficulty: "Easy"},
		{ID: "2", Title: "Reverse Linked List", Description: "Reverse a singly linked list and return the new head.", Difficulty: "Easy"},
		{ID: "3", Title: "Longest Substring Without Repeating Characters", Description: "Find the length of the longest substring without repeating characters.", Difficulty: "Medium"},
		{ID: "4", Title: "Merge K Sorted Lists", Description: "Merge k sorted linked lists into one sorted list.", Difficulty: "Hard"},
	}
	for _, ch := range fixtures {
		s.challenges[ch.ID] = ch
		s.challengeOrder = append(s.challengeOrder, ch.ID)
	}
}

// AddChallenge registers an extra fixture; tests use it to shape scenarios.
func (s *Store) AddChallenge(ch ChallengeRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.challenges[ch.ID]; !exists {
		s.challengeOrder = append(s.challengeOrder, ch.ID)
	}
	s.challenges[ch.ID] = ch
}

func (s *Store) RemoveChallenge(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.challenges, id)
	for i, cid := range s.challengeOrder {
		if cid == id {
			s.challengeOrder = append(s.challengeOrder[:i], s.challengeOrder[i+1:]...)
			break
		}
	}
}

func (s *Store) CreateUser(username, password string) (*UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.usersByName[username]; taken {
		return nil, common.Errorf("username %q already exists: %w", username, common.ErrConflict)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.Errorf("hash password: %w", err)
	}

	user := &UserRecord{
		ID:           strconv.Itoa(s.nextUserID),
		Username:     username,
		PasswordHash: hash,
	}
	s.nextUserID++
	s.users[user.ID] = user
	s.usersByName[username] = user.ID
	return user, nil
}

func (s *Store) Authenticate(username, password string) (*UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.usersByName[username]
	if !ok {
		return nil, common.ErrUnauthorized
	}
	user := s.users[id]
	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		return nil, common.ErrUnauthorized
	}
	return user, nil
}

func (s *Store) GetUser(id string) (*UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

// SetUserStats overrides a user's aggregate counters; tests use it to build
// dashboard and leaderboard scenarios.
func (s *Store) SetUserStats(id string, solved, attempted, badges, points int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user, ok := s.users[id]; ok {
		user.Solved = solved
		user.Attempted = attempted
		user.Badges = badges
		user.Points = points
	}
}

func (s *Store) ListUsers() []UserRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]UserRecord, 0, len(s.users))
	// Stable registration order by numeric id.
	for i := 1; i < s.nextUserID; i++ {
		if user, ok := s.users[strconv.Itoa(i)]; ok {
			users = append(users, *user)
		}
	}
	return users
}

func (s *Store) GetChallenge(id string) (ChallengeRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch, ok := s.challenges[id]
	if !ok {
		return ChallengeRecord{}, common.ErrNotFound
	}
	return ch, nil
}

func (s *Store) ListChallenges() []ChallengeRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	challenges := make([]ChallengeRecord, 0, len(s.challengeOrder))
	for _, id := range s.challengeOrder {
		if ch, ok := s.challenges[id]; ok {
			challenges = append(challenges, ch)
		}
	}
	return challenges
}

var validLanguages = map[string]bool{
	"javascript": true,
	"typescript": true,
	"python":     true,
	"java":       true,
	"cpp":        true,
}

// AddSubmission validates and records a submission. Field errors come back
// as a map in the Django style; a non-nil map means a 400 response.
func (s *Store) AddSubmission(userID, challengeID, code, language string) (SubmissionRecord, map[string]string) {
	fieldErrors := make(map[string]string)
	if code == "" {
		fieldErrors["code"] = "This field may not be blank."
	}
	if !validLanguages[language] {
		fieldErrors["language"] = "\"" + language + "\" is not a valid choice."
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.challenges[challengeID]; !ok {
		fieldErrors["challenge_id"] = "challenge does not exist"
	}
	if len(fieldErrors) > 0 {
		return SubmissionRecord{}, fieldErrors
	}

	sub := SubmissionRecord{
		ID:          strconv.Itoa(s.nextSubID),
		UserID:      userID,
		ChallengeID: challengeID,
		Language:    language,
		Code:        code,
		Status:      "pending",
		SubmittedAt: time.Now().UTC(),
	}
	s.nextSubID++
	s.submissions = append(s.submissions, sub)

	if user, ok := s.users[userID]; ok {
		user.Attempted++
	}
	return sub, nil
}

// AddSubmissionRecord injects a pre-built history row for tests.
func (s *Store) AddSubmissionRecord(sub SubmissionRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sub.ID == "" {
		sub.ID = strconv.Itoa(s.nextSubID)
		s.nextSubID++
	}
	s.submissions = append(s.submissions, sub)
}

func (s *Store) ListSubmissions(userID string) []SubmissionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	subs := make([]SubmissionRecord, 0)
	for _, sub := range s.submissions {
		if sub.UserID == userID {
			subs = append(subs, sub)
		}
	}
	return subs
}
