package api

import (
	"encoding/json"
	"testing"
)

func TestChallengePayloadDifficultyPrecedence(t *testing.T) {
	tests := []struct {
		name    string
		payload challengePayload
		want    string
	}{
		{
			name:    "display field wins",
			payload: challengePayload{Difficulty: "easy", DifficultyDisplay: "Easy", Difficulties: "E"},
			want:    "Easy",
		},
		{
			name:    "difficulty over legacy",
			payload: challengePayload{Difficulty: "Medium", Difficulties: "M"},
			want:    "Medium",
		},
		{
			name:    "legacy field as fallback",
			payload: challengePayload{Difficulties: "Hard"},
			want:    "Hard",
		},
		{
			name:    "nothing set",
			payload: challengePayload{},
			want:    "",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.payload.toModel().Difficulty; string(got) != tc.want {
				t.Errorf("difficulty = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestChallengePayloadSlugAndNumericID(t *testing.T) {
	var payload challengePayload
	raw := `{"id": 42, "title": "Two Sum II: Input Array Is Sorted"}`
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	ch := payload.toModel()
	if ch.ID != "42" {
		t.Errorf("id = %q, want 42", ch.ID)
	}
	if ch.Slug != "two-sum-ii-input-array-is-sorted" {
		t.Errorf("slug = %q", ch.Slug)
	}
}

func TestChallengePayloadStringID(t *testing.T) {
	var payload challengePayload
	if err := json.Unmarshal([]byte(`{"id": "7", "title": "X"}`), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := payload.toModel().ID; got != "7" {
		t.Errorf("id = %q, want 7", got)
	}
}
