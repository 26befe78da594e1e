package model

import "testing"

func TestCompletionPercent(t *testing.T) {
	tests := []struct {
		name      string
		solved    int
		attempted int
		want      int
	}{
		{"nothing attempted", 0, 0, 0},
		{"half solved", 2, 4, 50},
		{"all solved", 5, 5, 100},
		{"rounds to nearest", 1, 3, 33},
		{"rounds up", 2, 3, 67},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := UserProfile{QuestionsSolved: tt.solved, AttemptedQuestions: tt.attempted}
			if got := u.CompletionPercent(); got != tt.want {
				t.Errorf("CompletionPercent() = %d, want %d", got, tt.want)
			}
		})
	}
}
