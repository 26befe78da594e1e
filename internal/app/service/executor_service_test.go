package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"createathon/internal/domain/model"
)

func newTestExecutor(minLatency, budget time.Duration) *ExecutorService {
	return NewExecutorService(minLatency, budget, zap.NewNop())
}

func TestRunCapturesOutputInCallOrder(t *testing.T) {
	exec := newTestExecutor(0, time.Second)

	src := `for (let i = 0; i < 5; i++) { console.log("line", i); }`
	res := exec.Run(context.Background(), src, model.LangJavaScript)

	if res.Kind != model.ExecutionSuccess {
		t.Fatalf("kind = %q, message = %q", res.Kind, res.Message)
	}
	if len(res.Lines) != 5 {
		t.Fatalf("got %d lines, want 5", len(res.Lines))
	}
	for i, line := range res.Lines {
		if want := fmt.Sprintf("line %d", i); line != want {
			t.Errorf("line %d = %q, want %q", i, line, want)
		}
	}
}

func TestRunCapturesThrownError(t *testing.T) {
	exec := newTestExecutor(0, time.Second)

	src := `console.log("before"); throw new Error("boom"); console.log("after");`
	res := exec.Run(context.Background(), src, model.LangJavaScript)

	if res.Kind != model.ExecutionError {
		t.Fatalf("kind = %q, want error", res.Kind)
	}
	if len(res.Lines) != 1 || res.Lines[0] != "before" {
		t.Errorf("lines = %v, want output up to the throw", res.Lines)
	}
	if !strings.Contains(res.Message, "boom") {
		t.Errorf("message = %q, want the thrown message", res.Message)
	}
}

func TestRunSyntaxErrorIsResultNotPanic(t *testing.T) {
	exec := newTestExecutor(0, time.Second)

	res := exec.Run(context.Background(), `function {`, model.LangJavaScript)
	if res.Kind != model.ExecutionError {
		t.Fatalf("kind = %q, want error", res.Kind)
	}
	if res.Message == "" {
		t.Error("expected a parse error message")
	}
}

func TestRunEmptySource(t *testing.T) {
	exec := newTestExecutor(0, time.Second)

	res := exec.Run(context.Background(), "", model.LangJavaScript)
	if res.Kind != model.ExecutionSuccess || len(res.Lines) != 0 {
		t.Fatalf("empty source: kind=%q lines=%v", res.Kind, res.Lines)
	}
}

// A failing run must not leak captured output or console state into the
// next run.
func TestRunsAreIsolated(t *testing.T) {
	exec := newTestExecutor(0, time.Second)

	_ = exec.Run(context.Background(), `console.log("stale"); throw "x";`, model.LangJavaScript)
	res := exec.Run(context.Background(), `console.log("fresh");`, model.LangJavaScript)

	if res.Kind != model.ExecutionSuccess {
		t.Fatalf("second run failed: %q", res.Message)
	}
	if len(res.Lines) != 1 || res.Lines[0] != "fresh" {
		t.Errorf("lines = %v, want only the second run's output", res.Lines)
	}
}

func TestRunOtherLanguagesSkipEvaluation(t *testing.T) {
	exec := newTestExecutor(0, time.Second)

	for _, lang := range []model.Language{model.LangPython, model.LangJava, model.LangCpp, model.LangTypeScript} {
		res := exec.Run(context.Background(), `print("hi")`, lang)
		if res.Kind != model.ExecutionSuccess {
			t.Errorf("%s: kind = %q", lang, res.Kind)
		}
		want := fmt.Sprintf("To execute %s code, we need a backend service.", lang)
		if len(res.Lines) != 1 || res.Lines[0] != want {
			t.Errorf("%s: lines = %v, want %q", lang, res.Lines, want)
		}
	}
}

func TestRunEnforcesMinimumLatency(t *testing.T) {
	exec := newTestExecutor(50*time.Millisecond, time.Second)

	start := time.Now()
	exec.Run(context.Background(), `console.log(1)`, model.LangJavaScript)
	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Errorf("run returned after %v, want at least 50ms", elapsed)
	}
}

func TestRunInterruptsRunawayLoop(t *testing.T) {
	exec := newTestExecutor(0, 50*time.Millisecond)

	done := make(chan model.ExecutionResult, 1)
	go func() {
		done <- exec.Run(context.Background(), `while (true) {}`, model.LangJavaScript)
	}()

	select {
	case res := <-done:
		if res.Kind != model.ExecutionError {
			t.Fatalf("kind = %q, want error after interrupt", res.Kind)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("runaway loop was not interrupted")
	}
}
