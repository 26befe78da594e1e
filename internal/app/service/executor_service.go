package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dop251/goja"
	"go.uber.org/zap"

	"createathon/internal/domain/model"
)

// ExecutorService runs user-authored JavaScript locally for quick feedback.
//
// Trust boundary: the source is untrusted. Each run gets a throwaway goja VM
// whose only host binding is the console.log capture, so the script has no
// filesystem, network, or host access, and a wall-clock interrupt stops
// runaway loops. Output interception lives and dies with the VM; the host
// console is never redirected, which is the always-restore guarantee.
//
// Every other language returns a fixed notice; real execution for those is
// the remote judge's job.
type ExecutorService struct {
	minLatency time.Duration
	budget     time.Duration
	logger     *zap.Logger
}

func NewExecutorService(minLatency, budget time.Duration, logger *zap.Logger) *ExecutorService {
	return &ExecutorService{minLatency: minLatency, budget: budget, logger: logger}
}

// Run executes the buffer and returns the captured result. It never returns
// an error: user-code faults are data in the result, and the minimum latency
// keeps the output pane from flickering on trivial scripts.
func (s *ExecutorService) Run(ctx context.Context, source string, lang model.Language) model.ExecutionResult {
	start := time.Now()

	var result model.ExecutionResult
	if lang == model.LangJavaScript {
		result = s.runJavaScript(source)
	} else {
		result = model.ExecutionResult{
			Kind:  model.ExecutionSuccess,
			Lines: []string{fmt.Sprintf("To execute %s code, we need a backend service.", lang)},
		}
	}

	if remaining := s.minLatency - time.Since(start); remaining > 0 {
		select {
		case <-time.After(remaining):
		case <-ctx.Done():
		}
	}
	return result
}

func (s *ExecutorService) runJavaScript(source string) (result model.ExecutionResult) {
	vm := goja.New()

	var lines []string
	console := vm.NewObject()
	err := console.Set("log", func(call goja.FunctionCall) goja.Value {
		parts := make([]string, 0, len(call.Arguments))
		for _, arg := range call.Arguments {
			parts = append(parts, arg.String())
		}
		lines = append(lines, strings.Join(parts, " "))
		return goja.Undefined()
	})
	if err == nil {
		err = vm.Set("console", console)
	}
	if err != nil {
		return model.ExecutionResult{Kind: model.ExecutionError, Message: err.Error()}
	}

	if s.budget > 0 {
		timer := time.AfterFunc(s.budget, func() {
			vm.Interrupt("execution took too long")
		})
		defer timer.Stop()
	}

	// goja reports most faults as errors, but host panics can still escape.
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("local run panicked", zap.Any("panic", r))
			result = model.ExecutionResult{
				Kind:    model.ExecutionError,
				Lines:   lines,
				Message: fmt.Sprint(r),
			}
		}
	}()

	if _, err := vm.RunString(source); err != nil {
		return model.ExecutionResult{
			Kind:    model.ExecutionError,
			Lines:   lines,
			Message: executionMessage(err),
		}
	}
	return model.ExecutionResult{Kind: model.ExecutionSuccess, Lines: lines}
}

// executionMessage prefers the thrown JS value over goja's wrapped error
// text, which includes a stack trace the output pane does not want.
func executionMessage(err error) string {
	if ex, ok := err.(*goja.Exception); ok {
		return ex.Value().String()
	}
	if intr, ok := err.(*goja.InterruptedError); ok {
		return fmt.Sprint(intr.Value())
	}
	return err.Error()
}
