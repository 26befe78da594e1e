package workspace

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"createathon/internal/api"
	"createathon/internal/domain/model"
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseSubmitting
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "Running"
	case PhaseSubmitting:
		return "Submitting"
	default:
		return "Idle"
	}
}

type View string

const (
	ViewProblem View = "problem"
	ViewOutput  View = "output"
)

// ProblemLoader, Executor, and Submitter are the machine's collaborators.
// The concrete implementations live in internal/app/service.
type ProblemLoader interface {
	Load(ctx context.Context, id string) (*model.Challenge, error)
}

type Executor interface {
	Run(ctx context.Context, source string, lang model.Language) model.ExecutionResult
}

type Submitter interface {
	Submit(ctx context.Context, req model.SubmissionRequest) (*model.SubmissionOutcome, error)
}

// Machine is the coding-workspace controller: one challenge, one source
// buffer, one run/submit lifecycle. Run and Submit are mutually exclusive;
// a trigger while either is in flight is ignored, not queued. Opening a new
// challenge bumps the generation counter so completions belonging to an
// abandoned view are discarded instead of overwriting fresh state.
type Machine struct {
	loader    ProblemLoader
	executor  Executor
	submitter Submitter
	logger    *zap.Logger

	// onChange, when set, fires after every committed state transition so
	// the shell can redraw. The machine is driven from a single goroutine,
	// matching the cooperative event model of the workspace.
	onChange func()

	generation  uint64
	challengeID string
	challenge   *model.Challenge
	loadErr     error

	phase    Phase
	view     View
	language model.Language
	source   string

	result  *model.ExecutionResult
	outcome *model.SubmissionOutcome
	message string
}

func NewMachine(loader ProblemLoader, executor Executor, submitter Submitter, logger *zap.Logger) *Machine {
	return &Machine{
		loader:    loader,
		executor:  executor,
		submitter: submitter,
		logger:    logger,
		view:      ViewProblem,
		language:  model.LangJavaScript,
		source:    model.LangJavaScript.Template(),
	}
}

func (m *Machine) SetOnChange(fn func()) {
	m.onChange = fn
}

func (m *Machine) notify() {
	if m.onChange != nil {
		m.onChange()
	}
}

// Open navigates to a challenge: the whole machine reinitializes to Idle
// with the new challenge's template. A load failure is recorded for inline
// display; the view never stays in a loading state.
func (m *Machine) Open(ctx context.Context, challengeID string) {
	m.generation++
	gen := m.generation

	m.challengeID = challengeID
	m.challenge = nil
	m.loadErr = nil
	m.phase = PhaseIdle
	m.view = ViewProblem
	m.language = model.LangJavaScript
	m.source = model.LangJavaScript.Template()
	m.result = nil
	m.outcome = nil
	m.message = ""
	m.notify()

	ch, err := m.loader.Load(ctx, challengeID)

	// Guard against a stale load landing after another navigation.
	if gen != m.generation {
		return
	}
	if err != nil {
		m.loadErr = err
		m.logger.Warn("challenge failed to load",
			zap.String("challenge_id", challengeID), zap.Error(err))
	} else {
		m.challenge = ch
	}
	m.notify()
}

// SelectLanguage resets the buffer to the language's canonical template and
// clears any execution output. Edits are not preserved across a switch, even
// when reselecting the current language. The active view is unchanged.
func (m *Machine) SelectLanguage(lang model.Language) {
	if !lang.Valid() || m.phase != PhaseIdle {
		return
	}
	m.language = lang
	m.source = lang.Template()
	m.result = nil
	m.message = ""
	m.notify()
}

// SetSource replaces the buffer with a user edit.
func (m *Machine) SetSource(text string) {
	m.source = text
}

// Run executes the buffer locally. An empty or broken buffer still runs;
// the fault shows up in the ExecutionResult. Ignored while busy.
func (m *Machine) Run(ctx context.Context) {
	if m.phase != PhaseIdle {
		return
	}
	m.phase = PhaseRunning
	m.view = ViewOutput
	m.result = nil
	m.message = ""
	gen := m.generation
	source, lang := m.source, m.language
	m.notify()

	result := m.executor.Run(ctx, source, lang)

	if gen != m.generation {
		return
	}
	m.result = &result
	m.phase = PhaseIdle
	m.notify()
}

// Submit sends the current buffer snapshot to the judge. Ignored while busy.
func (m *Machine) Submit(ctx context.Context) {
	if m.phase != PhaseIdle {
		return
	}
	m.phase = PhaseSubmitting
	m.view = ViewOutput
	m.outcome = nil
	m.message = ""
	gen := m.generation
	req := model.SubmissionRequest{
		ChallengeID: m.challengeID,
		Language:    m.language,
		Code:        m.source,
	}
	m.notify()

	outcome, err := m.submitter.Submit(ctx, req)

	if gen != m.generation {
		return
	}
	if err != nil {
		m.outcome = &model.SubmissionOutcome{
			Status:  model.StatusError,
			Message: submitFailureBanner(err),
		}
		m.message = "Submission failed: " + submitFailureDetail(err)
	} else {
		m.outcome = outcome
		m.message = "Submission received. Status: " + string(outcome.Status)
	}
	m.phase = PhaseIdle
	m.notify()
}

// submitFailureBanner is the short status line shown above the output.
func submitFailureBanner(err error) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "Failed to submit code"
}

// submitFailureDetail distinguishes a structured validation payload (shown
// as its JSON blob) from everything else (shown as raw error text).
func submitFailureDetail(err error) string {
	var vErr *api.ValidationError
	if errors.As(err, &vErr) {
		return string(vErr.Details)
	}
	return err.Error()
}

// Snapshot is a read-only copy of the machine state for rendering.
type Snapshot struct {
	ChallengeID string
	Challenge   *model.Challenge
	LoadErr     error
	Phase       Phase
	View        View
	Language    model.Language
	Source      string
	Result      *model.ExecutionResult
	Outcome     *model.SubmissionOutcome
	Message     string
}

func (m *Machine) Snapshot() Snapshot {
	return Snapshot{
		ChallengeID: m.challengeID,
		Challenge:   m.challenge,
		LoadErr:     m.loadErr,
		Phase:       m.phase,
		View:        m.view,
		Language:    m.language,
		Source:      m.source,
		Result:      m.result,
		Outcome:     m.outcome,
		Message:     m.message,
	}
}

// SetView switches between the problem and output tabs, independent of the
// run/submit phase.
func (m *Machine) SetView(v View) {
	if v != ViewProblem && v != ViewOutput {
		return
	}
	m.view = v
	m.notify()
}

// CanRun and CanSubmit implement the UI-level disablement: only one of
// run/submit may be in flight.
func (m *Machine) CanRun() bool    { return m.phase == PhaseIdle }
func (m *Machine) CanSubmit() bool { return m.phase == PhaseIdle }
