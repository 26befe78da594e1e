package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/shlex"
	"go.uber.org/zap"

	"createathon/internal/app/service"
	"createathon/internal/app/workspace"
)

// Session is the interactive shell: the terminal stand-in for the web
// client's pages. One command per line; the workspace gets a subshell.
type Session struct {
	auth      *service.AuthService
	problems  *service.ProblemService
	dashboard *service.DashboardService
	machine   *workspace.Machine
	logger    *zap.Logger

	in  *bufio.Reader
	out *bufio.Writer
}

func New(
	auth *service.AuthService,
	problems *service.ProblemService,
	dashboard *service.DashboardService,
	machine *workspace.Machine,
	logger *zap.Logger,
) *Session {
	return &Session{
		auth:      auth,
		problems:  problems,
		dashboard: dashboard,
		machine:   machine,
		logger:    logger,
		in:        bufio.NewReader(os.Stdin),
		out:       bufio.NewWriter(os.Stdout),
	}
}

func (s *Session) Run(ctx context.Context) {
	s.printLine("createathon shell. Type 'help' for commands.")
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, ok := s.prompt("createathon> ")
		if !ok {
			return
		}
		if line == "" {
			continue
		}

		args, err := shlex.Split(line)
		if err != nil {
			s.printLine("parse error: %v", err)
			continue
		}
		if done := s.dispatch(ctx, args); done {
			return
		}
	}
}

func (s *Session) dispatch(ctx context.Context, args []string) bool {
	switch args[0] {
	case "exit", "quit":
		s.printLine("bye")
		return true
	case "help":
		s.printHelp()
	case "register":
		s.handleRegister(ctx, args)
	case "login":
		s.handleLogin(ctx, args)
	case "logout":
		if err := s.auth.Logout(); err != nil {
			s.printLine("logout failed: %v", err)
		} else {
			s.printLine("logged out")
		}
	case "challenges":
		s.handleChallenges(ctx)
	case "leaderboard":
		s.handleLeaderboard(ctx)
	case "dashboard":
		s.handleDashboard(ctx)
	case "open":
		if len(args) < 2 {
			s.printLine("usage: open <challenge-id>")
			return false
		}
		s.runWorkspace(ctx, args[1])
	default:
		s.printLine("unknown command %q, try 'help'", args[0])
	}
	return false
}

func (s *Session) requireAuth(ctx context.Context) bool {
	if s.auth.Authorized(ctx) {
		return true
	}
	s.printLine("not logged in (or session expired); use 'login <username>'")
	return false
}

func (s *Session) handleRegister(ctx context.Context, args []string) {
	if len(args) < 2 {
		s.printLine("usage: register <username>")
		return
	}
	password, ok := s.prompt("password: ")
	if !ok || password == "" {
		s.printLine("registration cancelled")
		return
	}
	if err := s.auth.Register(ctx, args[1], password); err != nil {
		s.printLine("registration failed: %v", err)
		return
	}
	s.printLine("registered and logged in as %s", args[1])
}

func (s *Session) handleLogin(ctx context.Context, args []string) {
	if len(args) < 2 {
		s.printLine("usage: login <username>")
		return
	}
	password, ok := s.prompt("password: ")
	if !ok {
		return
	}
	if err := s.auth.Login(ctx, args[1], password); err != nil {
		s.printLine("login failed: %v", err)
		return
	}
	s.printLine("logged in as %s", args[1])
}

func (s *Session) handleChallenges(ctx context.Context) {
	if !s.requireAuth(ctx) {
		return
	}
	challenges, err := s.problems.List(ctx)
	if err != nil {
		s.printLine("failed to load challenges: %v", err)
		return
	}
	s.renderChallenges(challenges)
}

func (s *Session) handleLeaderboard(ctx context.Context) {
	if !s.requireAuth(ctx) {
		return
	}
	viewerID, _ := s.auth.CurrentUserID()
	entries, err := s.dashboard.Leaderboard(ctx, viewerID)
	if err != nil {
		s.printLine("failed to load leaderboard: %v", err)
		return
	}
	s.renderLeaderboard(entries)
}

func (s *Session) handleDashboard(ctx context.Context) {
	if !s.requireAuth(ctx) {
		return
	}
	userID, err := s.auth.CurrentUserID()
	if err != nil {
		s.printLine("cannot determine current user: %v", err)
		return
	}
	board, err := s.dashboard.Load(ctx, userID)
	if err != nil {
		s.printLine("failed to load dashboard: %v", err)
		return
	}
	s.renderDashboard(board)
}

func (s *Session) prompt(text string) (string, bool) {
	fmt.Fprint(s.out, text)
	s.out.Flush()
	line, err := s.in.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			s.printLine("read input failed: %v", err)
		}
		return "", false
	}
	return strings.TrimSpace(line), true
}

// promptRaw reads a line without trimming leading whitespace.
func (s *Session) promptRaw(text string) (string, bool) {
	fmt.Fprint(s.out, text)
	s.out.Flush()
	line, err := s.in.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			s.printLine("read input failed: %v", err)
		}
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}

func (s *Session) printLine(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format+"\n", args...)
	s.out.Flush()
}

func (s *Session) printHelp() {
	s.printLine(`commands:
  register <username>   create an account
  login <username>      log in
  logout                drop the stored session
  challenges            list challenges
  leaderboard           show the global leaderboard
  dashboard             show your profile and submission history
  open <challenge-id>   open the workspace for a challenge
  exit                  quit`)
}
