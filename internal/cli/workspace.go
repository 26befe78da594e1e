package cli

import (
	"context"
	"os"
	"strings"

	"createathon/internal/app/workspace"
	"createathon/internal/domain/model"
)

// runWorkspace is the subshell for one challenge: the editor, the problem
// tab, and the output tab, driven by commands instead of buttons.
func (s *Session) runWorkspace(ctx context.Context, challengeID string) {
	if !s.requireAuth(ctx) {
		return
	}

	s.machine.Open(ctx, challengeID)
	s.renderWorkspace(s.machine.Snapshot())

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, ok := s.prompt("workspace:" + challengeID + "> ")
		if !ok {
			return
		}
		if line == "" {
			continue
		}
		if done := s.dispatchWorkspace(ctx, line); done {
			return
		}
	}
}

func (s *Session) dispatchWorkspace(ctx context.Context, line string) bool {
	args := splitFields(line)
	switch args[0] {
	case "back", "close":
		return true
	case "help":
		s.printWorkspaceHelp()
	case "show":
		s.renderWorkspace(s.machine.Snapshot())
	case "view":
		if len(args) < 2 {
			s.printLine("usage: view problem|output")
			return false
		}
		s.machine.SetView(workspace.View(args[1]))
		s.renderWorkspace(s.machine.Snapshot())
	case "lang":
		if len(args) < 2 {
			s.printLine("usage: lang javascript|typescript|python|java|cpp")
			return false
		}
		lang, ok := model.ParseLanguage(args[1])
		if !ok {
			s.printLine("unsupported language %q", args[1])
			return false
		}
		s.machine.SelectLanguage(lang)
		s.printLine("language set to %s, buffer reset to template", lang.Label())
	case "edit":
		s.editBuffer()
	case "load":
		if len(args) < 2 {
			s.printLine("usage: load <file>")
			return false
		}
		data, err := os.ReadFile(args[1])
		if err != nil {
			s.printLine("load failed: %v", err)
			return false
		}
		s.machine.SetSource(string(data))
		s.printLine("loaded %d bytes into the buffer", len(data))
	case "run":
		if !s.machine.CanRun() {
			s.printLine("busy: %s", s.machine.Snapshot().Phase)
			return false
		}
		s.printLine("Running code...")
		s.machine.Run(ctx)
		s.renderWorkspace(s.machine.Snapshot())
	case "submit":
		if !s.machine.CanSubmit() {
			s.printLine("busy: %s", s.machine.Snapshot().Phase)
			return false
		}
		s.printLine("Submitting code...")
		s.machine.Submit(ctx)
		s.renderWorkspace(s.machine.Snapshot())
	default:
		s.printLine("unknown workspace command %q, try 'help'", args[0])
	}
	return false
}

// editBuffer reads buffer lines from the terminal until a lone ".", the
// closest a shell gets to the embedded editor widget.
func (s *Session) editBuffer() {
	s.printLine("enter source, end with a single '.' on its own line:")
	var lines []string
	for {
		// promptRaw keeps leading whitespace, which source code needs.
		line, ok := s.promptRaw("| ")
		if !ok {
			return
		}
		if strings.TrimSpace(line) == "." {
			break
		}
		lines = append(lines, line)
	}
	s.machine.SetSource(joinLines(lines))
	s.printLine("buffer updated (%d lines)", len(lines))
}

func (s *Session) printWorkspaceHelp() {
	s.printLine(`workspace commands:
  show                  redraw the workspace
  view problem|output   switch tabs
  lang <tag>            select language (resets the buffer to its template)
  edit                  type source into the buffer ('.' to finish)
  load <file>           load source from a file
  run                   run the buffer locally
  submit                submit the buffer to the judge
  back                  leave the workspace`)
}
