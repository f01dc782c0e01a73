package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dulina20231254-glitch/urbannest/internal/session"
)

// Run starts the interactive browser over sess and blocks until the user
// quits or ctx is canceled.
func Run(ctx context.Context, sess *session.Session, opts ...Option) error {
	if sess == nil {
		return fmt.Errorf("session is required")
	}

	m := New(sess, opts...)
	defer m.Close()

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if m.config.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	slog.Debug("Starting listing browser", "listings", sess.Store().Len())

	if _, err := tea.NewProgram(m, programOpts...).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
