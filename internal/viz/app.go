package viz

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kataras/golog"
	"github.com/san-kum/mazelab/internal/config"
	"github.com/san-kum/mazelab/internal/report"
	"github.com/san-kum/mazelab/internal/session"
)

// Options configure RunInteractive. A nil Store keeps finished runs in memory
// only.
type Options struct {
	Store  *report.Store
	Logger *golog.Logger
}

// RunInteractive starts the full-screen TUI and blocks until it exits.
func RunInteractive(cfg *config.Config, opts Options) error {
	log := opts.Logger
	if log == nil {
		log = golog.Default
	}

	sopts := []session.Option{session.WithLogger(log)}
	if opts.Store != nil {
		sopts = append(sopts, session.WithOnFinish(func(r report.Report) {
			if path, err := opts.Store.Save(r); err != nil {
				log.Warnf("save report %s: %v", r.ID, err)
			} else {
				log.Debugf("saved report %s", path)
			}
		}))
	}

	s, err := session.New(cfg, sopts...)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(NewModel(s), tea.WithAltScreen()).Run()
	return err
}
