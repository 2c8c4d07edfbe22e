package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/grove-slides/pkg/host"
	"github.com/mattsolo1/grove-slides/pkg/models"
	"github.com/mattsolo1/grove-slides/pkg/notebook"
	"github.com/mattsolo1/grove-slides/pkg/slides"
	"github.com/mattsolo1/grove-slides/pkg/spacer"
)

// Command identifiers, as bound to keys and exposed by Execute.
const (
	CmdNextSlide     = "nbs.nextSlide"
	CmdPrevSlide     = "nbs.prevSlide"
	CmdNextFragment  = "nbs.nextFragment"
	CmdPrevFragment  = "nbs.prevFragment"
	CmdFirstSlide    = "nbs.firstSlide"
	CmdLastSlide     = "nbs.lastSlide"
	CmdToggleSpacers = "nbs.toggleSpacers"
)

// ErrUnknownCommand is returned by Execute for an unregistered identifier.
var ErrUnknownCommand = errors.New("unknown command")

// ConfigSource supplies the current settings. It is consulted on every
// command and event, never cached.
type ConfigSource interface {
	Current() models.Config
}

// StaticConfig is a ConfigSource that always returns the same settings.
type StaticConfig models.Config

func (c StaticConfig) Current() models.Config {
	return models.Config(c)
}

// Service wires slide navigation, the position indicator and the spacer
// view into a workbench.
type Service struct {
	wb        *host.Workbench
	config    ConfigSource
	spacers   *spacer.Manager
	logger    logrus.FieldLogger
	commands  map[string]func() (string, error)
	activated bool
}

// New creates a service for wb. A nil config uses the defaults.
func New(wb *host.Workbench, config ConfigSource, logger logrus.FieldLogger) *Service {
	if config == nil {
		config = StaticConfig(models.DefaultConfig())
	}
	if logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.WarnLevel)
		logger = l
	}
	s := &Service{
		wb:      wb,
		config:  config,
		spacers: spacer.NewManager(spacer.NewStates(), logger),
		logger:  logger,
	}
	s.commands = map[string]func() (string, error){
		CmdNextSlide:     s.NextSlide,
		CmdPrevSlide:     s.PrevSlide,
		CmdNextFragment:  s.NextFragment,
		CmdPrevFragment:  s.PrevFragment,
		CmdFirstSlide:    s.FirstSlide,
		CmdLastSlide:     s.LastSlide,
		CmdToggleSpacers: s.ToggleSpacers,
	}
	return s
}

// Activate registers the event handlers and repairs spacer cells left in
// documents that are already open. Calling it again is a no-op.
func (s *Service) Activate() error {
	if s.activated {
		return nil
	}
	s.activated = true

	s.wb.OnActiveEditorChanged(func(ed *host.Editor) {
		if ed != nil {
			s.recover(ed)
		}
		s.RefreshStatus()
	})
	s.wb.OnSelectionChanged(func(ed *host.Editor) {
		if ed == s.wb.ActiveEditor() {
			s.RefreshStatus()
		}
	})
	s.wb.OnWillSave(func(_ context.Context, doc notebook.Document) error {
		return s.spacers.WillSave(doc)
	})
	s.wb.OnDidSave(s.restoreSpacers)
	s.wb.OnSaveFailed(s.restoreSpacers)
	s.wb.OnDocumentClosed(func(doc notebook.Document) {
		s.spacers.Close(doc.ID())
	})

	var errs []error
	for _, ed := range s.wb.Editors() {
		if err := s.recover(ed); err != nil {
			errs = append(errs, err)
		}
	}
	s.RefreshStatus()
	return errors.Join(errs...)
}

func (s *Service) recover(ed *host.Editor) error {
	n, err := s.spacers.RecoverOrphans(ed.Document())
	if err != nil {
		s.logger.WithError(err).WithField("doc", ed.Document().ID()).Warn("orphan recovery failed")
		return err
	}
	if n > 0 {
		s.RefreshStatus()
	}
	return nil
}

// Commands lists the registered command identifiers.
func (s *Service) Commands() []string {
	ids := make([]string, 0, len(s.commands))
	for id := range s.commands {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Execute runs the command registered under id against the active editor
// and returns the informational message it produced, if any.
func (s *Service) Execute(id string) (string, error) {
	fn, ok := s.commands[id]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCommand, id)
	}
	return fn()
}

func (s *Service) NextSlide() (string, error) {
	return s.navigate(func(ed notebook.Editor, cfg models.Config) slides.Outcome {
		return slides.Advance(ed, models.GranularitySlide, cfg)
	})
}

func (s *Service) PrevSlide() (string, error) {
	return s.navigate(func(ed notebook.Editor, cfg models.Config) slides.Outcome {
		return slides.Retreat(ed, models.GranularitySlide, cfg)
	})
}

func (s *Service) NextFragment() (string, error) {
	return s.navigate(func(ed notebook.Editor, cfg models.Config) slides.Outcome {
		return slides.Advance(ed, models.GranularityFragment, cfg)
	})
}

func (s *Service) PrevFragment() (string, error) {
	return s.navigate(func(ed notebook.Editor, cfg models.Config) slides.Outcome {
		return slides.Retreat(ed, models.GranularityFragment, cfg)
	})
}

func (s *Service) FirstSlide() (string, error) {
	return s.navigate(slides.JumpFirst)
}

func (s *Service) LastSlide() (string, error) {
	return s.navigate(slides.JumpLast)
}

// navigate runs fn on the active editor. Without one it does nothing.
func (s *Service) navigate(fn func(ed notebook.Editor, cfg models.Config) slides.Outcome) (string, error) {
	ed := s.wb.ActiveEditor()
	if ed == nil {
		return "", nil
	}
	out := fn(ed, s.config.Current())
	msg := out.Message()
	s.wb.Notify(msg)
	s.RefreshStatus()
	return msg, nil
}

// ToggleSpacers switches the spacer view of the active document.
func (s *Service) ToggleSpacers() (string, error) {
	ed := s.wb.ActiveEditor()
	if ed == nil {
		return "", nil
	}
	tr, err := s.spacers.Toggle(ed, s.config.Current())
	if err != nil {
		return "", fmt.Errorf("toggle spacers: %w", err)
	}
	s.logger.WithFields(logrus.Fields{"doc": ed.Document().ID(), "transition": tr}).Debug("toggled spacers")
	s.RefreshStatus()
	return "", nil
}

// Workbench returns the workbench the service is attached to.
func (s *Service) Workbench() *host.Workbench {
	return s.wb
}

// Config returns the settings in effect right now.
func (s *Service) Config() models.Config {
	return s.config.Current()
}

// Spacers exposes the spacer manager.
func (s *Service) Spacers() *spacer.Manager {
	return s.spacers
}

// RefreshStatus recomputes the position indicator of the active editor.
// The item is hidden when disabled, without an editor, or when the
// document carries no slide metadata.
func (s *Service) RefreshStatus() {
	status := s.wb.Status()
	cfg := s.config.Current()
	ed := s.wb.ActiveEditor()
	if !cfg.ShowStatus || ed == nil {
		status.Hide()
		return
	}
	text := s.StatusText(ed, cfg)
	if text == "" {
		status.Hide()
		return
	}
	status.SetText(text)
	status.Show()
}

// StatusText renders the position indicator for ed.
func (s *Service) StatusText(ed *host.Editor, cfg models.Config) string {
	idx := slides.Build(ed.Document(), models.GranularitySlide, cfg)
	return slides.RenderStatus(idx, slides.CurrentPosition(ed), s.spacers.State(ed.Document().ID()))
}

// restoreSpacers puts back the spacers the will-save hook removed, whether
// or not the write succeeded.
func (s *Service) restoreSpacers(doc notebook.Document) {
	if err := s.spacers.DidSave(doc, s.config.Current()); err != nil {
		s.logger.WithError(err).WithField("doc", doc.ID()).Warn("spacer view switched off")
		s.wb.Notify("Spacers could not be restored after save")
	}
	s.RefreshStatus()
}
