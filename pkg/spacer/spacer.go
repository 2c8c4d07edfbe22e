// Package spacer reflows a notebook into deck-style spacing by inserting
// filler cells before every slide, and keeps those cells out of saved files.
//
// State per document is Off or On. Toggling On inserts a (filler, sentinel)
// pair before every slide boundary except the first; toggling Off removes
// every marked cell. While On, a save removes the spacers before the write
// and puts them back once the write finished.
package spacer

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/grove-slides/pkg/models"
	"github.com/mattsolo1/grove-slides/pkg/notebook"
	"github.com/mattsolo1/grove-slides/pkg/slidemeta"
	"github.com/mattsolo1/grove-slides/pkg/slides"
)

// Transition reports what Toggle did.
type Transition int

const (
	// TransitionNone means there was nothing to space (fewer than two slides).
	TransitionNone Transition = iota
	TransitionOn
	TransitionOff
)

func (t Transition) String() string {
	switch t {
	case TransitionOn:
		return "on"
	case TransitionOff:
		return "off"
	}
	return "none"
}

// Manager owns the spacer view of every open document.
type Manager struct {
	states *States
	logger logrus.FieldLogger
}

// NewManager creates a manager over states.
func NewManager(states *States, logger logrus.FieldLogger) *Manager {
	if states == nil {
		states = NewStates()
	}
	if logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.WarnLevel)
		logger = l
	}
	return &Manager{states: states, logger: logger}
}

// State returns the view state of doc.
func (m *Manager) State(docID string) models.ViewState {
	return m.states.Get(docID)
}

// Toggle switches the spacer view of the editor's document.
func (m *Manager) Toggle(ed notebook.Editor, cfg models.Config) (Transition, error) {
	doc := ed.Document()
	if m.states.Get(doc.ID()).SpacerActive {
		if _, err := m.remove(doc); err != nil {
			return TransitionNone, err
		}
		m.states.Update(doc.ID(), func(s *models.ViewState) {
			s.SpacerActive = false
			s.PendingReinsert = false
		})
		return TransitionOff, nil
	}

	if _, err := m.RecoverOrphans(doc); err != nil {
		return TransitionNone, err
	}
	inserted, err := m.insert(doc, cfg)
	if err != nil {
		return TransitionNone, err
	}
	if inserted == 0 {
		return TransitionNone, nil
	}
	m.states.Update(doc.ID(), func(s *models.ViewState) { s.SpacerActive = true })
	slides.JumpFirst(ed, cfg)
	return TransitionOn, nil
}

// WillSave strips spacers from doc before it is written. It must complete
// before the write starts; an error cancels the save.
func (m *Manager) WillSave(doc notebook.Document) error {
	if !m.states.Get(doc.ID()).SpacerActive {
		return nil
	}
	if _, err := m.remove(doc); err != nil {
		return fmt.Errorf("remove spacers before save: %w", err)
	}
	m.states.Update(doc.ID(), func(s *models.ViewState) { s.PendingReinsert = true })
	return nil
}

// DidSave restores the spacers removed by WillSave. It is also the recovery
// step for a save that failed after WillSave ran. If they cannot be put
// back the view is switched off so the state matches the document.
func (m *Manager) DidSave(doc notebook.Document, cfg models.Config) error {
	st, ok := m.states.Peek(doc.ID())
	if !ok || !st.PendingReinsert {
		return nil
	}
	m.states.Update(doc.ID(), func(s *models.ViewState) { s.PendingReinsert = false })

	inserted, err := m.insert(doc, cfg)
	if err != nil || inserted == 0 {
		m.states.Update(doc.ID(), func(s *models.ViewState) { s.SpacerActive = false })
	}
	if err != nil {
		return fmt.Errorf("restore spacers after save: %w", err)
	}
	return nil
}

// RecoverOrphans removes spacer cells from a document whose spacer view is
// not on, for example after a crash between will-save and did-save left
// them in the file. It returns the number of cells removed.
func (m *Manager) RecoverOrphans(doc notebook.Document) (int, error) {
	if st, ok := m.states.Peek(doc.ID()); ok && st.SpacerActive {
		return 0, nil
	}
	n, err := m.remove(doc)
	if err != nil {
		return 0, fmt.Errorf("remove orphaned spacers: %w", err)
	}
	if n > 0 {
		m.logger.WithFields(logrus.Fields{"doc": doc.ID(), "removed": n}).Info("removed orphaned spacer cells")
	}
	return n, nil
}

// Close forgets the document.
func (m *Manager) Close(docID string) {
	m.states.Delete(docID)
}

// Plan returns the insert batch that spaces doc, built from the last
// boundary to the first so earlier insertions never shift a later one.
func Plan(doc notebook.Document, cfg models.Config) []notebook.Edit {
	idx := slides.Build(doc, models.GranularitySlide, cfg)
	if len(idx) < 2 {
		return nil
	}
	edits := make([]notebook.Edit, 0, len(idx)-1)
	for i := len(idx) - 1; i >= 1; i-- {
		filler, sentinel := slidemeta.NewSpacerPair(cfg.FillerLines())
		edits = append(edits, notebook.Insert(idx[i].Position, filler, sentinel))
	}
	return edits
}

// Positions lists the positions of every spacer cell in doc, top to bottom.
func Positions(doc notebook.Document) []int {
	var out []int
	for i, n := 0, doc.CellCount(); i < n; i++ {
		if slidemeta.IsSpacer(doc.CellAt(i)) {
			out = append(out, i)
		}
	}
	return out
}

func (m *Manager) insert(doc notebook.Document, cfg models.Config) (int, error) {
	edits := Plan(doc, cfg)
	if len(edits) == 0 {
		return 0, nil
	}
	if err := doc.ApplyEdit(edits...); err != nil {
		return 0, fmt.Errorf("insert spacers: %w", err)
	}
	m.logger.WithFields(logrus.Fields{"doc": doc.ID(), "gaps": len(edits)}).Debug("inserted spacers")
	return len(edits) * 2, nil
}

// remove deletes every spacer in one batch. Positions are collected top to
// bottom and deleted bottom to top, merging adjacent cells into one range.
func (m *Manager) remove(doc notebook.Document) (int, error) {
	positions := Positions(doc)
	if len(positions) == 0 {
		return 0, nil
	}
	var edits []notebook.Edit
	end := positions[len(positions)-1] + 1
	start := end - 1
	for i := len(positions) - 2; i >= 0; i-- {
		if positions[i] == start-1 {
			start--
			continue
		}
		edits = append(edits, notebook.Delete(start, end))
		end = positions[i] + 1
		start = positions[i]
	}
	edits = append(edits, notebook.Delete(start, end))

	if err := doc.ApplyEdit(edits...); err != nil {
		return 0, fmt.Errorf("delete spacers: %w", err)
	}
	m.logger.WithFields(logrus.Fields{"doc": doc.ID(), "cells": len(positions)}).Debug("removed spacers")
	return len(positions), nil
}
