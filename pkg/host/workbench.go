// Package host is a minimal notebook workbench: open documents, editors
// with selection and viewport, a status item, and the lifecycle events
// (active editor, selection, will-save, did-save, close) extensions hook into.
package host

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/grove-slides/pkg/notebook"
)

var (
	// ErrNoDocument is returned when an operation needs an open editor.
	ErrNoDocument = errors.New("no active document")
	// ErrNoPath is returned when saving a document that has no file.
	ErrNoPath = errors.New("document has no file path")
	// ErrSaveAborted is returned when a will-save hook fails.
	ErrSaveAborted = errors.New("save aborted")
)

// WillSaveHook runs before a document is written. The write waits for it
// and is cancelled when it returns an error.
type WillSaveHook func(ctx context.Context, doc notebook.Document) error

// DocumentListener observes document lifecycle events.
type DocumentListener func(doc notebook.Document)

// EditorListener observes editor events. The editor is nil when the last
// editor was closed.
type EditorListener func(ed *Editor)

// Workbench owns the open editors and dispatches lifecycle events.
type Workbench struct {
	editors  []*Editor
	active   *Editor
	status   StatusItem
	messages []string
	logger   logrus.FieldLogger

	onActive    []EditorListener
	onSelection []EditorListener
	onWillSave  []WillSaveHook
	onDidSave   []DocumentListener
	onSaveFail  []DocumentListener
	onClosed    []DocumentListener
}

// NewWorkbench creates an empty workbench.
func NewWorkbench(logger logrus.FieldLogger) *Workbench {
	if logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.WarnLevel)
		logger = l
	}
	return &Workbench{logger: logger}
}

// Open loads the notebook at path, or returns its editor when already open,
// and makes it active.
func (w *Workbench) Open(path string) (*Editor, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve path: %w", err)
	}
	if ed, ok := w.Editor(abs); ok {
		w.SetActive(ed)
		return ed, nil
	}
	nb, err := notebook.Load(abs)
	if err != nil {
		return nil, err
	}
	return w.OpenNotebook(nb, abs), nil
}

// OpenNotebook adds an editor for an already loaded notebook and makes it
// active. path may be empty for documents that are never saved.
func (w *Workbench) OpenNotebook(nb *notebook.Notebook, path string) *Editor {
	ed := &Editor{wb: w, doc: nb, path: path}
	nb.OnEdit(ed.follow)
	w.editors = append(w.editors, ed)
	w.logger.WithField("doc", nb.ID()).Debug("opened document")
	w.SetActive(ed)
	return ed
}

// Editor looks up the editor of a document.
func (w *Workbench) Editor(docID string) (*Editor, bool) {
	for _, ed := range w.editors {
		if ed.doc.ID() == docID {
			return ed, true
		}
	}
	return nil, false
}

// Editors returns the open editors in opening order.
func (w *Workbench) Editors() []*Editor {
	return append([]*Editor(nil), w.editors...)
}

// ActiveEditor returns the focused editor, or nil.
func (w *Workbench) ActiveEditor() *Editor {
	return w.active
}

// SetActive focuses ed and notifies listeners when focus changed.
func (w *Workbench) SetActive(ed *Editor) {
	if w.active == ed {
		return
	}
	w.active = ed
	for _, fn := range w.onActive {
		fn(ed)
	}
}

// Status returns the workbench's status item.
func (w *Workbench) Status() *StatusItem {
	return &w.status
}

// Notify records an informational message for the user.
func (w *Workbench) Notify(msg string) {
	if msg == "" {
		return
	}
	w.messages = append(w.messages, msg)
	w.logger.WithField("message", msg).Debug("notify")
}

// Messages returns every message recorded so far.
func (w *Workbench) Messages() []string {
	return append([]string(nil), w.messages...)
}

// LastMessage returns the most recent message, or "".
func (w *Workbench) LastMessage() string {
	if len(w.messages) == 0 {
		return ""
	}
	return w.messages[len(w.messages)-1]
}

func (w *Workbench) OnActiveEditorChanged(fn EditorListener) {
	w.onActive = append(w.onActive, fn)
}

func (w *Workbench) OnSelectionChanged(fn EditorListener) {
	w.onSelection = append(w.onSelection, fn)
}

func (w *Workbench) OnWillSave(fn WillSaveHook) {
	w.onWillSave = append(w.onWillSave, fn)
}

func (w *Workbench) OnDidSave(fn DocumentListener) {
	w.onDidSave = append(w.onDidSave, fn)
}

// OnSaveFailed registers a listener for saves that failed after the
// will-save hooks started, so hooks can undo what they changed.
func (w *Workbench) OnSaveFailed(fn DocumentListener) {
	w.onSaveFail = append(w.onSaveFail, fn)
}

func (w *Workbench) OnDocumentClosed(fn DocumentListener) {
	w.onClosed = append(w.onClosed, fn)
}

func (w *Workbench) fireSelectionChanged(ed *Editor) {
	for _, fn := range w.onSelection {
		fn(ed)
	}
}

// Save writes the editor's document to its path.
func (w *Workbench) Save(ctx context.Context, ed *Editor) error {
	if ed == nil {
		return ErrNoDocument
	}
	if ed.path == "" {
		return ErrNoPath
	}
	return w.SaveAs(ctx, ed, ed.path)
}

// SaveAs runs the will-save hooks, writes the document to path atomically
// and then runs the did-save listeners. When the save fails after the hooks
// started, the save-failed listeners run instead.
func (w *Workbench) SaveAs(ctx context.Context, ed *Editor, path string) error {
	if ed == nil {
		return ErrNoDocument
	}
	if err := w.save(ctx, ed, path); err != nil {
		if len(w.onWillSave) > 0 {
			for _, fn := range w.onSaveFail {
				fn(ed.doc)
			}
		}
		return err
	}
	for _, fn := range w.onDidSave {
		fn(ed.doc)
	}
	return nil
}

func (w *Workbench) save(ctx context.Context, ed *Editor, path string) error {
	for _, hook := range w.onWillSave {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrSaveAborted, err)
		}
		if err := hook(ctx, ed.doc); err != nil {
			return fmt.Errorf("%w: %w", ErrSaveAborted, err)
		}
	}

	var buf bytes.Buffer
	if err := notebook.Encode(&buf, ed.doc); err != nil {
		return err
	}
	if err := writeFileAtomic(path, buf.Bytes()); err != nil {
		return fmt.Errorf("write notebook: %w", err)
	}
	ed.path = path
	w.logger.WithFields(logrus.Fields{"doc": ed.doc.ID(), "path": path, "cells": ed.doc.CellCount()}).Debug("saved document")
	return nil
}

// Close removes the editor and notifies close listeners. Focus moves to
// the most recently opened remaining editor.
func (w *Workbench) Close(ed *Editor) {
	idx := -1
	for i, e := range w.editors {
		if e == ed {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	w.editors = append(w.editors[:idx], w.editors[idx+1:]...)
	if w.active == ed {
		var next *Editor
		if len(w.editors) > 0 {
			next = w.editors[len(w.editors)-1]
		}
		w.SetActive(next)
	}
	for _, fn := range w.onClosed {
		fn(ed.doc)
	}
}

// writeFileAtomic writes through a temp file in the same directory and
// renames it over path.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	perm := os.FileMode(0644)
	if st, err := os.Stat(path); err == nil {
		perm = st.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
