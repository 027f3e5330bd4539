package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"codesage/internal/models"
	"codesage/internal/utils"
)

// SessionService owns the per-tab interactive sessions. Everything here is
// in-memory; a session dies with its tab.
type SessionService interface {
	Startup(ctx context.Context)
	Start() *models.Session
	Get(sessionID string) (*models.Session, error)
	SetCode(sessionID, code, language string) (*models.Session, error)
	LoadFile(sessionID, path, language string) (*models.Session, error)
	History(sessionID string) ([]models.Interaction, error)
	RecordInteraction(sessionID string, interaction models.Interaction, analysis *models.AnalysisResult, generated *models.GeneratedCode) error
	Reset(sessionID string) error
	Close(sessionID string)
}

type sessionService struct {
	ctx context.Context
	git *GitService

	mu       sync.RWMutex
	sessions map[string]*models.Session
}

func NewSessionService(git *GitService) SessionService {
	return &sessionService{
		git:      git,
		sessions: make(map[string]*models.Session),
	}
}

func (s *sessionService) Startup(ctx context.Context) {
	s.ctx = ctx
}

func (s *sessionService) Start() *models.Session {
	now := time.Now()
	session := &models.Session{
		ID:             uuid.NewString(),
		Language:       utils.LanguagePlainText,
		LanguageSource: models.LanguageDetected,
		History:        []models.Interaction{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()
	return session
}

func (s *sessionService) Get(sessionID string) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("session %s not found", sessionID)
	}
	return session, nil
}

// SetCode stores pasted code. An empty language (or "auto") triggers
// detection; detection has no file name to work with here, so it relies on
// content keywords alone.
func (s *sessionService) SetCode(sessionID, code, language string) (*models.Session, error) {
	session, err := s.Get(sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session.CurrentCode = code
	session.FileName = ""
	session.Repo = nil
	s.applyLanguage(session, "", code, language)
	session.UpdatedAt = time.Now()
	return session, nil
}

// LoadFile reads a source file from disk into the session. Files that are
// empty, oversized or binary are rejected without touching session state.
func (s *sessionService) LoadFile(sessionID, path, language string) (*models.Session, error) {
	session, err := s.Get(sessionID)
	if err != nil {
		return nil, err
	}

	code, err := utils.ReadCodeFile(path)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session.CurrentCode = code
	session.FileName = filepath.Base(path)
	session.Repo = s.repoInfo(path)
	s.applyLanguage(session, path, code, language)
	session.UpdatedAt = time.Now()
	return session, nil
}

func (s *sessionService) repoInfo(path string) *models.RepoInfo {
	if s.git == nil {
		return nil
	}
	info, err := s.git.RepoInfoFor(path)
	if err != nil {
		// Not fatal; the session simply shows no repo badge.
		return nil
	}
	return info
}

func (s *sessionService) applyLanguage(session *models.Session, fileName, code, language string) {
	language = strings.TrimSpace(strings.ToLower(language))
	if language != "" && language != "auto" {
		session.Language = language
		session.LanguageSource = models.LanguageExplicit
		return
	}
	session.Language = utils.DetectLanguage(fileName, code)
	session.LanguageSource = models.LanguageDetected
}

func (s *sessionService) History(sessionID string) ([]models.Interaction, error) {
	session, err := s.Get(sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Interaction, len(session.History))
	copy(out, session.History)
	return out, nil
}

// RecordInteraction appends one prompt/response pair to the session history
// and updates the latest analysis/generation result. History is append-only;
// nothing previously recorded is touched.
func (s *sessionService) RecordInteraction(sessionID string, interaction models.Interaction, analysis *models.AnalysisResult, generated *models.GeneratedCode) error {
	session, err := s.Get(sessionID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session.History = append(session.History, interaction)
	if analysis != nil {
		session.LastAnalysis = analysis
	}
	if generated != nil {
		session.LastGenerated = generated
	}
	session.UpdatedAt = time.Now()
	return nil
}

// Reset clears code and results but keeps the session (and its history)
// alive.
func (s *sessionService) Reset(sessionID string) error {
	session, err := s.Get(sessionID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session.CurrentCode = ""
	session.FileName = ""
	session.Repo = nil
	session.LastAnalysis = nil
	session.LastGenerated = nil
	session.Language = utils.LanguagePlainText
	session.LanguageSource = models.LanguageDetected
	session.UpdatedAt = time.Now()
	return nil
}

func (s *sessionService) Close(sessionID string) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
}
