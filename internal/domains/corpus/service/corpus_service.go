package service

import (
	"context"
	"time"

	"recitation-backend/internal/domains/corpus"
)

type corpusService struct {
	repo corpus.Repository
}

func NewCorpusService(repo corpus.Repository) corpus.Service {
	return &corpusService{repo: repo}
}

func (s *corpusService) CreateVersion(ctx context.Context, req corpus.CreateVersionRequest) (*corpus.QuranVersion, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	v := &corpus.QuranVersion{
		Name:      req.Name,
		Language:  req.Language,
		CreatedAt: time.Now(),
	}
	if req.Description != "" {
		v.Description = &req.Description
	}

	id, err := s.repo.CreateVersion(ctx, v)
	if err != nil {
		return nil, err
	}
	v.ID = id

	return v, nil
}

func (s *corpusService) ListVersions(ctx context.Context) ([]corpus.QuranVersion, error) {
	return s.repo.ListVersions(ctx)
}

func (s *corpusService) AddSurah(ctx context.Context, versionID int64, req corpus.AddSurahRequest) (*corpus.Surah, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	surah := &corpus.Surah{
		VersionID:     versionID,
		SurahNumber:   req.SurahNumber,
		Name:          req.Name,
		ArabicName:    req.ArabicName,
		NumberOfAyahs: req.NumberOfAyahs,
	}

	id, err := s.repo.CreateSurah(ctx, surah)
	if err != nil {
		return nil, err
	}
	surah.ID = id

	return surah, nil
}

func (s *corpusService) ListSurahs(ctx context.Context, versionID int64) ([]corpus.Surah, error) {
	if _, err := s.repo.FindVersionByID(ctx, versionID); err != nil {
		return nil, err
	}
	return s.repo.ListSurahs(ctx, versionID)
}

func (s *corpusService) AddVerse(ctx context.Context, versionID, surahID int64, req corpus.AddVerseRequest) (*corpus.Verse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// The surah is resolved by its full composite key; a surah id under a
	// different version is not found.
	if _, err := s.repo.FindSurah(ctx, versionID, surahID); err != nil {
		return nil, err
	}

	verse := &corpus.Verse{
		SurahID:     surahID,
		VerseNumber: req.VerseNumber,
		Text:        req.Text,
	}

	id, err := s.repo.CreateVerse(ctx, verse)
	if err != nil {
		return nil, err
	}
	verse.ID = id

	return verse, nil
}

func (s *corpusService) ListVerses(ctx context.Context, versionID, surahID int64) ([]corpus.Verse, error) {
	if _, err := s.repo.FindSurah(ctx, versionID, surahID); err != nil {
		return nil, err
	}
	return s.repo.ListVerses(ctx, surahID)
}
