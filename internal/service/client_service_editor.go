// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 StayKeeper Authors

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/staykeeper/staykeeper/internal/adapter"
	"github.com/staykeeper/staykeeper/internal/store"
	"github.com/staykeeper/staykeeper/models"
)

type clientGuideEditorService struct {
	localStore *store.ClientStorages
	adapter    adapter.ServerAdapter

	mu             sync.Mutex
	propertyID     int64
	sections       []models.Section
	deleteInFlight bool
}

// NewClientGuideEditorService builds the manual editor service of the owner
// client. A property must be loaded via Load before sections can be saved or
// deleted.
func NewClientGuideEditorService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter) ClientGuideEditorService {
	return &clientGuideEditorService{localStore: localStore, adapter: serverAdapter}
}

func (e *clientGuideEditorService) Load(ctx context.Context, propertyID int64) ([]models.Section, bool, error) {
	sections, err := e.adapter.ListSections(ctx, propertyID)
	if err == nil {
		_ = e.localStore.GuideCacheRepository.ReplaceSections(ctx, propertyID, sections)
		e.setWorkingCopy(propertyID, sections)
		return slices.Clone(sections), false, nil
	}

	mapped := mapAdapterError(err)
	if !errors.Is(mapped, ErrServerUnavailable) {
		return nil, false, mapped
	}

	cached, cacheErr := e.localStore.GuideCacheRepository.GetSections(ctx, propertyID)
	if cacheErr != nil {
		return nil, false, fmt.Errorf("%w: cache unavailable: %w", mapped, cacheErr)
	}

	e.setWorkingCopy(propertyID, cached)
	return slices.Clone(cached), true, nil
}

func (e *clientGuideEditorService) Sections() []models.Section {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.sections)
}

func (e *clientGuideEditorService) SaveSection(ctx context.Context, sectionID int64, payload models.SectionPayload) (models.Section, error) {
	payload.Title = strings.TrimSpace(payload.Title)

	if sectionID == 0 {
		return e.createSection(ctx, payload)
	}
	return e.updateSection(ctx, sectionID, payload)
}

func (e *clientGuideEditorService) createSection(ctx context.Context, payload models.SectionPayload) (models.Section, error) {
	e.mu.Lock()
	propertyID := e.propertyID
	e.mu.Unlock()

	created, err := e.adapter.CreateSection(ctx, propertyID, payload)
	if err != nil {
		return models.Section{}, mapAdapterError(err)
	}

	e.mu.Lock()
	e.sections = append(e.sections, created)
	e.mu.Unlock()

	e.refreshSectionCache(ctx)
	return created, nil
}

func (e *clientGuideEditorService) updateSection(ctx context.Context, sectionID int64, payload models.SectionPayload) (models.Section, error) {
	updated, err := e.adapter.UpdateSection(ctx, sectionID, payload)
	if err != nil {
		return models.Section{}, mapAdapterError(err)
	}

	e.mu.Lock()
	for i := range e.sections {
		if e.sections[i].ID == sectionID {
			e.sections[i] = updated
			break
		}
	}
	e.mu.Unlock()

	e.refreshSectionCache(ctx)
	return updated, nil
}

// DeleteSection applies the removal to the working copy before the server has
// confirmed it, so the editor feels instant. The pre-delete snapshot is kept
// aside; if the server rejects the delete the snapshot is restored wholesale,
// positions included.
func (e *clientGuideEditorService) DeleteSection(ctx context.Context, sectionID int64) error {
	e.mu.Lock()
	if e.deleteInFlight {
		e.mu.Unlock()
		return ErrDeleteInFlight
	}
	e.deleteInFlight = true

	snapshot := slices.Clone(e.sections)
	e.sections = slices.DeleteFunc(slices.Clone(e.sections), func(s models.Section) bool {
		return s.ID == sectionID
	})
	e.mu.Unlock()

	err := e.adapter.DeleteSection(ctx, sectionID)

	e.mu.Lock()
	e.deleteInFlight = false
	if err != nil {
		e.sections = snapshot
	}
	e.mu.Unlock()

	if err != nil {
		return mapAdapterError(err)
	}

	e.refreshSectionCache(ctx)
	return nil
}

func (e *clientGuideEditorService) ResolveGuide(ctx context.Context, slug string) (models.Guide, error) {
	guide, err := e.adapter.ResolveGuide(ctx, slug)
	if err != nil {
		return models.Guide{}, mapAdapterError(err)
	}

	return guide, nil
}

func (e *clientGuideEditorService) setWorkingCopy(propertyID int64, sections []models.Section) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.propertyID = propertyID
	e.sections = slices.Clone(sections)
}

func (e *clientGuideEditorService) refreshSectionCache(ctx context.Context) {
	e.mu.Lock()
	propertyID := e.propertyID
	sections := slices.Clone(e.sections)
	e.mu.Unlock()

	_ = e.localStore.GuideCacheRepository.ReplaceSections(ctx, propertyID, sections)
}
