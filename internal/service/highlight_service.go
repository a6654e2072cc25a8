package service

import (
	hilerr "github.com/amterp/hilite/internal/errors"
	"github.com/amterp/hilite/internal/model"
	"github.com/amterp/hilite/internal/store"
	"github.com/amterp/hilite/internal/util"
)

// HighlightService handles per-page highlight persistence. It keeps the meta
// sidecar in step with the data: whenever a page's group list becomes empty,
// both files are removed together.
type HighlightService struct {
	pageStore store.PageStore
}

// NewHighlightService creates a new highlight service.
func NewHighlightService(pageStore store.PageStore) *HighlightService {
	return &HighlightService{pageStore: pageStore}
}

// Get returns the highlight groups for a URL. Unknown URLs yield an empty
// slice.
func (s *HighlightService) Get(url string) ([]model.HighlightGroup, error) {
	return s.pageStore.Get(url)
}

// Save replaces a page's highlight groups, refreshing the meta timestamp.
// An empty group list removes the page entirely.
func (s *HighlightService) Save(url string, groups []model.HighlightGroup, title string) error {
	if len(groups) == 0 {
		return s.removePage(url)
	}

	meta := model.PageMeta{
		Title:       title,
		LastUpdated: util.NowISO(),
	}
	if title == "" {
		if existing, err := s.pageStore.GetMeta(url); err == nil {
			meta.Title = existing.Title
		}
	}
	return s.pageStore.Save(url, groups, meta)
}

// DeleteGroup removes one highlight group from a page and returns the
// remaining groups. Deleting the last group removes the page.
func (s *HighlightService) DeleteGroup(url, groupID string) ([]model.HighlightGroup, error) {
	if groupID == "" {
		return nil, hilerr.MissingID("groupId")
	}

	groups, err := s.pageStore.Get(url)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range groups {
		if groups[i].GroupID == groupID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, hilerr.GroupNotFound(groupID)
	}

	remaining := append(groups[:idx], groups[idx+1:]...)
	if len(remaining) == 0 {
		if err := s.removePage(url); err != nil {
			return nil, err
		}
		return []model.HighlightGroup{}, nil
	}

	meta := model.PageMeta{LastUpdated: util.NowISO()}
	if existing, err := s.pageStore.GetMeta(url); err == nil {
		meta.Title = existing.Title
	}
	if err := s.pageStore.Save(url, remaining, meta); err != nil {
		return nil, err
	}
	return remaining, nil
}

// ClearPage removes every highlight for a URL. Clearing an unknown URL is a
// no-op.
func (s *HighlightService) ClearPage(url string) error {
	return s.removePage(url)
}

// ListPages returns info for every stored page, most recent first.
func (s *HighlightService) ListPages() ([]model.PageInfo, error) {
	return s.pageStore.List()
}

// DeleteAllPages removes every stored page.
func (s *HighlightService) DeleteAllPages() error {
	return s.pageStore.DeleteAll()
}

func (s *HighlightService) removePage(url string) error {
	err := s.pageStore.Delete(url)
	if err != nil && hilerr.IsNotFound(err) {
		return nil
	}
	return err
}
