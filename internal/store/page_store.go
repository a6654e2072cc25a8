package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/amterp/hilite/internal/config"
	hilerr "github.com/amterp/hilite/internal/errors"
	"github.com/amterp/hilite/internal/model"
	"github.com/amterp/hilite/internal/util"
)

// pageFile is the on-disk shape of a page's highlight data. The URL is kept
// inside the file because the filename is a slug+hash key and can't be
// reversed.
type pageFile struct {
	URL    string                 `json:"url"`
	Groups []model.HighlightGroup `json:"groups"`
}

// FilePageStore implements PageStore using one JSON file per page plus a
// meta sidecar.
type FilePageStore struct {
	paths *config.Paths
}

// NewPageStore creates a new page store.
func NewPageStore(paths *config.Paths) *FilePageStore {
	return &FilePageStore{paths: paths}
}

// Get reads the highlight groups for a URL. A missing page yields an empty
// slice, not an error.
func (s *FilePageStore) Get(url string) ([]model.HighlightGroup, error) {
	path := s.paths.PagePath(util.URLKey(url))

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.HighlightGroup{}, nil
		}
		return nil, fmt.Errorf("failed to read page data: %w", err)
	}

	var file pageFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("invalid page data: %w", err)
	}

	if file.Groups == nil {
		file.Groups = []model.HighlightGroup{}
	}
	return file.Groups, nil
}

// Save writes a page's highlight groups and its meta sidecar.
func (s *FilePageStore) Save(url string, groups []model.HighlightGroup, meta model.PageMeta) error {
	key := util.URLKey(url)

	if err := os.MkdirAll(s.paths.PagesRoot(), 0755); err != nil {
		return fmt.Errorf("failed to create pages directory: %w", err)
	}

	data, err := json.MarshalIndent(pageFile{URL: url, Groups: groups}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal page data: %w", err)
	}
	if err := os.WriteFile(s.paths.PagePath(key), data, 0644); err != nil {
		return fmt.Errorf("failed to write page data: %w", err)
	}

	metaData, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal page meta: %w", err)
	}
	if err := os.WriteFile(s.paths.PageMetaPath(key), metaData, 0644); err != nil {
		return fmt.Errorf("failed to write page meta: %w", err)
	}
	return nil
}

// Delete removes a page's data file and its meta sidecar together.
func (s *FilePageStore) Delete(url string) error {
	key := util.URLKey(url)

	if err := os.Remove(s.paths.PagePath(key)); err != nil {
		if os.IsNotExist(err) {
			return hilerr.PageNotFound(url)
		}
		return fmt.Errorf("failed to delete page data: %w", err)
	}

	// The sidecar may be absent if a previous delete was interrupted.
	if err := os.Remove(s.paths.PageMetaPath(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete page meta: %w", err)
	}
	return nil
}

// GetMeta reads the meta sidecar for a URL.
func (s *FilePageStore) GetMeta(url string) (*model.PageMeta, error) {
	return s.readMeta(s.paths.PageMetaPath(util.URLKey(url)), url)
}

// List returns info for every stored page, most recently updated first.
// Malformed page files are logged and skipped.
func (s *FilePageStore) List() ([]model.PageInfo, error) {
	pagesDir := s.paths.PagesRoot()

	entries, err := os.ReadDir(pagesDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.PageInfo{}, nil
		}
		return nil, fmt.Errorf("failed to read pages directory: %w", err)
	}

	var pages []model.PageInfo
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") || strings.HasSuffix(name, config.PageMetaFileSuffix) {
			continue
		}

		path := filepath.Join(pagesDir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping unreadable page file %s: %v\n", name, err)
			continue
		}

		var file pageFile
		if err := json.Unmarshal(data, &file); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping malformed page file %s: %v\n", name, err)
			continue
		}

		info := model.PageInfo{
			URL:        file.URL,
			GroupCount: len(file.Groups),
		}
		if meta, err := s.readMeta(s.paths.PageMetaPath(util.URLKey(file.URL)), file.URL); err == nil {
			info.Meta = *meta
		}
		pages = append(pages, info)
	}

	sort.Slice(pages, func(i, j int) bool {
		return pages[i].Meta.LastUpdated > pages[j].Meta.LastUpdated
	})

	if pages == nil {
		pages = []model.PageInfo{}
	}
	return pages, nil
}

// DeleteAll removes every stored page and sidecar.
func (s *FilePageStore) DeleteAll() error {
	pagesDir := s.paths.PagesRoot()

	entries, err := os.ReadDir(pagesDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read pages directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(pagesDir, entry.Name())); err != nil {
			return fmt.Errorf("failed to delete %s: %w", entry.Name(), err)
		}
	}
	return nil
}

func (s *FilePageStore) readMeta(path, url string) (*model.PageMeta, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, hilerr.PageNotFound(url)
		}
		return nil, fmt.Errorf("failed to read page meta: %w", err)
	}

	var meta model.PageMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("invalid page meta: %w", err)
	}
	return &meta, nil
}
