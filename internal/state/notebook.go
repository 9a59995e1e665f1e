package state

import (
	"time"

	"daykeeper/internal/models"
)

// AddNotebookPage prepends a page and makes it active.
func (s Snapshot) AddNotebookPage(page models.NotebookPage) Snapshot {
	out := s
	pages := make([]models.NotebookPage, 0, len(s.NotebookPages)+1)
	pages = append(pages, page)
	pages = append(pages, s.NotebookPages...)
	out.NotebookPages = pages
	out.ActivePageID = page.ID
	return out
}

// UpdateNotebookPage replaces a page's title and content, stamping the
// update time.
func (s Snapshot) UpdateNotebookPage(id, title, content string, now time.Time) Snapshot {
	pages := append([]models.NotebookPage(nil), s.NotebookPages...)
	for i := range pages {
		if pages[i].ID == id {
			pages[i].Title = title
			pages[i].Content = content
			pages[i].UpdatedAt = now
			out := s
			out.NotebookPages = pages
			return out
		}
	}
	return s
}

// DeleteNotebookPage removes a page. When the active page is deleted, the
// previous page (or the first remaining one) becomes active.
func (s Snapshot) DeleteNotebookPage(id string) Snapshot {
	idx := -1
	for i, p := range s.NotebookPages {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s
	}
	pages := make([]models.NotebookPage, 0, len(s.NotebookPages)-1)
	pages = append(pages, s.NotebookPages[:idx]...)
	pages = append(pages, s.NotebookPages[idx+1:]...)

	out := s
	out.NotebookPages = pages
	if s.ActivePageID == id {
		if len(pages) == 0 {
			out.ActivePageID = ""
		} else {
			next := idx - 1
			if next < 0 {
				next = 0
			}
			out.ActivePageID = pages[next].ID
		}
	}
	return out
}

// SetActivePage selects a page; unknown ids fall back to the first page.
func (s Snapshot) SetActivePage(id string) Snapshot {
	out := s
	for _, p := range s.NotebookPages {
		if p.ID == id {
			out.ActivePageID = id
			return out
		}
	}
	if len(s.NotebookPages) > 0 {
		out.ActivePageID = s.NotebookPages[0].ID
	} else {
		out.ActivePageID = ""
	}
	return out
}

// ActivePage returns the currently selected notebook page.
func (s Snapshot) ActivePage() (models.NotebookPage, bool) {
	for _, p := range s.NotebookPages {
		if p.ID == s.ActivePageID {
			return p, true
		}
	}
	return models.NotebookPage{}, false
}
