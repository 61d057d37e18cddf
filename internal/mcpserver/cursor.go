package mcpserver

import (
	"encoding/base64"
	"fmt"
	"sort"
	"strconv"
)

// transcriptPage is one page of the cached-transcript listing
type transcriptPage struct {
	VideoIDs   []string `json:"video_ids"`
	Total      int      `json:"total"`
	NextCursor string   `json:"next_cursor,omitempty"`
}

// encodeCursor renders a listing offset as an opaque cursor
func encodeCursor(offset int) string {
	return base64.StdEncoding.EncodeToString([]byte(strconv.Itoa(offset)))
}

// decodeCursor recovers the listing offset from an opaque cursor. An empty
// cursor means the first page.
func decodeCursor(cursor string) (int, error) {
	if cursor == "" {
		return 0, nil
	}
	raw, err := base64.StdEncoding.DecodeString(cursor)
	if err != nil {
		return 0, fmt.Errorf("malformed cursor: %w", err)
	}
	offset, err := strconv.Atoi(string(raw))
	if err != nil || offset < 0 {
		return 0, fmt.Errorf("malformed cursor: %q", cursor)
	}
	return offset, nil
}

// buildPage slices a fresh listing into one page. IDs are sorted so cursors
// stay stable across calls; the store itself promises no order.
func buildPage(ids []string, cursor string, pageSize int) (*transcriptPage, error) {
	offset, err := decodeCursor(cursor)
	if err != nil {
		return nil, err
	}

	sort.Strings(ids)

	page := &transcriptPage{
		VideoIDs: []string{},
		Total:    len(ids),
	}
	if offset >= len(ids) {
		return page, nil
	}

	end := offset + pageSize
	if end > len(ids) {
		end = len(ids)
	}
	page.VideoIDs = ids[offset:end]
	if end < len(ids) {
		page.NextCursor = encodeCursor(end)
	}
	return page, nil
}
