package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/fwojciec/cwsummary"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ cwsummary.PageService = (*PageService)(nil)

// PageService implements cwsummary.PageService using SQLite.
type PageService struct {
	db *DB
}

// NewPageService creates a new PageService.
func NewPageService(db *DB) *PageService {
	return &PageService{db: db}
}

// CreatePage creates a page with its containers and blocks in a single
// transaction. IDs and positions are assigned from the slice order.
func (s *PageService) CreatePage(ctx context.Context, page *cwsummary.Page) error {
	if err := page.Validate(); err != nil {
		return err
	}

	page.ID = uuid.New().String()
	page.CreatedAt = time.Now().UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO pages (id, range_id, title, created_at)
		VALUES (?, ?, ?, ?)
	`, page.ID, page.RangeID, page.Title, page.CreatedAt.Format(time.RFC3339)); err != nil {
		return err
	}

	for i, c := range page.Containers {
		c.ID = uuid.New().String()
		c.PageID = page.ID
		c.Position = i

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO containers (id, page_id, position)
			VALUES (?, ?, ?)
		`, c.ID, c.PageID, c.Position); err != nil {
			return err
		}

		for j, b := range c.Blocks {
			b.ID = uuid.New().String()
			b.ContainerID = c.ID
			b.Position = j

			if _, err := tx.ExecContext(ctx, `
				INSERT INTO blocks (id, container_id, position, block_type, payload)
				VALUES (?, ?, ?, ?, ?)
			`, b.ID, b.ContainerID, b.Position, string(b.Type), string(b.Payload)); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// FindPageByID retrieves a page with all containers and blocks in order.
func (s *PageService) FindPageByID(ctx context.Context, id string) (*cwsummary.Page, error) {
	var page cwsummary.Page
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, range_id, title, created_at
		FROM pages
		WHERE id = ?
	`, id).Scan(&page.ID, &page.RangeID, &page.Title, &createdAt)

	if err == sql.ErrNoRows {
		return nil, cwsummary.Errorf(cwsummary.ENOTFOUND, "page not found")
	}
	if err != nil {
		return nil, err
	}

	if page.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}

	if page.Containers, err = s.findContainers(ctx, page.ID); err != nil {
		return nil, err
	}
	if err := s.attachBlocks(ctx, page.ID, page.Containers); err != nil {
		return nil, err
	}

	return &page, nil
}

// FindPageByBlockID retrieves the page owning the given block.
func (s *PageService) FindPageByBlockID(ctx context.Context, blockID string) (*cwsummary.Page, error) {
	var pageID string

	err := s.db.QueryRowContext(ctx, `
		SELECT c.page_id
		FROM blocks b
		JOIN containers c ON c.id = b.container_id
		WHERE b.id = ?
	`, blockID).Scan(&pageID)

	if err == sql.ErrNoRows {
		return nil, cwsummary.Errorf(cwsummary.ENOTFOUND, "block not found")
	}
	if err != nil {
		return nil, err
	}

	return s.FindPageByID(ctx, pageID)
}

// FindPages retrieves pages matching the filter, newest first.
// Containers are not loaded.
func (s *PageService) FindPages(ctx context.Context, filter cwsummary.PageFilter) ([]*cwsummary.Page, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, range_id, title, created_at FROM pages WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.RangeID != nil {
		query.WriteString(" AND range_id = ?")
		args = append(args, *filter.RangeID)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []*cwsummary.Page
	for rows.Next() {
		var page cwsummary.Page
		var createdAt string

		if err := rows.Scan(&page.ID, &page.RangeID, &page.Title, &createdAt); err != nil {
			return nil, err
		}
		if page.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}

		pages = append(pages, &page)
	}

	return pages, rows.Err()
}

// DeletePage permanently removes a page with its containers and blocks.
func (s *PageService) DeletePage(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM pages WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return cwsummary.Errorf(cwsummary.ENOTFOUND, "page not found")
	}

	return nil
}

func (s *PageService) findContainers(ctx context.Context, pageID string) ([]*cwsummary.Container, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, page_id, position
		FROM containers
		WHERE page_id = ?
		ORDER BY position
	`, pageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var containers []*cwsummary.Container
	for rows.Next() {
		var c cwsummary.Container
		if err := rows.Scan(&c.ID, &c.PageID, &c.Position); err != nil {
			return nil, err
		}
		containers = append(containers, &c)
	}

	return containers, rows.Err()
}

// attachBlocks loads the blocks of every container on the page. It must run
// after the container rows are closed; the pool holds a single connection.
func (s *PageService) attachBlocks(ctx context.Context, pageID string, containers []*cwsummary.Container) error {
	byID := make(map[string]*cwsummary.Container, len(containers))
	for _, c := range containers {
		byID[c.ID] = c
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT b.id, b.container_id, b.position, b.block_type, b.payload
		FROM blocks b
		JOIN containers c ON c.id = b.container_id
		WHERE c.page_id = ?
		ORDER BY c.position, b.position
	`, pageID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var b cwsummary.Block
		var blockType, payload string

		if err := rows.Scan(&b.ID, &b.ContainerID, &b.Position, &blockType, &payload); err != nil {
			return err
		}
		b.Type = cwsummary.BlockType(blockType)
		if payload != "" {
			b.Payload = json.RawMessage(payload)
		}

		if c, ok := byID[b.ContainerID]; ok {
			c.Blocks = append(c.Blocks, &b)
		}
	}

	return rows.Err()
}
