package cwsummary

import (
	"context"
	"encoding/json"
	"time"
)

// BlockType identifies the kind of content a block holds.
type BlockType string

// Block types with known payload layouts.
const (
	BlockTypeText        BlockType = "text"
	BlockTypeCode        BlockType = "code"
	BlockTypeHeadline    BlockType = "headline"
	BlockTypeKeyPoint    BlockType = "key-point"
	BlockTypeDialogCards BlockType = "dialog-cards"
	BlockTypeTypewriter  BlockType = "typewriter"
	BlockTypeDocument    BlockType = "document"
)

// Page represents a courseware page (structural element).
// Pages belong to a range, which scopes configuration such as the API key.
type Page struct {
	ID         string       `json:"id"`
	RangeID    string       `json:"rangeId"`
	Title      string       `json:"title"`
	Containers []*Container `json:"containers"`
	CreatedAt  time.Time    `json:"createdAt"`
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if p.RangeID == "" {
		return Errorf(EINVALID, "page range ID required")
	}
	for _, c := range p.Containers {
		if c == nil {
			return Errorf(EINVALID, "page contains nil container")
		}
		for _, b := range c.Blocks {
			if b == nil {
				return Errorf(EINVALID, "container contains nil block")
			}
			if b.Type == "" {
				return Errorf(EINVALID, "block type required")
			}
		}
	}
	return nil
}

// Blocks returns all blocks of the page in container order.
func (p *Page) Blocks() []*Block {
	var blocks []*Block
	for _, c := range p.Containers {
		blocks = append(blocks, c.Blocks...)
	}
	return blocks
}

// Container groups an ordered list of blocks on a page.
type Container struct {
	ID       string   `json:"id"`
	PageID   string   `json:"pageId"`
	Position int      `json:"position"`
	Blocks   []*Block `json:"blocks"`
}

// Block is a single typed content unit.
// Payload holds the raw JSON as stored by the host and may be malformed.
type Block struct {
	ID          string          `json:"id"`
	ContainerID string          `json:"containerId"`
	Position    int             `json:"position"`
	Type        BlockType       `json:"type"`
	Payload     json.RawMessage `json:"payload"`
}

// PageService represents a service for managing courseware pages.
type PageService interface {
	// CreatePage creates a page together with its containers and blocks.
	CreatePage(ctx context.Context, page *Page) error

	// FindPageByID retrieves a page with all containers and blocks in order.
	// Returns ENOTFOUND if page does not exist.
	FindPageByID(ctx context.Context, id string) (*Page, error)

	// FindPageByBlockID retrieves the page owning the given block.
	// Returns ENOTFOUND if block does not exist.
	FindPageByBlockID(ctx context.Context, blockID string) (*Page, error)

	// FindPages retrieves pages matching the filter.
	// Containers are not loaded.
	FindPages(ctx context.Context, filter PageFilter) ([]*Page, error)

	// DeletePage permanently removes a page with its containers and blocks.
	// Returns ENOTFOUND if page does not exist.
	DeletePage(ctx context.Context, id string) error
}

// PageFilter represents a filter for FindPages.
type PageFilter struct {
	ID      *string `json:"id"`
	RangeID *string `json:"rangeId"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
