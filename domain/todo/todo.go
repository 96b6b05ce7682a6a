// Package todo defines the TODO list domain model: the item entity, its
// composite primary key, and the partial-update shape.
package todo

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "todo-backend/pkg/errors"
)

// Item is a single TODO entry. The JSON field names are the wire format
// consumed by the front-end and stored in DynamoDB, so they stay camelCase.
type Item struct {
	UserID    string `json:"userId"`
	CreatedAt string `json:"createdAt"`
	TodoID    string `json:"todoId"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Key is the composite primary key addressing an item in the store.
// It is also the confirmation body returned by delete.
type Key struct {
	UserID    string `json:"userId"`
	CreatedAt string `json:"createdAt"`
}

// Patch describes a partial update. Nil fields are left untouched.
type Patch struct {
	Title     *string `json:"title,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Completed == nil
}

// NewItem builds a fresh item for the given owner. CreatedAt is the current
// time as a stringified millisecond epoch and doubles as the sort key; two
// creates for the same owner in the same millisecond would collide, an
// accepted race.
func NewItem(ownerID, title string) (Item, error) {
	if strings.TrimSpace(ownerID) == "" {
		return Item{}, apperrors.NewValidationError("owner id is required")
	}
	if strings.TrimSpace(title) == "" {
		return Item{}, apperrors.NewValidationError("title is required")
	}

	return Item{
		UserID:    ownerID,
		CreatedAt: strconv.FormatInt(time.Now().UnixMilli(), 10),
		TodoID:    uuid.New().String(),
		Title:     title,
		Completed: false,
	}, nil
}

// PrimaryKey returns the item's composite key.
func (i Item) PrimaryKey() Key {
	return Key{UserID: i.UserID, CreatedAt: i.CreatedAt}
}

// CreatedTime parses the sort key back into a time.Time.
func (i Item) CreatedTime() (time.Time, error) {
	ms, err := strconv.ParseInt(i.CreatedAt, 10, 64)
	if err != nil {
		return time.Time{}, apperrors.NewInternalError("invalid createdAt timestamp").WithCause(err)
	}
	return time.UnixMilli(ms), nil
}
