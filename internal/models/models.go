// Package models defines the domain records tracked by haru.
package models

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/haruapp/haru/internal/apperr"
	"github.com/haruapp/haru/internal/timeutil"
)

// FocusType tags the activity that produced a focus record.
type FocusType string

const (
	// FocusTimer marks records produced by a completed or stopped countdown.
	FocusTimer FocusType = "timer"
	// FocusManual marks records logged after the fact.
	FocusManual FocusType = "manual"
)

// Category is a closed set of grouping keys. Free-form strings are rejected
// at the edge so a typo can never split a group.
type Category string

const (
	CategoryNone   Category = ""
	CategoryHealth Category = "health"
	CategoryStudy  Category = "study"
	CategoryWork   Category = "work"
	CategoryHobby  Category = "hobby"
	CategoryLife   Category = "life"
)

var categories = []Category{
	CategoryHealth,
	CategoryStudy,
	CategoryWork,
	CategoryHobby,
	CategoryLife,
}

var errUnknownCategory = &apperr.Error{
	Message: "category must be one of: health, study, work, hobby, life",
}

// ParseCategory validates a category argument. The empty string is the
// uncategorized value.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))

	if c == CategoryNone {
		return CategoryNone, nil
	}

	for _, known := range categories {
		if c == known {
			return c, nil
		}
	}

	return CategoryNone, errUnknownCategory
}

// MediaType distinguishes album entries.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// TaskRecord is a to-do item filed under a single calendar day.
type TaskRecord struct {
	ID          string   `json:"id"`
	Text        string   `json:"text"`
	Color       string   `json:"color"`
	CategoryKey Category `json:"category_key"`
	Completed   bool     `json:"completed"`
}

func (t TaskRecord) RecordID() string { return t.ID }

// NewTaskRecord creates a task with a fresh id.
func NewTaskRecord(text, color string, categoryKey Category) TaskRecord {
	return TaskRecord{
		ID:          uuid.NewString(),
		Text:        text,
		Color:       color,
		CategoryKey: categoryKey,
	}
}

// TaskPatch carries the mutable task fields. Nil members are left untouched.
type TaskPatch struct {
	Text        *string
	Color       *string
	CategoryKey *Category
	Completed   *bool
}

func (p TaskPatch) Apply(t *TaskRecord) {
	if p.Text != nil {
		t.Text = *p.Text
	}

	if p.Color != nil {
		t.Color = *p.Color
	}

	if p.CategoryKey != nil {
		t.CategoryKey = *p.CategoryKey
	}

	if p.Completed != nil {
		t.Completed = *p.Completed
	}
}

// FocusRecord is an append-only log entry for a finished focus session.
// FocusedTime is elapsed seconds and is never negative.
type FocusRecord struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Goal        string    `json:"goal"`
	FocusedTime int       `json:"focused_time"`
	Type        FocusType `json:"type"`
}

func (f FocusRecord) RecordID() string { return f.ID }

// NewFocusRecord creates a focus record whose id and date both derive from
// the creation instant.
func NewFocusRecord(createdAt time.Time, goal string, focusedTime int, typ FocusType) FocusRecord {
	if focusedTime < 0 {
		focusedTime = 0
	}

	return FocusRecord{
		ID:          strconv.FormatInt(createdAt.UnixNano(), 10),
		Date:        timeutil.DateKey(createdAt),
		Goal:        goal,
		FocusedTime: focusedTime,
		Type:        typ,
	}
}

// AlbumPhoto is a photo or video filed under the day it was saved. Bucket
// order is insertion order.
type AlbumPhoto struct {
	ID          string    `json:"id"`
	URI         string    `json:"uri"`
	Memo        string    `json:"memo"`
	CategoryKey Category  `json:"category_key"`
	Type        MediaType `json:"type"`
}

func (a AlbumPhoto) RecordID() string { return a.ID }

// NewAlbumPhoto creates an album entry with a fresh id.
func NewAlbumPhoto(uri, memo string, categoryKey Category, typ MediaType) AlbumPhoto {
	return AlbumPhoto{
		ID:          uuid.NewString(),
		URI:         uri,
		Memo:        memo,
		CategoryKey: categoryKey,
		Type:        typ,
	}
}

// PhotoPatch carries the mutable album fields.
type PhotoPatch struct {
	Memo        *string
	CategoryKey *Category
}

func (p PhotoPatch) Apply(a *AlbumPhoto) {
	if p.Memo != nil {
		a.Memo = *p.Memo
	}

	if p.CategoryKey != nil {
		a.CategoryKey = *p.CategoryKey
	}
}

// Profile holds the minimal user fields kept client-side.
type Profile struct {
	UserID       string `json:"user_id"`
	Nickname     string `json:"nickname"`
	ProfileImage string `json:"profile_image"`
	Premium      bool   `json:"premium"`
}

// Routine is a recurring habit definition served by the backend.
type Routine struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Weekdays []string `json:"weekdays"`
}
