package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// PostStatus is the learning progress of a post. It is an open string: the
// values below are the ones the clients use, but any value is accepted.
type PostStatus string

const (
	StatusToLearn  PostStatus = "TO LEARN"
	StatusLearning PostStatus = "LEARNING"
	StatusLearned  PostStatus = "LEARNED"
)

// HTTPSPrefix is the scheme every stored post url carries.
const HTTPSPrefix = "https://"

// Post is a learning resource tracked by a single user. Only the owner can
// see or modify it.
type Post struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	URL           string     `json:"url"`
	Status        PostStatus `json:"status"`
	OwnerID       uuid.UUID  `json:"ownerId"`                 // The user this post belongs to. Immutable after creation.
	OwnerUsername string     `json:"ownerUsername,omitempty"` // Populated on reads that join the owner record.
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// NormalizeURL applies the storage form of a post url: empty stays empty,
// anything else is prefixed with "https://" unless it already starts with it.
// This is a literal prefix test, not scheme validation.
func NormalizeURL(url string) string {
	if url == "" {
		return ""
	}
	if strings.HasPrefix(url, HTTPSPrefix) {
		return url
	}

	return HTTPSPrefix + url
}
