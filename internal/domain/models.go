// Package domain defines the persistence models for users, favorites,
// search history, conversations, and the weather cache. These types are
// mapped with GORM and form the core data layer of the travel assistant.
package domain

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Message roles used on the chat wire format.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is the wire-level chat message exchanged with clients and AI
// providers. It is not persisted on its own; conversations embed ordered
// sequences of these as JSON.
//
// Timestamp is epoch milliseconds, stamped server-side on receipt so client
// ordering stays monotonic regardless of what a model returned.
type ChatMessage struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
}

// User represents a registered account. Registration may be restricted to an
// allow-list of email addresses (see services.AccountService).
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - Email: unique login identifier.
//   - PasswordHash: bcrypt hash; never serialized to clients.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
//   - DeletedAt: soft deletion marker.
type User struct {
	ID           string         `json:"id"         gorm:"type:char(36);primaryKey"`
	Email        string         `json:"email"      gorm:"type:varchar(320);not null;uniqueIndex"`
	PasswordHash string         `json:"-"          gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-"          gorm:"index"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Session is a server-side login session referenced by the session cookie.
// Sessions expire after a configured TTL; expired rows are ignored on lookup.
type Session struct {
	Token     string    `gorm:"type:char(36);primaryKey"`
	UserID    string    `gorm:"type:char(36);not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	ExpiresAt time.Time `gorm:"not null;index"`
}

// TableName returns the database table name for Session.
func (Session) TableName() string { return "sessions" }

// Favorite is a user-curated saved location. Duplicates of (user_id,
// location) are permitted; deletion is by id with an ownership check in the
// service layer.
type Favorite struct {
	ID        string         `json:"id"         gorm:"type:char(36);primaryKey"`
	UserID    string         `json:"user_id"    gorm:"type:char(36);not null;index:idx_user_favorites"`
	Location  string         `json:"location"   gorm:"type:varchar(255);not null"`
	Notes     *string        `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `json:"-"          gorm:"index"`

	// User is the owning account; favorites are cascade-deleted with it.
	User User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Favorite.
func (Favorite) TableName() string { return "favorites" }

// SearchHistory is the append-only record of one chat turn: the raw query
// plus whatever location/category the intent router extracted. Rows are never
// mutated or deleted and growth is unbounded.
type SearchHistory struct {
	ID          string         `json:"id"           gorm:"type:char(36);primaryKey"`
	UserID      string         `json:"user_id"      gorm:"type:char(36);not null;index:idx_user_history,priority:1"`
	SearchQuery string         `json:"search_query" gorm:"type:text;not null"`
	Location    *string        `json:"location"     gorm:"type:varchar(255)"`
	Category    *string        `json:"category"     gorm:"type:varchar(64)"`
	CreatedAt   time.Time      `json:"created_at"   gorm:"index:idx_user_history,priority:2"`
	UpdatedAt   time.Time      `json:"-"`
	DeletedAt   gorm.DeletedAt `json:"-"            gorm:"index"`

	User User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for SearchHistory.
func (SearchHistory) TableName() string { return "search_history" }

// Conversation accumulates the chat turns of a user as a JSON array of
// ChatMessage. One row per user; the chat flow appends the user/assistant
// pair of every turn.
type Conversation struct {
	ID        string         `json:"id"         gorm:"type:char(36);primaryKey"`
	UserID    string         `json:"user_id"    gorm:"type:char(36);not null;uniqueIndex"`
	Messages  datatypes.JSON `json:"messages"   gorm:"not null"`
	Location  *string        `json:"location"   gorm:"type:varchar(255)"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-"          gorm:"index"`
}

// TableName returns the database table name for Conversation.
func (Conversation) TableName() string { return "conversations" }

// WeatherCache stores the last generated weather payload per location with an
// update timestamp. Lookups treat rows older than the configured TTL as
// absent.
type WeatherCache struct {
	ID        uint           `gorm:"primaryKey"`
	Location  string         `gorm:"type:varchar(255);not null;uniqueIndex"`
	Data      datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName returns the database table name for WeatherCache.
func (WeatherCache) TableName() string { return "weather_cache" }
