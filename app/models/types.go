package models

import "time"

// User roles. The first account ever registered is created as an admin;
// everyone after that is a regular user.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents a registered account.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string `json:"-"`
	Role         string
	CreatedAt    time.Time
}

// IsAdmin reports whether the user may manage posts. Safe on a nil
// (anonymous) user.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Post represents a blog post. Author denormalizes the creator's display
// name and is set once at creation; the owning relation is UserID.
type Post struct {
	ID       int64
	Title    string
	Subtitle string
	Date     string
	Body     string
	ImageURL string
	Author   string
	UserID   int64
	Comments []*Comment
}

// Comment represents a reader's comment on a post. Text is plain text,
// already stripped of markup.
type Comment struct {
	ID         int64
	Text       string
	UserID     int64
	PostID     int64
	AuthorName string
	CreatedAt  time.Time
}
