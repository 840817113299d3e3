package repositories

import (
	"database/sql"

	"inkpress/app/models"
)

// SQLitePostRepository implements PostRepository on sqlite.
type SQLitePostRepository struct {
	db *sql.DB
}

// NewSQLitePostRepository creates a new SQLitePostRepository
func NewSQLitePostRepository(db *sql.DB) *SQLitePostRepository {
	return &SQLitePostRepository{db: db}
}

// Create inserts a new post. A duplicate title surfaces as ErrDuplicate.
func (r *SQLitePostRepository) Create(post *models.Post) error {
	res, err := r.db.Exec(
		"INSERT INTO posts (title, subtitle, date, body, image_url, author, user_id) VALUES (?, ?, ?, ?, ?, ?, ?)",
		post.Title, post.Subtitle, post.Date, post.Body, post.ImageURL, post.Author, post.UserID,
	)
	if err != nil {
		return mapConstraint(err)
	}
	post.ID, err = res.LastInsertId()
	return err
}

// GetByID retrieves a post by ID
func (r *SQLitePostRepository) GetByID(id int64) (*models.Post, error) {
	post := &models.Post{}
	err := r.db.QueryRow(
		"SELECT id, title, subtitle, date, body, image_url, author, user_id FROM posts WHERE id = ?", id).
		Scan(&post.ID, &post.Title, &post.Subtitle, &post.Date, &post.Body, &post.ImageURL, &post.Author, &post.UserID)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}

// List retrieves all posts, newest first.
func (r *SQLitePostRepository) List() ([]*models.Post, error) {
	rows, err := r.db.Query(
		"SELECT id, title, subtitle, date, body, image_url, author, user_id FROM posts ORDER BY id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		post := &models.Post{}
		err := rows.Scan(&post.ID, &post.Title, &post.Subtitle, &post.Date, &post.Body, &post.ImageURL, &post.Author, &post.UserID)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// Update overwrites the mutable fields of an existing post. Author, date
// and the owning user are set at creation and never touched here.
func (r *SQLitePostRepository) Update(post *models.Post) error {
	res, err := r.db.Exec(
		"UPDATE posts SET title = ?, subtitle = ?, body = ?, image_url = ? WHERE id = ?",
		post.Title, post.Subtitle, post.Body, post.ImageURL, post.ID,
	)
	if err != nil {
		return mapConstraint(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a post and its comments in one transaction, so a failed
// write never leaves partial state.
func (r *SQLitePostRepository) Delete(id int64) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec("DELETE FROM posts WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	if _, err := tx.Exec("DELETE FROM comments WHERE post_id = ?", id); err != nil {
		return err
	}
	return tx.Commit()
}
