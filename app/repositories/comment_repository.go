package repositories

import (
	"database/sql"

	"inkpress/app/models"
)

// SQLiteCommentRepository implements CommentRepository on sqlite.
type SQLiteCommentRepository struct {
	db *sql.DB
}

// NewSQLiteCommentRepository creates a new SQLiteCommentRepository
func NewSQLiteCommentRepository(db *sql.DB) *SQLiteCommentRepository {
	return &SQLiteCommentRepository{db: db}
}

// Create inserts a comment. The target post is verified inside the same
// transaction; ErrNotFound is returned if it vanished.
func (r *SQLiteCommentRepository) Create(comment *models.Comment) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.QueryRow("SELECT EXISTS(SELECT 1 FROM posts WHERE id = ?)", comment.PostID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}

	res, err := tx.Exec(
		"INSERT INTO comments (text, user_id, post_id) VALUES (?, ?, ?)",
		comment.Text, comment.UserID, comment.PostID,
	)
	if err != nil {
		return err
	}
	if comment.ID, err = res.LastInsertId(); err != nil {
		return err
	}
	return tx.Commit()
}

// ListByPost returns a post's comments, oldest first, with the commenter's
// display name joined in.
func (r *SQLiteCommentRepository) ListByPost(postID int64) ([]*models.Comment, error) {
	rows, err := r.db.Query(
		`SELECT c.id, c.text, c.user_id, c.post_id, c.created_at, u.name
		 FROM comments c JOIN users u ON u.id = c.user_id
		 WHERE c.post_id = ? ORDER BY c.id`, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		comment := &models.Comment{}
		err := rows.Scan(&comment.ID, &comment.Text, &comment.UserID, &comment.PostID, &comment.CreatedAt, &comment.AuthorName)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}
