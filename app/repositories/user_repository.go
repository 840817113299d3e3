package repositories

import (
	"database/sql"
	"strings"

	"inkpress/app/models"
)

// SQLiteUserRepository implements UserRepository on sqlite.
type SQLiteUserRepository struct {
	db *sql.DB
}

// NewSQLiteUserRepository creates a new SQLiteUserRepository
func NewSQLiteUserRepository(db *sql.DB) *SQLiteUserRepository {
	return &SQLiteUserRepository{db: db}
}

// Create inserts a new user. Emails are stored lowercased; a uniqueness
// violation surfaces as ErrDuplicate.
func (r *SQLiteUserRepository) Create(user *models.User) error {
	user.Email = strings.ToLower(user.Email)
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	res, err := r.db.Exec(
		"INSERT INTO users (name, email, password_hash, role) VALUES (?, ?, ?, ?)",
		user.Name, user.Email, user.PasswordHash, user.Role,
	)
	if err != nil {
		return mapConstraint(err)
	}
	user.ID, err = res.LastInsertId()
	return err
}

// GetByID retrieves a user by ID
func (r *SQLiteUserRepository) GetByID(id int64) (*models.User, error) {
	return r.scanOne("SELECT id, name, email, password_hash, role, created_at FROM users WHERE id = ?", id)
}

// GetByEmail retrieves a user by email, case-insensitively.
func (r *SQLiteUserRepository) GetByEmail(email string) (*models.User, error) {
	return r.scanOne("SELECT id, name, email, password_hash, role, created_at FROM users WHERE email = ?", strings.ToLower(email))
}

// EmailExists checks whether an account with the email is already on file.
func (r *SQLiteUserRepository) EmailExists(email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow("SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)", strings.ToLower(email)).Scan(&exists)
	return exists, err
}

// Count returns the total number of users.
func (r *SQLiteUserRepository) Count() (int64, error) {
	var count int64
	err := r.db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count)
	return count, err
}

func (r *SQLiteUserRepository) scanOne(query string, arg interface{}) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRow(query, arg).
		Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
