package repositories

import (
	"testing"

	"inkpress/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*SQLiteUserRepository, *SQLitePostRepository, *SQLiteCommentRepository) {
	t.Helper()
	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewSQLiteUserRepository(db), NewSQLitePostRepository(db), NewSQLiteCommentRepository(db)
}

func createTestUser(t *testing.T, users *SQLiteUserRepository, email string) *models.User {
	t.Helper()
	user := &models.User{Name: "Tester", Email: email, PasswordHash: "x"}
	require.NoError(t, users.Create(user))
	return user
}

func createTestPost(t *testing.T, posts *SQLitePostRepository, user *models.User, title string) *models.Post {
	t.Helper()
	post := &models.Post{
		Title:    title,
		Subtitle: "sub",
		Date:     "August 28, 2026",
		Body:     "<p>body</p>",
		ImageURL: "https://example.com/img.png",
		Author:   user.Name,
		UserID:   user.ID,
	}
	require.NoError(t, posts.Create(post))
	return post
}

func TestUserRepository(t *testing.T) {
	users, _, _ := setupTestDB(t)

	user := createTestUser(t, users, "Alice@Example.com")
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "alice@example.com", user.Email)

	t.Run("get by email is case-insensitive", func(t *testing.T) {
		got, err := users.GetByEmail("ALICE@example.COM")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("email exists", func(t *testing.T) {
		exists, err := users.EmailExists("alice@example.com")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = users.EmailExists("bob@example.com")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("duplicate email is rejected by the store", func(t *testing.T) {
		err := users.Create(&models.User{Name: "Clone", Email: "alice@example.com", PasswordHash: "y"})
		assert.ErrorIs(t, err, ErrDuplicate)

		count, err := users.Count()
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := users.GetByID(99)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPostRepository(t *testing.T) {
	users, posts, _ := setupTestDB(t)
	user := createTestUser(t, users, "author@example.com")

	post := createTestPost(t, posts, user, "Hello")

	t.Run("get by id", func(t *testing.T) {
		got, err := posts.GetByID(post.ID)
		require.NoError(t, err)
		assert.Equal(t, "Hello", got.Title)
		assert.Equal(t, user.ID, got.UserID)
	})

	t.Run("duplicate title is rejected by the store", func(t *testing.T) {
		err := posts.Create(&models.Post{
			Title: "Hello", Subtitle: "s", Date: "d", Body: "b",
			ImageURL: "https://example.com/i.png", Author: user.Name, UserID: user.ID,
		})
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("update keeps author and date", func(t *testing.T) {
		post.Title = "Hello again"
		post.Body = "<p>edited</p>"
		require.NoError(t, posts.Update(post))

		got, err := posts.GetByID(post.ID)
		require.NoError(t, err)
		assert.Equal(t, "Hello again", got.Title)
		assert.Equal(t, "August 28, 2026", got.Date)
		assert.Equal(t, "Tester", got.Author)
	})

	t.Run("update missing post", func(t *testing.T) {
		assert.ErrorIs(t, posts.Update(&models.Post{ID: 99, Title: "x"}), ErrNotFound)
	})

	t.Run("list newest first", func(t *testing.T) {
		createTestPost(t, posts, user, "Second")
		all, err := posts.List()
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "Second", all[0].Title)
	})
}

func TestPostDeleteRemovesComments(t *testing.T) {
	users, posts, comments := setupTestDB(t)
	user := createTestUser(t, users, "author@example.com")
	post := createTestPost(t, posts, user, "Hello")

	require.NoError(t, comments.Create(&models.Comment{Text: "nice", UserID: user.ID, PostID: post.ID}))

	require.NoError(t, posts.Delete(post.ID))

	_, err := posts.GetByID(post.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	left, err := comments.ListByPost(post.ID)
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestDeleteMissingPost(t *testing.T) {
	users, posts, _ := setupTestDB(t)
	user := createTestUser(t, users, "author@example.com")
	createTestPost(t, posts, user, "Survivor")

	assert.ErrorIs(t, posts.Delete(99), ErrNotFound)

	all, err := posts.List()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCommentRepository(t *testing.T) {
	users, posts, comments := setupTestDB(t)
	user := createTestUser(t, users, "reader@example.com")
	post := createTestPost(t, posts, user, "Hello")

	t.Run("create and list with author name", func(t *testing.T) {
		comment := &models.Comment{Text: "first!", UserID: user.ID, PostID: post.ID}
		require.NoError(t, comments.Create(comment))
		assert.NotZero(t, comment.ID)

		list, err := comments.ListByPost(post.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "first!", list[0].Text)
		assert.Equal(t, "Tester", list[0].AuthorName)
	})

	t.Run("comment on missing post rolls back", func(t *testing.T) {
		err := comments.Create(&models.Comment{Text: "lost", UserID: user.ID, PostID: 99})
		assert.ErrorIs(t, err, ErrNotFound)

		list, err := comments.ListByPost(post.ID)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})
}
