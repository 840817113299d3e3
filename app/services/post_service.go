package services

import (
	"errors"
	"time"

	"inkpress/app/models"
	"inkpress/app/repositories"
)

var ErrTitleTaken = errors.New("title already in use")

// dateFormat is the display string stamped on a post at creation,
// e.g. "August 28, 2026".
const dateFormat = "January 02, 2006"

// PostService handles business logic for blog posts
type PostService struct {
	posts    repositories.PostRepository
	comments repositories.CommentRepository
}

// NewPostService creates a new PostService
func NewPostService(posts repositories.PostRepository, comments repositories.CommentRepository) *PostService {
	return &PostService{posts: posts, comments: comments}
}

// Create creates a post from a validated form, stamped with today's date
// and the author's display name.
func (s *PostService) Create(form *models.CreatePostForm, author *models.User) (*models.Post, error) {
	post := &models.Post{
		Title:    form.Title,
		Subtitle: form.Subtitle,
		Date:     time.Now().Format(dateFormat),
		Body:     form.Body,
		ImageURL: form.ImageURL,
		Author:   author.Name,
		UserID:   author.ID,
	}
	if err := s.posts.Create(post); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrTitleTaken
		}
		return nil, err
	}
	return post, nil
}

// Get retrieves a post with its comments.
func (s *PostService) Get(id int64) (*models.Post, error) {
	post, err := s.posts.GetByID(id)
	if err != nil {
		return nil, err
	}
	comments, err := s.comments.ListByPost(id)
	if err != nil {
		return nil, err
	}
	post.Comments = comments
	return post, nil
}

// List retrieves all posts, newest first.
func (s *PostService) List() ([]*models.Post, error) {
	return s.posts.List()
}

// Update overwrites the mutable fields of an existing post from a
// validated form. Author and date stay as they were set at creation.
func (s *PostService) Update(id int64, form *models.CreatePostForm) (*models.Post, error) {
	post, err := s.posts.GetByID(id)
	if err != nil {
		return nil, err
	}
	post.Title = form.Title
	post.Subtitle = form.Subtitle
	post.Body = form.Body
	post.ImageURL = form.ImageURL
	if err := s.posts.Update(post); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrTitleTaken
		}
		return nil, err
	}
	return post, nil
}

// Delete removes a post and its comments.
func (s *PostService) Delete(id int64) error {
	return s.posts.Delete(id)
}
