package services

import (
	"inkpress/app/models"
	"inkpress/app/repositories"
)

// CommentService handles business logic for comments
type CommentService struct {
	comments repositories.CommentRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(comments repositories.CommentRepository) *CommentService {
	return &CommentService{comments: comments}
}

// Create strips the rich-text body to plain text and persists the comment
// linked to the commenting user and the target post.
func (s *CommentService) Create(postID int64, user *models.User, richText string) (*models.Comment, error) {
	comment := &models.Comment{
		Text:       StripMarkup(richText),
		UserID:     user.ID,
		PostID:     postID,
		AuthorName: user.Name,
	}
	if err := s.comments.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}
