package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"inkpress/app/middleware"
	"inkpress/app/models"
	"inkpress/app/repositories"
	"inkpress/app/services"
	"inkpress/app/sessions"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// PostController handles the post pages: the home listing, a single post
// with its comments, and the admin-only create/edit/delete actions.
type PostController struct {
	posts    *services.PostService
	comments *services.CommentService
	renderer *Renderer
	log      zerolog.Logger
}

// NewPostController creates a new PostController
func NewPostController(posts *services.PostService, comments *services.CommentService, renderer *Renderer, log zerolog.Logger) *PostController {
	return &PostController{posts: posts, comments: comments, renderer: renderer, log: log}
}

// Index renders the home page with all posts.
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.posts.List()
	if err != nil {
		pc.log.Error().Err(err).Msg("listing posts failed")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	pc.renderer.Render(w, r, "home", homeData{Posts: posts})
}

// Show renders a post with its comments (GET) and accepts a new comment
// from an authenticated user (POST).
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if r.Method == http.MethodPost {
		pc.createComment(w, r, id)
		return
	}

	post, err := pc.posts.Get(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		pc.log.Error().Err(err).Int64("post", id).Msg("loading post failed")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	pc.renderer.Render(w, r, "post", postData{Post: post})
}

// createComment persists a comment on the post for the current user.
func (pc *PostController) createComment(w http.ResponseWriter, r *http.Request, postID int64) {
	user := middleware.CurrentUser(r)
	if user == nil {
		sessions.SetFlash(w, "Only logged in users can comment. Please log in.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	form := models.NewCommentForm(r)
	form.Validate()

	if _, err := pc.comments.Create(postID, user, form.Body); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		pc.log.Error().Err(err).Int64("post", postID).Msg("creating comment failed")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/post/"+strconv.FormatInt(postID, 10), http.StatusSeeOther)
}

// New renders the empty post form (GET) or creates the post (POST).
// The route is gated by RequireAdmin.
func (pc *PostController) New(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		pc.renderer.Render(w, r, "post_form", postFormData{Form: &models.CreatePostForm{}})
		return
	}

	form := models.NewCreatePostForm(r)
	if !form.Validate() {
		pc.renderer.Render(w, r, "post_form", postFormData{Form: form})
		return
	}

	_, err := pc.posts.Create(form, middleware.CurrentUser(r))
	if err != nil {
		if errors.Is(err, services.ErrTitleTaken) {
			form.Errors = map[string]string{"Title": "A post with this title already exists"}
			pc.renderer.Render(w, r, "post_form", postFormData{Form: form})
			return
		}
		pc.log.Error().Err(err).Msg("creating post failed")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Edit renders the prefilled form (GET) or applies the edit (POST).
// The route is gated by RequireAdmin.
func (pc *PostController) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if r.Method == http.MethodGet {
		post, err := pc.posts.Get(id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				http.NotFound(w, r)
				return
			}
			pc.log.Error().Err(err).Int64("post", id).Msg("loading post failed")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		form := &models.CreatePostForm{
			Title:    post.Title,
			Subtitle: post.Subtitle,
			ImageURL: post.ImageURL,
			Body:     post.Body,
		}
		pc.renderer.Render(w, r, "post_form", postFormData{Form: form, IsEdit: true})
		return
	}

	form := models.NewCreatePostForm(r)
	if !form.Validate() {
		pc.renderer.Render(w, r, "post_form", postFormData{Form: form, IsEdit: true})
		return
	}

	post, err := pc.posts.Update(id, form)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			http.NotFound(w, r)
		case errors.Is(err, services.ErrTitleTaken):
			form.Errors = map[string]string{"Title": "A post with this title already exists"}
			pc.renderer.Render(w, r, "post_form", postFormData{Form: form, IsEdit: true})
		default:
			pc.log.Error().Err(err).Int64("post", id).Msg("updating post failed")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}
	http.Redirect(w, r, "/post/"+strconv.FormatInt(post.ID, 10), http.StatusSeeOther)
}

// Delete removes a post and returns home. The route is gated by
// RequireAdmin.
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := pc.posts.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		pc.log.Error().Err(err).Int64("post", id).Msg("deleting post failed")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

type homeData struct {
	Posts []*models.Post
}

type postData struct {
	Post *models.Post
}

type postFormData struct {
	Form   *models.CreatePostForm
	IsEdit bool
}
