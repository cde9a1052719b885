package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"boardapi/app/models"
	"boardapi/app/repositories"
	"boardapi/app/services"

	"github.com/gorilla/mux"
)

const (
	defaultPage = 1
	defaultSize = 10
	maxSize     = 100
	defaultSort = "created_at:desc"
)

// PostController handles HTTP requests for board posts
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{postService: postService}
}

// Health reports that the service is up, with the current UTC time.
func (pc *PostController) Health(w http.ResponseWriter, r *http.Request) {
	pc.sendJSON(w, http.StatusOK, map[string]interface{}{
		"ok":   true,
		"time": time.Now().UTC().Format(time.RFC3339),
	})
}

// Index handles listing posts with search, sort and pagination.
//
// Query parameters: q (substring search over title/author/content),
// sort ("field:asc|desc", malformed specs fall back to created_at:desc),
// page (>= 1) and size (1-100). Unparsable page/size keep their
// defaults; parsed but out-of-range values are rejected.
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	sortSpec := defaultSort
	if s := r.URL.Query().Get("sort"); s != "" {
		sortSpec = s
	}

	page := defaultPage
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil {
			if p < 1 {
				pc.sendError(w, "page must be >= 1", http.StatusBadRequest)
				return
			}
			page = p
		}
	}

	size := defaultSize
	if sizeStr := r.URL.Query().Get("size"); sizeStr != "" {
		if s, err := strconv.Atoi(sizeStr); err == nil {
			if s < 1 || s > maxSize {
				pc.sendError(w, "size must be between 1 and 100", http.StatusBadRequest)
				return
			}
			size = s
		}
	}

	result, err := pc.postService.ListPosts(q, sortSpec, page, size)
	if err != nil {
		pc.sendError(w, "Failed to fetch posts: "+err.Error(), http.StatusInternalServerError)
		return
	}

	pc.sendJSON(w, http.StatusOK, result)
}

// Show handles displaying a single post.
//
// The inc_view parameter defaults to true: a plain GET bumps the view
// counter and refreshes updated_at. Callers that want an idempotent read
// must pass inc_view=false.
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pc.postID(w, r)
	if !ok {
		return
	}

	incView := true
	if v := r.URL.Query().Get("inc_view"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			pc.sendError(w, "inc_view must be a boolean", http.StatusBadRequest)
			return
		}
		incView = b
	}

	post, err := pc.postService.GetPost(id, incView)
	if err != nil {
		pc.sendServiceError(w, err)
		return
	}

	pc.sendJSON(w, http.StatusOK, post)
}

// Create handles creating a new post
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var payload models.PostCreate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		pc.sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	post, err := pc.postService.CreatePost(&payload)
	if err != nil {
		pc.sendServiceError(w, err)
		return
	}

	pc.sendJSON(w, http.StatusCreated, post)
}

// Edit handles a partial update of an existing post. Only the fields
// present in the body are touched.
func (pc *PostController) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pc.postID(w, r)
	if !ok {
		return
	}

	var payload models.PostUpdate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		pc.sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	post, err := pc.postService.UpdatePost(id, &payload)
	if err != nil {
		pc.sendServiceError(w, err)
		return
	}

	pc.sendJSON(w, http.StatusOK, post)
}

// Delete handles deleting a post
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pc.postID(w, r)
	if !ok {
		return
	}

	deletedID, err := pc.postService.DeletePost(id)
	if err != nil {
		pc.sendServiceError(w, err)
		return
	}

	pc.sendJSON(w, http.StatusOK, map[string]interface{}{
		"ok":         true,
		"deleted_id": deletedID,
	})
}

// Helper methods for consistent response handling

func (pc *PostController) postID(w http.ResponseWriter, r *http.Request) (int, bool) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil || id < 1 {
		pc.sendError(w, "Invalid post ID", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// sendServiceError maps core errors onto HTTP statuses: a missing id is
// terminal 404, anything else from create/update is a validation
// failure. No internal state leaks beyond the message.
func (pc *PostController) sendServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, repositories.ErrNotFound) {
		pc.sendError(w, "Post not found", http.StatusNotFound)
		return
	}
	pc.sendError(w, err.Error(), http.StatusBadRequest)
}

func (pc *PostController) sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (pc *PostController) sendError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"detail": message})
}
