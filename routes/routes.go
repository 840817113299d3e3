package routes

import (
	"database/sql"
	"net/http"

	"inkpress/app/controllers"
	"inkpress/app/middleware"
	"inkpress/app/repositories"
	"inkpress/app/services"
	"inkpress/app/sessions"
	"inkpress/config"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// Setup wires repositories, services, session handling and controllers
// onto a router.
func Setup(db *sql.DB, sessionDB *badger.DB, cfg *config.Config, log zerolog.Logger) *mux.Router {
	userRepo := repositories.NewSQLiteUserRepository(db)
	postRepo := repositories.NewSQLitePostRepository(db)
	commentRepo := repositories.NewSQLiteCommentRepository(db)

	store := sessions.NewStore(sessionDB, cfg.SessionTTL)
	manager := sessions.NewManager(store, cfg.SessionSecret, cfg.SessionTTL)

	authService := services.NewAuthService(userRepo)
	postService := services.NewPostService(postRepo, commentRepo)
	commentService := services.NewCommentService(commentRepo)

	renderer := controllers.NewRenderer(log)
	authController := controllers.NewAuthController(authService, manager, renderer, log)
	postController := controllers.NewPostController(postService, commentService, renderer, log)
	pageController := controllers.NewPageController(renderer)

	router := mux.NewRouter()
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Recoverer(log))
	router.Use(middleware.Authenticate(manager, userRepo))

	// Static assets
	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	// Public pages
	router.HandleFunc("/", postController.Index).Methods("GET")
	router.HandleFunc("/post/{id:[0-9]+}", postController.Show).Methods("GET", "POST")
	router.HandleFunc("/about", pageController.About).Methods("GET")
	router.HandleFunc("/contact", pageController.Contact).Methods("GET")

	// Account
	router.HandleFunc("/register", authController.Register).Methods("GET", "POST")
	router.HandleFunc("/login", authController.Login).Methods("GET", "POST")
	router.HandleFunc("/logout", authController.Logout).Methods("GET")

	// Post management, admin only
	router.Handle("/new-post", middleware.RequireAdmin(http.HandlerFunc(postController.New))).Methods("GET", "POST")
	router.Handle("/edit-post/{id:[0-9]+}", middleware.RequireAdmin(http.HandlerFunc(postController.Edit))).Methods("GET", "POST")
	router.Handle("/delete/{id:[0-9]+}", middleware.RequireAdmin(http.HandlerFunc(postController.Delete))).Methods("GET")

	return router
}
