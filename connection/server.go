package connection

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"nobacklog/controller/board"
	"nobacklog/controller/card"
	"nobacklog/controller/list"
	"nobacklog/controller/timelog"
	"nobacklog/store"
)

// NewRouter builds the gin engine with CORS and all API routes mounted on
// the given stores.
func NewRouter(stores *store.Stores) *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "NoBackLog API is running..."})
	})

	board.BoardController(router, stores)
	list.ListController(router, stores)
	card.CardController(router, stores)
	timelog.TimeLogController(router, stores)

	return router
}

// StartServer connects to Firestore and serves the API on PORT (5000 by
// default).
func StartServer() {
	fb, err := FBConnection()
	if err != nil {
		log.Fatalf("Failed to initialize Firestore client: %v", err)
	}

	router := NewRouter(store.NewFirestoreStores(fb))

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	router.Run(":" + port)
}
