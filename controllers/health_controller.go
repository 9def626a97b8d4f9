package controllers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthController serves the liveness endpoints and the database diagnostic
// probe. It holds the raw database handle, which is nil when no connection
// was established at startup.
type HealthController struct {
	db *mongo.Database
}

func NewHealthController(db *mongo.Database) *HealthController {
	return &HealthController{db: db}
}

// Root is the liveness probe.
func (ctrl *HealthController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "TopGames API attiva"})
}

func (ctrl *HealthController) Hello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Ciao da TopGames Backend!"})
}

// TestDatabase reports connection diagnostics. Query failures show up inline
// in the payload, never as an HTTP error.
func (ctrl *HealthController) TestDatabase(c *gin.Context) {
	response := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      envStatus("DATABASE_URL"),
		"database_name":     envStatus("DATABASE_NAME"),
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if ctrl.db != nil {
		response["connection_status"] = "Connected"
		names, err := ctrl.db.ListCollectionNames(c.Request.Context(), bson.M{})
		if err != nil {
			response["database"] = "⚠️  Connected but Error: " + truncate(err.Error(), 50)
		} else {
			if len(names) > 10 {
				names = names[:10]
			}
			response["collections"] = names
			response["database"] = "✅ Connected & Working"
		}
	}

	c.JSON(http.StatusOK, response)
}

func envStatus(key string) string {
	if os.Getenv(key) != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
