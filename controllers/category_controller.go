package controllers

import (
	"net/http"

	"topgames-api/models"

	"github.com/gin-gonic/gin"
)

type CategoryController struct{}

func NewCategoryController() *CategoryController {
	return &CategoryController{}
}

// GetCategories returns the static storefront categories.
func (ctrl *CategoryController) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, models.Categories())
}
