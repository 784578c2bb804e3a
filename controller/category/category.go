package category

import (
	"net/http"

	"sitecheck/controller"
	"sitecheck/dto"
	"sitecheck/model"
	"sitecheck/service"
	"sitecheck/store"

	"github.com/gin-gonic/gin"
)

func CategoryController(router *gin.Engine, auth gin.HandlerFunc, categories *service.CategoryService, users *service.UserService) {
	router.GET("/categories", auth, func(c *gin.Context) {
		ListCategories(c, categories)
	})
	router.POST("/categories", auth, func(c *gin.Context) {
		CreateCategory(c, categories, users)
	})
	router.PATCH("/categories/order", auth, func(c *gin.Context) {
		ReorderCategories(c, categories, users)
	})
	router.PATCH("/categories/:categoryId", auth, func(c *gin.Context) {
		UpdateCategory(c, categories, users)
	})
	router.DELETE("/categories/:categoryId", auth, func(c *gin.Context) {
		DeleteCategory(c, categories, users)
	})
}

// ListCategories returns all categories in display order. Categories are
// global, so no user row is needed to read them.
func ListCategories(c *gin.Context, categories *service.CategoryService) {
	result, err := categories.List(c.Request.Context())
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	if result == nil {
		result = []model.Category{}
	}
	c.JSON(http.StatusOK, result)
}

func CreateCategory(c *gin.Context, categories *service.CategoryService, users *service.UserService) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if _, ok := controller.EnsureRequester(c, users); !ok {
		return
	}

	created, err := categories.Create(c.Request.Context(), service.CategoryInput{
		Name:         req.Name,
		Description:  req.Description,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func UpdateCategory(c *gin.Context, categories *service.CategoryService, users *service.UserService) {
	categoryID, ok := controller.PathID(c, "categoryId")
	if !ok {
		return
	}
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if _, ok := controller.EnsureRequester(c, users); !ok {
		return
	}

	updated, err := categories.Update(c.Request.Context(), categoryID, service.CategoryInput{
		Name:         req.Name,
		Description:  req.Description,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func DeleteCategory(c *gin.Context, categories *service.CategoryService, users *service.UserService) {
	categoryID, ok := controller.PathID(c, "categoryId")
	if !ok {
		return
	}
	if _, ok := controller.EnsureRequester(c, users); !ok {
		return
	}

	if err := categories.Delete(c.Request.Context(), categoryID); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}

// ReorderCategories applies a batch of display-order assignments atomically.
func ReorderCategories(c *gin.Context, categories *service.CategoryService, users *service.UserService) {
	var req dto.ReorderCategoriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if _, ok := controller.EnsureRequester(c, users); !ok {
		return
	}

	orders := make([]store.CategoryOrder, 0, len(req.Orders))
	for _, o := range req.Orders {
		orders = append(orders, store.CategoryOrder{CategoryID: o.CategoryID, DisplayOrder: o.DisplayOrder})
	}
	result, err := categories.Reorder(c.Request.Context(), orders)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
