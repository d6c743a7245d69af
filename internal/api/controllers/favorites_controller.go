package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"tusalon/internal/models/request_models"
	"tusalon/internal/services"
	"tusalon/pkg/utils"
)

type FavoritesController struct {
	favoriteService services.FavoriteServiceInterface
}

func NewFavoritesController(favoriteService services.FavoriteServiceInterface) *FavoritesController {
	return &FavoritesController{
		favoriteService: favoriteService,
	}
}

func (f *FavoritesController) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	favorites, err := f.favoriteService.ListFavorites(c.Request.Context(), actor, c.Query("kind"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondList(c, favorites, len(favorites), "Favorites fetched successfully")
}

func (f *FavoritesController) Add(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req request_models.AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	favorite, err := f.favoriteService.AddFavorite(c.Request.Context(), actor, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, favorite, "Favorite added successfully")
}

func (f *FavoritesController) Remove(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	favoriteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid favorite ID")
		return
	}

	if err := f.favoriteService.RemoveFavorite(c.Request.Context(), actor, favoriteID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Favorite removed successfully")
}

func (f *FavoritesController) Check(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid item ID")
		return
	}

	result, err := f.favoriteService.CheckFavorite(c.Request.Context(), actor, c.Param("kind"), itemID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Favorite status fetched successfully")
}
