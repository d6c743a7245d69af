package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"tusalon/internal/models/db_models"
	"tusalon/internal/services"
	"tusalon/pkg/utils"
)

// currentActor reads the account context set by the JWT middleware.
// Responds 401 and returns false when it is missing or malformed.
func currentActor(c *gin.Context) (services.Actor, bool) {
	userID := c.GetString("user_id")
	role := c.GetString("role")

	id, err := uuid.Parse(userID)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid authentication context")
		return services.Actor{}, false
	}

	return services.Actor{
		ID:   id,
		Role: db_models.AccountRole(role),
	}, true
}
