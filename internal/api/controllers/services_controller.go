package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tusalon/internal/models/db_models"
	"tusalon/internal/models/request_models"
	"tusalon/internal/services"
	"tusalon/pkg/utils"
)

type ServicesController struct {
	serviceService services.ServiceServiceInterface
	searchService  services.SearchServiceInterface
}

func NewServicesController(serviceService services.ServiceServiceInterface, searchService services.SearchServiceInterface) *ServicesController {
	return &ServicesController{
		serviceService: serviceService,
		searchService:  searchService,
	}
}

func (s *ServicesController) Search(c *gin.Context) {
	geoQuery, ok := parseGeoParams(c)
	if !ok {
		return
	}

	maxPrice, ok := parseOptionalFloat(c, "priceMax")
	if !ok {
		return
	}

	category := db_models.ServiceCategory(c.Query("category"))
	if category != "" && !category.Valid() {
		utils.RespondError(c, http.StatusBadRequest, "Invalid category parameter")
		return
	}

	criteria := services.ServiceSearchCriteria{
		Latitude:  geoQuery.Latitude,
		Longitude: geoQuery.Longitude,
		RadiusKm:  geoQuery.RadiusKm,
		City:      c.Query("city"),
		Category:  category,
		MaxPrice:  maxPrice,
	}

	results, err := s.searchService.SearchServices(c.Request.Context(), criteria)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondList(c, results, len(results), "Services fetched successfully")
}

func (s *ServicesController) GetByID(c *gin.Context) {
	serviceID := c.Param("id")
	if serviceID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Service ID is required")
		return
	}

	service, err := s.serviceService.GetServiceByID(c.Request.Context(), serviceID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, service, "Service fetched successfully")
}

func (s *ServicesController) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req request_models.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	service, err := s.serviceService.CreateService(c.Request.Context(), actor, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, service, "Service created successfully")
}

func (s *ServicesController) Update(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req request_models.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	service, err := s.serviceService.UpdateService(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, service, "Service updated successfully")
}

func (s *ServicesController) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	if err := s.serviceService.RetireService(c.Request.Context(), actor, c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Service removed successfully")
}

func (s *ServicesController) Mine(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	results, err := s.serviceService.ListOwnServices(c.Request.Context(), actor)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondList(c, results, len(results), "Services fetched successfully")
}
