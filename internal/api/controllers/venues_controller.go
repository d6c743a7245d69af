package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tusalon/internal/models/request_models"
	"tusalon/internal/services"
	"tusalon/pkg/utils"
)

type VenuesController struct {
	venueService  services.VenueServiceInterface
	searchService services.SearchServiceInterface
}

func NewVenuesController(venueService services.VenueServiceInterface, searchService services.SearchServiceInterface) *VenuesController {
	return &VenuesController{
		venueService:  venueService,
		searchService: searchService,
	}
}

// Search handles both the plain listing (no query params) and the
// radius search. Results of a geo search carry distance_km and come
// back nearest first.
func (v *VenuesController) Search(c *gin.Context) {
	geoQuery, ok := parseGeoParams(c)
	if !ok {
		return
	}

	minCapacity, ok := parseOptionalInt(c, "capacityMin")
	if !ok {
		return
	}
	maxPrice, ok := parseOptionalFloat(c, "priceMax")
	if !ok {
		return
	}

	criteria := services.VenueSearchCriteria{
		Latitude:    geoQuery.Latitude,
		Longitude:   geoQuery.Longitude,
		RadiusKm:    geoQuery.RadiusKm,
		City:        c.Query("city"),
		MinCapacity: minCapacity,
		MaxPrice:    maxPrice,
	}

	venues, err := v.searchService.SearchVenues(c.Request.Context(), criteria)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondList(c, venues, len(venues), "Venues fetched successfully")
}

func (v *VenuesController) GetByID(c *gin.Context) {
	venueID := c.Param("id")
	if venueID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Venue ID is required")
		return
	}

	venue, err := v.venueService.GetVenueByID(c.Request.Context(), venueID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, venue, "Venue fetched successfully")
}

func (v *VenuesController) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req request_models.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	venue, err := v.venueService.CreateVenue(c.Request.Context(), actor, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, venue, "Venue created successfully")
}

func (v *VenuesController) Update(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req request_models.UpdateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	venue, err := v.venueService.UpdateVenue(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, venue, "Venue updated successfully")
}

func (v *VenuesController) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	if err := v.venueService.RetireVenue(c.Request.Context(), actor, c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Venue removed successfully")
}

func (v *VenuesController) Mine(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	venues, err := v.venueService.ListOwnVenues(c.Request.Context(), actor)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondList(c, venues, len(venues), "Venues fetched successfully")
}
