package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"tusalon/pkg/geo"
	"tusalon/pkg/utils"
)

type geoParams struct {
	Latitude  *float64
	Longitude *float64
	RadiusKm  *float64
}

// parseGeoParams reads lat/lon/radius from the query string. Absent
// entirely means a non-geographic search. A partial or out-of-range
// triple is a 400: invalid coordinates must never reach the search
// service. Returns false after responding on error.
func parseGeoParams(c *gin.Context) (geoParams, bool) {
	latStr := c.Query("lat")
	lonStr := c.Query("lon")
	radiusStr := c.Query("radius")

	if latStr == "" && lonStr == "" && radiusStr == "" {
		return geoParams{}, true
	}

	if latStr == "" || lonStr == "" || radiusStr == "" {
		utils.RespondError(c, http.StatusBadRequest, "Geographic search requires lat, lon and radius")
		return geoParams{}, false
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid lat parameter")
		return geoParams{}, false
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid lon parameter")
		return geoParams{}, false
	}
	radius, err := strconv.ParseFloat(radiusStr, 64)
	if err != nil || radius <= 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid radius parameter")
		return geoParams{}, false
	}

	if !geo.IsValidCoordinate(lat, lon) {
		utils.RespondError(c, http.StatusBadRequest, "Coordinates out of range")
		return geoParams{}, false
	}

	return geoParams{Latitude: &lat, Longitude: &lon, RadiusKm: &radius}, true
}

func parseOptionalInt(c *gin.Context, name string) (*int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid "+name+" parameter")
		return nil, false
	}
	return &n, true
}

func parseOptionalFloat(c *gin.Context, name string) (*float64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid "+name+" parameter")
		return nil, false
	}
	return &f, true
}
