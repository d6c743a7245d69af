package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tusalon/internal/models/request_models"
	"tusalon/internal/services"
	"tusalon/pkg/utils"
)

type InquiriesController struct {
	inquiryService services.InquiryServiceInterface
}

func NewInquiriesController(inquiryService services.InquiryServiceInterface) *InquiriesController {
	return &InquiriesController{
		inquiryService: inquiryService,
	}
}

func (i *InquiriesController) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req request_models.CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	inquiry, err := i.inquiryService.CreateInquiry(c.Request.Context(), actor, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, inquiry, "Inquiry sent successfully")
}

// Mine lists the actor's inquiries. ?box=sent or ?box=received override
// the role-based default.
func (i *InquiriesController) Mine(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	box := c.Query("box")
	if box != "" && box != "sent" && box != "received" {
		utils.RespondError(c, http.StatusBadRequest, "Invalid box parameter")
		return
	}

	inquiries, err := i.inquiryService.ListOwnInquiries(c.Request.Context(), actor, box)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondList(c, inquiries, len(inquiries), "Inquiries fetched successfully")
}

func (i *InquiriesController) Update(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req request_models.UpdateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	inquiry, err := i.inquiryService.UpdateInquiry(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, inquiry, "Inquiry updated successfully")
}
