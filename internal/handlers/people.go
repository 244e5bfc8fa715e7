package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/yukikurage/freelance-marketplace-api/internal/errors"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/services"
	"github.com/yukikurage/freelance-marketplace-api/internal/utils"
)

// PeopleHandler serves freelancer search and public profiles
type PeopleHandler struct {
	peopleService *services.PeopleService
}

func NewPeopleHandler(peopleService *services.PeopleService) *PeopleHandler {
	return &PeopleHandler{
		peopleService: peopleService,
	}
}

func (h *PeopleHandler) ListFreelancers(c *gin.Context) {
	filter := services.FreelancerFilter{
		Search:       c.Query("q"),
		Rate:         c.Query("rate"),
		Availability: models.Availability(c.Query("availability")),
		Skills:       queryList(c, "skills"),
	}

	resp, err := h.peopleService.ListFreelancers(filter, utils.GetPaginationParams(c))
	if err != nil {
		respondPeopleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PeopleHandler) GetFreelancer(c *gin.Context) {
	freelancer, err := h.peopleService.GetFreelancer(c.Param("id"))
	if err != nil {
		respondPeopleError(c, err)
		return
	}
	c.JSON(http.StatusOK, freelancer)
}

func (h *PeopleHandler) GetClient(c *gin.Context) {
	client, err := h.peopleService.GetClient(c.Param("id"))
	if err != nil {
		respondPeopleError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func respondPeopleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrFreelancerNotFound):
		apierrors.NotFound(c, "Freelancer not found")
	case errors.Is(err, services.ErrClientNotFound):
		apierrors.NotFound(c, "Client not found")
	default:
		respondCommonError(c, err)
	}
}
