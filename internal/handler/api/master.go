package api

import (
	"errors"
	"net/http"

	"beautypro/internal/domain/catalog"
	reqdto "beautypro/internal/handler/dto/request"
	resdto "beautypro/internal/handler/dto/response"
	"beautypro/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MasterHandler struct {
	masterUseCase usecase.MasterUseCase
}

func NewMasterHandler(masterUseCase usecase.MasterUseCase) *MasterHandler {
	return &MasterHandler{
		masterUseCase: masterUseCase,
	}
}

// @Summary List masters
// @Description List masters; clients see active ones only
// @Tags masters
// @Produce json
// @Param include_inactive query bool false "Include deactivated masters (admin view)"
// @Success 200 {array} resdto.MasterResponse
// @Router /masters [get]
func (h *MasterHandler) ListMasters(c *gin.Context) {
	activeOnly := c.Query("include_inactive") != "true"

	masters, err := h.masterUseCase.ListMasters(c.Request.Context(), activeOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromMasterRMs(masters))
}

// @Summary Get master
// @Tags masters
// @Produce json
// @Param id path string true "Master ID"
// @Success 200 {object} resdto.MasterResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /masters/{id} [get]
func (h *MasterHandler) GetMaster(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid master ID format",
		})
		return
	}

	master, err := h.masterUseCase.GetMaster(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMasterNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Master not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromMasterRM(master))
}

// @Summary Create master
// @Tags masters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateMasterRequest true "Master"
// @Success 201 {object} resdto.MasterResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /masters [post]
func (h *MasterHandler) CreateMaster(c *gin.Context) {
	var req reqdto.CreateMasterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	master, err := h.masterUseCase.CreateMaster(c.Request.Context(), req.ToCommand())
	if err != nil {
		h.writeMasterError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromMasterRM(master))
}

// @Summary Update master
// @Tags masters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Master ID"
// @Param request body reqdto.UpdateMasterRequest true "Fields to update"
// @Success 200 {object} resdto.MasterResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /masters/{id} [patch]
func (h *MasterHandler) UpdateMaster(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid master ID format",
		})
		return
	}

	var req reqdto.UpdateMasterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	master, err := h.masterUseCase.UpdateMaster(c.Request.Context(), id, req.ToCommand())
	if err != nil {
		h.writeMasterError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMasterRM(master))
}

// @Summary Assign services to master
// @Description Replace the master's service assignment set
// @Tags masters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Master ID"
// @Param request body reqdto.AssignServicesRequest true "Service IDs"
// @Success 200 {object} resdto.MasterResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /masters/{id}/services [put]
func (h *MasterHandler) AssignServices(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid master ID format",
		})
		return
	}

	var req reqdto.AssignServicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	master, err := h.masterUseCase.AssignServices(c.Request.Context(), id, req.ServiceIDs)
	if err != nil {
		h.writeMasterError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMasterRM(master))
}

// @Summary Deactivate master
// @Description Soft-delete: the master stops accepting bookings but stays in history
// @Tags masters
// @Security BearerAuth
// @Param id path string true "Master ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /masters/{id} [delete]
func (h *MasterHandler) DeactivateMaster(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid master ID format",
		})
		return
	}

	if err := h.masterUseCase.DeactivateMaster(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrMasterNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Master not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MasterHandler) writeMasterError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrMasterNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Master not found",
		})
	case errors.Is(err, usecase.ErrProfessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Profession not found",
		})
	case errors.Is(err, usecase.ErrUnknownService):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Unknown service in assignment",
		})
	case errors.Is(err, usecase.ErrProfessionMismatch):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Service belongs to another profession",
		})
	case errors.Is(err, catalog.ErrEmptyName):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
