package passes

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"gorm.io/gorm"
)

type Handler struct {
	repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{repo: NewRepository(db)}
}

func recordID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  http.StatusBadRequest,
			Message: "Invalid record id",
			Detail:  err.Error(),
		})
		return 0, false
	}
	return uint(id), true
}

// ------------------------------
// POST /submitData/
// ------------------------------
func (h *Handler) SubmitData(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  http.StatusBadRequest,
			Message: "Invalid data",
			Detail:  err.Error(),
		})
		return
	}

	rec, err := h.repo.Create(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Status:  http.StatusInternalServerError,
			Message: "Internal server error",
			Detail:  err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, SubmitResponse{
		Status:  http.StatusOK,
		Message: "Submitted successfully",
		ID:      rec.ID,
	})
}

// ------------------------------
// GET /submitData/:id
// ------------------------------
func (h *Handler) GetByID(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		return
	}

	rec, err := h.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Status:  http.StatusNotFound,
				Message: "Record not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Status:  http.StatusInternalServerError,
			Message: "Internal server error",
			Detail:  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, toPassRecordDTO(rec))
}

// ------------------------------
// PATCH /submitData/:id
// ------------------------------
func (h *Handler) UpdateData(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		return
	}

	// strict body: unknown fields are rejected outright, so a typo
	// like "titel" cannot be silently dropped
	var req UpdateRequest
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  http.StatusBadRequest,
			Message: "Invalid data",
			Detail:  err.Error(),
		})
		return
	}
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  http.StatusBadRequest,
			Message: "Invalid data",
			Detail:  err.Error(),
		})
		return
	}

	// every handled outcome, including not-found and status conflicts,
	// is a 200 carrying state 0 or 1
	c.JSON(http.StatusOK, h.repo.Update(id, req))
}

// ------------------------------
// GET /submitData/?user__email=...
// ------------------------------
func (h *Handler) ListByEmail(c *gin.Context) {
	email := c.Query("user__email")
	if email == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  http.StatusBadRequest,
			Message: "Missing user__email query parameter",
		})
		return
	}

	recs, err := h.repo.ListByEmail(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Status:  http.StatusInternalServerError,
			Message: "Internal server error",
			Detail:  err.Error(),
		})
		return
	}

	out := make([]SummaryDTO, 0, len(recs))
	for i := range recs {
		out = append(out, toSummaryDTO(recs[i]))
	}
	c.JSON(http.StatusOK, out)
}
