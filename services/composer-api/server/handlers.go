package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/harshmriduhash/Cold-Emailer/internal/campaign"
	"github.com/harshmriduhash/Cold-Emailer/internal/store"
	"github.com/harshmriduhash/Cold-Emailer/internal/submit"
	"github.com/harshmriduhash/Cold-Emailer/pkg/logx"
	"github.com/harshmriduhash/Cold-Emailer/pkg/metrics"
	"github.com/harshmriduhash/Cold-Emailer/pkg/notify"
)

type composerAPI interface {
	View() submit.View
	SetField(f campaign.Field, value string)
	AddRecipient() string
	RemoveRecipient(id string) bool
	UpdateRecipient(id string, f campaign.RecipientField, value string) bool
	Submit(ctx context.Context) (submit.Result, error)
}

type historyAPI interface {
	ListSubmissions(ctx context.Context, limit, offset int) ([]store.SubmissionRow, error)
}

type feedAPI interface {
	Drain() []notify.Notification
}

// Handlers exposes one composer over HTTP. History is optional.
type Handlers struct {
	Composer composerAPI
	Feed     feedAPI
	History  historyAPI
}

func NewHandlers(ctrl *submit.Controller, feed *notify.Feed, st *store.Store) *Handlers {
	h := &Handlers{Composer: ctrl, Feed: feed}
	if st != nil {
		h.History = st
	}
	return h
}

func (h *Handlers) Healthz(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func (h *Handlers) GetCampaign(c *gin.Context) {
	c.JSON(http.StatusOK, h.Composer.View())
}

func (h *Handlers) SetField(c *gin.Context) {
	f, ok := campaign.ParseField(c.Param("field"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown field"})
		return
	}
	var req campaign.FieldValueReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.Composer.SetField(f, *req.Value)
	c.JSON(http.StatusOK, h.Composer.View())
}

func (h *Handlers) AddRecipient(c *gin.Context) {
	id := h.Composer.AddRecipient()
	c.JSON(http.StatusCreated, gin.H{"id": id, "campaign": h.Composer.View().Campaign})
}

func (h *Handlers) UpdateRecipient(c *gin.Context) {
	var req campaign.UpdateRecipientReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	f, _ := campaign.ParseRecipientField(req.Field)
	if !h.Composer.UpdateRecipient(c.Param("id"), f, *req.Value) {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipient not found"})
		return
	}
	c.JSON(http.StatusOK, h.Composer.View())
}

func (h *Handlers) RemoveRecipient(c *gin.Context) {
	removed := h.Composer.RemoveRecipient(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"removed": removed, "campaign": h.Composer.View().Campaign})
}

func (h *Handlers) Submit(c *gin.Context) {
	// A client hanging up must not abort a dispatch that is already under way.
	ctx := context.WithoutCancel(c.Request.Context())

	res, err := h.Composer.Submit(ctx)
	if errors.Is(err, submit.ErrInFlight) {
		c.Set(ctxSubmitOutcome, metrics.OutcomeBusy)
		c.JSON(http.StatusConflict, gin.H{"error": "submission in progress"})
		return
	}
	if err != nil {
		logx.L().Errorw("submit_error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "submit error"})
		return
	}

	c.Set(ctxSubmitOutcome, string(res.Outcome))
	switch res.Outcome {
	case submit.OutcomeInvalid:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"status": res.Outcome, "errors": res.Report})
	case submit.OutcomeFailed:
		c.JSON(http.StatusBadGateway, gin.H{"status": res.Outcome, "error": "dispatch failed"})
	default:
		c.JSON(http.StatusOK, gin.H{"status": res.Outcome, "campaign": h.Composer.View().Campaign})
	}
}

func (h *Handlers) Notifications(c *gin.Context) {
	c.JSON(http.StatusOK, h.Feed.Drain())
}

func (h *Handlers) ListSubmissions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	rows, err := h.History.ListSubmissions(ctx, limit, offset)
	if err != nil {
		logx.L().Errorw("list_submissions_error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list error"})
		return
	}
	c.JSON(http.StatusOK, rows)
}
