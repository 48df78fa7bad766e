package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tiketbola/matchrec/internal/api/handler/v1/request"
	"github.com/tiketbola/matchrec/internal/api/handler/v1/response"
	"github.com/tiketbola/matchrec/internal/api/middleware"
	"github.com/tiketbola/matchrec/internal/domain"
	"github.com/tiketbola/matchrec/internal/service"
)

type UserService interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
	GetPurchases(ctx context.Context, userID uint) ([]domain.PurchaseRecord, error)
	AddPurchase(ctx context.Context, record domain.PurchaseRecord) (domain.PurchaseRecord, error)
}

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{
		svc: svc,
	}
}

// pathUserID parses the :userID path param and checks it against the
// authenticated user; users only ever see their own data.
func pathUserID(ctx *gin.Context) (uint, *response.Err) {
	raw := ctx.Param("userID")
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || parsed == 0 {
		return 0, response.ErrBadRequest(fmt.Errorf("invalid user ID (%v)", raw))
	}

	authedID, ok := ctx.Get(middleware.ContextKeyUserID)
	if !ok {
		return 0, response.ErrWrongCredentials(errors.New("missing authentication"))
	}
	if authedID.(uint) != uint(parsed) {
		return 0, response.ErrPermissionDenied(fmt.Errorf("user %v cannot access user %v", authedID, parsed))
	}

	return uint(parsed), nil
}

// HandleGetUser godoc
// @Summary      Get a user profile
// @Tags         users
// @Produce      json
// @Param        userID   path      int  true  "user ID"
// @Success      200      {object}  domain.User
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /users/{userID} [get]
// @Security BearerAuth
func (h *UserHandler) HandleGetUser(ctx *gin.Context) {
	userID, respErr := pathUserID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	user, err := h.svc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("user", "ID", userID))
			return
		}

		err = fmt.Errorf("v1.HandleGetUser -> h.svc.GetUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandleGetPurchases godoc
// @Summary      List a user's ticket purchases
// @Tags         users
// @Produce      json
// @Param        userID   path      int  true  "user ID"
// @Success      200      {array}   domain.PurchaseRecord
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /users/{userID}/purchases [get]
// @Security BearerAuth
func (h *UserHandler) HandleGetPurchases(ctx *gin.Context) {
	userID, respErr := pathUserID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	records, err := h.svc.GetPurchases(ctx.Request.Context(), userID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetPurchases -> h.svc.GetPurchases -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, records)
}

// HandleAddPurchase godoc
// @Summary      Record a ticket purchase
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        userID   path      int  true  "user ID"
// @Param        request  body      request.AddPurchaseRequest true "request body"
// @Success      201      {object}  domain.PurchaseRecord
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /users/{userID}/purchases [post]
// @Security BearerAuth
func (h *UserHandler) HandleAddPurchase(ctx *gin.Context) {
	userID, respErr := pathUserID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.AddPurchaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.AddPurchase(ctx.Request.Context(), domain.PurchaseRecord{
		UserID:      userID,
		MatchID:     req.MatchID,
		HomeTeam:    req.HomeTeam,
		AwayTeam:    req.AwayTeam,
		Venue:       req.Venue,
		Quantity:    req.Quantity,
		PurchasedAt: time.Now(),
	})
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("user", "ID", userID))
			return
		}

		err = fmt.Errorf("v1.HandleAddPurchase -> h.svc.AddPurchase -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}
