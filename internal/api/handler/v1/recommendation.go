package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tiketbola/matchrec/internal/api/handler/v1/request"
	"github.com/tiketbola/matchrec/internal/api/handler/v1/response"
	"github.com/tiketbola/matchrec/internal/domain"
	"github.com/tiketbola/matchrec/internal/service"
)

type RecommendationService interface {
	Recommend(ctx context.Context, userID uint, favoriteTeam string) ([]domain.RecommendationItem, error)
	ListMatches(ctx context.Context) ([]domain.Match, error)
}

type RecommendationHandler struct {
	svc RecommendationService
}

func NewRecommendationHandler(svc RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		svc: svc,
	}
}

// HandleRecommend godoc
// @Summary      Get match recommendations for a user
// @Description  Ranks upcoming matches for the user, from purchase history when available, otherwise from the stated favorite team.
// @Tags         recommendations
// @Accept       json
// @Produce      json
// @Param        request  body      request.RecommendationRequest true "request body"
// @Success      200      {object}  response.RecommendationResponse
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Failure      503      {object}  response.Err
// @Router       /recommendations [post]
// @Security BearerAuth
func (h *RecommendationHandler) HandleRecommend(ctx *gin.Context) {
	var req request.RecommendationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	items, err := h.svc.Recommend(ctx.Request.Context(), req.UserID, req.FavoriteTeam)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFavoriteTeam):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrMissingFavoriteTeam))
		case errors.Is(err, service.ErrCatalogUnavailable):
			response.RenderErr(ctx, response.ErrServiceUnavailable(service.ErrCatalogUnavailable))
		case errors.Is(err, service.ErrRecommendationUnavailable):
			response.RenderErr(ctx, response.ErrServiceUnavailable(service.ErrRecommendationUnavailable))
		default:
			err = fmt.Errorf("v1.HandleRecommend -> h.svc.Recommend -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.RecommendationResponse{
		Status:          "success",
		Recommendations: items,
	})
}

// HandleGetMatches godoc
// @Summary      List the match catalog
// @Tags         matches
// @Produce      json
// @Success      200      {array}   domain.Match
// @Failure      503      {object}  response.Err
// @Router       /matches [get]
// @Security BearerAuth
func (h *RecommendationHandler) HandleGetMatches(ctx *gin.Context) {
	matches, err := h.svc.ListMatches(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrCatalogUnavailable) {
			response.RenderErr(ctx, response.ErrServiceUnavailable(service.ErrCatalogUnavailable))
			return
		}

		err = fmt.Errorf("v1.HandleGetMatches -> h.svc.ListMatches -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, matches)
}
