package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"launchloom.app/studio/internal/http/dto"
	"launchloom.app/studio/internal/http/middleware"
	"launchloom.app/studio/internal/model"
	"launchloom.app/studio/internal/service"
)

type MemberHandler struct {
	memberService service.MemberService
}

func NewMemberHandler(memberService service.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

func (h *MemberHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	members, err := h.memberService.List(ctx, c.Param("workspace_id"))
	if err != nil {
		respondError(c, err, "failed to list members")
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(members, int64(len(members)), dto.ToMemberResponse))
}

// Add upserts a member by email.
func (h *MemberHandler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": dto.ValidationMessage(err)})
		return
	}

	member, err := h.memberService.Add(ctx, c.Param("workspace_id"), service.AddMemberInput{
		Email:       req.Email,
		Role:        req.Role,
		InvitedByID: middleware.GetUserID(ctx),
	})
	if err != nil {
		respondError(c, err, "failed to add member")
		return
	}

	c.JSON(http.StatusOK, dto.ToMemberResponse(*member))
}

func (h *MemberHandler) Transition(c *gin.Context) {
	ctx := c.Request.Context()

	var uri dto.MemberActionURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": dto.ValidationMessage(err)})
		return
	}

	var userID *int64
	if uri.Action == model.MemberActionAccept {
		userID = middleware.GetUserID(ctx)
	}

	member, err := h.memberService.Transition(ctx, uri.WorkspaceID, uri.MemberID, uri.Action, userID)
	if err != nil {
		respondError(c, err, "failed to update member")
		return
	}

	c.JSON(http.StatusOK, dto.ToMemberResponse(*member))
}

// AcceptInvite redeems an invite token for the authenticated user.
func (h *MemberHandler) AcceptInvite(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.AcceptInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": dto.ValidationMessage(err)})
		return
	}

	user := middleware.GetUser(ctx)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	member, err := h.memberService.AcceptInvite(ctx, req.Token, user.ID)
	if err != nil {
		respondError(c, err, "failed to accept invitation")
		return
	}

	c.JSON(http.StatusOK, dto.ToMemberResponse(*member))
}
