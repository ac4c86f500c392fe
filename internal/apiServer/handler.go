package apiServer

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/i5heu/relay-gatekeeper/pkg/types"
)

type errorResponse struct {
	Error string `json:"error"`
}

// usersPayload is both the update body and the listing response.
type usersPayload struct {
	Allow []string `json:"allow"`
	Deny  []string `json:"deny"`
}

type updateResponse struct {
	Allowed  int      `json:"allowed"`
	Denied   int      `json:"denied"`
	Rejected []string `json:"rejected"`
}

// handleUpdate admits then denies the given identities. Malformed
// identities are reported back and skipped.
func (s *Server) handleUpdate(c *gin.Context) { // A
	var body usersPayload
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid body: " + err.Error()})
		return
	}

	ctx := c.Request.Context()
	allow, rejectedAllow := types.ParseIdentities(body.Allow)
	deny, rejectedDeny := types.ParseIdentities(body.Deny)
	rejected := append(rejectedAllow, rejectedDeny...)
	if len(rejected) > 0 {
		s.log.WarnContext(ctx, "skipping malformed identities", "rejected", rejected)
	}

	if err := s.dir.Admit(ctx, allow); err != nil {
		s.log.ErrorContext(ctx, "admit failed", "error", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "admit failed"})
		return
	}
	if err := s.dir.Deny(ctx, deny); err != nil {
		s.log.ErrorContext(ctx, "deny failed", "error", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "deny failed"})
		return
	}

	s.log.InfoContext(ctx, "control update applied",
		"allowed", len(allow),
		"denied", len(deny))
	if rejected == nil {
		rejected = []string{}
	}
	c.JSON(http.StatusOK, updateResponse{
		Allowed:  len(allow),
		Denied:   len(deny),
		Rejected: rejected,
	})
}

func (s *Server) handleUsers(c *gin.Context) {
	snap, err := s.dir.Snapshot(c.Request.Context())
	if err != nil {
		s.log.ErrorContext(c.Request.Context(), "snapshot failed", "error", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "snapshot failed"})
		return
	}
	c.JSON(http.StatusOK, usersPayload{
		Allow: snap.Allow.Strings(),
		Deny:  snap.Deny.Strings(),
	})
}
