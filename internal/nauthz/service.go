package nauthz

import (
	"context"
	"errors"
	"log/slog"

	"github.com/i5heu/relay-gatekeeper/internal/engine"
	"github.com/i5heu/relay-gatekeeper/pkg/types"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
)

// NewGRPCServer returns a grpc.Server with srv registered as
// nauthz.Authorization.
func NewGRPCServer(srv AuthorizationServer, opts ...grpc.ServerOption) *grpc.Server {
	s := grpc.NewServer(opts...)
	RegisterAuthorizationServer(s, srv)
	return s
}

// Server adapts the decision engine to the RPC surface.
type Server struct {
	UnimplementedAuthorizationServer

	engine *engine.Engine
	logger *slog.Logger
}

func NewServer(e *engine.Engine, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{engine: e, logger: logger}
}

// EventAdmit answers one admission request. Engine failures become RPC
// errors, never a deny decision.
func (s *Server) EventAdmit( // A
	ctx context.Context,
	req *EventRequest,
) (*EventReply, error) {
	verdict, err := s.engine.Decide(ctx, toEngineRequest(req))
	switch {
	case errors.Is(err, engine.ErrMissingEvent):
		return nil, status.Error(codes.InvalidArgument, err.Error())
	case err != nil:
		s.logger.ErrorContext(ctx, "admission failed", "error", err)
		return nil, status.Error(codes.Internal, "admission could not be decided")
	}
	return toReply(verdict), nil
}

func toEngineRequest(req *EventRequest) engine.Request {
	out := engine.Request{
		AuthPubkey:  req.GetAuthPubkey(),
		IPAddr:      req.GetIpAddr(),
		Origin:      req.GetOrigin(),
		UserAgent:   req.GetUserAgent(),
		Nip05Domain: req.GetNip05().GetDomain(),
	}
	if ev := req.GetEvent(); ev != nil {
		tags := make([][]string, len(ev.GetTags()))
		for i, t := range ev.GetTags() {
			tags[i] = t.GetValues()
		}
		out.Event = &types.Event{
			ID:        ev.GetId(),
			Pubkey:    ev.GetPubkey(),
			CreatedAt: ev.GetCreatedAt(),
			Kind:      ev.GetKind(),
			Content:   ev.GetContent(),
			Tags:      tags,
			Sig:       ev.GetSig(),
		}
	}
	return out
}

func toReply(v types.Verdict) *EventReply {
	d := Decision_DECISION_DENY
	if v.Decision == types.DecisionPermit {
		d = Decision_DECISION_PERMIT
	}
	return &EventReply{Decision: d, Message: proto.String(v.Message)}
}

var _ AuthorizationServer = (*Server)(nil)
