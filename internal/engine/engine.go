// Package engine decides whether an event's author may publish.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/i5heu/relay-gatekeeper/internal/directive"
	"github.com/i5heu/relay-gatekeeper/internal/directory"
	"github.com/i5heu/relay-gatekeeper/pkg/types"
)

const contentSampleRunes = 40

const (
	logKeyKind      = "kind"
	logKeyOrigin    = "origin"
	logKeyIPAddr    = "ipAddr"
	logKeyUserAgent = "userAgent"
	logKeyNip05     = "nip05Domain"
	logKeyTagCount  = "tagCount"
	logKeyContent   = "contentSample"
	logKeyAuthor    = "author"
	logKeyDecision  = "decision"
	logKeyDirective = "directive"
	logKeyCount     = "count"
	logKeyRejected  = "rejected"
	logKeyError     = "error"
)

var (
	// ErrMissingEvent is returned for requests without an event.
	ErrMissingEvent = errors.New("request has no event")
	// ErrDirectory marks requests that could not be decided because the
	// directory failed. It is never turned into a verdict.
	ErrDirectory = errors.New("directory unavailable")
)

// Request is one admission question.
type Request struct {
	Event *types.Event
	// AuthPubkey is the transport authenticated author, if any. It takes
	// precedence over Event.Pubkey.
	AuthPubkey  []byte
	IPAddr      string
	Origin      string
	UserAgent   string
	Nip05Domain string
}

type Config struct {
	Directory   directory.Directory
	Admins      types.IdentitySet
	ControlKind uint64
	// ImplicitAllow permits authors with no directory record.
	ImplicitAllow bool
	Logger        *slog.Logger
}

type Engine struct {
	dir           directory.Directory
	admins        types.IdentitySet
	controlKind   uint64
	implicitAllow bool
	logger        *slog.Logger
}

func New(cfg Config) *Engine { // A
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Admins == nil {
		cfg.Admins = make(types.IdentitySet)
	}
	return &Engine{
		dir:           cfg.Directory,
		admins:        cfg.Admins,
		controlKind:   cfg.ControlKind,
		implicitAllow: cfg.ImplicitAllow,
		logger:        cfg.Logger,
	}
}

// Directory returns the directory the engine owns.
func (e *Engine) Directory() directory.Directory {
	return e.dir
}

// Decide classifies one request. An error means the request could not be
// decided; it is never a denial.
func (e *Engine) Decide( // A
	ctx context.Context,
	req Request,
) (types.Verdict, error) {
	if req.Event == nil {
		return types.Verdict{}, ErrMissingEvent
	}
	ev := req.Event
	e.logger.InfoContext(ctx, "received event",
		logKeyKind, ev.Kind,
		logKeyOrigin, req.Origin,
		logKeyIPAddr, req.IPAddr,
		logKeyUserAgent, req.UserAgent,
		logKeyNip05, req.Nip05Domain,
		logKeyTagCount, len(ev.Tags),
		logKeyContent, contentSample(ev.Content))

	raw := ev.Pubkey
	if req.AuthPubkey != nil {
		raw = req.AuthPubkey
	}
	author, err := types.IdentityFromBytes(raw)
	if err != nil {
		e.logger.WarnContext(ctx, "malformed author", logKeyError, err)
		return e.verdict(ctx, author, types.Deny()), nil
	}

	if e.admins.Has(author) && ev.Kind == e.controlKind {
		if err := e.applyDirectives(ctx, ev.Tags); err != nil {
			return types.Verdict{}, err
		}
		return e.verdict(ctx, author, types.Permit()), nil
	}

	lookup, err := e.dir.Get(ctx, author)
	if err != nil {
		return types.Verdict{}, fmt.Errorf("%w: %w", ErrDirectory, err)
	}
	switch {
	case lookup.Admitted():
		return e.verdict(ctx, author, types.Permit()), nil
	case !lookup.Known && e.implicitAllow:
		return e.verdict(ctx, author, types.Permit()), nil
	}
	return e.verdict(ctx, author, types.Deny()), nil
}

// applyDirectives applies every directive in tag order, stopping at the
// first directory failure.
func (e *Engine) applyDirectives( // A
	ctx context.Context,
	tags [][]string,
) error {
	for _, d := range directive.Parse(tags) {
		if len(d.Rejected) > 0 {
			e.logger.WarnContext(ctx, "skipping malformed identities",
				logKeyDirective, d.Kind.String(),
				logKeyRejected, d.Rejected)
		}
		var err error
		switch d.Kind {
		case directive.Admit:
			err = e.dir.Admit(ctx, d.Identities)
		case directive.Deny:
			err = e.dir.Deny(ctx, d.Identities)
		}
		if err != nil {
			return fmt.Errorf("%w: apply %s: %w", ErrDirectory, d.Kind, err)
		}
		e.logger.InfoContext(ctx, "applied directive",
			logKeyDirective, d.Kind.String(),
			logKeyCount, len(d.Identities))
	}
	return nil
}

func (e *Engine) verdict(
	ctx context.Context,
	author types.Identity,
	v types.Verdict,
) types.Verdict {
	e.logger.DebugContext(ctx, "decided",
		logKeyAuthor, author.String(),
		logKeyDecision, v.Decision.String())
	return v
}

func contentSample(s string) string {
	n := 0
	for i := range s {
		if n == contentSampleRunes {
			return s[:i]
		}
		n++
	}
	return s
}
