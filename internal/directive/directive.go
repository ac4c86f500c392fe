// Package directive extracts allow and deny instructions from the tags of
// an administrator's control event.
package directive

import (
	"github.com/i5heu/relay-gatekeeper/pkg/types"
)

// Kind is the action a directive asks for.
type Kind int

const (
	Admit Kind = iota + 1
	Deny
)

const (
	LabelAllow = "allow"
	LabelDeny  = "deny"
)

func (k Kind) String() string {
	switch k {
	case Admit:
		return LabelAllow
	case Deny:
		return LabelDeny
	}
	return "unknown"
}

// Directive is one parsed tag entry. Rejected holds the values that were
// not well formed identities.
type Directive struct {
	Kind       Kind
	Identities []types.Identity
	Rejected   []string
}

// Parse walks tags in order. A tag whose first value is "allow" or "deny"
// yields a directive over the remaining values, every other tag is
// ignored. A label with no values yields an empty directive.
func Parse(tags [][]string) []Directive { // A
	var out []Directive
	for _, tag := range tags {
		if len(tag) == 0 {
			continue
		}
		var kind Kind
		switch tag[0] {
		case LabelAllow:
			kind = Admit
		case LabelDeny:
			kind = Deny
		default:
			continue
		}
		ids, rejected := types.ParseIdentities(tag[1:])
		out = append(out, Directive{
			Kind:       kind,
			Identities: ids,
			Rejected:   rejected,
		})
	}
	return out
}

// Collect unions the identities of every directive of kind.
func Collect(directives []Directive, kind Kind) types.IdentitySet {
	set := make(types.IdentitySet)
	for _, d := range directives {
		if d.Kind != kind {
			continue
		}
		for _, id := range d.Identities {
			set.Add(id)
		}
	}
	return set
}

// Tag renders a directive back into tag form.
func Tag(kind Kind, ids []types.Identity) []string {
	tag := make([]string, 0, len(ids)+1)
	tag = append(tag, kind.String())
	for _, id := range ids {
		tag = append(tag, id.String())
	}
	return tag
}
