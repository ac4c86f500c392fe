package directory

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/i5heu/relay-gatekeeper/internal/directive"
	"github.com/i5heu/relay-gatekeeper/pkg/types"
	"github.com/nbd-wtf/go-nostr"
)

// ListKind is the event kind of list documents.
const ListKind = 30000

const (
	tagLabel   = "d"
	tagAddress = "p"
)

type listEntry struct {
	Pubkey string `json:"pubkey"`
}

// encodeList renders the set as a sorted JSON array of entries.
func encodeList(set types.IdentitySet) ([]byte, error) {
	entries := make([]listEntry, 0, len(set))
	for _, s := range set.Strings() {
		entries = append(entries, listEntry{Pubkey: s})
	}
	return json.Marshal(entries)
}

func decodeList(data []byte) ([]types.Identity, []string, error) {
	var entries []listEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, nil, fmt.Errorf("decode list: %w", err)
	}
	values := make([]string, 0, len(entries))
	for _, e := range entries {
		values = append(values, e.Pubkey)
	}
	ids, rejected := types.ParseIdentities(values)
	return ids, rejected, nil
}

func labelKind(label string) directive.Kind {
	if label == directive.LabelAllow {
		return directive.Admit
	}
	return directive.Deny
}

// documentTags builds the label, self address and redundancy tags.
func documentTags(label, self string, changed []types.Identity) nostr.Tags {
	return nostr.Tags{
		{tagLabel, label},
		{tagAddress, self},
		nostr.Tag(directive.Tag(labelKind(label), changed)),
	}
}

// documentLabel returns the value of the first "d" tag.
func documentLabel(ev *nostr.Event) string {
	for _, tag := range ev.Tags {
		if len(tag) >= 2 && tag[0] == tagLabel {
			return tag[1]
		}
	}
	return ""
}

// tagIdentities reads the plaintext redundancy tags back.
func tagIdentities(ev *nostr.Event, label string) types.IdentitySet {
	tags := make([][]string, 0, len(ev.Tags))
	for _, tag := range ev.Tags {
		tags = append(tags, []string(tag))
	}
	return directive.Collect(directive.Parse(tags), labelKind(label))
}

// restoreFilter selects candidate documents for label. Allow documents
// must be authored by the service, deny documents must reference it.
func restoreFilter(label, self string) nostr.Filter {
	f := nostr.Filter{
		Kinds: []int{ListKind},
		Tags:  nostr.TagMap{tagLabel: []string{label}},
	}
	if label == directive.LabelAllow {
		f.Authors = []string{self}
	} else {
		f.Tags[tagAddress] = []string{self}
	}
	return f
}

// selectLatest returns the accepted candidate with the greatest created_at.
// Equal timestamps resolve to the lowest id.
func selectLatest(
	candidates []*nostr.Event,
	accept func(*nostr.Event) bool,
) *nostr.Event {
	kept := make([]*nostr.Event, 0, len(candidates))
	for _, ev := range candidates {
		if ev != nil && accept(ev) {
			kept = append(kept, ev)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	sort.Slice(kept, func(i, j int) bool {
		if kept[i].CreatedAt != kept[j].CreatedAt {
			return kept[i].CreatedAt > kept[j].CreatedAt
		}
		return kept[i].ID < kept[j].ID
	})
	return kept[0]
}
