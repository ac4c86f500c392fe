package types

import (
	"sort"
)

// Status is the stored classification of an account. Absence of a record
// means unknown; unknown is never stored.
type Status uint8

const (
	StatusDeny  Status = 0
	StatusAllow Status = 1
)

func (s Status) String() string {
	switch s {
	case StatusAllow:
		return "allow"
	case StatusDeny:
		return "deny"
	}
	return "deny"
}

func (s Status) Byte() byte {
	return byte(s)
}

// StatusFromByte decodes a stored status byte. Anything other than 1
// decodes as deny.
func StatusFromByte(b byte) Status {
	if b == byte(StatusAllow) {
		return StatusAllow
	}
	return StatusDeny
}

// Lookup is the result of a directory read.
type Lookup struct {
	Status Status
	Known  bool
}

// Admitted reports whether the lookup is an explicit allow record.
func (l Lookup) Admitted() bool {
	return l.Known && l.Status == StatusAllow
}

// Event is the transport independent view of a candidate message.
type Event struct {
	ID        []byte
	Pubkey    []byte
	CreatedAt uint64
	Kind      uint64
	Content   string
	Tags      [][]string
	Sig       []byte
}

// Decision is the verdict of one admission call.
type Decision int

const (
	DecisionPermit Decision = iota + 1
	DecisionDeny
)

func (d Decision) String() string {
	switch d {
	case DecisionPermit:
		return "permit"
	case DecisionDeny:
		return "deny"
	}
	return "unspecified"
}

const (
	MessageOk         = "Ok"
	MessageNotAllowed = "Not allowed to publish"
)

// Verdict pairs a decision with the message handed back to the relay.
type Verdict struct {
	Decision Decision
	Message  string
}

func Permit() Verdict {
	return Verdict{Decision: DecisionPermit, Message: MessageOk}
}

func Deny() Verdict {
	return Verdict{Decision: DecisionDeny, Message: MessageNotAllowed}
}

func sortStrings(s []string) {
	sort.Strings(s)
}
