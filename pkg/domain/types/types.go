package types

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// IncidentID represents an incident identifier assigned by the incident store
type IncidentID int

// String returns the string representation
func (id IncidentID) String() string {
	return fmt.Sprintf("%d", id)
}

// Int returns the int representation
func (id IncidentID) Int() int {
	return int(id)
}

// Validate checks that the id has been assigned
func (id IncidentID) Validate() error {
	if id <= 0 {
		return goerr.New("incident ID must be positive", goerr.V("id", int(id)))
	}
	return nil
}

// ParseIncidentID parses a decimal incident id such as a URL path segment
func ParseIncidentID(s string) (IncidentID, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, goerr.Wrap(err, "invalid incident ID", goerr.V("value", s))
	}
	id := IncidentID(n)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// DirectoryID identifies a user in the remote directory
type DirectoryID string

// String returns the string representation
func (id DirectoryID) String() string {
	return string(id)
}

// NewDirectoryID normalizes a raw user identifier. Identifiers issued by the
// identity provider may carry a realm suffix ("abc@realm"); only the part
// before the first '@' identifies the directory object.
func NewDirectoryID(raw string) DirectoryID {
	raw = strings.TrimSpace(raw)
	if i := strings.Index(raw, "@"); i >= 0 {
		raw = raw[:i]
	}
	return DirectoryID(raw)
}

// GroupID identifies a directory group backing a workspace
type GroupID string

// String returns the string representation
func (id GroupID) String() string {
	return string(id)
}

// TeamID identifies a collaboration workspace. The remote service uses the
// backing group's id, but the two are kept apart to make call sites explicit.
type TeamID string

// String returns the string representation
func (id TeamID) String() string {
	return string(id)
}

// ChannelID represents a workspace channel identifier
type ChannelID string

// String returns the string representation
func (id ChannelID) String() string {
	return string(id)
}

// TabID represents a channel tab identifier
type TabID string

// String returns the string representation
func (id TabID) String() string {
	return string(id)
}

// TagID represents a workspace tag identifier
type TagID string

// String returns the string representation
func (id TagID) String() string {
	return string(id)
}

// MembershipID identifies one user's membership in a workspace. It is not
// the same as the user's DirectoryID.
type MembershipID string

// String returns the string representation
func (id MembershipID) String() string {
	return string(id)
}

// PlanID identifies a planning artifact
type PlanID string

// String returns the string representation
func (id PlanID) String() string {
	return string(id)
}

// SiteID identifies the document site attached to a group
type SiteID string

// String returns the string representation
func (id SiteID) String() string {
	return string(id)
}

// ListID identifies a list on a document site
type ListID string

// String returns the string representation
func (id ListID) String() string {
	return string(id)
}

// RequestID identifies one provisioning or reconciliation run
type RequestID string

// String returns the string representation
func (id RequestID) String() string {
	return string(id)
}

// NewRequestID creates a new RequestID
func NewRequestID() RequestID {
	return RequestID(uuid.New().String())
}

// Visibility is the access level of a workspace
type Visibility string

const (
	VisibilityPublic  Visibility = "Public"
	VisibilityPrivate Visibility = "Private"
)

// String returns the string representation of the visibility
func (v Visibility) String() string {
	return string(v)
}

// IsValid checks if the visibility is valid
func (v Visibility) IsValid() bool {
	switch v {
	case VisibilityPublic, VisibilityPrivate:
		return true
	default:
		return false
	}
}
