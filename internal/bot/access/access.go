// Package access decides whether a chat user may run leaderboard lookups.
package access

import (
	"context"

	"github.com/eros1981/fanbase-inside-out-top5/pkg/logging"
)

// Directory lists the members of a user group. Implemented against the chat
// platform's directory API; narrowed to an interface for testing.
type Directory interface {
	GroupMembers(ctx context.Context, groupID string) ([]string, error)
}

// Checker authorizes principals against an allowlist or a directory group.
// The allowlist, when configured, is authoritative: group membership is only
// consulted when no allowlist exists. With neither configured every request
// is denied.
type Checker struct {
	allowedUserIDs map[string]struct{}
	groupID        string
	directory      Directory
	logger         logging.Logger
}

// NewChecker builds an authorizer. allowedUserIDs and groupID may each be
// empty; directory may be nil when no group is configured.
func NewChecker(allowedUserIDs []string, groupID string, directory Directory, logger logging.Logger) *Checker {
	allowed := make(map[string]struct{}, len(allowedUserIDs))
	for _, id := range allowedUserIDs {
		if id != "" {
			allowed[id] = struct{}{}
		}
	}
	return &Checker{
		allowedUserIDs: allowed,
		groupID:        groupID,
		directory:      directory,
		logger:         logger,
	}
}

// Allowed reports whether the user may invoke the pipeline. Directory lookup
// failures are folded into denial, never surfaced as errors.
func (c *Checker) Allowed(ctx context.Context, userID string) bool {
	if len(c.allowedUserIDs) > 0 {
		_, ok := c.allowedUserIDs[userID]
		return ok
	}

	if c.groupID != "" && c.directory != nil {
		members, err := c.directory.GroupMembers(ctx, c.groupID)
		if err != nil {
			c.logger.WithError(err).WithField("group_id", c.groupID).Error("Group membership lookup failed; denying access")
			return false
		}
		for _, member := range members {
			if member == userID {
				return true
			}
		}
		return false
	}

	c.logger.Warn("No authorization method configured; denying access")
	return false
}
