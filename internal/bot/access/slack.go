package access

import (
	"context"

	"github.com/slack-go/slack"
)

// SlackDirectory resolves group membership through the Slack usergroups API.
type SlackDirectory struct {
	client *slack.Client
}

// NewSlackDirectory wraps an authenticated Slack client.
func NewSlackDirectory(client *slack.Client) *SlackDirectory {
	return &SlackDirectory{client: client}
}

// GroupMembers returns the user IDs in a Slack usergroup.
func (d *SlackDirectory) GroupMembers(ctx context.Context, groupID string) ([]string, error) {
	return d.client.GetUserGroupMembersContext(ctx, groupID)
}
