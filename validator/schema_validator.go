package validator

import (
	"github.com/Oudwins/zog"
)

var SaveMessageSchema = zog.Struct(zog.Shape{
	"Username":    zog.String().Required(),
	"SessionID":   zog.String().Required(),
	"Content":     zog.String().Required(),
	"MessageType": zog.String().OneOf([]string{"text", "image"}).Required(),
})

// FirstIssue flattens a validation result into a single user-facing message.
func FirstIssue(issues zog.ZogIssueMap) string {
	if list, ok := issues["$first"]; ok && len(list) > 0 && list[0] != nil {
		return list[0].Message
	}
	for field, list := range issues {
		if field == "$first" || field == "$root" {
			continue
		}
		for _, issue := range list {
			if issue != nil && issue.Message != "" {
				return field + ": " + issue.Message
			}
		}
	}
	return "invalid payload"
}
