package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdAdd      CommandType = "add"
	CmdRemove   CommandType = "remove"
	CmdList     CommandType = "list"
	CmdOff      CommandType = "off"
	CmdPrefer   CommandType = "prefer"
	CmdClear    CommandType = "clear"
	CmdWeekend  CommandType = "weekend"
	CmdRequests CommandType = "requests"
	CmdGenerate CommandType = "generate"
	CmdConfig   CommandType = "config"
	CmdPause    CommandType = "pause"
	CmdResume   CommandType = "resume"
	CmdHelp     CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch strings.ToLower(parts[0]) {
	case "add":
		cmd.Type = CmdAdd
	case "remove", "rm":
		cmd.Type = CmdRemove
	case "list", "ls":
		cmd.Type = CmdList
	case "off":
		cmd.Type = CmdOff
	case "prefer", "pref":
		cmd.Type = CmdPrefer
	case "clear":
		cmd.Type = CmdClear
	case "weekend":
		cmd.Type = CmdWeekend
	case "requests":
		cmd.Type = CmdRequests
	case "generate", "gen":
		cmd.Type = CmdGenerate
	case "config":
		cmd.Type = CmdConfig
	case "pause":
		cmd.Type = CmdPause
	case "resume":
		cmd.Type = CmdResume
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	if len(parts) > 1 {
		cmd.Args = parts[1:]
	}

	return cmd, nil
}

// ExtractUserID returns the user ID of a mention like <@U123|name>.
func ExtractUserID(mention string) (string, bool) {
	mention = strings.TrimSpace(mention)
	if !strings.HasPrefix(mention, "<@") || !strings.HasSuffix(mention, ">") {
		return "", false
	}

	userID := strings.TrimSuffix(strings.TrimPrefix(mention, "<@"), ">")
	if i := strings.Index(userID, "|"); i >= 0 {
		userID = userID[:i]
	}

	return userID, userID != ""
}

// SplitTarget returns the mentioned user and the remaining arguments. When
// the first argument is not a mention the caller is the target.
func SplitTarget(args []string, callerID string) (string, []string) {
	if len(args) > 0 {
		if userID, ok := ExtractUserID(args[0]); ok {
			return userID, args[1:]
		}
	}
	return callerID, args
}

func GetHelpText() string {
	return `*Available Commands:*

*Manage Members:*
• ` + "`/roster add @user1 @user2`" + ` - Add members to the roster
• ` + "`/roster remove @user`" + ` - Remove a member from the roster
• ` + "`/roster list`" + ` - List all members
• ` + "`/roster weekend @user on|off`" + ` - Always give a member weekends off

*Requests:* (dates as YYYY-MM-DD, @user defaults to you)
• ` + "`/roster off [@user] DATE...`" + ` - Declare mandatory days off
• ` + "`/roster prefer [@user] DATE...`" + ` - Declare preferred rest days
• ` + "`/roster clear [@user] DATE...`" + ` - Remove declared days
• ` + "`/roster requests [YYYY-MM]`" + ` - List requests for a month (default next month)

*Roster:*
• ` + "`/roster generate [YYYY-MM]`" + ` - Preview the roster for a month (default next month)

*Configuration:*
• ` + "`/roster config publish-day N`" + ` - Day of month to post next month's roster (1-28)
• ` + "`/roster config time HH:MM`" + ` - Time to post (ex: 09:30)
• ` + "`/roster config offset +HH:MM`" + ` - UTC offset for dates and posting (ex: +09:00)
• ` + "`/roster config show`" + ` - Show current settings

*Control:*
• ` + "`/roster pause`" + ` - Pause the monthly post
• ` + "`/roster resume`" + ` - Resume the monthly post`
}
