package slack

import (
	"errors"
	"fmt"
	"strings"

	"github.com/diegoclair/hybrid-attendance-bot/internal/domain/entity"
)

type CommandType string

const (
	CmdMark  CommandType = "mark"
	CmdClear CommandType = "clear"
	CmdWeeks CommandType = "weeks"
	CmdBelt  CommandType = "belt"
	CmdHelp  CommandType = "help"
)

var ErrMissingCategory = errors.New("missing category, use campus, home or ooo")

var categoryAliases = map[string]entity.WorkCategory{
	"campus":                entity.CategoryOnCampus,
	"office":                entity.CategoryOnCampus,
	entity.OnCampusValue:    entity.CategoryOnCampus,
	"home":                  entity.CategoryRemote,
	"wfh":                   entity.CategoryRemote,
	entity.RemoteValue:      entity.CategoryRemote,
	"ooo":                   entity.CategoryOutOfOffice,
	"off":                   entity.CategoryOutOfOffice,
	"pto":                   entity.CategoryOutOfOffice,
	entity.OutOfOfficeValue: entity.CategoryOutOfOffice,
}

// Command is a parsed slash command. DateKey is empty when the user did not
// give a date, meaning today.
type Command struct {
	Type     CommandType
	Category entity.WorkCategory
	DateKey  string
	Args     []string
	Raw      string
}

// ParseCommand parses the text after the slash command. A bare category
// ("/attendance campus 2024-05-13") is shorthand for mark.
func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}
	if len(parts) > 1 {
		cmd.Args = parts[1:]
	}

	verb := strings.ToLower(parts[0])
	if _, ok := categoryAliases[verb]; ok {
		verb = string(CmdMark)
		cmd.Args = parts
	}

	switch verb {
	case "mark", "set":
		cmd.Type = CmdMark
		if len(cmd.Args) == 0 {
			return nil, ErrMissingCategory
		}
		category, ok := categoryAliases[strings.ToLower(cmd.Args[0])]
		if !ok {
			return nil, fmt.Errorf("unknown category: %s", cmd.Args[0])
		}
		cmd.Category = category
		if len(cmd.Args) > 1 {
			cmd.DateKey = cmd.Args[1]
		}
	case "clear", "unmark":
		cmd.Type = CmdClear
		if len(cmd.Args) > 0 {
			cmd.DateKey = cmd.Args[0]
		}
	case "weeks", "week", "history":
		cmd.Type = CmdWeeks
	case "belt", "score", "status":
		cmd.Type = CmdBelt
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Available Commands:*

*Mark a day:*
• ` + "`/attendance campus [YYYY-MM-DD]`" + ` - You worked on campus (aliases: office)
• ` + "`/attendance home [YYYY-MM-DD]`" + ` - You worked remotely (aliases: remote, wfh)
• ` + "`/attendance ooo [YYYY-MM-DD]`" + ` - You were out of office (aliases: off, pto)
• ` + "`/attendance clear [YYYY-MM-DD]`" + ` - Remove a mark, the day counts as remote again

Without a date the mark applies to today. Weekends are not tracked.

*Compliance:*
• ` + "`/attendance weeks`" + ` - Per-week on-campus percentage for the last 12 weeks
• ` + "`/attendance belt`" + ` - Your score over the best 8 of the last 12 weeks`
}
