package cli

import (
	"github.com/jessevdk/go-flags"

	"hourlog/internal/errors"
)

// Options holds the command line surface, for go-flags to parse into.
// The four command flags are mutually exclusive; with none of them set
// the status report is printed.
type Options struct {
	ClockIn  bool   `short:"i" long:"clock-in" description:"mark current time as clock start"`
	ClockOut bool   `short:"o" long:"clock-out" description:"mark current time as clock end"`
	Export   string `short:"e" long:"export" description:"export timesheet data to file" value-name:"<file>"`
	Delete   bool   `short:"d" long:"delete-clock-in" description:"delete the most recent clock-in / hours"`

	StartTime string `long:"start-time" description:"specify a specific starting time" value-name:"<iso8601>"`
	EndTime   string `long:"end-time" description:"specify a specific ending time" value-name:"<iso8601>"`

	Args struct {
		Project     string   `positional-arg-name:"project" description:"project being worked on"`
		Description []string `positional-arg-name:"description" description:"description of tasks completed"`
	} `positional-args:"yes"`
}

// Command identifies the operation selected on the command line.
type Command int

const (
	CommandStatus Command = iota
	CommandClockIn
	CommandClockOut
	CommandExport
	CommandDelete
)

// ParseArgs parses command line arguments into Options.
func ParseArgs(args []string) (*Options, error) {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[OPTIONS] [project] [description...]"
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}
	return &opts, nil
}

// Command returns the selected command, or a validation error when more
// than one command flag was given.
func (o *Options) Command() (Command, error) {
	selected := 0
	cmd := CommandStatus
	if o.ClockIn {
		selected++
		cmd = CommandClockIn
	}
	if o.ClockOut {
		selected++
		cmd = CommandClockOut
	}
	if o.Export != "" {
		selected++
		cmd = CommandExport
	}
	if o.Delete {
		selected++
		cmd = CommandDelete
	}
	if selected > 1 {
		return CommandStatus, errors.NewValidationError(
			"clock-in, clock-out, export and delete-clock-in are mutually exclusive", nil)
	}
	return cmd, nil
}
