// Package commands parses the palette input line into typed commands and
// dispatches them to configured handlers.
package commands

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeAdd       Type = "add"
	TypeTask      Type = "task"
	TypeDone      Type = "done"
	TypeSkip      Type = "skip"
	TypeArchive   Type = "archive"
	TypeUnarchive Type = "unarchive"
	TypeEnergy    Type = "energy"
	TypePriority  Type = "priority"
	TypeShow      Type = "show"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// AddArgs creates a todo. Priority comes from a !high/!medium/!low token
// and Category from a #name token anywhere in the input.
type AddArgs struct {
	Title    string
	Priority string
	Category string
}

// TaskArgs creates a scheduled task; At is the "HH:MM" start clock.
type TaskArgs struct {
	Title string
	At    string
}

type TargetArgs struct {
	Target string
}

type EnergyArgs struct {
	Level string
}

type PriorityArgs struct {
	Target string
	Level  string
}

type ShowArgs struct {
	Subject  string
	Category string
}

type Command struct {
	Type      Type
	Raw       string
	Add       *AddArgs
	Task      *TaskArgs
	Done      *TargetArgs
	Skip      *TargetArgs
	Archive   *TargetArgs
	Unarchive *TargetArgs
	Energy    *EnergyArgs
	Priority  *PriorityArgs
	Show      *ShowArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeTask:
		return parseTask(input, args)
	case TypeDone:
		return parseTarget(input, TypeDone, args)
	case TypeSkip:
		return parseTarget(input, TypeSkip, args)
	case TypeArchive:
		return parseTarget(input, TypeArchive, args)
	case TypeUnarchive:
		return parseTarget(input, TypeUnarchive, args)
	case TypeEnergy:
		return parseEnergy(input, args)
	case TypePriority:
		return parsePriority(input, args)
	case TypeShow:
		return parseShow(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}
	out := AddArgs{}
	titleParts := make([]string, 0, len(args))
	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "!"):
			out.Priority = strings.ToLower(strings.TrimPrefix(arg, "!"))
		case strings.HasPrefix(arg, "#"):
			out.Category = strings.TrimPrefix(arg, "#")
		default:
			titleParts = append(titleParts, arg)
		}
	}
	out.Title = strings.TrimSpace(strings.Join(titleParts, " "))
	if out.Title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}
	switch out.Priority {
	case "", "high", "medium", "low", "none":
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown priority: %s", out.Priority)}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &out}, nil
}

func parseTask(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "task requires a title"}
	}
	// Everything before a trailing "at HH:MM" is the title.
	at := ""
	titleEnd := len(args)
	if len(args) >= 2 && strings.EqualFold(args[len(args)-2], "at") {
		at = args[len(args)-1]
		titleEnd = len(args) - 2
	}
	title := strings.TrimSpace(strings.Join(args[:titleEnd], " "))
	if title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "task requires a title"}
	}
	if at != "" && !validClock(at) {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid start time: %s", at)}
	}
	return Command{Type: TypeTask, Raw: raw, Task: &TaskArgs{Title: title, At: at}}, nil
}

func parseTarget(raw string, t Type, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a target", t)}
	}
	target := &TargetArgs{Target: strings.Join(args, " ")}
	cmd := Command{Type: t, Raw: raw}
	switch t {
	case TypeDone:
		cmd.Done = target
	case TypeSkip:
		cmd.Skip = target
	case TypeArchive:
		cmd.Archive = target
	case TypeUnarchive:
		cmd.Unarchive = target
	}
	return cmd, nil
}

func parseEnergy(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "energy requires a level"}
	}
	level := strings.ToLower(args[0])
	switch level {
	case "low", "medium", "high":
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown energy level: %s", level)}
	}
	return Command{Type: TypeEnergy, Raw: raw, Energy: &EnergyArgs{Level: level}}, nil
}

func parsePriority(raw string, args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "priority requires target and level"}
	}
	level := strings.ToLower(args[len(args)-1])
	switch level {
	case "high", "medium", "low", "none":
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown priority: %s", level)}
	}
	return Command{Type: TypePriority, Raw: raw, Priority: &PriorityArgs{
		Target: strings.Join(args[:len(args)-1], " "),
		Level:  level,
	}}, nil
}

func parseShow(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "show requires a subject"}
	}
	subject := strings.ToLower(args[0])
	switch subject {
	case "today", "todos", "archived", "calm", "focus":
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown show subject: %s", subject)}
	}
	category := ""
	for _, arg := range args[1:] {
		if strings.HasPrefix(strings.ToLower(arg), "cat:") {
			category = strings.TrimSpace(arg[len("cat:"):])
		}
	}
	return Command{Type: TypeShow, Raw: raw, Show: &ShowArgs{Subject: subject, Category: category}}, nil
}

func validClock(v string) bool {
	parts := strings.Split(v, ":")
	if len(parts) != 2 || len(parts[0]) == 0 || len(parts[1]) != 2 {
		return false
	}
	hour, ok := atoi(parts[0])
	if !ok || hour < 0 || hour > 23 {
		return false
	}
	minute, ok := atoi(parts[1])
	return ok && minute >= 0 && minute <= 59
}

func atoi(v string) (int, bool) {
	n := 0
	for _, r := range v {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}
