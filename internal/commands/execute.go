package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add       func(AddArgs) (Result, error)
	Task      func(TaskArgs) (Result, error)
	Done      func(TargetArgs) (Result, error)
	Skip      func(TargetArgs) (Result, error)
	Archive   func(TargetArgs) (Result, error)
	Unarchive func(TargetArgs) (Result, error)
	Energy    func(EnergyArgs) (Result, error)
	Priority  func(PriorityArgs) (Result, error)
	Show      func(ShowArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "add handler not configured"}
		}
		return handlers.Add(*cmd.Add)
	case TypeTask:
		if handlers.Task == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "task handler not configured"}
		}
		return handlers.Task(*cmd.Task)
	case TypeDone:
		if handlers.Done == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "done handler not configured"}
		}
		return handlers.Done(*cmd.Done)
	case TypeSkip:
		if handlers.Skip == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "skip handler not configured"}
		}
		return handlers.Skip(*cmd.Skip)
	case TypeArchive:
		if handlers.Archive == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "archive handler not configured"}
		}
		return handlers.Archive(*cmd.Archive)
	case TypeUnarchive:
		if handlers.Unarchive == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "unarchive handler not configured"}
		}
		return handlers.Unarchive(*cmd.Unarchive)
	case TypeEnergy:
		if handlers.Energy == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "energy handler not configured"}
		}
		return handlers.Energy(*cmd.Energy)
	case TypePriority:
		if handlers.Priority == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "priority handler not configured"}
		}
		return handlers.Priority(*cmd.Priority)
	case TypeShow:
		if handlers.Show == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "show handler not configured"}
		}
		return handlers.Show(*cmd.Show)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
