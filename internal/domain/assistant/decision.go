// Package assistant defines the contracts for the natural language assistant:
// the language model client, the tool registry and the single line
// action protocol the decision stage of the model must follow.
package assistant

import (
	"errors"
	"strings"
)

// Decision kinds the model may answer with
const (
	DecisionToolCall     = "TOOL_CALL"
	DecisionDirectAnswer = "DIRECT_ANSWER"
)

const (
	actionPrefix       = "ACTION:"
	toolCallPrefix     = "ACTION: TOOL_CALL"
	directAnswerPrefix = "ACTION: DIRECT_ANSWER"
)

// ErrUnparsableDecision indicates the model output did not follow the action protocol
var ErrUnparsableDecision = errors.New("model output does not follow the action protocol")

// Decision is the parsed outcome of the decision stage
type Decision struct {
	Kind   string
	Tool   string
	Args   []string
	Answer string
}

// ParseDecision parses a single decision line of the form
//
//	ACTION: TOOL_CALL | <tool_name> | <arg>...
//	ACTION: DIRECT_ANSWER | <text>
//
// Surrounding whitespace is tolerated and empty tool arguments are dropped.
func ParseDecision(output string) (*Decision, error) {
	line := strings.TrimSpace(output)

	switch {
	case strings.HasPrefix(line, toolCallPrefix):
		parts := strings.Split(line, "|")
		if len(parts) < 2 {
			return nil, ErrUnparsableDecision
		}
		tool := strings.TrimSpace(parts[1])
		if tool == "" {
			return nil, ErrUnparsableDecision
		}
		var args []string
		for _, part := range parts[2:] {
			if arg := strings.TrimSpace(part); arg != "" {
				args = append(args, arg)
			}
		}
		return &Decision{Kind: DecisionToolCall, Tool: tool, Args: args}, nil

	case strings.HasPrefix(line, directAnswerPrefix):
		answer := strings.TrimPrefix(line, directAnswerPrefix)
		answer = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(answer), "|"))
		return &Decision{Kind: DecisionDirectAnswer, Answer: answer}, nil

	default:
		return nil, ErrUnparsableDecision
	}
}
