//go:build unit
// +build unit

package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecision_ToolCall(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		wantTool string
		wantArgs []string
	}{
		{
			name:     "tool call with single argument",
			output:   "ACTION: TOOL_CALL | get_sleep_summary | 2025-10-25",
			wantTool: "get_sleep_summary",
			wantArgs: []string{"2025-10-25"},
		},
		{
			name:     "tool call with typed arguments",
			output:   "ACTION: TOOL_CALL | log_gym_set | 2025-10-25 | Bench Press | 80.5 | 5 | 1",
			wantTool: "log_gym_set",
			wantArgs: []string{"2025-10-25", "Bench Press", "80.5", "5", "1"},
		},
		{
			name:     "tool call without arguments",
			output:   "ACTION: TOOL_CALL | get_readiness_report",
			wantTool: "get_readiness_report",
			wantArgs: nil,
		},
		{
			name:     "surrounding whitespace is tolerated",
			output:   "  ACTION: TOOL_CALL |  get_activity_steps  |  2025-10-24  \n",
			wantTool: "get_activity_steps",
			wantArgs: []string{"2025-10-24"},
		},
		{
			name:     "empty arguments are dropped",
			output:   "ACTION: TOOL_CALL | get_readiness_report | | ",
			wantTool: "get_readiness_report",
			wantArgs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision, err := ParseDecision(tt.output)
			require.NoError(t, err)

			assert.Equal(t, DecisionToolCall, decision.Kind)
			assert.Equal(t, tt.wantTool, decision.Tool)
			assert.Equal(t, tt.wantArgs, decision.Args)
		})
	}
}

func TestParseDecision_DirectAnswer(t *testing.T) {
	decision, err := ParseDecision("ACTION: DIRECT_ANSWER | Hello there! How can I help you today?")
	require.NoError(t, err)

	assert.Equal(t, DecisionDirectAnswer, decision.Kind)
	assert.Equal(t, "Hello there! How can I help you today?", decision.Answer)
}

func TestParseDecision_Garbled(t *testing.T) {
	tests := []struct {
		name   string
		output string
	}{
		{"free text", "I think you slept well last night."},
		{"empty output", ""},
		{"missing tool name", "ACTION: TOOL_CALL |  "},
		{"unknown action", "ACTION: LOOKUP | sleep"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDecision(tt.output)
			assert.ErrorIs(t, err, ErrUnparsableDecision)
		})
	}
}
