package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/CharlotteLevula/my-health-project/internal/domain/assistant"
	"github.com/CharlotteLevula/my-health-project/internal/domain/polar"
	"github.com/CharlotteLevula/my-health-project/internal/pkg/logger"
)

// fallbackAnswer is returned when the model ignores the action protocol
const fallbackAnswer = "Sorry, I could not make sense of that. Try asking about your sleep, steps, readiness or logging a gym set."

type assistantService struct {
	model      assistant.ModelClient
	tools      map[string]assistant.Tool
	toolOrder  []string
	tokenStore polar.TokenStore
	logger     logger.Logger
}

// NewAssistantService creates a new instance of assistant.Service.
// The token store supplies the athlete profile used as coaching context;
// when no token is stored the profile defaults apply.
func NewAssistantService(
	model assistant.ModelClient,
	tools []assistant.Tool,
	tokenStore polar.TokenStore,
	logger logger.Logger,
) (assistant.Service, error) {
	if len(tools) == 0 {
		return nil, fmt.Errorf("assistant requires at least one tool")
	}

	byName := make(map[string]assistant.Tool, len(tools))
	order := make([]string, 0, len(tools))
	for _, tool := range tools {
		if _, exists := byName[tool.Name()]; exists {
			return nil, fmt.Errorf("duplicate tool name %q", tool.Name())
		}
		byName[tool.Name()] = tool
		order = append(order, tool.Name())
	}

	return &assistantService{
		model:      model,
		tools:      byName,
		toolOrder:  order,
		tokenStore: tokenStore,
		logger:     logger,
	}, nil
}

// ProcessQuery runs the two stage dispatch: the model first decides
// between a tool call and a direct answer on a single line, then a
// second completion phrases the tool result as coaching advice.
func (s *assistantService) ProcessQuery(ctx context.Context, query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", fmt.Errorf("query must not be empty")
	}

	output, err := s.model.Generate(ctx, s.decisionPrompt(query), &assistant.GenerateOptions{
		Stop: []string{"\n"},
	})
	if err != nil {
		return "", fmt.Errorf("decision stage failed: %w", err)
	}

	decision, err := assistant.ParseDecision(output)
	if err != nil {
		if errors.Is(err, assistant.ErrUnparsableDecision) {
			s.logger.Warn("Model ignored the action protocol, answering with the fallback")
			return fallbackAnswer, nil
		}
		return "", err
	}

	if decision.Kind == assistant.DecisionDirectAnswer {
		return decision.Answer, nil
	}

	tool, ok := s.tools[decision.Tool]
	if !ok {
		return "", fmt.Errorf("model requested unknown tool %q", decision.Tool)
	}

	s.logger.Info("Dispatching tool ", decision.Tool, " with ", len(decision.Args), " arguments")
	result, err := tool.Invoke(ctx, decision.Args)
	if err != nil {
		return "", fmt.Errorf("tool %s failed: %w", decision.Tool, err)
	}

	answer, err := s.model.Generate(ctx, s.answerPrompt(query, result), nil)
	if err != nil {
		return "", fmt.Errorf("answer stage failed: %w", err)
	}
	return strings.TrimSpace(answer), nil
}

func (s *assistantService) decisionPrompt(query string) string {
	var b strings.Builder
	b.WriteString("You are a health assistant with access to the user's synced wearable data. Decide how to handle the question below.\n\n")
	b.WriteString("Available tools:\n")
	for _, name := range s.toolOrder {
		fmt.Fprintf(&b, "- %s: %s\n", name, s.tools[name].Description())
	}
	now := time.Now()
	fmt.Fprintf(&b, "\nToday's date is %s. Yesterday was %s. Resolve words like \"yesterday\" to these dates.\n\n",
		now.Format(workoutDateFormat), now.AddDate(0, 0, -1).Format(workoutDateFormat))
	b.WriteString("Reply with exactly one line, no explanation:\n")
	b.WriteString("ACTION: TOOL_CALL | <tool_name> | <arg1> | <arg2> | ...\n")
	b.WriteString("or\n")
	b.WriteString("ACTION: DIRECT_ANSWER | <your answer>\n\n")
	fmt.Fprintf(&b, "Question: %s\n", query)
	return b.String()
}

func (s *assistantService) answerPrompt(query, toolResult string) string {
	profile := s.profile()

	var b strings.Builder
	b.WriteString("You are a supportive personal health coach.\n")
	fmt.Fprintf(&b, "The athlete is %s, %d years old, %.1f kg, %.1f cm.\n\n",
		strings.ToLower(profile.Gender), profile.Age, profile.WeightKg, profile.HeightCm)
	fmt.Fprintf(&b, "The athlete asked: %s\n\n", query)
	fmt.Fprintf(&b, "Their data says:\n%s\n\n", toolResult)
	b.WriteString("Answer the question using only this data. Be concise, concrete and encouraging. Mention recovery when the data flags low readiness or short sleep.")
	return b.String()
}

// profile loads the registration profile; defaults apply when the OAuth
// flow has not been run yet
func (s *assistantService) profile() polar.Profile {
	token, err := s.tokenStore.Load()
	if err != nil {
		if !errors.Is(err, polar.ErrTokenNotFound) {
			s.logger.Warn("Failed to load polar token for profile: ", err)
		}
		return (*polar.Token)(nil).Profile()
	}
	return token.Profile()
}
