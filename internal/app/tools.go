package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/CharlotteLevula/my-health-project/internal/domain/assistant"
	"github.com/CharlotteLevula/my-health-project/internal/domain/oura"
	"github.com/CharlotteLevula/my-health-project/internal/domain/workouts"
	"github.com/CharlotteLevula/my-health-project/internal/pkg/logger"
)

// Coaching thresholds the readiness report flags against
const (
	lowReadinessScore   = 70
	shortSleepThreshold = 7 * 3600
)

// sleepSummaryTool renders the sleep summary of one day
type sleepSummaryTool struct {
	sleepRepo oura.SleepRepository
}

// NewSleepSummaryTool creates the get_sleep_summary assistant tool
func NewSleepSummaryTool(sleepRepo oura.SleepRepository) assistant.Tool {
	return &sleepSummaryTool{sleepRepo: sleepRepo}
}

func (t *sleepSummaryTool) Name() string { return "get_sleep_summary" }

func (t *sleepSummaryTool) Description() string {
	return "Returns the sleep summary for a date (YYYY-MM-DD). Without a date the most recent night is used."
}

func (t *sleepSummaryTool) Invoke(ctx context.Context, args []string) (string, error) {
	var record *oura.SleepRecord
	var err error

	if len(args) > 0 {
		record, err = t.sleepRepo.GetByDay(ctx, args[0])
	} else {
		var recent []*oura.SleepRecord
		recent, err = t.sleepRepo.ListRecent(ctx, 1)
		if err == nil {
			if len(recent) == 0 {
				return "No sleep data has been synced yet.", nil
			}
			record = recent[0]
		}
	}
	if err != nil {
		return "", fmt.Errorf("failed to load sleep summary: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Sleep on %s: total %s, deep %s, rem %s, light %s, awake %s, efficiency %d%%.",
		record.Day,
		formatSeconds(record.TotalSleepDuration),
		formatSeconds(record.DeepSleepDuration),
		formatSeconds(record.RemSleepDuration),
		formatSeconds(record.LightSleepDuration),
		formatSeconds(record.AwakeTime),
		record.Efficiency)
	if record.Score != nil {
		fmt.Fprintf(&b, " Sleep score %d.", *record.Score)
	}
	if record.AverageHRV != nil {
		fmt.Fprintf(&b, " Average HRV %.0f ms.", *record.AverageHRV)
	}
	if record.LowestHeartRate != nil {
		fmt.Fprintf(&b, " Lowest heart rate %.0f bpm.", *record.LowestHeartRate)
	}
	return b.String(), nil
}

// activityStepsTool renders the activity summary of one day
type activityStepsTool struct {
	activityRepo oura.ActivityRepository
}

// NewActivityStepsTool creates the get_activity_steps assistant tool
func NewActivityStepsTool(activityRepo oura.ActivityRepository) assistant.Tool {
	return &activityStepsTool{activityRepo: activityRepo}
}

func (t *activityStepsTool) Name() string { return "get_activity_steps" }

func (t *activityStepsTool) Description() string {
	return "Returns steps and calories for a date (YYYY-MM-DD). Without a date today is used."
}

func (t *activityStepsTool) Invoke(ctx context.Context, args []string) (string, error) {
	day := time.Now().Format(oura.DayFormat)
	if len(args) > 0 {
		day = args[0]
	}

	record, err := t.activityRepo.GetByDay(ctx, day)
	if err != nil {
		return "", fmt.Errorf("failed to load activity summary: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Activity on %s: %d steps, %d active calories, %d total calories.",
		record.Day, record.Steps, record.ActiveCalories, record.TotalCalories)
	if record.Score != nil {
		fmt.Fprintf(&b, " Activity score %d.", *record.Score)
	}
	return b.String(), nil
}

// logGymSetTool stores one manually logged set
type logGymSetTool struct {
	setRepo workouts.SetRepository
	logger  logger.Logger
}

// NewLogGymSetTool creates the log_gym_set assistant tool
func NewLogGymSetTool(setRepo workouts.SetRepository, logger logger.Logger) assistant.Tool {
	return &logGymSetTool{setRepo: setRepo, logger: logger}
}

func (t *logGymSetTool) Name() string { return "log_gym_set" }

func (t *logGymSetTool) Description() string {
	return "Logs a gym set. Arguments: date (YYYY-MM-DD), exercise name, weight in kg, repetitions, number of sets."
}

func (t *logGymSetTool) Invoke(ctx context.Context, args []string) (string, error) {
	if len(args) != 5 {
		return "", fmt.Errorf("log_gym_set expects 5 arguments (date, exercise, weight_kg, repetitions, sets), got %d", len(args))
	}

	weight, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return "", fmt.Errorf("invalid weight %q: %w", args[2], err)
	}
	repetitions, err := strconv.Atoi(args[3])
	if err != nil {
		return "", fmt.Errorf("invalid repetitions %q: %w", args[3], err)
	}
	setCount, err := strconv.Atoi(args[4])
	if err != nil {
		return "", fmt.Errorf("invalid set count %q: %w", args[4], err)
	}

	set := &workouts.Set{
		WorkoutDate: args[0],
		Exercise:    args[1],
		WeightKg:    weight,
		Repetitions: repetitions,
		SetNumber:   setCount,
	}
	if err := t.setRepo.Create(ctx, set); err != nil {
		return "", fmt.Errorf("failed to log gym set: %w", err)
	}

	t.logger.Info("Assistant logged gym set ", set.ID)
	return fmt.Sprintf("Logged %s on %s: %d x %d at %.1f kg.",
		set.Exercise, set.WorkoutDate, set.SetNumber, set.Repetitions, set.WeightKg), nil
}

// Default trailing window of the readiness report, in days
const readinessReportDays = 3

// readinessReportTool renders the combined recovery and training picture
type readinessReportTool struct {
	readinessRepo oura.ReadinessRepository
	sleepRepo     oura.SleepRepository
	activityRepo  oura.ActivityRepository
	setRepo       workouts.SetRepository
}

// NewReadinessReportTool creates the get_readiness_report assistant tool
func NewReadinessReportTool(
	readinessRepo oura.ReadinessRepository,
	sleepRepo oura.SleepRepository,
	activityRepo oura.ActivityRepository,
	setRepo workouts.SetRepository,
) assistant.Tool {
	return &readinessReportTool{
		readinessRepo: readinessRepo,
		sleepRepo:     sleepRepo,
		activityRepo:  activityRepo,
		setRepo:       setRepo,
	}
}

func (t *readinessReportTool) Name() string { return "get_readiness_report" }

func (t *readinessReportTool) Description() string {
	return "Summarizes readiness, sleep, activity and the heaviest lifts for a day range. Optional arguments: start date, end date (YYYY-MM-DD); without them the last 3 days are used."
}

func (t *readinessReportTool) Invoke(ctx context.Context, args []string) (string, error) {
	var startDay, endDay string
	if len(args) > 0 {
		startDay = args[0]
	}
	if len(args) > 1 {
		endDay = args[1]
	}
	return BuildReadinessReport(ctx, t.readinessRepo, t.sleepRepo, t.activityRepo, t.setRepo, startDay, endDay)
}

// reportWindow resolves the requested day range. Empty or unparsable
// inputs fall back to the default trailing window.
func reportWindow(startDay, endDay string) (string, string) {
	end, err := time.Parse(oura.DayFormat, endDay)
	if err != nil {
		end = time.Now()
	}
	start, err := time.Parse(oura.DayFormat, startDay)
	if err != nil {
		start = end.AddDate(0, 0, -readinessReportDays)
	}
	return start.Format(oura.DayFormat), end.Format(oura.DayFormat)
}

// BuildReadinessReport renders readiness, sleep and activity rows plus the
// heaviest lift per exercise for the requested window (newest first). Low
// scores and short sleep are flagged for the coaching stage; sections
// without data say so instead of disappearing.
func BuildReadinessReport(
	ctx context.Context,
	readinessRepo oura.ReadinessRepository,
	sleepRepo oura.SleepRepository,
	activityRepo oura.ActivityRepository,
	setRepo workouts.SetRepository,
	startDay, endDay string,
) (string, error) {
	start, end := reportWindow(startDay, endDay)

	windowQuery := func() *oura.RecordQuery {
		query := oura.NewRecordQuery()
		query.StartDay = start
		query.EndDay = end
		query.SortOrder = "desc"
		return query
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Readiness report %s to %s.", start, end)

	readiness, err := readinessRepo.List(ctx, windowQuery())
	if err != nil {
		return "", fmt.Errorf("failed to load readiness: %w", err)
	}
	if len(readiness) == 0 {
		b.WriteString("\nNo readiness data available.")
	} else {
		b.WriteString("\nReadiness:")
		for _, record := range readiness {
			if record.Score == nil {
				fmt.Fprintf(&b, "\n- %s: no score", record.Day)
				continue
			}
			fmt.Fprintf(&b, "\n- %s: score %d", record.Day, *record.Score)
		}
		newest := readiness[0]
		if newest.Score != nil && *newest.Score < lowReadinessScore {
			b.WriteString("\nThe latest score is low, favour recovery over intensity today.")
		}
		if newest.TemperatureDeviation != nil && *newest.TemperatureDeviation > 0.5 {
			fmt.Fprintf(&b, "\nBody temperature is %.1f degrees above baseline.", *newest.TemperatureDeviation)
		}
	}

	sleep, err := sleepRepo.List(ctx, windowQuery())
	if err != nil {
		return "", fmt.Errorf("failed to load sleep: %w", err)
	}
	if len(sleep) == 0 {
		b.WriteString("\nNo sleep data available.")
	} else {
		b.WriteString("\nSleep:")
		for _, record := range sleep {
			fmt.Fprintf(&b, "\n- %s: %s, efficiency %d%%", record.Day, formatSeconds(record.TotalSleepDuration), record.Efficiency)
			if record.Score != nil {
				fmt.Fprintf(&b, ", score %d", *record.Score)
			}
		}
		if sleep[0].TotalSleepDuration < shortSleepThreshold {
			b.WriteString("\nThe last night was under 7 hours, keep training volume moderate.")
		}
	}

	activity, err := activityRepo.List(ctx, windowQuery())
	if err != nil {
		return "", fmt.Errorf("failed to load activity: %w", err)
	}
	if len(activity) == 0 {
		b.WriteString("\nNo activity data available.")
	} else {
		b.WriteString("\nActivity:")
		for _, record := range activity {
			fmt.Fprintf(&b, "\n- %s: %d steps, %d active calories", record.Day, record.Steps, record.ActiveCalories)
			if record.Score != nil {
				fmt.Fprintf(&b, ", score %d", *record.Score)
			}
		}
	}

	sets, err := setRepo.List(ctx, &workouts.SetQuery{StartDate: start, EndDate: end})
	if err != nil {
		return "", fmt.Errorf("failed to load workouts: %w", err)
	}
	if len(sets) == 0 {
		b.WriteString("\nNo workouts logged.")
	} else {
		b.WriteString("\nHeaviest lifts:")
		for _, lift := range maxLiftPerExercise(sets) {
			fmt.Fprintf(&b, "\n- %s: %.1f kg x %d on %s", lift.Exercise, lift.WeightKg, lift.Repetitions, lift.WorkoutDate)
		}
	}

	return b.String(), nil
}

const workoutDateFormat = "2006-01-02"

// maxLiftPerExercise keeps the heaviest set per exercise, in first-seen order
func maxLiftPerExercise(sets []*workouts.Set) []*workouts.Set {
	byExercise := make(map[string]*workouts.Set)
	var order []string
	for _, set := range sets {
		best, ok := byExercise[set.Exercise]
		if !ok {
			byExercise[set.Exercise] = set
			order = append(order, set.Exercise)
			continue
		}
		if set.WeightKg > best.WeightKg {
			byExercise[set.Exercise] = set
		}
	}

	result := make([]*workouts.Set, 0, len(order))
	for _, exercise := range order {
		result = append(result, byExercise[exercise])
	}
	return result
}

// formatSeconds renders a duration in seconds as "7h 12m"
func formatSeconds(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	if hours == 0 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
