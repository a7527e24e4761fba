package connector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/CharlotteLevula/my-health-project/internal/domain/polar"
	"github.com/CharlotteLevula/my-health-project/internal/pkg/config"
	"github.com/CharlotteLevula/my-health-project/internal/pkg/logger"

	"github.com/go-resty/resty/v2"
)

const gpxAccept = "application/vnd.polar.exercise.gpx+xml"

type polarClient struct {
	client *resty.Client
	userID int64
	logger logger.Logger
}

// NewPolarAccessClient creates an AccessLink client authenticated with the
// stored OAuth2 token.
func NewPolarAccessClient(settings *config.PolarSettings, token *polar.Token, logger logger.Logger) (polar.AccessClient, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid polar settings: %w", err)
	}
	if !token.Valid() {
		return nil, fmt.Errorf("polar token is missing access token or user id")
	}

	client := resty.New().
		SetBaseURL(settings.BaseURL).
		SetAuthToken(token.AccessToken).
		SetHeader("Accept", "application/json").
		SetTimeout(30 * time.Second)

	return &polarClient{
		client: client,
		userID: token.XUserID,
		logger: logger,
	}, nil
}

func newPolarAccessClientWithResty(client *resty.Client, userID int64, logger logger.Logger) polar.AccessClient {
	return &polarClient{client: client, userID: userID, logger: logger}
}

func (c *polarClient) RegisterUser(ctx context.Context, memberID string) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"member-id": memberID}).
		Post("/users")
	if err != nil {
		return fmt.Errorf("failed to register user: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		c.logger.Info("User registered with Polar AccessLink")
		return nil
	case http.StatusConflict:
		// Already registered
		c.logger.Info("User already registered with Polar AccessLink")
		return nil
	default:
		return fmt.Errorf("user registration returned status %d: %s", resp.StatusCode(), resp.String())
	}
}

func (c *polarClient) GetUserInfo(ctx context.Context) (*polar.UserInfo, error) {
	var info polar.UserInfo

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get(fmt.Sprintf("/users/%d", c.userID))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user info: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("accesslink returned status %d: %s", resp.StatusCode(), resp.String())
	}

	return &info, nil
}

// transactionEnvelope is the creation response of both transaction kinds
type transactionEnvelope struct {
	TransactionID int64    `json:"transaction-id"`
	Exercises     []string `json:"exercises"`
	ActivityLog   []string `json:"activity-log"`
}

func (c *polarClient) CreateExerciseTransaction(ctx context.Context) (*polar.ExerciseBatch, error) {
	envelope, err := c.createTransaction(ctx, fmt.Sprintf("/users/%d/exercise-transactions", c.userID))
	if err != nil {
		return nil, err
	}
	if envelope == nil {
		// 204: no new exercises
		return &polar.ExerciseBatch{}, nil
	}
	return &polar.ExerciseBatch{TransactionID: envelope.TransactionID, Links: envelope.Exercises}, nil
}

func (c *polarClient) CreateActivityTransaction(ctx context.Context) (*polar.ActivityBatch, error) {
	envelope, err := c.createTransaction(ctx, fmt.Sprintf("/users/%d/activity-transactions", c.userID))
	if err != nil {
		return nil, err
	}
	if envelope == nil {
		return &polar.ActivityBatch{}, nil
	}
	return &polar.ActivityBatch{TransactionID: envelope.TransactionID, Links: envelope.ActivityLog}, nil
}

func (c *polarClient) createTransaction(ctx context.Context, path string) (*transactionEnvelope, error) {
	var envelope transactionEnvelope

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&envelope).
		Post(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusCreated:
		return &envelope, nil
	case http.StatusNoContent:
		return nil, nil
	default:
		return nil, fmt.Errorf("transaction creation returned status %d: %s", resp.StatusCode(), resp.String())
	}
}

func (c *polarClient) ListExercises(ctx context.Context, transactionID int64) ([]string, error) {
	return c.listTransaction(ctx, fmt.Sprintf("/users/%d/exercise-transactions/%d", c.userID, transactionID), "exercises")
}

func (c *polarClient) ListActivities(ctx context.Context, transactionID int64) ([]string, error) {
	return c.listTransaction(ctx, fmt.Sprintf("/users/%d/activity-transactions/%d", c.userID, transactionID), "activity-log")
}

func (c *polarClient) listTransaction(ctx context.Context, path, field string) ([]string, error) {
	var envelope map[string][]string

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&envelope).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("failed to list transaction contents: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("transaction listing returned status %d: %s", resp.StatusCode(), resp.String())
	}

	return envelope[field], nil
}

// exerciseSummary is the AccessLink exercise payload. The exercise id has
// been observed both as a number and a string, hence json.Number.
type exerciseSummary struct {
	ID        json.Number `json:"id"`
	PolarUser string      `json:"polar-user"`
	StartTime string      `json:"start-time"`
	Duration  string      `json:"duration"`
	Sport     string      `json:"detailed-sport-info"`
	Distance  *float64    `json:"distance"`
	Calories  *int        `json:"calories"`
	HeartRate struct {
		Average *int `json:"average"`
		Maximum *int `json:"maximum"`
	} `json:"heart-rate"`
}

func (c *polarClient) GetExerciseSummary(ctx context.Context, link string) (*polar.Exercise, error) {
	var summary exerciseSummary

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&summary).
		Get(link)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch exercise summary %s: %w", link, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("exercise summary returned status %d: %s", resp.StatusCode(), resp.String())
	}

	exerciseID, err := summary.ID.Int64()
	if err != nil {
		return nil, fmt.Errorf("could not parse exercise id %q: %w", summary.ID.String(), err)
	}

	exercise := &polar.Exercise{
		PolarUserID:     parseUserLink(summary.PolarUser, c.userID),
		PolarExerciseID: exerciseID,
		StartTime:       summary.StartTime,
		Duration:        summary.Duration,
		Sport:           summary.Sport,
		Distance:        summary.Distance,
		Calories:        summary.Calories,
		AverageHR:       summary.HeartRate.Average,
		MaxHR:           summary.HeartRate.Maximum,
	}
	return exercise, nil
}

func (c *polarClient) GetExerciseGPX(ctx context.Context, exerciseID int64) (string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Accept", gpxAccept).
		Get(fmt.Sprintf("/exercises/%d/gpx", exerciseID))
	if err != nil {
		return "", fmt.Errorf("failed to fetch gpx for exercise %d: %w", exerciseID, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("gpx fetch returned status %d: %s", resp.StatusCode(), resp.String())
	}

	return resp.String(), nil
}

// activitySummary is the AccessLink daily activity payload
type activitySummary struct {
	PolarUser      string `json:"polar-user"`
	Date           string `json:"date"`
	Calories       int    `json:"calories"`
	ActiveCalories int    `json:"active-calories"`
	Duration       string `json:"active-duration"`
	ActiveSteps    int    `json:"active-steps"`
}

func (c *polarClient) GetActivitySummary(ctx context.Context, link string) (*polar.DailyActivity, error) {
	var summary activitySummary

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&summary).
		Get(link)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activity summary %s: %w", link, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("activity summary returned status %d: %s", resp.StatusCode(), resp.String())
	}

	activity := &polar.DailyActivity{
		PolarUserID:    parseUserLink(summary.PolarUser, c.userID),
		Date:           summary.Date,
		Calories:       summary.Calories,
		ActiveCalories: summary.ActiveCalories,
		Duration:       summary.Duration,
		ActiveSteps:    summary.ActiveSteps,
	}
	return activity, nil
}

func (c *polarClient) CommitExerciseTransaction(ctx context.Context, transactionID int64) error {
	return c.commitTransaction(ctx, fmt.Sprintf("/users/%d/exercise-transactions/%d", c.userID, transactionID))
}

func (c *polarClient) CommitActivityTransaction(ctx context.Context, transactionID int64) error {
	return c.commitTransaction(ctx, fmt.Sprintf("/users/%d/activity-transactions/%d", c.userID, transactionID))
}

func (c *polarClient) commitTransaction(ctx context.Context, path string) error {
	resp, err := c.client.R().
		SetContext(ctx).
		Put(path)
	if err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	if resp.StatusCode() != http.StatusNoContent {
		return fmt.Errorf("transaction commit returned status %d: %s", resp.StatusCode(), resp.String())
	}

	c.logger.Info("Committed AccessLink transaction ", path)
	return nil
}

// parseUserLink extracts the numeric user id from an AccessLink user URL,
// falling back to the authenticated user when the link is absent or malformed.
func parseUserLink(link string, fallback int64) int64 {
	if link == "" {
		return fallback
	}
	parts := strings.Split(strings.TrimRight(link, "/"), "/")
	id, err := strconv.ParseInt(parts[len(parts)-1], 10, 64)
	if err != nil {
		return fallback
	}
	return id
}
