package connector

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/CharlotteLevula/my-health-project/internal/domain/oura"
	"github.com/CharlotteLevula/my-health-project/internal/pkg/config"
	"github.com/CharlotteLevula/my-health-project/internal/pkg/logger"

	"github.com/go-resty/resty/v2"
)

// Oura collection endpoints
const (
	ouraEndpointSleep        = "daily_sleep"
	ouraEndpointActivity     = "daily_activity"
	ouraEndpointReadiness    = "daily_readiness"
	ouraEndpointHeartRate    = "heartrate"
	ouraEndpointPersonalInfo = "personal_info"
)

type ouraClient struct {
	client *resty.Client
	logger logger.Logger
}

// ouraPage is the paginated envelope every Oura collection endpoint returns
type ouraPage struct {
	Data      []json.RawMessage `json:"data"`
	NextToken *string           `json:"next_token"`
}

// NewOuraClient creates an Oura API client authenticated with the personal
// access token from settings.
func NewOuraClient(settings *config.OuraSettings, logger logger.Logger) (oura.Client, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid oura settings: %w", err)
	}

	client := resty.New().
		SetBaseURL(settings.BaseURL).
		SetAuthToken(settings.AccessToken).
		SetTimeout(30 * time.Second)

	return &ouraClient{
		client: client,
		logger: logger,
	}, nil
}

// newOuraClientWithResty wires a prepared resty client, used by tests to
// attach a mock transport.
func newOuraClientWithResty(client *resty.Client, logger logger.Logger) oura.Client {
	return &ouraClient{client: client, logger: logger}
}

func (c *ouraClient) FetchSleep(ctx context.Context, start, end time.Time) ([]*oura.SleepRecord, error) {
	raw, err := c.fetchCollection(ctx, ouraEndpointSleep, start, end)
	if err != nil {
		return nil, err
	}
	return decodeRecords[oura.SleepRecord](ouraEndpointSleep, raw)
}

func (c *ouraClient) FetchActivity(ctx context.Context, start, end time.Time) ([]*oura.ActivityRecord, error) {
	raw, err := c.fetchCollection(ctx, ouraEndpointActivity, start, end)
	if err != nil {
		return nil, err
	}
	return decodeRecords[oura.ActivityRecord](ouraEndpointActivity, raw)
}

func (c *ouraClient) FetchReadiness(ctx context.Context, start, end time.Time) ([]*oura.ReadinessRecord, error) {
	raw, err := c.fetchCollection(ctx, ouraEndpointReadiness, start, end)
	if err != nil {
		return nil, err
	}
	return decodeRecords[oura.ReadinessRecord](ouraEndpointReadiness, raw)
}

func (c *ouraClient) FetchHeartRate(ctx context.Context, start, end time.Time) ([]*oura.HeartRateSample, error) {
	raw, err := c.fetchCollection(ctx, ouraEndpointHeartRate, start, end)
	if err != nil {
		return nil, err
	}
	return decodeRecords[oura.HeartRateSample](ouraEndpointHeartRate, raw)
}

func (c *ouraClient) VerifyToken(ctx context.Context) (*oura.PersonalInfo, error) {
	var info oura.PersonalInfo

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/" + ouraEndpointPersonalInfo)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch personal info: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("oura api returned status %d: %s", resp.StatusCode(), resp.String())
	}

	return &info, nil
}

// fetchCollection retrieves every page of an Oura collection for the given
// day range. The first request carries start_date and end_date; follow-up
// requests carry only the next_token the previous page returned.
func (c *ouraClient) fetchCollection(ctx context.Context, endpoint string, start, end time.Time) ([]json.RawMessage, error) {
	var all []json.RawMessage

	params := map[string]string{
		"start_date": start.Format(oura.DayFormat),
		"end_date":   end.Format(oura.DayFormat),
	}

	page := 0
	for {
		page++

		var envelope ouraPage
		resp, err := c.client.R().
			SetContext(ctx).
			SetQueryParams(params).
			SetResult(&envelope).
			Get("/" + endpoint)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s page %d: %w", endpoint, page, err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("oura api returned status %d for %s: %s", resp.StatusCode(), endpoint, resp.String())
		}

		all = append(all, envelope.Data...)

		if envelope.NextToken == nil || *envelope.NextToken == "" {
			break
		}
		params = map[string]string{"next_token": *envelope.NextToken}
	}

	c.logger.Info("Fetched ", len(all), " records from ", endpoint, " across ", page, " page(s)")
	return all, nil
}

func decodeRecords[T any](endpoint string, raw []json.RawMessage) ([]*T, error) {
	records := make([]*T, 0, len(raw))
	for _, message := range raw {
		var record T
		if err := json.Unmarshal(message, &record); err != nil {
			return nil, fmt.Errorf("failed to decode %s record: %w", endpoint, err)
		}
		records = append(records, &record)
	}
	return records, nil
}
