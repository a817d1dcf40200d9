package syncclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tempo/internal/domain/aggregation"
	"tempo/internal/domain/entity"
	"tempo/internal/errors"
	"tempo/internal/usecase"

	"github.com/google/uuid"
)

const (
	statsPath          = "/api/v1/stats"
	defaultHTTPTimeout = 30 * time.Second
)

// StatsFetcher reads one user's stats in process.
type StatsFetcher struct {
	stats  usecase.StatsUsecase
	userID uuid.UUID
}

// NewStatsFetcher creates a fetcher backed by the stats usecase.
func NewStatsFetcher(stats usecase.StatsUsecase, userID uuid.UUID) *StatsFetcher {
	return &StatsFetcher{stats: stats, userID: userID}
}

// Fetch implements Fetcher.
func (f *StatsFetcher) Fetch(ctx context.Context, req *Request) (*usecase.Stats, error) {
	date := req.Date

	stats, err := f.stats.GetStats(ctx, &usecase.StatsQuery{
		UserID:      f.userID,
		From:        &date,
		To:          &date,
		TimeZone:    req.Location.String(),
		Since:       req.Since,
		KnownAppIDs: req.KnownAppIDs,
	})
	if err != nil {
		return nil, err
	}

	return ensureResult(stats), nil
}

// HTTPFetcher reads stats from GET /api/v1/stats with a bearer token.
type HTTPFetcher struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewHTTPFetcher creates a fetcher for the API at baseURL.
func NewHTTPFetcher(baseURL, token string) *HTTPFetcher {
	return &HTTPFetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: defaultHTTPTimeout,
		},
	}
}

type statsEnvelope struct {
	Data  *usecase.Stats `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Fetch implements Fetcher.
func (f *HTTPFetcher) Fetch(ctx context.Context, req *Request) (*usecase.Stats, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+statsPath+"?"+statsQuery(req).Encode(), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if f.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+f.token)
	}

	resp, err := f.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "stats request")
	}
	defer resp.Body.Close()

	var envelope statsEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, errors.Wrapf(err, "decode stats response (status %d)", resp.StatusCode)
	}

	if resp.StatusCode != http.StatusOK {
		if envelope.Error != nil {
			return nil, errors.Errorf("stats request failed with status %d: %s: %s",
				resp.StatusCode, envelope.Error.Code, envelope.Error.Message)
		}

		return nil, errors.Errorf("stats request failed with status %d", resp.StatusCode)
	}
	if envelope.Data == nil {
		return nil, errors.New("stats response has no data")
	}

	return ensureResult(envelope.Data), nil
}

func statsQuery(req *Request) url.Values {
	loc := req.Location
	if loc == nil {
		loc = time.UTC
	}
	date := req.Date.In(loc).Format(entity.DateLayout)

	values := url.Values{}
	values.Set("from", date)
	values.Set("to", date)
	values.Set("time_zone", loc.String())
	if req.Since != nil {
		values.Set("since", req.Since.UTC().Format(time.RFC3339Nano))
	}
	if len(req.KnownAppIDs) > 0 {
		ids := make([]string, len(req.KnownAppIDs))
		for i, id := range req.KnownAppIDs {
			ids[i] = id.String()
		}
		values.Set("known_app_ids", strings.Join(ids, ","))
	}

	return values
}

func ensureResult(stats *usecase.Stats) *usecase.Stats {
	if stats.Result == nil {
		stats.Result = aggregation.NewResult()
	}
	if stats.Apps == nil {
		stats.Apps = make(map[uuid.UUID]aggregation.AppMetadata)
	}
	if stats.Hourly == nil {
		stats.Hourly = make(map[int][]*aggregation.HourlyEntry)
	}
	if stats.Daily == nil {
		stats.Daily = []aggregation.DailyTotal{}
	}
	if stats.ActivityProfile == nil {
		stats.Summarize(stats.Categories())
	}

	return stats
}
