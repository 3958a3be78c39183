package fbrapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc/pool"

	"github.com/masykur/fpldraft/internal/platform/logging"
	"github.com/masykur/fpldraft/internal/usecase"
)

const (
	defaultBaseURL = "https://api.fbrapi.com/v1"
	maxBodyBytes   = 6 << 20
)

var bearerTokenRegex = regexp.MustCompile(`Bearer\s+\S+`)
var errFBRTransient = crerr.New("fbrapi transient failure")

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	MaxRetries int
	Logger     *logging.Logger
}

// Client talks to the FBR football statistics API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	maxRetries int
	logger     *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		maxRetries: max(cfg.MaxRetries, 0),
		logger:     logger,
	}
}

type playersEnvelope struct {
	Players []playerPayload `json:"players"`
}

type playerPayload struct {
	Name          string `json:"name"`
	Team          string `json:"team"`
	Position      string `json:"position"`
	Apps          int    `json:"apps"`
	Minutes       int    `json:"mins"`
	Goals         int    `json:"goals"`
	Assists       int    `json:"assists"`
	ShotsOnTarget int    `json:"shots_on_target"`
	KeyPasses     int    `json:"key_passes"`
	TacklesWon    int    `json:"tackles_won"`
	Interceptions int    `json:"interceptions"`
	CleanSheets   int    `json:"clean_sheets"`
	Saves         int    `json:"saves"`
	PenaltySaves  int    `json:"penalty_saves"`
	YellowCards   int    `json:"yellow_cards"`
	RedCards      int    `json:"red_cards"`
}

type teamsEnvelope struct {
	Teams []teamPayload `json:"teams"`
}

type teamPayload struct {
	Name         string `json:"name"`
	GoalsFor     int    `json:"goals_for"`
	GoalsAgainst int    `json:"goals_against"`
	CleanSheets  int    `json:"clean_sheets"`
}

// FetchSeason pulls player and team season totals for one Premier League
// season, fetching both endpoints concurrently.
func (c *Client) FetchSeason(ctx context.Context, season string) (usecase.ExternalSeasonStats, error) {
	season = strings.TrimSpace(season)
	if season == "" {
		return usecase.ExternalSeasonStats{}, fmt.Errorf("season is required")
	}

	var players playersEnvelope
	var teams teamsEnvelope

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		return c.doJSON(ctx, fmt.Sprintf("/players/premier-league/%s", season), &players)
	})
	p.Go(func(ctx context.Context) error {
		return c.doJSON(ctx, fmt.Sprintf("/teams/premier-league/%s", season), &teams)
	})
	if err := p.Wait(); err != nil {
		return usecase.ExternalSeasonStats{}, fmt.Errorf("%w: %v", usecase.ErrDataProvider, err)
	}

	out := usecase.ExternalSeasonStats{
		Season:  season,
		Players: make([]usecase.ExternalPlayerStat, 0, len(players.Players)),
		Teams:   make([]usecase.ExternalTeamStat, 0, len(teams.Teams)),
	}
	for _, item := range players.Players {
		out.Players = append(out.Players, usecase.ExternalPlayerStat{
			Name:          strings.TrimSpace(item.Name),
			Team:          strings.TrimSpace(item.Team),
			Position:      strings.ToUpper(strings.TrimSpace(item.Position)),
			Apps:          item.Apps,
			Minutes:       item.Minutes,
			Goals:         item.Goals,
			Assists:       item.Assists,
			ShotsOnTarget: item.ShotsOnTarget,
			KeyPasses:     item.KeyPasses,
			TacklesWon:    item.TacklesWon,
			Interceptions: item.Interceptions,
			CleanSheets:   item.CleanSheets,
			Saves:         item.Saves,
			PenaltySaves:  item.PenaltySaves,
			YellowCards:   item.YellowCards,
			RedCards:      item.RedCards,
		})
	}
	for _, item := range teams.Teams {
		out.Teams = append(out.Teams, usecase.ExternalTeamStat{
			Name:         strings.TrimSpace(item.Name),
			GoalsFor:     item.GoalsFor,
			GoalsAgainst: item.GoalsAgainst,
			CleanSheets:  item.CleanSheets,
		})
	}

	if len(out.Players) == 0 {
		return usecase.ExternalSeasonStats{}, fmt.Errorf("%w: provider returned no players for season %s", usecase.ErrDataProvider, season)
	}

	return out, nil
}

func (c *Client) doJSON(ctx context.Context, path string, target any) error {
	raw, err := c.executeRequest(ctx, c.baseURL+path)
	if err != nil {
		return err
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode provider payload: %w", err)
	}

	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		if c.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.apiKey)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errFBRTransient, sanitizeSensitiveText(err.Error(), c.apiKey))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errFBRTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else if isRetryableStatus(resp.StatusCode) {
				lastErr = fmt.Errorf("%w: provider status=%d body=%s", errFBRTransient, resp.StatusCode, abbreviateBody(raw))
			} else {
				return nil, fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.Warn("fbrapi request failed", "url", fullURL, "error", sanitizeSensitiveText(lastErr.Error(), c.apiKey))
	return nil, lastErr
}

func isRetryableStatus(status int) bool {
	switch status {
	case http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusBadGateway,
		http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	body := strings.TrimSpace(string(raw))
	if len(body) > limit {
		return body[:limit] + "..."
	}
	return body
}

func sanitizeSensitiveText(value, token string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if token != "" {
		value = strings.ReplaceAll(value, token, "REDACTED")
	}
	return bearerTokenRegex.ReplaceAllString(value, "Bearer REDACTED")
}
