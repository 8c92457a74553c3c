package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/owdragon-cli/internal/domain"
	"github.com/bnema/owdragon-cli/internal/ports"
	"github.com/go-resty/resty/v2"
	"github.com/phuslu/log"
)

const (
	DefaultBaseURL        = "https://owdragon.oasisworld.io/api"
	DefaultOrigin         = "https://owdragon.oasisworld.io"
	DefaultReferer        = "https://owdragon.oasisworld.io/?startapp=1467975528"
	DefaultMissionReferer = "https://owdragon.oasisworld.io/missions"
	DefaultUserAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/136.0.0.0 Safari/537.36 Edg/136.0.0.0"
	DefaultRequestTimeout = 10 * time.Second

	successCode      = 200
	maxResponseBytes = 1 << 20
)

const (
	pathAuthTelegram  = "/auth/telegram"
	pathAddress       = "/get-address"
	pathPower         = "/get-power"
	pathBalance       = "/get-balance"
	pathFeed          = "/feed"
	pathQueryMission  = "/query-mission"
	pathSubmitMission = "/submit-mission"
	pathFinishMission = "/finish-mission"
)

type API struct {
	BaseURL        string
	Origin         string
	Referer        string
	MissionReferer string
	UserAgent      string
}

type Options struct {
	API        API
	HTTPClient *http.Client
	// RequestTimeout bounds every call except authentication.
	RequestTimeout time.Duration
	// AuthTimeout bounds the init-data exchange. Zero means no timeout.
	AuthTimeout time.Duration
	Logger      *log.Logger
}

type Client struct {
	api            API
	http           *resty.Client
	requestTimeout time.Duration
	authTimeout    time.Duration
}

var _ ports.GameClient = (*Client)(nil)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func NewClient(opts Options) (*Client, error) {
	api := opts.API.withDefaults()
	baseURL, err := normalizeBaseURL(api.BaseURL)
	if err != nil {
		return nil, err
	}

	var httpClient *resty.Client
	if opts.HTTPClient != nil {
		httpClient = resty.NewWithClient(opts.HTTPClient)
	} else {
		httpClient = resty.New()
	}
	httpClient.
		SetBaseURL(baseURL).
		SetHeaders(map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
			"User-Agent":   api.UserAgent,
			"Origin":       api.Origin,
		})
	if opts.Logger != nil {
		instrument(httpClient, opts.Logger)
	}

	requestTimeout := opts.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = DefaultRequestTimeout
	}

	return &Client{
		api:            api,
		http:           httpClient,
		requestTimeout: requestTimeout,
		authTimeout:    opts.AuthTimeout,
	}, nil
}

func (a API) withDefaults() API {
	if a.BaseURL == "" {
		a.BaseURL = DefaultBaseURL
	}
	if a.Origin == "" {
		a.Origin = DefaultOrigin
	}
	if a.Referer == "" {
		a.Referer = DefaultReferer
	}
	if a.MissionReferer == "" {
		a.MissionReferer = DefaultMissionReferer
	}
	if a.UserAgent == "" {
		a.UserAgent = DefaultUserAgent
	}
	return a
}

func (c *Client) Authenticate(ctx context.Context, credential domain.Credential) (domain.Session, error) {
	switch credential.Kind {
	case domain.CredentialToken:
		token := strings.TrimSpace(credential.Value)
		if token == "" {
			return domain.Session{}, fmt.Errorf("%w: token is empty", domain.ErrAuthFailed)
		}
		return domain.NewSession(credential.ID, token), nil
	case domain.CredentialInitData:
		return c.exchangeInitData(ctx, credential)
	default:
		return domain.Session{}, fmt.Errorf("%w: unsupported credential kind %q", domain.ErrAuthFailed, credential.Kind)
	}
}

func (c *Client) exchangeInitData(ctx context.Context, credential domain.Credential) (domain.Session, error) {
	data, err := c.post(ctx, pathAuthTelegram, c.api.Referer, "", c.authTimeout, map[string]any{
		"init_data":     credential.Value,
		"referral_code": "",
	})
	if err != nil {
		return domain.Session{}, fmt.Errorf("%w: %w", domain.ErrAuthFailed, err)
	}

	var payload struct {
		JWT string `json:"jwt"`
	}
	if err := decodeData(pathAuthTelegram, data, &payload); err != nil {
		return domain.Session{}, fmt.Errorf("%w: %w", domain.ErrAuthFailed, err)
	}
	if strings.TrimSpace(payload.JWT) == "" {
		return domain.Session{}, fmt.Errorf("%w: %s: response missing jwt: %w", domain.ErrAuthFailed, pathAuthTelegram, domain.ErrMalformedResponse)
	}

	return domain.NewSession(credential.ID, payload.JWT), nil
}

func (c *Client) FetchAddress(ctx context.Context, token string) (string, error) {
	var payload struct {
		Address string `json:"address"`
	}
	if err := c.call(ctx, pathAddress, c.api.Referer, token, tokenBody(token), &payload); err != nil {
		return "", err
	}
	return payload.Address, nil
}

func (c *Client) FetchPower(ctx context.Context, token string) (domain.Amount, error) {
	var payload struct {
		Power domain.Amount `json:"power"`
	}
	if err := c.call(ctx, pathPower, c.api.Referer, token, tokenBody(token), &payload); err != nil {
		return "", err
	}
	return payload.Power, nil
}

func (c *Client) FetchBalance(ctx context.Context, token string) (domain.Amount, error) {
	var payload struct {
		Balance domain.Amount `json:"balance"`
	}
	if err := c.call(ctx, pathBalance, c.api.Referer, token, tokenBody(token), &payload); err != nil {
		return "", err
	}
	return payload.Balance, nil
}

func (c *Client) Feed(ctx context.Context, token string) (domain.Amount, error) {
	var payload struct {
		Reward domain.Amount `json:"reward"`
	}
	if err := c.call(ctx, pathFeed, c.api.Referer, token, tokenBody(token), &payload); err != nil {
		return "", err
	}
	return payload.Reward, nil
}

func (c *Client) call(ctx context.Context, path, referer, token string, body any, out any) error {
	data, err := c.post(ctx, path, referer, token, c.requestTimeout, body)
	if err != nil {
		return err
	}
	return decodeData(path, data, out)
}

func (c *Client) post(ctx context.Context, path, referer, token string, timeout time.Duration, body any) (json.RawMessage, error) {
	requestCtx, cancel := requestContext(ctx, timeout)
	defer cancel()

	req := c.http.R().
		SetContext(requestCtx).
		SetHeader("Referer", referer).
		SetBody(body).
		SetDoNotParseResponse(true)
	if token != "" {
		req.SetAuthToken(token)
	}

	resp, err := req.Post(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", path, domain.ErrTransport, err)
	}
	rawBody := resp.RawBody()
	defer func() { _ = rawBody.Close() }()

	if resp.StatusCode() != http.StatusOK {
		return nil, &domain.HTTPStatusError{Endpoint: path, StatusCode: resp.StatusCode()}
	}

	var env envelope
	if err := json.NewDecoder(io.LimitReader(rawBody, maxResponseBytes)).Decode(&env); err != nil {
		return nil, fmt.Errorf("%s: decode envelope: %w: %w", path, domain.ErrMalformedResponse, err)
	}
	if env.Code != successCode {
		return nil, &domain.EnvelopeError{Endpoint: path, Code: env.Code, Message: env.Message}
	}

	return env.Data, nil
}

func decodeData(path string, data json.RawMessage, out any) error {
	if len(data) == 0 || string(data) == "null" {
		return fmt.Errorf("%s: response has no data: %w", path, domain.ErrMalformedResponse)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: decode data: %w: %w", path, domain.ErrMalformedResponse, err)
	}
	return nil
}

func tokenBody(token string) map[string]any {
	return map[string]any{"jwt": token}
}

func requestContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

func normalizeBaseURL(baseURL string) (string, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	return strings.TrimRight(parsed.String(), "/"), nil
}
