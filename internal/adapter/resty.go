package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/cftunnel/internal/logger"
	"github.com/MKhiriev/cftunnel/models"
	"github.com/go-resty/resty/v2"
)

// listPageSize is requested from paginated list endpoints.
const listPageSize = 50

// requestOption customises a single resty request.
type requestOption func(r *resty.Request)

func withPathParams(params map[string]string) requestOption {
	return func(r *resty.Request) { r.SetPathParams(params) }
}

func withQuery(key, value string) requestOption {
	return func(r *resty.Request) { r.SetQueryParam(key, value) }
}

func withBody(body any) requestOption {
	return func(r *resty.Request) { r.SetBody(body) }
}

// execute performs one request and decodes the v4 envelope around T.
func execute[T any](ctx context.Context, a *cloudflareAdapter, op, method, path string, opts ...requestOption) (T, *models.ResultInfo, error) {
	var zero T
	log := a.logger.With().Str("op", op).Str("method", method).Logger()

	req := a.client.R().
		SetContext(ctx).
		SetAuthToken(a.token).
		SetHeader("Content-Type", "application/json")
	for _, opt := range opts {
		opt(req)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		log.Debug().Err(err).Msg("request failed")
		return zero, nil, &TransportError{Op: op, Err: err}
	}

	var envelope models.APIResponse[T]
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		log.Debug().Err(err).Int("status", resp.StatusCode()).Msg("undecodable response")
		return zero, nil, &TransportError{Op: op, Status: resp.StatusCode(), Err: fmt.Errorf("decode response: %w", err)}
	}

	if !envelope.Success {
		apiErr := newAPIError(envelope.Errors, resp.StatusCode())
		log.Debug().Int("status", resp.StatusCode()).Int("code", apiErr.Code).Str("message", apiErr.Message).Msg("request rejected")
		return zero, nil, apiErr
	}

	log.Debug().Int("status", resp.StatusCode()).Dur("took", resp.Time()).Msg("request succeeded")
	return envelope.Result, envelope.ResultInfo, nil
}

// listAll walks a paginated list endpoint until the last page.
func listAll[T any](ctx context.Context, a *cloudflareAdapter, op, path string, opts ...requestOption) ([]T, error) {
	var all []T
	for page := 1; ; page++ {
		pageOpts := append(slices.Clone(opts),
			withQuery("page", strconv.Itoa(page)),
			withQuery("per_page", strconv.Itoa(listPageSize)),
		)

		items, info, err := execute[[]T](ctx, a, op, http.MethodGet, path, pageOpts...)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)

		if info == nil || len(items) < listPageSize || page*listPageSize >= info.TotalCount {
			return all, nil
		}
	}
}

// restyLogger routes resty's internal diagnostics into the CLI log instead of
// stderr.
type restyLogger struct {
	logger *logger.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.logger.Error().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.logger.Warn().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.logger.Debug().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
