package game

import (
	"github.com/go-resty/resty/v2"
	"github.com/phuslu/log"
)

// instrument logs every exchange at debug level. Bodies are never logged
// because they carry bearer tokens.
func instrument(client *resty.Client, logger *log.Logger) {
	client.OnAfterResponse(func(_ *resty.Client, res *resty.Response) error {
		logger.Debug().
			Str("method", res.Request.Method).
			Str("url", res.Request.URL).
			Int("status", res.StatusCode()).
			Dur("elapsed", res.Time()).
			Msg("api response")
		return nil
	})
	client.OnError(func(req *resty.Request, err error) {
		logger.Debug().
			Str("method", req.Method).
			Str("url", req.URL).
			Err(err).
			Msg("api request failed")
	})
}
