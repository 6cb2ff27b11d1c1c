package rest

import (
	"time"

	"go.uber.org/zap"

	"github.com/c2fo/synfs/options"
)

const (
	optionNameEndpoint   = "endpoint"
	optionNameAuthToken  = "authToken"
	optionNameRetryCount = "retryCount"
	optionNameTimeout    = "timeout"
	optionNamePartSize   = "partSize"
	optionNameLogger     = "logger"
)

// WithEndpoint sets the base URL of the repository services.
func WithEndpoint(endpoint string) options.NewClientOption[Client] {
	return &endpointOpt{endpoint: endpoint}
}

type endpointOpt struct {
	endpoint string
}

func (o *endpointOpt) Apply(c *Client) {
	c.opts.Endpoint = o.endpoint
}

func (o *endpointOpt) NewClientOptionName() string {
	return optionNameEndpoint
}

// WithAuthToken sets the personal access token used as the bearer credential.
func WithAuthToken(token string) options.NewClientOption[Client] {
	return &authTokenOpt{token: token}
}

type authTokenOpt struct {
	token string
}

func (o *authTokenOpt) Apply(c *Client) {
	c.opts.AuthToken = o.token
}

func (o *authTokenOpt) NewClientOptionName() string {
	return optionNameAuthToken
}

// WithRetryCount sets the number of retry attempts for throttled or failing
// requests. Default is 3.
func WithRetryCount(count int) options.NewClientOption[Client] {
	return &retryCountOpt{count: count}
}

type retryCountOpt struct {
	count int
}

func (o *retryCountOpt) Apply(c *Client) {
	c.opts.RetryCount = o.count
}

func (o *retryCountOpt) NewClientOptionName() string {
	return optionNameRetryCount
}

// WithTimeout bounds each HTTP request. Zero leaves cancellation to the
// caller's context.
func WithTimeout(timeout time.Duration) options.NewClientOption[Client] {
	return &timeoutOpt{timeout: timeout}
}

type timeoutOpt struct {
	timeout time.Duration
}

func (o *timeoutOpt) Apply(c *Client) {
	c.opts.Timeout = o.timeout
}

func (o *timeoutOpt) NewClientOptionName() string {
	return optionNameTimeout
}

// WithPartSize sets the multipart upload part size. Default is 8MB.
func WithPartSize(size int64) options.NewClientOption[Client] {
	return &partSizeOpt{size: size}
}

type partSizeOpt struct {
	size int64
}

func (o *partSizeOpt) Apply(c *Client) {
	c.opts.PartSize = o.size
}

func (o *partSizeOpt) NewClientOptionName() string {
	return optionNamePartSize
}

// WithLogger sets the logger used for request-level debug output.
func WithLogger(logger *zap.Logger) options.NewClientOption[Client] {
	return &loggerOpt{logger: logger}
}

type loggerOpt struct {
	logger *zap.Logger
}

func (o *loggerOpt) Apply(c *Client) {
	c.logger = o.logger
}

func (o *loggerOpt) NewClientOptionName() string {
	return optionNameLogger
}
