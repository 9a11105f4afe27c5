package mercado

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-http-utils/headers"
	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"bitbucket.org/novatechnologies/mercadobitcoin/domain"
	"bitbucket.org/novatechnologies/mercadobitcoin/infra/logger"
)

const (
	// Name and Version identify the library in the User-Agent header.
	Name    = "mercadobitcoin"
	Version = "0.3.0"

	// DefaultBaseURL is the public data API origin.
	DefaultBaseURL = "https://www.mercadobitcoin.net/api/"

	defaultTimeout = 10 * time.Second
)

// UserAgent is sent with every request.
const UserAgent = Name + "/" + Version

// Paths maps every operation to the path segment that follows the symbol.
// Empty fields take the value from DefaultPaths.
type Paths struct {
	Ticker     string
	OrderBook  string
	Trades     string
	DaySummary string
}

// DefaultPaths are the segments used today. DaySummary reads the trades
// resource; the exchange also publishes a "day-summary" resource and the
// choice between both is pending product confirmation.
var DefaultPaths = Paths{
	Ticker:     "ticker",
	OrderBook:  "orderbook",
	Trades:     "trades",
	DaySummary: "trades",
}

func (p Paths) withDefaults() Paths {
	if p.Ticker == "" {
		p.Ticker = DefaultPaths.Ticker
	}
	if p.OrderBook == "" {
		p.OrderBook = DefaultPaths.OrderBook
	}
	if p.Trades == "" {
		p.Trades = DefaultPaths.Trades
	}
	if p.DaySummary == "" {
		p.DaySummary = DefaultPaths.DaySummary
	}
	return p
}

// Client reads public market data. Implementations are safe for concurrent use.
type Client interface {
	// Ticker returns the last 24h trading summary.
	Ticker(ctx context.Context, instrument domain.Instrument) (domain.Ticker, error)
	// OrderBook returns the open offers, best price first on both sides.
	OrderBook(ctx context.Context, instrument domain.Instrument) (domain.OrderBook, error)
	// Trades returns the trade history. filter may be nil.
	Trades(ctx context.Context, instrument domain.Instrument, filter *TradesFilter) ([]domain.Trade, error)
	// DaySummary returns the daily summary. A zero day omits the date from the path.
	DaySummary(ctx context.Context, instrument domain.Instrument, day time.Time) (domain.DaySummary, error)
}

type Config struct {
	BaseURL string
	Timeout *time.Duration
	Paths   Paths
	// Transport replaces the default round tripper, mostly for tests.
	Transport http.RoundTripper
}

type client struct {
	cli            *resty.Client
	baseURL        string
	paths          Paths
	errorProcessor ErrorProcessor
	validate       *validator.Validate
}

// New builds a client. It performs no network I/O; the only failure is an
// unusable BaseURL.
func New(config Config, errorProcessor ErrorProcessor) (Client, error) {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse base url")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, errors.Errorf("base url %q: unsupported scheme %q", baseURL, parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.Errorf("base url %q: missing host", baseURL)
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	timeout := defaultTimeout
	if config.Timeout != nil {
		timeout = *config.Timeout
	}

	cli := resty.New()
	cli.SetTimeout(timeout)
	cli.SetHeader(headers.UserAgent, UserAgent)
	cli.SetLogger(logger.DefaultLogger)
	if config.Transport != nil {
		cli.SetTransport(config.Transport)
	}

	if errorProcessor == nil {
		errorProcessor = NewErrorProcessor(nil)
	}

	return newClient(cli, baseURL, config.Paths.withDefaults(), errorProcessor), nil
}

// MustNew is New for static configuration; it panics on setup failure.
func MustNew(config Config) Client {
	c, err := New(config, nil)
	if err != nil {
		panic(err)
	}
	return c
}

func newClient(
	cli *resty.Client,
	baseURL string,
	paths Paths,
	errorProcessor ErrorProcessor,
) *client {
	return &client{
		cli:            cli,
		baseURL:        baseURL,
		paths:          paths,
		errorProcessor: errorProcessor,
		validate:       validator.New(),
	}
}

// Ticker ...
func (c *client) Ticker(ctx context.Context, instrument domain.Instrument) (ticker domain.Ticker, err error) {
	u, err := c.endpoint(c.paths.Ticker, instrument)
	if err != nil {
		return
	}
	res, err := c.get(ctx, instrument, "ticker", u, nil)
	if err != nil {
		return
	}
	return c.decodeTicker(u, res)
}

// OrderBook ...
func (c *client) OrderBook(ctx context.Context, instrument domain.Instrument) (book domain.OrderBook, err error) {
	u, err := c.endpoint(c.paths.OrderBook, instrument)
	if err != nil {
		return
	}
	res, err := c.get(ctx, instrument, "orderbook", u, nil)
	if err != nil {
		return
	}
	return c.decodeOrderBook(u, res)
}

// Trades ...
func (c *client) Trades(
	ctx context.Context,
	instrument domain.Instrument,
	filter *TradesFilter,
) (trades []domain.Trade, err error) {
	if err = filter.Validate(); err != nil {
		return
	}
	u, err := c.endpoint(c.paths.Trades, instrument, filter.pathSuffix()...)
	if err != nil {
		return
	}
	res, err := c.get(ctx, instrument, "trades", u, filter.query())
	if err != nil {
		return
	}
	return c.decodeTrades(u, res)
}

// DaySummary ...
func (c *client) DaySummary(
	ctx context.Context,
	instrument domain.Instrument,
	day time.Time,
) (summary domain.DaySummary, err error) {
	var suffix []string
	if !day.IsZero() {
		suffix = []string{
			strconv.Itoa(day.Year()),
			strconv.Itoa(int(day.Month())),
			strconv.Itoa(day.Day()),
		}
	}
	u, err := c.endpoint(c.paths.DaySummary, instrument, suffix...)
	if err != nil {
		return
	}
	res, err := c.get(ctx, instrument, "day_summary", u, nil)
	if err != nil {
		return
	}
	return c.decodeDaySummary(u, res)
}

// endpoint joins base url, symbol, method segment and optional suffix
// segments, each followed by a slash.
func (c *client) endpoint(segment string, instrument domain.Instrument, suffix ...string) (string, error) {
	if !instrument.Valid() {
		return "", errors.Wrapf(domain.ErrUnknownInstrument, "%s", instrument)
	}
	var b strings.Builder
	b.WriteString(c.baseURL)
	b.WriteString(instrument.Symbol())
	b.WriteByte('/')
	b.WriteString(segment)
	b.WriteByte('/')
	for _, s := range suffix {
		b.WriteString(s)
		b.WriteByte('/')
	}
	return b.String(), nil
}

func (c *client) get(
	ctx context.Context,
	instrument domain.Instrument,
	method string,
	u string,
	query url.Values,
) (*resty.Response, error) {
	log := logger.FromContext(ctx).WithFields(logrus.Fields{
		"instrument": instrument.Symbol(),
		"method":     method,
	})
	log.Debugf("Request: %s", u)

	req := c.cli.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}
	res, err := req.Get(u)
	if err != nil {
		log.WithError(err).Error("request failed")
		return nil, &TransportError{URL: u, Err: err}
	}
	if !res.IsSuccess() {
		err = c.errorProcessor.Decode(res)
		log.WithError(err).Error("unexpected response status")
		return nil, err
	}
	return res, nil
}
