package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/go-http-utils/headers"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"bitbucket.org/novatechnologies/mercadobitcoin/client/mercado"
	"bitbucket.org/novatechnologies/mercadobitcoin/domain"
	"bitbucket.org/novatechnologies/mercadobitcoin/infra/logger"
)

const dayLayout = "2006-01-02"

type MarketHandler struct {
	Client mercado.Client
}

func NewMarketHandler(client mercado.Client) *MarketHandler {
	return &MarketHandler{Client: client}
}

func (h MarketHandler) GetTicker(res http.ResponseWriter, req *http.Request) {
	h.serve(res, req, func(ctx context.Context, inst domain.Instrument) (interface{}, error) {
		return h.Client.Ticker(ctx, inst)
	})
}

func (h MarketHandler) GetOrderBook(res http.ResponseWriter, req *http.Request) {
	h.serve(res, req, func(ctx context.Context, inst domain.Instrument) (interface{}, error) {
		return h.Client.OrderBook(ctx, inst)
	})
}

func (h MarketHandler) GetTrades(res http.ResponseWriter, req *http.Request) {
	filter, err := parseTradesFilter(req)
	if err != nil {
		badRequest(res, err)
		return
	}
	h.serve(res, req, func(ctx context.Context, inst domain.Instrument) (interface{}, error) {
		return h.Client.Trades(ctx, inst, filter)
	})
}

func (h MarketHandler) GetDaySummary(res http.ResponseWriter, req *http.Request) {
	var day time.Time
	if s := req.URL.Query().Get("date"); s != "" {
		var err error
		if day, err = time.Parse(dayLayout, s); err != nil {
			badRequest(res, errors.Errorf("illegal date %q: must be YYYY-MM-DD", s))
			return
		}
	}
	h.serve(res, req, func(ctx context.Context, inst domain.Instrument) (interface{}, error) {
		return h.Client.DaySummary(ctx, inst, day)
	})
}

func (h MarketHandler) serve(
	res http.ResponseWriter,
	req *http.Request,
	fetch func(ctx context.Context, inst domain.Instrument) (interface{}, error),
) {
	ctx := req.Context()
	inst, err := domain.ParseInstrument(mux.Vars(req)["symbol"])
	if err != nil {
		http.Error(res, err.Error(), http.StatusNotFound)
		return
	}

	result, err := fetch(ctx, inst)
	if err != nil {
		logger.FromContext(ctx).WithField("instrument", inst.Symbol()).WithError(err).Warn("upstream call failed")
		http.Error(res, err.Error(), statusFor(err))
		return
	}

	body, err := json.Marshal(result)
	if err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}
	res.Header().Set(headers.ContentType, "application/json")
	_, _ = res.Write(body)
}

// statusFor maps client errors onto the relay response status.
func statusFor(err error) int {
	var (
		transportErr *mercado.TransportError
		statusErr    *mercado.StatusError
		decodeErr    *mercado.DecodeError
	)
	switch {
	case errors.Is(err, mercado.ErrInvalidFilter):
		return http.StatusBadRequest
	case errors.As(err, &transportErr):
		return http.StatusGatewayTimeout
	case errors.As(err, &statusErr), errors.As(err, &decodeErr):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func parseTradesFilter(req *http.Request) (*mercado.TradesFilter, error) {
	q := req.URL.Query()
	filter := &mercado.TradesFilter{}
	for _, p := range []struct {
		name string
		dst  **uint64
	}{{"tid", &filter.TID}, {"since", &filter.Since}} {
		if s := q.Get(p.name); s != "" {
			v, err := strconv.ParseUint(s, 10, 64)
			if err != nil {
				return nil, errors.Errorf("illegal %s %q", p.name, s)
			}
			*p.dst = pointer.ToUint64(v)
		}
	}
	for _, p := range []struct {
		name string
		dst  **time.Time
	}{{"from", &filter.From}, {"to", &filter.To}} {
		if s := q.Get(p.name); s != "" {
			v, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return nil, errors.Errorf("illegal timestamp parameter %s=%q: must be Unix seconds", p.name, s)
			}
			*p.dst = pointer.ToTime(time.Unix(v, 0))
		}
	}
	return filter, filter.Validate()
}

func badRequest(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), http.StatusBadRequest)
}
