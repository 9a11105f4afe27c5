package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"bitbucket.org/novatechnologies/mercadobitcoin/client/mercado"
	"bitbucket.org/novatechnologies/mercadobitcoin/domain"
	"bitbucket.org/novatechnologies/mercadobitcoin/infra"
	"bitbucket.org/novatechnologies/mercadobitcoin/infra/logger"
)

type snapshot struct {
	Ticker     domain.Ticker     `json:"ticker"`
	OrderBook  domain.OrderBook  `json:"orderbook"`
	Trades     []domain.Trade    `json:"trades"`
	DaySummary domain.DaySummary `json:"day_summary"`
}

func main() {
	symbol := flag.String("symbol", "BTC", "instrument symbol")
	date := flag.String("date", "", "day summary date, YYYY-MM-DD")
	configPath := flag.String("config", "./config/.env", "dotenv file")
	flag.Parse()

	conf := infra.SetConfig(*configPath)
	log := logger.DefaultLogger.WithField("symbol", *symbol)

	inst, err := domain.ParseInstrument(*symbol)
	if err != nil {
		log.Fatal(err)
	}
	var day time.Time
	if *date != "" {
		if day, err = time.Parse("2006-01-02", *date); err != nil {
			log.Fatal(err)
		}
	}

	client := mercado.MustNew(conf.ExchangeConfig.ClientConfig())

	ctx, cancel := context.WithTimeout(infra.GetContext(), 30*time.Second)
	defer cancel()

	var s snapshot
	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		s.Ticker, err = client.Ticker(ctx, inst)
		return
	})
	group.Go(func() (err error) {
		s.OrderBook, err = client.OrderBook(ctx, inst)
		return
	})
	group.Go(func() (err error) {
		s.Trades, err = client.Trades(ctx, inst, nil)
		return
	})
	group.Go(func() (err error) {
		s.DaySummary, err = client.DaySummary(ctx, inst, day)
		return
	})
	if err := group.Wait(); err != nil {
		log.WithError(err).Fatal("snapshot failed")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		log.Fatal(err)
	}
}
