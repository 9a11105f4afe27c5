package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"bitbucket.org/novatechnologies/mercadobitcoin/api/http"
	"bitbucket.org/novatechnologies/mercadobitcoin/client/mercado"
	"bitbucket.org/novatechnologies/mercadobitcoin/infra"
	"bitbucket.org/novatechnologies/mercadobitcoin/infra/logger"
)

func main() {
	conf := infra.SetConfig("./config/.env")

	client, err := mercado.New(conf.ExchangeConfig.ClientConfig(), nil)
	if err != nil {
		logger.DefaultLogger.Fatal("can't mercado.New: " + err.Error())
	}

	ctx, stop := signal.NotifyContext(infra.GetContext(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := http.NewServer(client, conf.HttpConfig.Port)

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		server.Start(ctx)
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.HttpConfig.ShutdownTimeout)
		defer cancel()
		return server.Stop(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		logger.DefaultLogger.WithError(err).Error("shutdown")
		os.Exit(1)
	}
}
