package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/unhooked-app/craving-intervention/internal/app"
	"github.com/unhooked-app/craving-intervention/internal/config"
)

func main() {
	logrus.Infof("starting craving intervention service..")

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}

	a, err := app.New(ctx, cfg)
	if err != nil {
		logrus.Fatalf("failed to initialize application: %v", err)
	}

	if err := a.Run(ctx); err != nil {
		logrus.Fatalf("application error: %v", err)
	}
}
