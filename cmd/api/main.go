package main

import (
	"context"
	"log"
	"time"

	"github.com/cuauhvip07/cripto/internal/db"
	"github.com/cuauhvip07/cripto/internal/platform/config"
	phttp "github.com/cuauhvip07/cripto/internal/platform/http"
	"github.com/cuauhvip07/cripto/internal/platform/notify"

	accounthttp "github.com/cuauhvip07/cripto/internal/modules/account/http"
)

func main() {
	cfg := config.Load()

	dbpool := db.MustOpen(cfg.PGDSN)
	defer dbpool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err := db.Migrate(ctx, dbpool)
	cancel()
	if err != nil {
		log.Fatalf("migrations: %v", err)
	}

	mailer := notify.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)
	accountModule := accounthttp.NewModulePG(dbpool, cfg.JWTSecret, cfg.SessionTTL).WithMailer(mailer)
	app := phttp.NewServer(phttp.Options{AppName: "cripto-api"}, accountModule)

	log.Printf("listening on %s", cfg.HTTPAddr)
	if err := app.Listen(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
