package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/shanehull/edgarscan/internal/ai"
	"github.com/shanehull/edgarscan/internal/config"
	"github.com/shanehull/edgarscan/internal/digest"
	"github.com/shanehull/edgarscan/internal/edgar"
	"github.com/shanehull/edgarscan/internal/market"
	"github.com/shanehull/edgarscan/internal/notify"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Fatal error loading configuration: %v\n", err)
		os.Exit(1)
	}

	edgarClient := edgar.New(cfg.SECAPIKey)
	pipeline := digest.NewPipeline(
		market.New(),
		edgarClient,
		ai.New(cfg.GeminiAPIKey, ""),
	)
	assembler := digest.NewAssembler(edgarClient, pipeline)

	day := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
	log.Printf("Starting EDGAR scan for %s", day)

	report, err := assembler.Build(context.Background(), day)
	if err != nil {
		fmt.Printf("Fatal error building report: %v\n", err)
		os.Exit(1)
	}

	if cfg.MailTo == "" {
		notify.Print(report)
		fmt.Println("No MAIL_TO configured; report printed instead.")
		return
	}

	err = notify.Send(notify.EmailConfig{
		SMTPServer: cfg.SMTPServer,
		SMTPPort:   cfg.SMTPPort,
		SMTPUser:   cfg.SMTPUser,
		SMTPPass:   cfg.SMTPPass,
		FromEmail:  cfg.SMTPUser,
		MailTo:     cfg.MailTo,
	}, report)
	if err != nil {
		fmt.Printf("Fatal error sending report: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Report sent.")
}
