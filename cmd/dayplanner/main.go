package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dayplanner/internal/config"
	"dayplanner/internal/ics"
	"dayplanner/internal/notify"
	"dayplanner/internal/repository"
	"dayplanner/internal/service"
	"dayplanner/internal/store"
	"dayplanner/internal/weather"
)

func main() {
	configPath := flag.String("config", "dayplanner.yaml", "path to the YAML config file")
	exportPath := flag.String("export", "", "export all items as iCalendar to the given file and exit")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := repository.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	records := repository.NewRecordRepository(db)

	itemStore := store.NewItemStore(records)
	if err := itemStore.Load(ctx); err != nil {
		log.Fatalf("load items: %v", err)
	}
	log.Printf("[info] loaded %d items", itemStore.Len())

	if *exportPath != "" {
		data := ics.Export(itemStore.Items(), time.Now())
		if err := os.WriteFile(*exportPath, []byte(data), 0o644); err != nil {
			log.Fatalf("export: %v", err)
		}
		log.Printf("[info] exported %d items to %s", itemStore.Len(), *exportPath)
		return
	}

	settings := service.NewSettingsService(records)

	finance := service.NewFinanceService(records)
	if err := finance.Load(ctx); err != nil {
		log.Fatalf("load finance: %v", err)
	}

	notifier := notify.Multi{notify.LogNotifier{}}
	if cfg.Telegram != nil {
		tg, err := notify.NewTelegramNotifier(cfg.Telegram.Token, cfg.Telegram.ChatID)
		if err != nil {
			log.Fatalf("telegram: %v", err)
		}
		notifier = append(notifier, tg)
	}

	reminders := service.NewReminderScheduler(notifier)
	reminders.Rebuild(itemStore.Items())
	defer reminders.Stop()
	log.Printf("[info] %d reminder timers armed", reminders.Pending())

	var weatherClient *weather.Client
	if ws := settings.Weather(ctx); ws.City != "" && ws.APIKey != "" {
		weatherClient = weather.NewClient(ws.City, ws.APIKey)
	}
	summary := service.NewSummaryService(itemStore, weatherClient)

	scheduler := service.NewScheduler(time.Local)
	if _, err := scheduler.ScheduleInterval(cfg.RebuildInterval(), func() {
		reminders.Rebuild(itemStore.Items())
		log.Printf("[info] reminder set recomputed, %d timers armed", reminders.Pending())
	}); err != nil {
		log.Fatalf("schedule reminder rebuild: %v", err)
	}
	if cfg.DailySummaryTime != "" {
		if _, err := scheduler.ScheduleDaily(cfg.DailySummaryTime, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := notifier.Notify(jobCtx, summary.DailySummary(time.Now())); err != nil {
				log.Printf("[warn] daily summary: %v", err)
			}
		}); err != nil {
			log.Fatalf("schedule daily summary: %v", err)
		}
	}
	scheduler.Start()
	defer scheduler.Stop()

	log.Println("Day planner started.")
	<-ctx.Done()
	log.Println("Shutdown complete.")
}
