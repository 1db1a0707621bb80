package helper

import (
	"log"
	"spa_manager/config"
	"spa_manager/database"
	"spa_manager/model"
	"spa_manager/utils"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
)

var tokenScheduler *cron.Cron
var summaryScheduler gocron.Scheduler

// StartTokenCleanupScheduler clears expired staff session tokens every 10 minutes.
func StartTokenCleanupScheduler() {
	tokenScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := tokenScheduler.AddFunc("*/10 * * * *", cleanupExpiredTokens)
	if err != nil {
		log.Printf("failed to start token cleanup scheduler: %v", err)
		return
	}

	tokenScheduler.Start()
	log.Println("Token cleanup scheduler started (every 10 minutes)")
}

func StopTokenCleanupScheduler() {
	if tokenScheduler != nil {
		tokenScheduler.Stop()
	}
}

func cleanupExpiredTokens() {
	now := time.Now()

	result := database.DB.Model(&model.Therapist{}).
		Where("token_expires_at IS NOT NULL AND token_expires_at < ?", now).
		Updates(map[string]any{"auth_token": nil, "token_expires_at": nil})
	if result.Error != nil {
		log.Printf("failed to clear therapist tokens: %v", result.Error)
	}

	result = database.DB.Model(&model.Cashier{}).
		Where("token_expires_at IS NOT NULL AND token_expires_at < ?", now).
		Updates(map[string]any{"auth_token": nil, "token_expires_at": nil})
	if result.Error != nil {
		log.Printf("failed to clear cashier tokens: %v", result.Error)
	}
}

// StartDailySummaryScheduler emails the closing payment summary at 23:55.
func StartDailySummaryScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}

	summaryScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(23, 55, 0),
			),
		),
		gocron.NewTask(SendDailySummary),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Daily summary scheduler started (23:55)")
}

func StopDailySummaryScheduler() {
	if summaryScheduler != nil {
		_ = summaryScheduler.Shutdown()
	}
}

func SendDailySummary() {
	to := config.Config("SUMMARY_EMAIL_TO")
	if to == "" {
		return
	}

	since := time.Now().Truncate(24 * time.Hour)

	var payments []model.Payment
	if err := database.DB.Preload("Cashier").
		Where("created_at >= ?", since).
		Find(&payments).Error; err != nil {
		log.Printf("failed to load payments for summary: %v", err)
		return
	}

	utils.SendDailySummaryEmail(to, BuildDailySummary(payments, time.Now()))
}

// BuildDailySummary folds a day of payments into per-cashier rows.
func BuildDailySummary(payments []model.Payment, now time.Time) utils.DailySummaryData {
	index := map[string]int{}
	data := utils.DailySummaryData{Date: utils.SummaryDate(now)}

	for _, p := range payments {
		i, ok := index[p.Cashier.Name]
		if !ok {
			i = len(data.Cashiers)
			index[p.Cashier.Name] = i
			data.Cashiers = append(data.Cashiers, utils.CashierSummaryRow{CashierName: p.Cashier.Name})
		}
		data.Cashiers[i].PaymentCount++
		data.Cashiers[i].TotalAmount += p.AmountPaid
		data.PaymentCount++
		data.TotalAmount += p.AmountPaid
	}
	return data
}
