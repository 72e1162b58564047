package CronJobs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"

	"Planify/Models"
)

// BookingSnapshotter periodically dumps the whole booking collection to a JSON
// file, using the same ISO-8601 shape the retrieve-all endpoint serves.
type BookingSnapshotter struct {
	cronScheduler  *cron.Cron
	outputDir      string
	runImmediately bool
	jobID          cron.EntryID
}

// NewBookingSnapshotter creates a new snapshotter writing into outputDir
func NewBookingSnapshotter(outputDir string, runImmediately bool) *BookingSnapshotter {
	return &BookingSnapshotter{
		cronScheduler:  cron.New(cron.WithSeconds()),
		outputDir:      outputDir,
		runImmediately: runImmediately,
	}
}

// Start initiates the snapshot cron job
func (s *BookingSnapshotter) Start() error {
	var err error
	s.jobID, err = s.cronScheduler.AddFunc("0 0 1 * * *", func() {
		log.Println("Running scheduled booking snapshot")
		s.runSnapshot()
	})

	if err != nil {
		return fmt.Errorf("error scheduling cron job: %w", err)
	}

	s.cronScheduler.Start()
	log.Println("Booking snapshot scheduler started - will run daily at 1:00 AM")

	if s.runImmediately {
		log.Println("Running initial booking snapshot")
		s.runSnapshot()
	}

	return nil
}

// Stop terminates the snapshotter
func (s *BookingSnapshotter) Stop() {
	if s.cronScheduler != nil {
		s.cronScheduler.Stop()
		log.Println("Booking snapshot scheduler stopped")
	}
}

func (s *BookingSnapshotter) runSnapshot() {
	var bookings []Models.Booking
	if err := Models.DB.Find(&bookings).Error; err != nil {
		log.Printf("Snapshot failed to load bookings: %v\n", err)
		return
	}

	if err := os.MkdirAll(s.outputDir, 0755); err != nil {
		log.Printf("Snapshot failed to create output directory: %v\n", err)
		return
	}

	data, err := json.MarshalIndent(bookings, "", "  ")
	if err != nil {
		log.Printf("Snapshot failed to marshal bookings: %v\n", err)
		return
	}

	filename := filepath.Join(s.outputDir, fmt.Sprintf("bookings_%s.json", time.Now().Format("20060102_150405")))
	if err := os.WriteFile(filename, data, 0644); err != nil {
		log.Printf("Snapshot failed to write %s: %v\n", filename, err)
		return
	}

	log.Printf("Snapshot of %d bookings written to %s\n", len(bookings), filename)
}
