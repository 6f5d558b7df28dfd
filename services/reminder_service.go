// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"

	"wwa-backend/models"
	"wwa-backend/utils"
)

type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB) *ReminderService {
	// Initialize Twilio client
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

// StartScheduler runs the visit reminder job every day at 9 AM.
func (s *ReminderService) StartScheduler() {
	c := cron.New()

	if _, err := c.AddFunc("0 9 * * *", s.SendVisitReminders); err != nil {
		log.Printf("Failed to schedule visit reminders: %v", err)
		return
	}

	c.Start()
	log.Println("Visit reminder scheduler started")
}

// SendVisitReminders texts every user with a phone number on file about
// bookings scheduled for tomorrow.
func (s *ReminderService) SendVisitReminders() {
	log.Println("Starting visit reminder processing...")

	bookings, err := s.UpcomingBookings(time.Now())
	if err != nil {
		log.Printf("Failed to fetch upcoming bookings: %v", err)
		return
	}

	for _, booking := range bookings {
		s.sendReminder(booking)
	}

	log.Println("Visit reminder processing completed")
}

// UpcomingBookings returns bookings dated tomorrow whose user has a phone
// number on file.
func (s *ReminderService) UpcomingBookings(now time.Time) ([]models.Booking, error) {
	start := utils.BeginningOfDay(now).AddDate(0, 0, 1)
	end := start.AddDate(0, 0, 1)

	var bookings []models.Booking
	err := s.db.
		Joins("JOIN users ON users.id = bookings.user_id").
		Where("bookings.date >= ? AND bookings.date < ?", start, end).
		Where("users.phone <> ''").
		Preload("User").
		Preload("Park").
		Find(&bookings).Error
	return bookings, err
}

func (s *ReminderService) sendReminder(booking models.Booking) {
	body := fmt.Sprintf(
		"Hi %s, a reminder from Wednesday's Wicked Adventures: your visit to %s is tomorrow at %s. See you there!",
		booking.User.Name, booking.Park.Name, booking.Date.Format("3:04 PM"))

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(booking.User.Phone)
	params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	params.SetBody(body)

	status := "sent"
	errorMsg := ""

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send reminder to %s: %v", booking.User.Phone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Reminder sent to %s, SID: %s", booking.User.Phone, *resp.Sid)
	} else {
		log.Printf("Reminder sent to %s, but no SID returned", booking.User.Phone)
	}

	// Log the reminder attempt
	reminderLog := models.ReminderLog{
		BookingID: booking.ID,
		UserID:    booking.UserID,
		Phone:     booking.User.Phone,
		Status:    status,
		Error:     errorMsg,
		SentAt:    time.Now(),
	}
	if err := s.db.Create(&reminderLog).Error; err != nil {
		log.Printf("Failed to record reminder log: %v", err)
	}
}
