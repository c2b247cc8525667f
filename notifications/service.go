package notifications

import (
	"fmt"
	"time"

	"eduplay/config"

	"github.com/go-resty/resty/v2"
)

// Notification payload types dispatched to the mobile client.
const (
	TypeInstitutionApproved = "institution_approved"
	TypeCourseUpdate        = "course_update"
	TypeLessonReminder      = "lesson_reminder"
	TypeDirectLink          = "direct_link"
)

// Data is the structured payload carried by every push message. Type
// decides what the client does when the user taps the notification.
type Data struct {
	Type     string `json:"type"`
	TargetID uint   `json:"target_id,omitempty"`
	Link     string `json:"link,omitempty"`
}

// Message is one push message addressed to a single device token.
type Message struct {
	Token        string `json:"to"`
	Notification struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	} `json:"notification"`
	Data Data `json:"data"`
}

// NewMessage builds a push message for a device token.
func NewMessage(token, title, body string, data Data) Message {
	msg := Message{Token: token, Data: data}
	msg.Notification.Title = title
	msg.Notification.Body = body
	return msg
}

// Service sends push messages through the FCM-style provider endpoint.
type Service struct {
	client    *resty.Client
	url       string
	serverKey string
	projectID string
}

// NewService builds a push sender from the application config.
func NewService() *Service {
	return &Service{
		client:    resty.New().SetTimeout(10 * time.Second),
		url:       config.AppConfig.PushProviderURL,
		serverKey: config.AppConfig.PushServerKey,
		projectID: config.AppConfig.PushProjectID(),
	}
}

// Enabled reports whether a push project id is configured.
func (s *Service) Enabled() bool {
	return s.projectID != ""
}

// Send delivers one message to the provider. Callers treat failures as
// best effort; nothing here retries.
func (s *Service) Send(msg Message) error {
	if !s.Enabled() {
		return fmt.Errorf("push notifications are not configured")
	}

	resp, err := s.client.R().
		SetHeader("Authorization", "key="+s.serverKey).
		SetHeader("Content-Type", "application/json").
		SetBody(msg).
		Post(fmt.Sprintf("%s/v1/projects/%s/messages:send", s.url, s.projectID))
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("push provider returned %s", resp.Status())
	}
	return nil
}
