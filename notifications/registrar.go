package notifications

import (
	"log"
	"sync"
	"time"

	"eduplay/config"

	"github.com/go-resty/resty/v2"
)

// PermissionFunc reports whether the user granted notification
// permission, prompting for it when still undecided.
type PermissionFunc func() (bool, error)

// Navigator receives the navigation action chosen for a tapped
// notification.
type Navigator interface {
	OpenInstitution(id uint)
	OpenCourseUpdate(id uint)
	OpenLessonPlayer(id uint)
	OpenLink(url string)
}

// Provider hands out device push tokens and notification event
// subscriptions. Each On* call returns its own unsubscribe function.
type Provider interface {
	Token(projectID string) (string, error)
	OnMessage(fn func(Message)) (unsubscribe func())
	OnTap(fn func(Data)) (unsubscribe func())
}

// Registrar ties a device push token to an authenticated session and
// keeps the two notification listeners alive until deactivation.
type Registrar struct {
	provider   Provider
	navigator  Navigator
	permission PermissionFunc
	backend    *resty.Client
	platform   string

	mu      sync.Mutex
	lastMsg *Message
	cancel  func()
}

// NewRegistrar wires a registrar against a provider, a navigator and
// the backend base URL.
func NewRegistrar(provider Provider, navigator Navigator, backendURL, platform string, permission PermissionFunc) *Registrar {
	return &Registrar{
		provider:   provider,
		navigator:  navigator,
		permission: permission,
		backend:    resty.New().SetBaseURL(backendURL).SetTimeout(10 * time.Second),
		platform:   platform,
	}
}

// Activate runs the registration flow for an authenticated session:
// permission gate, token fetch, best-effort hand-off to the backend,
// then the two listener subscriptions. The returned handle tears both
// listeners down synchronously and is safe to call more than once.
// A denied permission is a clean no-op, not an error. Activating again
// tears down the previous session's listeners first.
func (r *Registrar) Activate(authToken string) (func(), error) {
	granted, err := r.permission()
	if err != nil {
		return nil, err
	}
	if !granted {
		return func() {}, nil
	}

	token, err := r.provider.Token(config.AppConfig.PushProjectID())
	if err != nil {
		return nil, err
	}

	// Hand the token to the backend; a failure here is logged and the
	// foreground flow keeps going.
	resp, err := r.backend.R().
		SetAuthToken(authToken).
		SetBody(map[string]string{"token": token, "platform": r.platform}).
		Post("/learner/push-token")
	if err != nil {
		log.Printf("Push token hand-off failed: %v", err)
	} else if resp.IsError() {
		log.Printf("Push token hand-off rejected: %s", resp.Status())
	}

	// Replace an earlier activation's listeners rather than leaking
	// them. The old handle must fire before the new subscriptions go in.
	r.mu.Lock()
	prev := r.cancel
	r.cancel = nil
	r.mu.Unlock()
	if prev != nil {
		prev()
	}

	unsubMessage := r.provider.OnMessage(r.handleForeground)
	unsubTap := r.provider.OnTap(r.handleTap)

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			unsubMessage()
			unsubTap()
		})
	}

	r.mu.Lock()
	r.cancel = cancel
	r.mu.Unlock()

	return cancel, nil
}

// Deactivate tears down the active subscriptions, if any. Must be
// called on every session exit path.
func (r *Registrar) Deactivate() {
	r.mu.Lock()
	cancel := r.cancel
	r.cancel = nil
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// LastMessage returns the most recent message received while the app
// was foregrounded, or nil.
func (r *Registrar) LastMessage() *Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastMsg
}

func (r *Registrar) handleForeground(msg Message) {
	r.mu.Lock()
	r.lastMsg = &msg
	r.mu.Unlock()
}

// handleTap picks one of the four navigation actions for a tapped
// notification. Unrecognized payloads navigate nowhere.
func (r *Registrar) handleTap(data Data) {
	switch data.Type {
	case TypeInstitutionApproved:
		r.navigator.OpenInstitution(data.TargetID)
	case TypeCourseUpdate:
		r.navigator.OpenCourseUpdate(data.TargetID)
	case TypeLessonReminder:
		r.navigator.OpenLessonPlayer(data.TargetID)
	case TypeDirectLink:
		r.navigator.OpenLink(data.Link)
	}
}
