// util/notification_service.go

package util

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/metacat/logging"
	"github.com/dev-mohitbeniwal/metacat/metrics"
)

type NotificationLevel string

const (
	LevelError   NotificationLevel = "error"
	LevelWarning NotificationLevel = "warning"
	LevelSuccess NotificationLevel = "success"
	LevelInfo    NotificationLevel = "info"
)

// maxPendingNotifications bounds each session queue; the oldest entries are dropped
const maxPendingNotifications = 50

// Notification is a non-blocking, user-facing message (a toast)
type Notification struct {
	ID        string            `json:"id"`
	Level     NotificationLevel `json:"level"`
	Message   string            `json:"message"`
	CreatedAt time.Time         `json:"createdAt"`
}

// userMessager is implemented by errors that carry text meant for the user
type userMessager interface {
	UserMessage() string
}

// NotificationService queues notifications per console session until the client drains them
type NotificationService struct {
	mu      sync.Mutex
	queues  map[string][]Notification
	metrics *metrics.Metrics
}

func NewNotificationService(m *metrics.Metrics) *NotificationService {
	return &NotificationService{
		queues:  make(map[string][]Notification),
		metrics: m,
	}
}

// ShowError queues one error notification for err. fallback is used when err has no text.
func (n *NotificationService) ShowError(ctx context.Context, sessionID string, err error, fallback string) {
	message := fallback
	var um userMessager
	if errors.As(err, &um) && um.UserMessage() != "" {
		message = um.UserMessage()
	} else if err != nil && fallback == "" {
		message = err.Error()
	}

	logger.Warn("NOTIFICATION: error shown to user",
		zap.String("sessionID", sessionID),
		zap.String("message", message),
		zap.Error(err))
	n.push(sessionID, LevelError, message)
}

func (n *NotificationService) ShowSuccess(ctx context.Context, sessionID, message string) {
	logger.Info("NOTIFICATION: success shown to user",
		zap.String("sessionID", sessionID),
		zap.String("message", message))
	n.push(sessionID, LevelSuccess, message)
}

func (n *NotificationService) push(sessionID string, level NotificationLevel, message string) {
	n.metrics.Notification(string(level))

	n.mu.Lock()
	defer n.mu.Unlock()

	queue := append(n.queues[sessionID], Notification{
		ID:        uuid.New().String(),
		Level:     level,
		Message:   message,
		CreatedAt: time.Now(),
	})
	if len(queue) > maxPendingNotifications {
		queue = queue[len(queue)-maxPendingNotifications:]
	}
	n.queues[sessionID] = queue
}

// Drain returns and clears the pending notifications of a session
func (n *NotificationService) Drain(sessionID string) []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	queue := n.queues[sessionID]
	delete(n.queues, sessionID)
	if queue == nil {
		return []Notification{}
	}
	return queue
}

// Pending reports how many notifications wait for a session
func (n *NotificationService) Pending(sessionID string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.queues[sessionID])
}

// Forget drops everything queued for a session
func (n *NotificationService) Forget(sessionID string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.queues, sessionID)
}
