package tasks

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/finboard/finboard/internal/dashboard"
	"github.com/finboard/finboard/internal/models"
	"github.com/finboard/finboard/internal/services"
	"github.com/finboard/finboard/internal/websocket"
)

// Manager handles the execution of scheduled tasks
type Manager struct {
	tasks []Task
}

// Task represents a scheduled task that needs to be executed
type Task interface {
	Start()
	Stop()
}

// NewManager creates a new task manager
func NewManager() *Manager {
	return &Manager{tasks: make([]Task, 0)}
}

// RegisterTask registers a task with the manager
func (m *Manager) RegisterTask(task Task) {
	m.tasks = append(m.tasks, task)
}

// StartScheduledTasks starts all registered tasks
func (m *Manager) StartScheduledTasks() {
	for _, task := range m.tasks {
		go task.Start()
	}
	log.Println("Started all scheduled tasks")
}

// StopAllTasks stops all running tasks
func (m *Manager) StopAllTasks() {
	for _, task := range m.tasks {
		task.Stop()
	}
	log.Println("Stopped all scheduled tasks")
}

// QuoteTickTask random-walks the dashboard seed prices on an interval,
// writes the snapshots to the quote store, and broadcasts them to
// WebSocket clients.
type QuoteTickTask struct {
	quoteService *services.QuoteService
	wsHub        *websocket.Hub
	interval     time.Duration
	rng          *rand.Rand
	quotes       []models.Quote
	stopChan     chan struct{}
}

// NewQuoteTickTask creates a quote tick task seeded from the dashboard
// catalog.
func NewQuoteTickTask(quoteService *services.QuoteService, wsHub *websocket.Hub, interval time.Duration) *QuoteTickTask {
	return &QuoteTickTask{
		quoteService: quoteService,
		wsHub:        wsHub,
		interval:     interval,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		quotes:       dashboard.SeedQuotes(),
		stopChan:     make(chan struct{}),
	}
}

// Start begins ticking. It blocks until Stop is called.
func (t *QuoteTickTask) Start() {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			t.tick()
		case <-t.stopChan:
			return
		}
	}
}

// Stop halts the task.
func (t *QuoteTickTask) Stop() {
	close(t.stopChan)
}

func (t *QuoteTickTask) tick() {
	t.quotes = nextQuotes(t.quotes, t.rng, time.Now())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := t.quoteService.SetQuotes(ctx, t.quotes); err != nil {
		log.Printf("Error writing quote snapshots: %v", err)
		return
	}

	t.wsHub.Broadcast(models.Message{Type: "quotes", Content: t.quotes})
}

// nextQuotes advances every quote one random-walk step, at most ±0.5%
// of the current price per tick.
func nextQuotes(prev []models.Quote, rng *rand.Rand, now time.Time) []models.Quote {
	next := make([]models.Quote, len(prev))
	for i, q := range prev {
		base := q.Price
		step := base * (rng.Float64() - 0.5) / 100
		q.Change = step
		q.Price = base + step
		if base > 0 {
			q.ChangePct = step / base * 100
		}
		q.UpdatedAt = now
		next[i] = q
	}
	return next
}
