// Package telelaw serves the Tele-Law panel roster and simulated video
// consultation sessions. The roster is seed data until the Tele-Law API
// integration lands.
package telelaw

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

// Lawyer is one panel member on the Tele-Law roster.
type Lawyer struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Specialization string   `json:"specialization"`
	Languages      []string `json:"languages"`
	ExperienceYrs  int      `json:"experience_years"`
	Rating         float64  `json:"rating"`
	Available      bool     `json:"available"`
	NextAvailable  string   `json:"next_available,omitempty"`
}

// Connection is the outcome of a connect attempt.
type Connection struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	SessionID     string `json:"session_id,omitempty"`
	EstimatedWait string `json:"estimated_wait,omitempty"`
	QueuePosition int    `json:"queue_position,omitempty"`
}

// Roster holds the panel. queuePos is injectable so tests get deterministic
// queue positions.
type Roster struct {
	lawyers  []Lawyer
	queuePos func() int
}

// NewRoster returns the default panel.
func NewRoster() *Roster {
	return &Roster{
		lawyers: []Lawyer{
			{ID: "LAW001", Name: "Adv. Priya Sharma", Specialization: "Family Law", Languages: []string{"Hindi", "English"}, ExperienceYrs: 12, Rating: 4.8, Available: true},
			{ID: "LAW002", Name: "Adv. Rajesh Kumar", Specialization: "Criminal Law", Languages: []string{"Hindi", "Punjabi", "English"}, ExperienceYrs: 18, Rating: 4.9, Available: true},
			{ID: "LAW003", Name: "Adv. Sunita Devi", Specialization: "Property & Land Disputes", Languages: []string{"Hindi", "Bhojpuri"}, ExperienceYrs: 8, Rating: 4.6, Available: false, NextAvailable: "2:30 PM"},
			{ID: "LAW004", Name: "Adv. Mohammed Farid", Specialization: "Labour Law", Languages: []string{"Hindi", "Urdu", "English"}, ExperienceYrs: 15, Rating: 4.7, Available: true},
			{ID: "LAW005", Name: "Adv. Lakshmi Iyer", Specialization: "Consumer Protection", Languages: []string{"Tamil", "English", "Hindi"}, ExperienceYrs: 10, Rating: 4.5, Available: false, NextAvailable: "4:00 PM"},
		},
		queuePos: func() int { return rand.Intn(5) + 1 },
	}
}

// Available returns the roster, optionally filtered by a case-insensitive
// specialization substring.
func (r *Roster) Available(specialization string) []Lawyer {
	if specialization == "" {
		out := make([]Lawyer, len(r.lawyers))
		copy(out, r.lawyers)
		return out
	}
	needle := strings.ToLower(specialization)
	var out []Lawyer
	for _, l := range r.lawyers {
		if strings.Contains(strings.ToLower(l.Specialization), needle) {
			out = append(out, l)
		}
	}
	return out
}

// Connect attempts to open a consultation session with a lawyer. An unknown
// id or a busy lawyer yields an unsuccessful Connection, not an error.
func (r *Roster) Connect(lawyerID string) Connection {
	var lawyer *Lawyer
	for i := range r.lawyers {
		if r.lawyers[i].ID == lawyerID {
			lawyer = &r.lawyers[i]
			break
		}
	}
	if lawyer == nil {
		return Connection{Success: false, Message: "Lawyer not found"}
	}
	if !lawyer.Available {
		return Connection{
			Success:       false,
			Message:       fmt.Sprintf("Lawyer is currently busy. Next available at %s", lawyer.NextAvailable),
			QueuePosition: r.queuePos(),
		}
	}
	return Connection{
		Success:       true,
		Message:       fmt.Sprintf("Connecting you with %s...", lawyer.Name),
		SessionID:     "TL-" + uuid.NewString(),
		EstimatedWait: "30 seconds",
	}
}
