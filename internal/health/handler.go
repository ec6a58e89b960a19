package health

import (
	"context"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/workouttracker/pkg"
)

const readinessTimeout = 2 * time.Second

const (
	StatusOK          = "ok"
	StatusReady       = "ready"
	StatusUnavailable = "unavailable"
	CheckDisabled     = "disabled"
)

type dbPinger interface {
	Ping(ctx context.Context) error
}

type redisPinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

type Response struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type Checks struct {
	Postgres string `json:"postgres"`
	Redis    string `json:"redis"`
}

type ReadyResponse struct {
	Status string `json:"status"`
	Checks Checks `json:"checks"`
}

type Handler struct {
	db    dbPinger
	redis redisPinger
	now   func() time.Time
}

// NewHandler builds the liveness and readiness handler. redisClient may be nil when
// redis is not configured.
func NewHandler(db dbPinger, redisClient redisPinger) *Handler {
	return &Handler{
		db:    db,
		redis: redisClient,
		now:   time.Now,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.HandleHealth).Methods("GET").Name("health")
	r.HandleFunc("/health/ready", h.HandleReady).Methods("GET").Name("health-ready")
}

func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSONResponseOK(w, Response{
		Status:    StatusOK,
		Timestamp: h.now().UTC(),
	})
}

func (h *Handler) HandleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	resp := ReadyResponse{
		Status: StatusReady,
		Checks: Checks{
			Postgres: StatusOK,
			Redis:    CheckDisabled,
		},
	}

	if err := h.db.Ping(ctx); err != nil {
		log.Errorf("readiness: postgres ping: %s", err)
		resp.Status = StatusUnavailable
		resp.Checks.Postgres = StatusUnavailable
	}

	if h.redis != nil {
		resp.Checks.Redis = StatusOK
		if err := h.redis.Ping(ctx).Err(); err != nil {
			log.Errorf("readiness: redis ping: %s", err)
			resp.Status = StatusUnavailable
			resp.Checks.Redis = StatusUnavailable
		}
	}

	status := http.StatusOK
	if resp.Status != StatusReady {
		status = http.StatusServiceUnavailable
	}
	pkg.WriteJSON(w, resp, status)
}
