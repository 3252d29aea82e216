package catalog

import (
	"encoding/json"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dreamnest/dreamnest-api/internal/api/respond"
	"github.com/dreamnest/dreamnest-api/internal/schema"
	"github.com/dreamnest/dreamnest-api/pkg/logging"
)

// Handler handles HTTP requests for the property catalog
type Handler struct {
	repo   Repository
	logger *logging.Logger
}

// NewHandler creates a new catalog handler
func NewHandler(repo Repository, logger *logging.Logger) *Handler {
	return &Handler{
		repo:   repo,
		logger: logger,
	}
}

// GetCatalog handles GET /api/catalog requests: the four listing
// collections, fetched concurrently. An empty store yields four empty
// lists, not an error.
func (h *Handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	var cat Catalog

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		cat.Communities, err = h.repo.ListCommunities(ctx)
		return err
	})
	g.Go(func() (err error) {
		cat.Towers, err = h.repo.ListTowers(ctx)
		return err
	})
	g.Go(func() (err error) {
		cat.Flats, err = h.repo.ListFlats(ctx)
		return err
	})
	g.Go(func() (err error) {
		cat.FloorPlans, err = h.repo.ListFloorPlans(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		h.logger.Error("failed to load catalog", "error", err)
		respond.Error(w, http.StatusInternalServerError, "failed to load catalog")
		return
	}

	respond.JSON(w, http.StatusOK, cat)
}

// CreateCommunity handles POST /api/communities requests
func (h *Handler) CreateCommunity(w http.ResponseWriter, r *http.Request) {
	var c Community
	if !h.decodeAndValidate(w, r, &c) {
		return
	}
	if c.AmenitiesImages == nil {
		c.AmenitiesImages = []string{}
	}
	c.CreatedAt = time.Now().UTC()

	h.create(w, r, "community", func() (string, error) {
		return h.repo.CreateCommunity(r.Context(), &c)
	})
}

// CreateTower handles POST /api/towers requests
func (h *Handler) CreateTower(w http.ResponseWriter, r *http.Request) {
	var t Tower
	if !h.decodeAndValidate(w, r, &t) {
		return
	}
	if t.Images == nil {
		t.Images = []string{}
	}
	if t.PDFs == nil {
		t.PDFs = []string{}
	}
	t.CreatedAt = time.Now().UTC()

	h.create(w, r, "tower", func() (string, error) {
		return h.repo.CreateTower(r.Context(), &t)
	})
}

// CreateFlat handles POST /api/flats requests
func (h *Handler) CreateFlat(w http.ResponseWriter, r *http.Request) {
	var f Flat
	if !h.decodeAndValidate(w, r, &f) {
		return
	}
	if f.Status == "" {
		f.Status = DefaultFlatStatus
	}
	if f.Images == nil {
		f.Images = []string{}
	}
	f.CreatedAt = time.Now().UTC()

	h.create(w, r, "flat", func() (string, error) {
		return h.repo.CreateFlat(r.Context(), &f)
	})
}

// CreateFloorPlan handles POST /api/floorplans requests
func (h *Handler) CreateFloorPlan(w http.ResponseWriter, r *http.Request) {
	var fp FloorPlan
	if !h.decodeAndValidate(w, r, &fp) {
		return
	}
	fp.CreatedAt = time.Now().UTC()

	h.create(w, r, "floorplan", func() (string, error) {
		return h.repo.CreateFloorPlan(r.Context(), &fp)
	})
}

// CreateUser handles POST /api/users requests
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var u User
	if !h.decodeAndValidate(w, r, &u) {
		return
	}
	u.CreatedAt = time.Now().UTC()

	h.create(w, r, "user", func() (string, error) {
		return h.repo.CreateUser(r.Context(), &u)
	})
}

func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := schema.Validate(v); err != nil {
		respond.ValidationError(w, err)
		return false
	}
	return true
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request, entity string, insert func() (string, error)) {
	id, err := insert()
	if err != nil {
		h.logger.Error("failed to create "+entity, "error", err)
		respond.Error(w, http.StatusInternalServerError, "failed to create "+entity)
		return
	}

	h.logger.Info(entity+" created", "id", id)
	respond.JSON(w, http.StatusCreated, map[string]any{"id": id})
}
