package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/fittrack/fittrack/internal/telemetry/tracing"
	"github.com/fittrack/fittrack/pkg"

	"github.com/coocood/freecache"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=catalog_mocks_test.go -package=catalog_test

type catalogRepo interface {
	Get(ctx context.Context, id string) (*Exercise, error)
	Search(ctx context.Context, params SearchParams) (_ []Exercise, total int, err error)
	DistinctFilters(ctx context.Context) (*Filters, error)
}

const (
	defaultPageSize = 10

	oneMinute          = 60
	detailCacheExpire  = 10 * oneMinute
	filtersCacheExpire = 60 * oneMinute
	filtersCacheKey    = "catalog::filters"
	detailCacheKeyPref = "catalog::exercise::"
)

type SearchResponse struct {
	Exercises []Exercise `json:"exercises"`
	Total     int        `json:"total"`
	Page      int        `json:"page"`
}

type Handler struct {
	repo  catalogRepo
	cache *freecache.Cache
}

func NewHandler(repo catalogRepo) *Handler {
	megabyte := 1024 * 1024
	return &Handler{
		repo:  repo,
		cache: freecache.NewCache(10 * megabyte),
	}
}

func (handler *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.search")
	defer span.End()

	query := r.URL.Query()

	page := 1
	if pageStr := query.Get("page"); pageStr != "" {
		var err error
		page, err = strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			pkg.WriteError(w, "invalid page parameter", http.StatusBadRequest)
			return
		}
	}
	size := defaultPageSize
	if sizeStr := query.Get("size"); sizeStr != "" {
		var err error
		size, err = strconv.Atoi(sizeStr)
		if err != nil || size < 1 {
			pkg.WriteError(w, "invalid size parameter", http.StatusBadRequest)
			return
		}
	}

	exercises, total, err := handler.repo.Search(ctx, SearchParams{
		Term:      query.Get("term"),
		Level:     query.Get("level"),
		Mechanic:  query.Get("mechanic"),
		Equipment: query.Get("equipment"),
		Category:  query.Get("category"),
		Muscle:    query.Get("muscle"),
		Page:      page,
		Size:      size,
	})
	if err != nil {
		log.Errorf("search exercises: %s", err)
		pkg.WriteError(w, "failed to search exercises", http.StatusInternalServerError)
		return
	}

	for i := range exercises {
		if len(exercises[i].Images) > 0 {
			exercises[i].ImageURL = FixImagePath(exercises[i].Images[0])
		}
	}

	respJson, err := json.Marshal(SearchResponse{
		Exercises: exercises,
		Total:     total,
		Page:      page,
	})
	if err != nil {
		log.Errorf("marshal search response: %s", err)
		pkg.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.get")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		pkg.WriteError(w, "exercise id empty", http.StatusBadRequest)
		return
	}

	cacheKey := []byte(detailCacheKeyPref + id)
	if cached, err := handler.cache.Get(cacheKey); err == nil {
		log.Tracef("exercise %s served from cache", id)
		pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, cached)
		return
	}

	exercise, err := handler.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			pkg.WriteError(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("get exercise %s: %s", id, err)
		pkg.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	exercise.Images = exercise.FixImagePaths()
	for i, step := range exercise.Instructions {
		exercise.Instructions[i] = CleanInstruction(step)
	}

	exerciseJson, err := json.Marshal(exercise)
	if err != nil {
		log.Errorf("marshal exercise %s: %s", id, err)
		pkg.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := handler.cache.Set(cacheKey, exerciseJson, detailCacheExpire); err != nil {
		log.Errorf("cache exercise %s: %s", id, err)
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, exerciseJson)
}

func (handler *Handler) HandleFilters(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.filters")
	defer span.End()

	if cached, err := handler.cache.Get([]byte(filtersCacheKey)); err == nil {
		pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, cached)
		return
	}

	filters, err := handler.repo.DistinctFilters(ctx)
	if err != nil {
		log.Errorf("get catalog filters: %s", err)
		pkg.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	filtersJson, err := json.Marshal(filters)
	if err != nil {
		log.Errorf("marshal catalog filters: %s", err)
		pkg.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := handler.cache.Set([]byte(filtersCacheKey), filtersJson, filtersCacheExpire); err != nil {
		log.Errorf("cache catalog filters: %s", err)
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, filtersJson)
}
