package catalog

import (
	"context"
	"errors"
	"fmt"
	"log"

	"equiprent/internal/cache"
	"equiprent/internal/domain"
	"equiprent/internal/pricing"
	"equiprent/internal/repository"
)

const (
	cachePrefixEquipment  = "catalog:equipment:"
	cachePrefixCategories = "catalog:categories:"
)

type Service struct {
	equipment  EquipmentRepository
	categories CategoryRepository
	cache      *cache.Cache
}

func NewService(equipment EquipmentRepository, categories CategoryRepository, c *cache.Cache) *Service {
	return &Service{equipment: equipment, categories: categories, cache: c}
}

func listCacheKey(f repository.EquipmentFilter, lang string) string {
	cat := int64(0)
	if f.CategoryID != nil {
		cat = *f.CategoryID
	}
	avail := "any"
	if f.Available != nil {
		avail = fmt.Sprintf("%t", *f.Available)
	}
	return fmt.Sprintf("%slist:%d:%s:%s:%s:%s:%d:%d",
		cachePrefixEquipment, cat, avail, f.Query, f.Sort, lang, f.Limit, f.Offset)
}

func (s *Service) ListEquipment(ctx context.Context, q ListEquipmentQuery) ([]EquipmentView, error) {
	f := repository.EquipmentFilter{
		CategoryID: q.CategoryID,
		Available:  q.Available,
		Query:      q.Query,
		Sort:       q.Sort,
		Limit:      q.Limit,
		Offset:     q.Offset,
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 50
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	key := listCacheKey(f, q.Lang)
	var cached []EquipmentView
	if s.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	items, err := s.equipment.List(ctx, f)
	if err != nil {
		return nil, err
	}

	views := make([]EquipmentView, 0, len(items))
	for i := range items {
		views = append(views, viewOf(&items[i], q.Lang))
	}

	s.cache.SetJSON(ctx, key, views)
	return views, nil
}

func (s *Service) GetEquipment(ctx context.Context, id int64, lang string) (*EquipmentView, error) {
	key := fmt.Sprintf("%sitem:%d:%s", cachePrefixEquipment, id, lang)
	var cached EquipmentView
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	e, err := s.equipment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	v := viewOf(e, lang)
	s.cache.SetJSON(ctx, key, v)
	return &v, nil
}

func (s *Service) ListCategories(ctx context.Context, lang string) ([]CategoryView, error) {
	key := cachePrefixCategories + lang
	var cached []CategoryView
	if s.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	cats, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]CategoryView, 0, len(cats))
	for _, c := range cats {
		views = append(views, categoryViewOf(c, lang))
	}

	s.cache.SetJSON(ctx, key, views)
	return views, nil
}

func (s *Service) invalidate(ctx context.Context) {
	s.cache.InvalidatePrefix(ctx, cachePrefixEquipment)
	s.cache.InvalidatePrefix(ctx, cachePrefixCategories)
}

// checkRates rejects unusable rate cards and warns on suspicious ones.
// An inverted card, where a longer rental costs more per day, is stored
// anyway: pricing follows whatever the card says.
func checkRates(e *domain.Equipment) error {
	card := pricing.RateCard{PerDay: e.PricePerDay, PerWeek: e.PricePerWeek, PerMonth: e.PricePerMonth}
	if err := card.Validate(); err != nil {
		return ErrValidation
	}
	if card.TierRatesInverted() {
		log.Printf("WARN: equipment %q has inverted tier rates (day=%.2f week=%.2f month=%.2f)",
			e.Name, e.PricePerDay, e.PricePerWeek, e.PricePerMonth)
	}
	return nil
}

func equipmentFromRequest(req EquipmentRequest) *domain.Equipment {
	available := true
	if req.Available != nil {
		available = *req.Available
	}
	return &domain.Equipment{
		CategoryID:     req.CategoryID,
		Name:           req.Name,
		NameRu:         req.NameRu,
		NameAz:         req.NameAz,
		Description:    req.Description,
		DescriptionRu:  req.DescriptionRu,
		DescriptionAz:  req.DescriptionAz,
		Specifications: req.Specifications,
		PricePerDay:    req.PricePerDay,
		PricePerWeek:   req.PricePerWeek,
		PricePerMonth:  req.PricePerMonth,
		MainImage:      req.MainImage,
		Images:         req.Images,
		Available:      available,
		Location:       req.Location,
		Features:       req.Features,
	}
}

func (s *Service) CreateEquipment(ctx context.Context, req EquipmentRequest) (*domain.Equipment, error) {
	if _, err := s.categories.GetByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrValidation
		}
		return nil, err
	}

	e := equipmentFromRequest(req)
	if err := checkRates(e); err != nil {
		return nil, err
	}

	if err := s.equipment.Create(ctx, e); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return e, nil
}

func (s *Service) UpdateEquipment(ctx context.Context, id int64, req EquipmentRequest) (*domain.Equipment, error) {
	existing, err := s.equipment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	e := equipmentFromRequest(req)
	e.ID = existing.ID
	if req.Available == nil {
		e.Available = existing.Available
	}
	if err := checkRates(e); err != nil {
		return nil, err
	}

	if err := s.equipment.Update(ctx, e); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return s.equipment.GetByID(ctx, id)
}

func (s *Service) DeleteEquipment(ctx context.Context, id int64) error {
	if err := s.equipment.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *Service) SetEquipmentAvailability(ctx context.Context, id int64, available bool) error {
	if err := s.equipment.SetAvailable(ctx, id, available); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *Service) CreateCategory(ctx context.Context, req CategoryRequest) (*domain.Category, error) {
	c := &domain.Category{
		Slug:   req.Slug,
		Name:   req.Name,
		NameRu: req.NameRu,
		NameAz: req.NameAz,
		Icon:   req.Icon,
	}
	if err := s.categories.Create(ctx, c); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return c, nil
}

func (s *Service) UpdateCategory(ctx context.Context, id int64, req CategoryRequest) (*domain.Category, error) {
	c := &domain.Category{
		ID:     id,
		Slug:   req.Slug,
		Name:   req.Name,
		NameRu: req.NameRu,
		NameAz: req.NameAz,
		Icon:   req.Icon,
	}
	if err := s.categories.Update(ctx, c); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s.invalidate(ctx)
	return s.categories.GetByID(ctx, id)
}

func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	s.invalidate(ctx)
	return nil
}
