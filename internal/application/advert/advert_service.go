package advert

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Daninc24/myshop/internal/domain/advert"
	"github.com/Daninc24/myshop/internal/domain/catalog"
	"github.com/Daninc24/myshop/internal/domain/shared"
)

// AdvertService handles storefront advert management
type AdvertService struct {
	advertRepo  advert.AdvertRepository
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewAdvertService creates a new AdvertService
func NewAdvertService(advertRepo advert.AdvertRepository, productRepo catalog.ProductRepository, logger *zap.Logger) *AdvertService {
	return &AdvertService{
		advertRepo:  advertRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// Create creates an advert. A linked product must exist.
func (s *AdvertService) Create(ctx context.Context, req CreateAdvertRequest) (*AdvertResponse, error) {
	ad, err := advert.NewAdvert(req.Title, req.Message)
	if err != nil {
		return nil, err
	}

	if req.ProductID != nil {
		if _, err := s.productRepo.FindByID(ctx, *req.ProductID); err != nil {
			return nil, err
		}
		ad.LinkProduct(req.ProductID)
	}
	if req.ImageURL != "" {
		if err := ad.SetImage(req.ImageURL); err != nil {
			return nil, err
		}
	}
	if req.StartDate != nil || req.EndDate != nil {
		if err := ad.SetWindow(req.StartDate, req.EndDate); err != nil {
			return nil, err
		}
	}
	if req.Template != "" {
		if err := ad.SetTemplate(req.Template); err != nil {
			return nil, err
		}
	}

	if err := s.advertRepo.Save(ctx, ad); err != nil {
		return nil, err
	}

	s.logger.Info("advert created",
		zap.String("advert_id", ad.ID.String()),
		zap.String("title", ad.Title),
	)

	response := ToAdvertResponse(ad)
	return &response, nil
}

// Update updates advert attributes
func (s *AdvertService) Update(ctx context.Context, id uuid.UUID, req UpdateAdvertRequest) (*AdvertResponse, error) {
	ad, err := s.advertRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if err := ad.SetTitle(*req.Title); err != nil {
			return nil, err
		}
	}
	if req.Message != nil {
		if err := ad.SetMessage(*req.Message); err != nil {
			return nil, err
		}
	}
	if req.ProductID != nil {
		if _, err := s.productRepo.FindByID(ctx, *req.ProductID); err != nil {
			return nil, err
		}
		ad.LinkProduct(req.ProductID)
	}
	if req.ImageURL != nil {
		if err := ad.SetImage(*req.ImageURL); err != nil {
			return nil, err
		}
	}
	if req.StartDate != nil || req.EndDate != nil {
		start := ad.StartDate
		end := ad.EndDate
		if req.StartDate != nil {
			start = req.StartDate
		}
		if req.EndDate != nil {
			end = req.EndDate
		}
		if err := ad.SetWindow(start, end); err != nil {
			return nil, err
		}
	}
	if req.Template != nil {
		if err := ad.SetTemplate(*req.Template); err != nil {
			return nil, err
		}
	}
	if req.Active != nil {
		if *req.Active {
			ad.Activate()
		} else {
			ad.Deactivate()
		}
	}

	if err := s.advertRepo.Save(ctx, ad); err != nil {
		return nil, err
	}

	response := ToAdvertResponse(ad)
	return &response, nil
}

// Get returns a single advert
func (s *AdvertService) Get(ctx context.Context, id uuid.UUID) (*AdvertResponse, error) {
	ad, err := s.advertRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToAdvertResponse(ad)
	return &response, nil
}

// List returns adverts matching the filter
func (s *AdvertService) List(ctx context.Context, filter AdvertListFilter) (*shared.Paginated[AdvertResponse], error) {
	domainFilter := toDomainFilter(filter)

	adverts, err := s.advertRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.advertRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(ToAdvertResponses(adverts), total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// ListActive returns the adverts currently showing on the storefront
func (s *AdvertService) ListActive(ctx context.Context) ([]AdvertResponse, error) {
	adverts, err := s.advertRepo.FindActive(ctx, time.Now())
	if err != nil {
		return nil, err
	}
	return ToAdvertResponses(adverts), nil
}

// Delete removes an advert
func (s *AdvertService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.advertRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("advert deleted", zap.String("advert_id", id.String()))
	return nil
}

func toDomainFilter(filter AdvertListFilter) shared.Filter {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	if filter.Active != nil {
		domainFilter.Filters["active"] = *filter.Active
	}
	if filter.ProductID != nil {
		domainFilter.Filters["product_id"] = *filter.ProductID
	}
	if filter.Template != "" {
		domainFilter.Filters["template"] = filter.Template
	}
	return domainFilter
}
