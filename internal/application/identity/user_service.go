package identity

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Daninc24/myshop/internal/domain/identity"
	"github.com/Daninc24/myshop/internal/domain/shared"
)

// UserService handles administrative user management
type UserService struct {
	userRepo identity.UserRepository
	eventBus shared.EventBus
	logger   *zap.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.UserRepository, eventBus shared.EventBus, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		eventBus: eventBus,
		logger:   logger,
	}
}

// Get returns a single user
func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToUserResponse(user)
	return &response, nil
}

// List returns users matching the filter
func (s *UserService) List(ctx context.Context, filter UserListFilter) (*shared.Paginated[UserResponse], error) {
	domainFilter := toDomainFilter(filter)

	users, err := s.userRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.userRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(ToUserResponses(users), total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// Update applies an administrative update to name, role or salary
func (s *UserService) Update(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := user.SetName(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Role != nil {
		if err := user.SetRole(identity.Role(*req.Role)); err != nil {
			return nil, err
		}
	}
	if req.Salary != nil {
		if err := user.SetSalary(*req.Salary); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, user)

	s.logger.Info("user updated",
		zap.String("user_id", id.String()),
		zap.String("role", string(user.Role)),
	)

	response := ToUserResponse(user)
	return &response, nil
}

// Delete removes a user account. Admins cannot delete themselves.
func (s *UserService) Delete(ctx context.Context, id, requesterID uuid.UUID) error {
	if id == requesterID {
		return shared.NewDomainError("SELF_DELETE", "You cannot delete your own account")
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("user deleted", zap.String("user_id", id.String()))
	return nil
}

// publishEvents publishes and clears pending domain events
func (s *UserService) publishEvents(ctx context.Context, user *identity.User) {
	events := user.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	if err := s.eventBus.Publish(ctx, events...); err != nil {
		s.logger.Error("failed to publish user events", zap.Error(err))
	}
	user.ClearDomainEvents()
}

func toDomainFilter(filter UserListFilter) shared.Filter {
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
	domainFilter.Search = filter.Search
	if filter.Role != "" {
		domainFilter.Filters["role"] = filter.Role
	}
	return domainFilter
}
