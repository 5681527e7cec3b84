package catalog

import (
	"context"
	"log"

	"github.com/openfare/fareledger/internal/domain"
	"github.com/openfare/fareledger/internal/ledger"
)

// CatalogUseCase manages the customer and meal registries around the core
// booking workflows.
type CatalogUseCase interface {
	CreateCustomer(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	ListAllCustomers(ctx context.Context) ([]domain.Customer, error)
	RemoveCustomer(ctx context.Context, id int64) error

	CreateMeal(ctx context.Context, input CreateMealInput) (*domain.Meal, error)
	GetMeal(ctx context.Context, id int64) (*domain.Meal, error)
	ListMeals(ctx context.Context) ([]domain.Meal, error)
	ListAllMeals(ctx context.Context) ([]domain.Meal, error)
	RemoveMeal(ctx context.Context, id int64) error
}

type Store interface {
	Save(ctx context.Context, s *ledger.Snapshot) error
}

type CreateCustomerInput struct {
	Name          string              `json:"name"`
	Email         string              `json:"email"`
	Phone         string              `json:"phone"`
	Age           int                 `json:"age"`
	Gender        string              `json:"gender"`
	PreferredMeal domain.MealCategory `json:"preferred_meal"`
}

type CreateMealInput struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Price       float64             `json:"price"`
	Category    domain.MealCategory `json:"category"`
}

type CatalogService struct {
	ledger *ledger.Ledger
	store  Store
}

func NewCatalogService(l *ledger.Ledger, store Store) *CatalogService {
	return &CatalogService{ledger: l, store: store}
}

func (s *CatalogService) CreateCustomer(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error) {
	c, err := s.ledger.CreateCustomer(input.Name, input.Email, input.Phone, input.Age, input.Gender, input.PreferredMeal)
	if err != nil {
		return nil, err
	}
	s.save(ctx)
	return c, nil
}

func (s *CatalogService) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.ledger.GetCustomerIncludingDeleted(id)
}

func (s *CatalogService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.ledger.ListActiveCustomers(), nil
}

func (s *CatalogService) ListAllCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.ledger.ListAllCustomers(), nil
}

func (s *CatalogService) RemoveCustomer(ctx context.Context, id int64) error {
	if err := s.ledger.RemoveCustomer(id); err != nil {
		return err
	}
	s.save(ctx)
	return nil
}

func (s *CatalogService) CreateMeal(ctx context.Context, input CreateMealInput) (*domain.Meal, error) {
	m, err := s.ledger.CreateMeal(input.Name, input.Description, input.Price, input.Category)
	if err != nil {
		return nil, err
	}
	s.save(ctx)
	return m, nil
}

func (s *CatalogService) GetMeal(ctx context.Context, id int64) (*domain.Meal, error) {
	return s.ledger.GetMealIncludingDeleted(id)
}

func (s *CatalogService) ListMeals(ctx context.Context) ([]domain.Meal, error) {
	return s.ledger.ListActiveMeals(), nil
}

func (s *CatalogService) ListAllMeals(ctx context.Context) ([]domain.Meal, error) {
	return s.ledger.ListAllMeals(), nil
}

func (s *CatalogService) RemoveMeal(ctx context.Context, id int64) error {
	if err := s.ledger.RemoveMeal(id); err != nil {
		return err
	}
	s.save(ctx)
	return nil
}

func (s *CatalogService) save(ctx context.Context) {
	if s.store == nil {
		return
	}
	if err := s.store.Save(ctx, s.ledger.Export()); err != nil {
		log.Printf("WARNING: catalog change applied but snapshot store failed: %v", err)
	}
}

var _ CatalogUseCase = (*CatalogService)(nil)
