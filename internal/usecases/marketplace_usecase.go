package usecases

import (
	"errors"

	"farmon/internal/entities"
	"farmon/internal/repository"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
)

// MarketplaceUsecase enforces the ownership and role rules around listings:
// only farmers create them, only the owning farmer changes or removes them.
type MarketplaceUsecase struct {
	productRepo *repository.ProductRepository
	userRepo    *repository.UserRepository
}

func NewMarketplaceUsecase(productRepo *repository.ProductRepository, userRepo *repository.UserRepository) *MarketplaceUsecase {
	return &MarketplaceUsecase{
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

func (u *MarketplaceUsecase) ListProducts(filter repository.ProductFilter) ([]entities.Product, error) {
	return u.productRepo.List(filter)
}

func (u *MarketplaceUsecase) GetProduct(id int) (*entities.Product, error) {
	product, err := u.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// CreateProduct stores a new listing after checking the caller's stored role.
// The role is re-read from the users table rather than trusted from the token.
func (u *MarketplaceUsecase) CreateProduct(userID int, product *entities.Product) error {
	user, err := u.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil || user.Role != entities.RoleFarmer {
		return ErrForbidden
	}

	product.FarmerID = userID
	if err := u.productRepo.Create(product); err != nil {
		return err
	}
	product.FarmerName = user.Username
	product.FarmerPhone = user.Phone
	product.FarmerLocation = user.Location
	return nil
}

func (u *MarketplaceUsecase) UpdateProduct(userID, productID int, upd repository.ProductUpdate) (*entities.Product, error) {
	if err := u.checkOwnership(userID, productID); err != nil {
		return nil, err
	}
	return u.productRepo.Update(productID, upd)
}

func (u *MarketplaceUsecase) DeleteProduct(userID, productID int) error {
	if err := u.checkOwnership(userID, productID); err != nil {
		return err
	}
	return u.productRepo.Delete(productID)
}

func (u *MarketplaceUsecase) checkOwnership(userID, productID int) error {
	product, err := u.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrNotFound
	}
	if product.FarmerID != userID {
		return ErrForbidden
	}
	return nil
}
