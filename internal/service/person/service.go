package person

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/YeharaMewan/rise-hr-backend/internal/domain/person"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type PersonServiceImpl struct {
	personRepo person.Repository
}

func NewPersonService(personRepo person.Repository) person.Service {
	return &PersonServiceImpl{personRepo: personRepo}
}

func (s *PersonServiceImpl) List(ctx context.Context, role string) ([]person.Response, error) {
	var people []person.Person
	var err error

	if role == "" {
		people, err = s.personRepo.List(ctx)
	} else {
		parsed, ok := person.ParseRole(role)
		if !ok {
			return nil, person.ErrInvalidRole
		}
		people, err = s.personRepo.FindByRole(ctx, []person.Role{parsed})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}

	responses := make([]person.Response, 0, len(people))
	for _, p := range people {
		responses = append(responses, person.ToResponse(p))
	}
	return responses, nil
}

func (s *PersonServiceImpl) Create(ctx context.Context, req person.CreateRequest) (*person.Response, error) {
	role, ok := person.ParseRole(req.Role)
	if !ok {
		return nil, person.ErrInvalidRole
	}

	if _, err := s.personRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, person.ErrEmailExists
	} else if !errors.Is(err, person.ErrPersonNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	created, err := s.personRepo.Create(ctx, person.Person{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create person: %w", err)
	}

	resp := person.ToResponse(*created)
	return &resp, nil
}

func (s *PersonServiceImpl) Update(ctx context.Context, id string, req person.UpdateRequest) (*person.Response, error) {
	p, err := s.personRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Email != nil && *req.Email != p.Email {
		if _, err := s.personRepo.FindByEmail(ctx, *req.Email); err == nil {
			return nil, person.ErrEmailExists
		} else if !errors.Is(err, person.ErrPersonNotFound) {
			return nil, err
		}
		p.Email = *req.Email
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	p.UpdatedAt = time.Now().UTC()

	updated, err := s.personRepo.Update(ctx, *p)
	if err != nil {
		return nil, fmt.Errorf("failed to update person: %w", err)
	}

	resp := person.ToResponse(*updated)
	return &resp, nil
}

func (s *PersonServiceImpl) Deactivate(ctx context.Context, id string) error {
	if _, err := s.personRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.personRepo.Deactivate(ctx, id)
}
