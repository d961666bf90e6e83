package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/Edu-space-IDC/restaurante-sub000/internal/domain"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/repository/dao"
)

var ErrMenuDateExists = dao.ErrMenuDateExists

type MenuEntryDAO interface {
	Insert(ctx context.Context, entry dao.MenuEntry) (dao.MenuEntry, error)
	FindByDate(ctx context.Context, date string) (dao.MenuEntry, error)
	FindAll(ctx context.Context) ([]dao.MenuEntry, error)
	Update(ctx context.Context, entry dao.MenuEntry) (dao.MenuEntry, error)
	Delete(ctx context.Context, id string) error
}

type MenuEntryRepository struct {
	dao MenuEntryDAO
}

func NewMenuEntryRepository(dao MenuEntryDAO) *MenuEntryRepository {
	return &MenuEntryRepository{
		dao: dao,
	}
}

func (r *MenuEntryRepository) Create(ctx context.Context, entry domain.MenuEntry) (domain.MenuEntry, error) {
	payload, err := r.domainToDAO(entry)
	if err != nil {
		return domain.MenuEntry{}, err
	}

	created, err := r.dao.Insert(ctx, payload)
	if err != nil {
		return domain.MenuEntry{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created)
}

func (r *MenuEntryRepository) FindByDate(ctx context.Context, date string) (domain.MenuEntry, error) {
	found, err := r.dao.FindByDate(ctx, date)
	if err != nil {
		return domain.MenuEntry{}, fmt.Errorf("r.dao.FindByDate -> %w", err)
	}

	return r.daoToDomain(found)
}

func (r *MenuEntryRepository) FindAll(ctx context.Context) ([]domain.MenuEntry, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	entries := make([]domain.MenuEntry, 0, len(found))
	for _, e := range found {
		entry, err := r.daoToDomain(e)
		if err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func (r *MenuEntryRepository) Update(ctx context.Context, entry domain.MenuEntry) (domain.MenuEntry, error) {
	payload, err := r.domainToDAO(entry)
	if err != nil {
		return domain.MenuEntry{}, err
	}

	updated, err := r.dao.Update(ctx, payload)
	if err != nil {
		return domain.MenuEntry{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated)
}

func (r *MenuEntryRepository) daoToDomain(e dao.MenuEntry) (domain.MenuEntry, error) {
	var details map[string]any
	if len(e.Details) > 0 {
		if err := json.Unmarshal(e.Details, &details); err != nil {
			return domain.MenuEntry{}, fmt.Errorf("json.Unmarshal -> %w: %w", dao.ErrNotSerializable, err)
		}
	}

	return domain.MenuEntry{
		ID:        e.ID,
		Date:      e.Date,
		MainDish:  e.MainDish,
		SideDish:  e.SideDish,
		Drink:     e.Drink,
		Dessert:   e.Dessert,
		Details:   details,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}, nil
}

// domainToDAO encodes the free-form details; a payload holding anything the
// store cannot durably encode fails with ErrNotSerializable.
func (r *MenuEntryRepository) domainToDAO(e domain.MenuEntry) (dao.MenuEntry, error) {
	var details datatypes.JSON
	if e.Details != nil {
		raw, err := json.Marshal(e.Details)
		if err != nil {
			return dao.MenuEntry{}, fmt.Errorf("json.Marshal -> %w: %w", dao.ErrNotSerializable, err)
		}

		details = raw
	}

	return dao.MenuEntry{
		ID:        e.ID,
		Date:      e.Date,
		MainDish:  e.MainDish,
		SideDish:  e.SideDish,
		Drink:     e.Drink,
		Dessert:   e.Dessert,
		Details:   details,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}, nil
}
