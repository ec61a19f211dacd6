// Package mcp provides the Model Context Protocol server integration for
// luggage.
package mcp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/luggage/pkg/app"
	"tableflip.dev/luggage/pkg/baggage"
	"tableflip.dev/luggage/pkg/catalog"
)

// Service adapts the luggage application service to the MCP tools.
type Service struct {
	App *app.Service
}

// BaggageDTO is a transport-friendly projection of a baggage.
type BaggageDTO struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	TypeLabel string    `json:"typeLabel"`
	Nickname  string    `json:"nickname,omitempty"`
	Collapsed bool      `json:"collapsed"`
	Packed    int       `json:"packed"`
	Total     int       `json:"total"`
	Items     []ItemDTO `json:"items"`
}

// ItemDTO is a transport-friendly projection of an item.
type ItemDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Emoji    string `json:"emoji"`
	Quantity int    `json:"quantity"`
	Packed   bool   `json:"packed"`
}

// NewService wraps svc.
func NewService(svc *app.Service) *Service {
	return &Service{App: svc}
}

func (s *Service) app() (*app.Service, error) {
	if s.App == nil {
		return nil, errors.New("luggage service is not configured")
	}
	return s.App, nil
}

// ListBaggage returns every baggage with its items.
func (s *Service) ListBaggage(_ context.Context) ([]BaggageDTO, error) {
	a, err := s.app()
	if err != nil {
		return nil, err
	}
	collapsed := a.Collapsed()
	c := a.Collection()
	out := make([]BaggageDTO, 0, len(c))
	for _, b := range c {
		out = append(out, toDTO(b, collapsed[b.ID]))
	}
	return out, nil
}

// BaggageByRef locates a baggage by id or nickname.
func (s *Service) BaggageByRef(_ context.Context, ref string) (*BaggageDTO, error) {
	a, err := s.app()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(ref) == "" {
		return nil, errors.New("baggage is required")
	}
	b, err := a.ResolveBaggage(ref)
	if err != nil {
		return nil, err
	}
	dto := toDTO(b, a.Collapsed()[b.ID])
	return &dto, nil
}

// AddBaggage creates a baggage of the given type, optionally nicknamed.
func (s *Service) AddBaggage(ctx context.Context, typ, nickname string) (*BaggageDTO, error) {
	a, err := s.app()
	if err != nil {
		return nil, err
	}
	t := baggage.TypeCarryOn
	if strings.TrimSpace(typ) != "" {
		if t, err = ParseType(typ); err != nil {
			return nil, err
		}
	}
	b, err := a.AddBaggage(ctx, t)
	if err != nil {
		return nil, err
	}
	if nickname = strings.TrimSpace(nickname); nickname != "" {
		if b, err = a.SetNickname(ctx, b.ID, nickname); err != nil {
			return nil, err
		}
	}
	dto := toDTO(b, false)
	return &dto, nil
}

// AddItem adds an unpacked item. A missing icon is looked up in the catalog.
// Quantities above one are applied after the add.
func (s *Service) AddItem(ctx context.Context, bag, name, icon string, quantity int) (*BaggageDTO, error) {
	a, b, err := s.resolve(bag)
	if err != nil {
		return nil, err
	}
	if icon == "" {
		icon = catalog.IconFor(name)
	}
	if b, err = a.AddItem(ctx, b.ID, name, icon); err != nil {
		return nil, err
	}
	if quantity > 1 {
		it, err := app.ResolveItem(b, name, false)
		if err != nil {
			return nil, err
		}
		if b, err = a.SetQuantity(ctx, b.ID, it.ID, baggage.AddQuantity(it.Quantity, quantity-1)); err != nil {
			return nil, err
		}
	}
	return s.dto(a, b), nil
}

// SetPacked moves an item to the requested packed state.
func (s *Service) SetPacked(ctx context.Context, bag, item string, packed bool) (*BaggageDTO, error) {
	a, b, err := s.resolve(bag)
	if err != nil {
		return nil, err
	}
	it, err := app.ResolveItem(b, item, !packed)
	if err != nil {
		return nil, err
	}
	if it.Packed != packed {
		if b, err = a.TogglePacked(ctx, b.ID, it.ID); err != nil {
			return nil, err
		}
	}
	return s.dto(a, b), nil
}

// SetQuantity changes the quantity of an item.
func (s *Service) SetQuantity(ctx context.Context, bag, item string, quantity int) (*BaggageDTO, error) {
	a, b, err := s.resolve(bag)
	if err != nil {
		return nil, err
	}
	it, err := app.ResolveItem(b, item, false)
	if err != nil {
		return nil, err
	}
	if b, err = a.SetQuantity(ctx, b.ID, it.ID, quantity); err != nil {
		return nil, err
	}
	return s.dto(a, b), nil
}

// DeleteItem removes an item.
func (s *Service) DeleteItem(ctx context.Context, bag, item string) (*BaggageDTO, error) {
	a, b, err := s.resolve(bag)
	if err != nil {
		return nil, err
	}
	it, err := app.ResolveItem(b, item, false)
	if err != nil {
		return nil, err
	}
	if b, err = a.DeleteItem(ctx, b.ID, it.ID); err != nil {
		return nil, err
	}
	return s.dto(a, b), nil
}

// PackAll packs every item, or unpacks all when everything is packed.
func (s *Service) PackAll(ctx context.Context, bag string) (*BaggageDTO, error) {
	a, b, err := s.resolve(bag)
	if err != nil {
		return nil, err
	}
	if b, err = a.TogglePackAll(ctx, b.ID); err != nil {
		return nil, err
	}
	return s.dto(a, b), nil
}

// UpdateBaggage sets the nickname and/or type. Nil leaves a field unchanged.
func (s *Service) UpdateBaggage(ctx context.Context, bag string, nickname, typ *string) (*BaggageDTO, error) {
	a, b, err := s.resolve(bag)
	if err != nil {
		return nil, err
	}
	if typ != nil {
		t, err := ParseType(*typ)
		if err != nil {
			return nil, err
		}
		if b, err = a.SetType(ctx, b.ID, t); err != nil {
			return nil, err
		}
	}
	if nickname != nil {
		if b, err = a.SetNickname(ctx, b.ID, *nickname); err != nil {
			return nil, err
		}
	}
	return s.dto(a, b), nil
}

// DeleteBaggage removes a baggage and everything in it.
func (s *Service) DeleteBaggage(ctx context.Context, bag string) (bool, error) {
	a, b, err := s.resolve(bag)
	if err != nil {
		return false, err
	}
	return a.DeleteBaggage(ctx, b.ID)
}

// ExportCSV renders the collection in the CSV interchange format.
func (s *Service) ExportCSV(ctx context.Context) (string, int, error) {
	a, err := s.app()
	if err != nil {
		return "", 0, err
	}
	var buf bytes.Buffer
	n, err := a.Export(ctx, &buf)
	if err != nil {
		return "", 0, err
	}
	return buf.String(), n, nil
}

func (s *Service) resolve(bag string) (*app.Service, baggage.Baggage, error) {
	a, err := s.app()
	if err != nil {
		return nil, baggage.Baggage{}, err
	}
	if strings.TrimSpace(bag) == "" {
		return nil, baggage.Baggage{}, errors.New("baggage is required")
	}
	b, err := a.ResolveBaggage(bag)
	if err != nil {
		return nil, baggage.Baggage{}, err
	}
	return a, b, nil
}

func (s *Service) dto(a *app.Service, b baggage.Baggage) *BaggageDTO {
	dto := toDTO(b, a.Collapsed()[b.ID])
	return &dto
}

func toDTO(b baggage.Baggage, collapsed bool) BaggageDTO {
	packed, total := b.Counts()
	dto := BaggageDTO{
		ID:        b.ID,
		Type:      string(b.Type),
		TypeLabel: b.Type.Label(),
		Nickname:  b.Nickname,
		Collapsed: collapsed,
		Packed:    packed,
		Total:     total,
		Items:     make([]ItemDTO, 0, len(b.Items)),
	}
	for _, it := range b.Items {
		dto.Items = append(dto.Items, ItemDTO{
			ID:       it.ID,
			Name:     it.Name,
			Icon:     it.Icon,
			Emoji:    catalog.Emoji(it.Icon),
			Quantity: it.Quantity,
			Packed:   it.Packed,
		})
	}
	return dto
}

// ParseType resolves a baggage type, accepting the label form ("carry on").
func ParseType(input string) (baggage.Type, error) {
	s := strings.ReplaceAll(strings.TrimSpace(input), " ", "-")
	t, err := baggage.ParseType(s)
	if err != nil {
		return "", fmt.Errorf("unknown baggage type %q", input)
	}
	return t, nil
}
