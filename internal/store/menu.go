package store

import (
	"context"
	"sort"
	"time"

	"tableside/internal/domain"
)

func (s *Store) ListMenu(category string) []domain.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := []domain.MenuItem{}
	for _, item := range s.menu {
		if category == "" || item.Category == category {
			items = append(items, item)
		}
	}
	return items
}

func (s *Store) CreateMenuItem(in domain.MenuItemInput) (domain.MenuItem, error) {
	if in.Name == "" || in.Category == "" || in.Price == 0 {
		return domain.MenuItem{}, &ValidationError{Message: "Name, category, and price are required"}
	}
	if in.Price < 0 {
		return domain.MenuItem{}, &ValidationError{Message: "Price must be a positive number"}
	}

	available := true
	if in.Available != nil {
		available = *in.Available
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := domain.MenuItem{
		ID:          s.nextMenuID,
		Name:        in.Name,
		Category:    in.Category,
		Price:       round2(in.Price),
		Description: in.Description,
		Available:   available,
	}
	s.nextMenuID++
	s.menu = append(s.menu, item)
	return item, nil
}

func (s *Store) UpdateMenuItem(id int, patch domain.MenuItemPatch) (domain.MenuItem, error) {
	if patch.Price != nil && *patch.Price < 0 {
		return domain.MenuItem{}, &ValidationError{Message: "Price must be a positive number"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.menuIndexLocked(id)
	if idx == -1 {
		return domain.MenuItem{}, &NotFoundError{Message: "Menu item not found"}
	}

	item := &s.menu[idx]
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.Price != nil {
		item.Price = round2(*patch.Price)
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Available != nil {
		item.Available = *patch.Available
	}
	return *item, nil
}

// DeleteMenuItem removes a catalog entry. Orders keep their line-item
// snapshots, so nothing cascades.
func (s *Store) DeleteMenuItem(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.menuIndexLocked(id)
	if idx == -1 {
		return &NotFoundError{Message: "Menu item not found"}
	}
	s.menu = append(s.menu[:idx], s.menu[idx+1:]...)
	return nil
}

// TopMenuItems returns today's most ordered items. It prefers the Redis
// leaderboard when one is wired and falls back to scanning today's
// orders in memory.
func (s *Store) TopMenuItems(ctx context.Context, now time.Time, limit int) []domain.PopularItem {
	if limit <= 0 {
		limit = 10
	}
	today := day(now)

	if s.popularity != nil {
		if top, err := s.popularity.TopItems(ctx, today, limit); err == nil && len(top) > 0 {
			s.mu.RLock()
			for i := range top {
				top[i].Name = s.itemNameLocked(top[i].MenuItemID)
			}
			s.mu.RUnlock()
			return top
		}
	}
	return s.topItemsFromOrders(today, limit)
}

func (s *Store) topItemsFromOrders(today string, limit int) []domain.PopularItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := map[int]int{}
	for _, order := range s.orders {
		if day(order.Timestamp) != today {
			continue
		}
		for _, item := range order.Items {
			counts[item.MenuItemID] += item.Quantity
		}
	}

	top := []domain.PopularItem{}
	for id, count := range counts {
		top = append(top, domain.PopularItem{
			MenuItemID: id,
			Name:       s.itemNameLocked(id),
			Count:      count,
		})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Count != top[j].Count {
			return top[i].Count > top[j].Count
		}
		return top[i].MenuItemID < top[j].MenuItemID
	})
	if len(top) > limit {
		top = top[:limit]
	}
	return top
}

// itemNameLocked resolves a menu item name, falling back to the latest
// order snapshot when the catalog entry was deleted.
func (s *Store) itemNameLocked(id int) string {
	for _, item := range s.menu {
		if item.ID == id {
			return item.Name
		}
	}
	for i := len(s.orders) - 1; i >= 0; i-- {
		for _, line := range s.orders[i].Items {
			if line.MenuItemID == id {
				return line.Name
			}
		}
	}
	return ""
}

func (s *Store) menuIndexLocked(id int) int {
	for i := range s.menu {
		if s.menu[i].ID == id {
			return i
		}
	}
	return -1
}
