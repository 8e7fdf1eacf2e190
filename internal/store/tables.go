package store

import (
	"sort"

	"tableside/internal/domain"
)

func (s *Store) ListTables() []domain.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tables := make([]domain.Table, len(s.tables))
	copy(tables, s.tables)
	sort.Slice(tables, func(i, j int) bool { return tables[i].Number < tables[j].Number })
	return tables
}

func (s *Store) GetTable(id int) (domain.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, table := range s.tables {
		if table.ID == id {
			return table, nil
		}
	}
	return domain.Table{}, &NotFoundError{Message: "Table not found"}
}

// SetTableStatus is the manual staff override. It bypasses the order
// cascade on purpose, so a table can be forced available even while an
// active order still references it.
func (s *Store) SetTableStatus(id int, status domain.TableStatus) (domain.Table, error) {
	if !status.Valid() {
		return domain.Table{}, &ValidationError{Message: "Invalid table status"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tables {
		if s.tables[i].ID == id {
			s.tables[i].Status = status
			return s.tables[i], nil
		}
	}
	return domain.Table{}, &NotFoundError{Message: "Table not found"}
}
