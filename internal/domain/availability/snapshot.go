package availability

import (
	"sort"

	"backline/internal/domain/catalog"
	"backline/internal/domain/schedule"
)

// ReservationConflict is an item's committed claim on the calendar. The
// window is already padded with the owning event's buffers, so candidate
// checks never need to look the event up again.
type ReservationConflict struct {
	ItemID int64
	Window schedule.Window
}

// MaintenanceHold takes an item off the calendar for its raw window.
// Holds carry no buffers.
type MaintenanceHold struct {
	ItemID int64
	Window schedule.Window
	Reason string
}

// SnapshotData is the raw inventory and schedule state a snapshot is
// built from, as loaded in one consistent read.
type SnapshotData struct {
	Categories []catalog.Category
	Brands     []catalog.Brand
	Models     []catalog.Model
	Items      []catalog.Item
	Conflicts  []ReservationConflict
	Holds      []MaintenanceHold
	Rules      []catalog.AccessoryRule
}

// Snapshot is an indexed, immutable view of inventory state against which
// availability questions are answered. All resolution for one request runs
// against a single snapshot so the answers are mutually consistent.
type Snapshot struct {
	modelsByID      map[int64]catalog.Model
	modelIDByName   map[string]int64
	itemsByID       map[int64]catalog.Item
	itemsByModel    map[int64][]catalog.Item
	conflictsByItem map[int64][]schedule.Window
	holdsByItem     map[int64][]schedule.Window
	ruleByCategory  map[int64]catalog.AccessoryRule
}

func NewSnapshot(data SnapshotData) *Snapshot {
	s := &Snapshot{
		modelsByID:      make(map[int64]catalog.Model, len(data.Models)),
		modelIDByName:   make(map[string]int64, len(data.Models)),
		itemsByID:       make(map[int64]catalog.Item, len(data.Items)),
		itemsByModel:    make(map[int64][]catalog.Item),
		conflictsByItem: make(map[int64][]schedule.Window),
		holdsByItem:     make(map[int64][]schedule.Window),
		ruleByCategory:  make(map[int64]catalog.AccessoryRule, len(data.Rules)),
	}

	for _, m := range data.Models {
		s.modelsByID[m.ID] = m
		s.modelIDByName[m.Name] = m.ID
	}
	for _, it := range data.Items {
		s.itemsByID[it.ID] = it
		s.itemsByModel[it.ModelID] = append(s.itemsByModel[it.ModelID], it)
	}
	// First-fit scans walk units in ascending ID order so repeated runs
	// against the same snapshot assign the same units.
	for modelID := range s.itemsByModel {
		items := s.itemsByModel[modelID]
		sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	}
	for _, c := range data.Conflicts {
		s.conflictsByItem[c.ItemID] = append(s.conflictsByItem[c.ItemID], c.Window)
	}
	for _, h := range data.Holds {
		s.holdsByItem[h.ItemID] = append(s.holdsByItem[h.ItemID], h.Window)
	}
	for _, r := range data.Rules {
		s.ruleByCategory[r.CategoryID] = r
	}

	return s
}

func (s *Snapshot) ModelByID(id int64) (catalog.Model, bool) {
	m, ok := s.modelsByID[id]
	return m, ok
}

func (s *Snapshot) ModelIDByName(name string) (int64, bool) {
	id, ok := s.modelIDByName[name]
	return id, ok
}

// IsItemAvailable reports whether the given unit can serve a rental over
// window w with candidate buffers b. Reserved windows are already padded
// with their own event's buffers; holds block on their raw span.
func (s *Snapshot) IsItemAvailable(itemID int64, w schedule.Window, b schedule.Buffers) bool {
	item, ok := s.itemsByID[itemID]
	if !ok || !item.Usable() {
		return false
	}

	candidate := w.Buffered(b)
	for _, reserved := range s.conflictsByItem[itemID] {
		if candidate.Overlaps(reserved) {
			return false
		}
	}
	for _, held := range s.holdsByItem[itemID] {
		if candidate.Overlaps(held) {
			return false
		}
	}
	return true
}

// AssignUnits picks concrete units of a model for the window, first fit in
// ascending unit ID order. It returns as many as it can find up to qty;
// fewer than qty is a shortfall, not an error. Unknown models and
// non-positive quantities yield an empty assignment.
func (s *Snapshot) AssignUnits(modelID int64, qty int, w schedule.Window, b schedule.Buffers) []int64 {
	assigned := []int64{}
	if qty <= 0 {
		return assigned
	}
	if _, ok := s.modelsByID[modelID]; !ok {
		return assigned
	}

	for _, item := range s.itemsByModel[modelID] {
		if len(assigned) == qty {
			break
		}
		if s.IsItemAvailable(item.ID, w, b) {
			assigned = append(assigned, item.ID)
		}
	}
	return assigned
}

// AccessoriesForModel expands the model's category accessory rule for
// count rented units. Both maps are keyed by accessory model name.
func (s *Snapshot) AccessoriesForModel(modelID int64, count int) (required, optional map[string]int) {
	model, ok := s.modelsByID[modelID]
	if !ok || count <= 0 {
		return map[string]int{}, map[string]int{}
	}
	rule, ok := s.ruleByCategory[model.CategoryID]
	if !ok {
		return map[string]int{}, map[string]int{}
	}
	return rule.Required.Scaled(count), rule.Optional.Scaled(count)
}
