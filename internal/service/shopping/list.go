package shopping

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/freshkeep-backend/internal/domain"
	"github.com/heartmarshall/freshkeep-backend/internal/service/inventory"
	"github.com/heartmarshall/freshkeep-backend/pkg/ctxutil"
)

// Get returns the scope's shopping list with its items, creating an empty list on first use.
func (s *Service) Get(ctx context.Context) (*domain.ShoppingList, error) {
	_, list, err := s.current(ctx)
	if err != nil {
		return nil, fmt.Errorf("shopping.Get: %w", err)
	}

	items, err := s.lists.ListItems(ctx, list.ID)
	if err != nil {
		return nil, fmt.Errorf("shopping.Get: %w", err)
	}
	list.Items = items
	return list, nil
}

// Add appends a line to the list.
func (s *Service) Add(ctx context.Context, in AddInput) (*domain.ShoppingItem, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	user, list, err := s.current(ctx)
	if err != nil {
		return nil, fmt.Errorf("shopping.Add: %w", err)
	}

	it, err := s.lists.AddItem(ctx, domain.ShoppingItem{
		ListID:   list.ID,
		Name:     in.Name,
		Quantity: in.Quantity,
		Unit:     in.Unit,
		Category: in.Category,
		Notes:    in.Notes,
		AddedBy:  user.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("shopping.Add: %w", err)
	}
	return it, nil
}

// Update edits a line on the list.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (*domain.ShoppingItem, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	_, list, err := s.current(ctx)
	if err != nil {
		return nil, fmt.Errorf("shopping.Update: %w", err)
	}

	it, err := s.lists.GetItem(ctx, list.ID, id)
	if err != nil {
		return nil, fmt.Errorf("shopping.Update: %w", err)
	}

	if in.Name != nil {
		it.Name = *in.Name
	}
	if in.Quantity != nil {
		it.Quantity = *in.Quantity
	}
	if in.Unit != nil {
		it.Unit = *in.Unit
	}
	if in.Category != nil {
		it.Category = in.Category
	}
	if in.Checked != nil {
		it.Checked = *in.Checked
	}
	if in.Notes != nil {
		it.Notes = in.Notes
	}

	updated, err := s.lists.UpdateItem(ctx, *it)
	if err != nil {
		return nil, fmt.Errorf("shopping.Update: %w", err)
	}
	return updated, nil
}

// Toggle flips a line's checked flag.
func (s *Service) Toggle(ctx context.Context, id uuid.UUID) (*domain.ShoppingItem, error) {
	_, list, err := s.current(ctx)
	if err != nil {
		return nil, fmt.Errorf("shopping.Toggle: %w", err)
	}

	it, err := s.lists.GetItem(ctx, list.ID, id)
	if err != nil {
		return nil, fmt.Errorf("shopping.Toggle: %w", err)
	}
	it.Checked = !it.Checked

	updated, err := s.lists.UpdateItem(ctx, *it)
	if err != nil {
		return nil, fmt.Errorf("shopping.Toggle: %w", err)
	}
	return updated, nil
}

// Delete removes a line.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	_, list, err := s.current(ctx)
	if err != nil {
		return fmt.Errorf("shopping.Delete: %w", err)
	}
	if err := s.lists.DeleteItem(ctx, list.ID, id); err != nil {
		return fmt.Errorf("shopping.Delete: %w", err)
	}
	return nil
}

// ClearChecked removes every checked line and returns how many were removed.
func (s *Service) ClearChecked(ctx context.Context) (int64, error) {
	_, list, err := s.current(ctx)
	if err != nil {
		return 0, fmt.Errorf("shopping.ClearChecked: %w", err)
	}

	n, err := s.lists.DeleteChecked(ctx, list.ID, nil)
	if err != nil {
		return 0, fmt.Errorf("shopping.ClearChecked: %w", err)
	}
	return n, nil
}

// GenerateFromInventory adds a line for every active item running low.
// Names already on the list are skipped, compared case-insensitively.
func (s *Service) GenerateFromInventory(ctx context.Context) ([]domain.ShoppingItem, error) {
	user, list, err := s.current(ctx)
	if err != nil {
		return nil, fmt.Errorf("shopping.GenerateFromInventory: %w", err)
	}

	existing, err := s.lists.ListItems(ctx, list.ID)
	if err != nil {
		return nil, fmt.Errorf("shopping.GenerateFromInventory: %w", err)
	}
	onList := make(map[string]bool, len(existing))
	for _, it := range existing {
		onList[strings.ToLower(it.Name)] = true
	}

	stock, err := s.stock.ListActive(ctx, scopeOf(user), 0)
	if err != nil {
		return nil, fmt.Errorf("shopping.GenerateFromInventory: %w", err)
	}

	var wanted []domain.ShoppingItem
	for _, it := range stock {
		key := strings.ToLower(it.Name)
		if onList[key] || !domain.IsLowStock(it.Quantity, it.Unit) {
			continue
		}
		onList[key] = true
		category := it.Category
		wanted = append(wanted, domain.ShoppingItem{
			ListID:        list.ID,
			Name:          it.Name,
			Quantity:      1,
			Unit:          it.Unit,
			Category:      &category,
			AddedBy:       user.ID,
			AutoGenerated: true,
		})
	}

	added := make([]domain.ShoppingItem, 0, len(wanted))
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		for _, w := range wanted {
			it, err := s.lists.AddItem(ctx, w)
			if err != nil {
				return fmt.Errorf("add %q: %w", w.Name, err)
			}
			added = append(added, *it)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("shopping.GenerateFromInventory: %w", err)
	}

	s.log.InfoContext(ctx, "shopping list generated",
		slog.String("list_id", list.ID.String()),
		slog.Int("added", len(added)))
	return added, nil
}

// ImportResult reports what an import created.
type ImportResult struct {
	Items   []inventory.ItemView
	Cleared int64
}

// ImportToInventory creates inventory items from list lines, with automatic
// expiration dates. ClearChecked then removes the imported lines that were checked.
func (s *Service) ImportToInventory(ctx context.Context, in ImportInput) (*ImportResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	_, list, err := s.current(ctx)
	if err != nil {
		return nil, fmt.Errorf("shopping.ImportToInventory: %w", err)
	}

	lines, err := s.lists.ListItems(ctx, list.ID)
	if err != nil {
		return nil, fmt.Errorf("shopping.ImportToInventory: %w", err)
	}

	selected := selectLines(lines, in.ItemIDs)
	if len(selected) == 0 {
		return nil, domain.NewValidationError("item_ids", "no matching items to import")
	}

	inputs := make([]inventory.CreateInput, len(selected))
	ids := make([]uuid.UUID, len(selected))
	for i, line := range selected {
		category := domain.GuessCategory(line.Name)
		if line.Category != nil {
			category = *line.Category
		}
		inputs[i] = inventory.CreateInput{
			Name:     line.Name,
			Quantity: line.Quantity,
			Unit:     line.Unit,
			Category: category,
		}
		ids[i] = line.ID
	}

	// Items and the cleared lines commit together; inventory joins this transaction.
	res := &ImportResult{}
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		created, err := s.inventory.CreateMany(ctx, inputs)
		if err != nil {
			return err
		}
		res.Items = created
		if in.ClearChecked {
			if res.Cleared, err = s.lists.DeleteChecked(ctx, list.ID, ids); err != nil {
				return fmt.Errorf("clear checked: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("shopping.ImportToInventory: %w", err)
	}

	s.log.InfoContext(ctx, "shopping items imported",
		slog.String("list_id", list.ID.String()),
		slog.Int("imported", len(res.Items)),
		slog.Int64("cleared", res.Cleared))
	return res, nil
}

// selectLines picks the lines named by ids, or every checked line when ids is empty.
func selectLines(lines []domain.ShoppingItem, ids []uuid.UUID) []domain.ShoppingItem {
	var out []domain.ShoppingItem
	if len(ids) == 0 {
		for _, l := range lines {
			if l.Checked {
				out = append(out, l)
			}
		}
		return out
	}

	want := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	for _, l := range lines {
		if want[l.ID] {
			out = append(out, l)
		}
	}
	return out
}

func (s *Service) current(ctx context.Context) (*domain.User, *domain.ShoppingList, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, nil, domain.ErrUnauthorized
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("get user: %w", err)
	}
	list, err := s.lists.GetOrCreateList(ctx, scopeOf(user))
	if err != nil {
		return nil, nil, fmt.Errorf("get list: %w", err)
	}
	return user, list, nil
}

func scopeOf(u *domain.User) domain.Scope {
	return domain.Scope{UserID: u.ID, FamilyID: u.FamilyID}
}
