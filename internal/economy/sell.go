package economy

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/CaseBox_Go/internal/domain"
	"github.com/osse101/CaseBox_Go/internal/logger"
	"github.com/osse101/CaseBox_Go/internal/metrics"
)

// SellItem sells the item at index for its price. A bad index returns
// domain.ErrNotFound.
func (s *service) SellItem(ctx context.Context, index int) (*SellResult, error) {
	logger.FromContext(ctx).Info(LogMsgSellItemCalled, LogFieldIndex, index)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed, err := s.inventory.RemoveAt(ctx, index)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgSellFailedFmt, err)
	}
	return s.settle(ctx, []int{index}, []domain.OwnedItem{removed})
}

// SellItems sells every item at the given indices in one inventory write.
// Duplicate and out of range indices are ignored; if none are valid nothing
// is sold and the result is empty.
func (s *service) SellItems(ctx context.Context, indices []int) (*SellResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSellItemsCalled, LogFieldIndices, indices)

	if len(indices) == 0 {
		return nil, fmt.Errorf(ErrMsgNoIndicesFmt, domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	removed, at, err := s.inventory.RemoveMany(ctx, indices)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgSellFailedFmt, err)
	}
	if len(removed) == 0 {
		log.Info(LogMsgNothingSold, LogFieldIndices, indices)
		return &SellResult{Items: removed, Balance: s.wallet.Current()}, nil
	}
	return s.settle(ctx, at, removed)
}

// settle credits the removed items. If the credit fails they are put back
// at the indexes in at.
func (s *service) settle(ctx context.Context, at []int, removed []domain.OwnedItem) (*SellResult, error) {
	log := logger.FromContext(ctx)
	total := domain.SumPrices(removed)

	if err := s.wallet.Credit(ctx, total); err != nil {
		if restoreErr := s.inventory.Restore(ctx, at, removed); restoreErr != nil {
			log.Error(LogMsgRestoreFailed, LogFieldCount, len(removed), LogFieldError, restoreErr)
			return nil, fmt.Errorf(ErrMsgSellFailedFmt,
				errors.Join(err, fmt.Errorf(ErrMsgRestoreFailedFmt, len(removed), restoreErr)))
		}
		log.Warn(LogMsgItemsRestored, LogFieldCount, len(removed), LogFieldError, err)
		return nil, fmt.Errorf(ErrMsgSellFailedFmt, err)
	}

	metrics.ItemsSold.Add(float64(len(removed)))
	metrics.MoneyEarned.Add(total)

	balance := s.wallet.Current()
	log.Info(LogMsgItemsSold, LogFieldCount, len(removed), LogFieldTotal, total, LogFieldBalance, balance)

	return &SellResult{
		Items:         removed,
		ItemsSold:     len(removed),
		TotalCredited: total,
		Balance:       balance,
	}, nil
}
