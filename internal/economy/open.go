package economy

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/CaseBox_Go/internal/domain"
	"github.com/osse101/CaseBox_Go/internal/logger"
	"github.com/osse101/CaseBox_Go/internal/metrics"
)

// OpenCase charges the case price, draws one item and adds it to the
// inventory. If the inventory cannot be written the price is refunded.
func (s *service) OpenCase(ctx context.Context, c domain.Case) (*OpenResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgOpenCaseCalled, LogFieldCase, c.Name, LogFieldPrice, c.Price)

	if len(c.Items) == 0 {
		return nil, fmt.Errorf(ErrMsgOpenFailedFmt, c.Name, domain.ErrEmptyCase)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.wallet.Debit(ctx, c.Price); err != nil {
		if errors.Is(err, domain.ErrInsufficientFunds) {
			log.Info(LogMsgInsufficientFund, LogFieldCase, c.Name, LogFieldPrice, c.Price, LogFieldBalance, s.wallet.Current())
		}
		return nil, fmt.Errorf(ErrMsgOpenFailedFmt, c.Name, err)
	}

	drawn, err := s.drawer.Draw(c.Items)
	if err != nil {
		return nil, s.refund(ctx, c, err)
	}

	owned := drawn.Own(s.newID(), c.Name, s.now())
	if err := s.inventory.Add(ctx, owned); err != nil {
		return nil, s.refund(ctx, c, err)
	}

	metrics.CasesOpened.WithLabelValues(c.Name, string(owned.Rarity)).Inc()
	metrics.MoneySpent.Add(c.Price)

	balance := s.wallet.Current()
	log.Info(LogMsgCaseOpened,
		LogFieldCase, c.Name,
		LogFieldItem, drawn.DisplayName(),
		LogFieldRarity, owned.Rarity,
		LogFieldBalance, balance)

	return &OpenResult{
		Case:    c.Name,
		Price:   c.Price,
		Item:    owned,
		Balance: balance,
	}, nil
}

// refund gives the case price back after a failure past the debit and
// returns the error to surface.
func (s *service) refund(ctx context.Context, c domain.Case, cause error) error {
	log := logger.FromContext(ctx)

	if err := s.wallet.Credit(ctx, c.Price); err != nil {
		log.Error(LogMsgRefundFailed, LogFieldCase, c.Name, LogFieldPrice, c.Price, LogFieldError, err)
		return fmt.Errorf(ErrMsgOpenFailedFmt, c.Name,
			errors.Join(cause, fmt.Errorf(ErrMsgRefundFailedFmt, c.Price, err)))
	}

	log.Warn(LogMsgRefundIssued, LogFieldCase, c.Name, LogFieldPrice, c.Price, LogFieldError, cause)
	return fmt.Errorf(ErrMsgOpenFailedFmt, c.Name, cause)
}
