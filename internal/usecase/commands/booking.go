package commands

import (
	"context"
	"log/slog"

	"backline/internal/domain/booking"
	"backline/internal/domain/schedule"
	"backline/internal/pkg/errs"
	"backline/internal/usecase/shared"
)

var (
	ErrBookingConflict = errs.New("booking conflict")
	ErrUnknownItem     = errs.New("unknown item")
	ErrItemNotUsable   = errs.New("item not usable")
)

type CommitBookingParams struct {
	Title   string
	Window  schedule.Window
	Buffers schedule.Buffers
	Details booking.EventDetails
	ItemIDs []int64
}

type CommitBookingResult struct {
	EventID        int64
	ReservationIDs []int64
}

type BookingCommands interface {
	// CommitBooking creates the event and reserves the given units in one
	// transaction. Every unit is re-checked against the live schedule
	// inside the transaction; any clash rejects the whole booking.
	CommitBooking(ctx context.Context, params CommitBookingParams) (*CommitBookingResult, error)
}

type bookingUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewBookingUseCase(uow shared.UnitOfWork) BookingCommands {
	return &bookingUseCaseImpl{uow: uow}
}

func (u *bookingUseCaseImpl) CommitBooking(ctx context.Context, params CommitBookingParams) (*CommitBookingResult, error) {
	event, err := booking.NewEvent(params.Title, params.Window, params.Buffers, params.Details)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	itemIDs := dedupeIDs(params.ItemIDs)
	effective := event.EffectiveWindow()

	var result CommitBookingResult
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := u.revalidate(ctx, tx, itemIDs, effective); err != nil {
			return err
		}

		eventID, err := tx.Bookings().CreateEvent(ctx, tx.DB(), event)
		if err != nil {
			return err
		}

		reservationIDs := []int64{}
		if len(itemIDs) > 0 {
			reservationIDs, err = tx.Bookings().CreateReservations(ctx, tx.DB(), eventID, itemIDs, booking.StatusConfirmed)
			if err != nil {
				return err
			}
		}

		result = CommitBookingResult{EventID: eventID, ReservationIDs: reservationIDs}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("booking committed",
		"event_id", result.EventID,
		"reservations", len(result.ReservationIDs))
	return &result, nil
}

// revalidate re-checks every requested unit against the schedule as seen
// inside the transaction. The quote that proposed these units ran against
// an earlier snapshot; another booking may have landed since.
func (u *bookingUseCaseImpl) revalidate(ctx context.Context, tx shared.Tx, itemIDs []int64, effective schedule.Window) error {
	if len(itemIDs) == 0 {
		return nil
	}

	states, err := tx.Bookings().ItemStates(ctx, tx.DB(), itemIDs)
	if err != nil {
		return err
	}

	for _, id := range itemIDs {
		state, ok := states[id]
		if !ok {
			return errs.Wrapf(ErrUnknownItem, "item id %d", id)
		}
		if !state.Usable {
			return errs.Wrapf(ErrItemNotUsable, "item id %d", id)
		}
		for _, w := range state.Conflicts {
			if effective.Overlaps(w) {
				return errs.Wrapf(ErrBookingConflict, "item id %d is no longer free", id)
			}
		}
	}
	return nil
}

func dedupeIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
