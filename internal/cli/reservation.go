package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/sanosuguru/go-hotel-reservation/internal/application"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/reservation"
)

func (a *App) runReservation(ctx context.Context, action string, args []string) error {
	switch action {
	case "create":
		return a.createReservation(ctx, args)
	case "show":
		return a.showReservation(ctx, args)
	case "list":
		return a.listReservations(ctx, args)
	case "cancel":
		return a.cancelReservation(ctx, args)
	}
	return unknownAction("reservation", action)
}

func (a *App) createReservation(ctx context.Context, args []string) error {
	fs := a.flagSet("reservation create")
	id := fs.String("id", "", "予約ID（省略時は自動採番）")
	customerID := fs.String("customer", "", "顧客ID")
	hotelName := fs.String("hotel", "", "ホテル名")
	if err := a.parse(fs, args, "customer", "hotel"); err != nil {
		return err
	}

	r, err := a.reservations.CreateReservation(ctx, application.CreateReservationInput{
		ReservationID: *id, CustomerID: *customerID, HotelName: *hotelName,
	})
	if err != nil {
		return err
	}
	return a.render(toReservationResponse(r), fmt.Sprintf("予約 %s を作成しました", r.ID))
}

func (a *App) showReservation(ctx context.Context, args []string) error {
	fs := a.flagSet("reservation show")
	id := fs.String("id", "", "予約ID")
	if err := a.parse(fs, args, "id"); err != nil {
		return err
	}

	r, err := a.reservations.GetReservation(ctx, *id)
	if err != nil {
		return err
	}
	return a.render(toReservationResponse(r), describeReservation(r))
}

func (a *App) listReservations(ctx context.Context, args []string) error {
	fs := a.flagSet("reservation list")
	customerID := fs.String("customer", "", "顧客IDで絞り込む")
	hotelName := fs.String("hotel", "", "ホテル名で絞り込む")
	if err := a.parse(fs, args); err != nil {
		return err
	}

	var (
		list []*reservation.Reservation
		err  error
	)
	switch set := visited(fs); {
	case set["customer"] && set["hotel"]:
		return usageErrorf("-customer と -hotel は同時に指定できません")
	case set["customer"]:
		list, err = a.reservations.ListByCustomer(ctx, *customerID)
	case set["hotel"]:
		list, err = a.reservations.ListByHotel(ctx, *hotelName)
	default:
		list, err = a.reservations.ListReservations(ctx)
	}
	if err != nil {
		return err
	}

	resp := make([]ReservationResponse, len(list))
	lines := make([]string, len(list))
	for i, r := range list {
		resp[i] = toReservationResponse(r)
		lines[i] = fmt.Sprintf("%s\t%s\t%s", r.ID, r.CustomerID, r.HotelName)
	}
	return a.render(resp, strings.Join(lines, "\n"))
}

func (a *App) cancelReservation(ctx context.Context, args []string) error {
	fs := a.flagSet("reservation cancel")
	id := fs.String("id", "", "予約ID")
	if err := a.parse(fs, args, "id"); err != nil {
		return err
	}

	r, err := a.reservations.CancelReservation(ctx, *id)
	if err != nil {
		return err
	}
	return a.render(toReservationResponse(r), fmt.Sprintf("予約 %s をキャンセルしました", r.ID))
}

func describeReservation(r *reservation.Reservation) string {
	return fmt.Sprintf("Reservation ID: %s\nCustomer ID: %s\nHotel: %s", r.ID, r.CustomerID, r.HotelName)
}
