package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/sanosuguru/go-hotel-reservation/internal/application"
)

func (a *App) runHotel(ctx context.Context, action string, args []string) error {
	switch action {
	case "create":
		return a.createHotel(ctx, args)
	case "show":
		return a.showHotel(ctx, args)
	case "list":
		return a.listHotels(ctx, args)
	case "update":
		return a.updateHotel(ctx, args)
	case "delete":
		return a.deleteHotel(ctx, args)
	case "available":
		return a.availableRooms(ctx, args)
	}
	return unknownAction("hotel", action)
}

func (a *App) createHotel(ctx context.Context, args []string) error {
	fs := a.flagSet("hotel create")
	name := fs.String("name", "", "ホテル名")
	location := fs.String("location", "", "所在地")
	rooms := fs.Int("rooms", 0, "客室数")
	if err := a.parse(fs, args, "name", "location", "rooms"); err != nil {
		return err
	}

	h, err := a.hotels.CreateHotel(ctx, application.CreateHotelInput{Name: *name, Location: *location, TotalRooms: *rooms})
	if err != nil {
		return err
	}
	return a.render(toHotelResponse(h), fmt.Sprintf("ホテル %q を登録しました", h.Name))
}

func (a *App) showHotel(ctx context.Context, args []string) error {
	fs := a.flagSet("hotel show")
	name := fs.String("name", "", "ホテル名")
	if err := a.parse(fs, args, "name"); err != nil {
		return err
	}

	if a.json {
		h, err := a.hotels.GetHotel(ctx, *name)
		if err != nil {
			return err
		}
		return a.render(toHotelResponse(h), "")
	}
	text, err := a.hotels.DescribeHotel(ctx, *name)
	if err != nil {
		return err
	}
	return a.render(nil, text)
}

func (a *App) listHotels(ctx context.Context, args []string) error {
	fs := a.flagSet("hotel list")
	if err := a.parse(fs, args); err != nil {
		return err
	}

	hotels, err := a.hotels.ListHotels(ctx)
	if err != nil {
		return err
	}
	resp := make([]HotelResponse, len(hotels))
	lines := make([]string, len(hotels))
	for i, h := range hotels {
		resp[i] = toHotelResponse(h)
		lines[i] = fmt.Sprintf("%s\t%s\t%d/%d", h.Name, h.Location, h.ReservedRooms, h.TotalRooms)
	}
	return a.render(resp, strings.Join(lines, "\n"))
}

func (a *App) updateHotel(ctx context.Context, args []string) error {
	fs := a.flagSet("hotel update")
	name := fs.String("name", "", "対象のホテル名")
	newName := fs.String("new-name", "", "新しいホテル名")
	location := fs.String("location", "", "所在地")
	rooms := fs.Int("rooms", 0, "客室数")
	if err := a.parse(fs, args, "name"); err != nil {
		return err
	}

	input := application.UpdateHotelInput{Name: *name}
	set := visited(fs)
	if set["new-name"] {
		input.NewName = newName
	}
	if set["location"] {
		input.Location = location
	}
	if set["rooms"] {
		input.TotalRooms = rooms
	}

	h, err := a.hotels.UpdateHotel(ctx, input)
	if err != nil {
		return err
	}
	return a.render(toHotelResponse(h), fmt.Sprintf("ホテル %q を更新しました", h.Name))
}

func (a *App) deleteHotel(ctx context.Context, args []string) error {
	fs := a.flagSet("hotel delete")
	name := fs.String("name", "", "ホテル名")
	if err := a.parse(fs, args, "name"); err != nil {
		return err
	}

	if err := a.hotels.DeleteHotel(ctx, *name); err != nil {
		return err
	}
	return a.render(map[string]string{"deleted": *name}, fmt.Sprintf("ホテル %q を削除しました", *name))
}

func (a *App) availableRooms(ctx context.Context, args []string) error {
	fs := a.flagSet("hotel available")
	name := fs.String("name", "", "ホテル名")
	if err := a.parse(fs, args, "name"); err != nil {
		return err
	}

	count, err := a.hotels.AvailableRooms(ctx, *name)
	if err != nil {
		return err
	}
	return a.render(AvailabilityResponse{Hotel: *name, AvailableRooms: count}, fmt.Sprintf("%d", count))
}
