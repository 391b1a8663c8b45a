package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/sanosuguru/go-hotel-reservation/internal/application"
)

func (a *App) runCustomer(ctx context.Context, action string, args []string) error {
	switch action {
	case "create":
		return a.createCustomer(ctx, args)
	case "show":
		return a.showCustomer(ctx, args)
	case "list":
		return a.listCustomers(ctx, args)
	case "update":
		return a.updateCustomer(ctx, args)
	case "delete":
		return a.deleteCustomer(ctx, args)
	}
	return unknownAction("customer", action)
}

func (a *App) createCustomer(ctx context.Context, args []string) error {
	fs := a.flagSet("customer create")
	id := fs.String("id", "", "顧客ID")
	name := fs.String("name", "", "氏名")
	email := fs.String("email", "", "メールアドレス")
	if err := a.parse(fs, args, "id", "name", "email"); err != nil {
		return err
	}

	c, err := a.customers.CreateCustomer(ctx, application.CreateCustomerInput{ID: *id, Name: *name, Email: *email})
	if err != nil {
		return err
	}
	return a.render(toCustomerResponse(c), fmt.Sprintf("顧客 %q を登録しました", c.ID))
}

func (a *App) showCustomer(ctx context.Context, args []string) error {
	fs := a.flagSet("customer show")
	id := fs.String("id", "", "顧客ID")
	if err := a.parse(fs, args, "id"); err != nil {
		return err
	}

	if a.json {
		c, err := a.customers.GetCustomer(ctx, *id)
		if err != nil {
			return err
		}
		return a.render(toCustomerResponse(c), "")
	}
	text, err := a.customers.DescribeCustomer(ctx, *id)
	if err != nil {
		return err
	}
	return a.render(nil, text)
}

func (a *App) listCustomers(ctx context.Context, args []string) error {
	fs := a.flagSet("customer list")
	if err := a.parse(fs, args); err != nil {
		return err
	}

	customers, err := a.customers.ListCustomers(ctx)
	if err != nil {
		return err
	}
	resp := make([]CustomerResponse, len(customers))
	lines := make([]string, len(customers))
	for i, c := range customers {
		resp[i] = toCustomerResponse(c)
		lines[i] = fmt.Sprintf("%s\t%s\t%s", c.ID, c.Name, c.Email)
	}
	return a.render(resp, strings.Join(lines, "\n"))
}

func (a *App) updateCustomer(ctx context.Context, args []string) error {
	fs := a.flagSet("customer update")
	id := fs.String("id", "", "顧客ID")
	name := fs.String("name", "", "氏名")
	email := fs.String("email", "", "メールアドレス")
	if err := a.parse(fs, args, "id"); err != nil {
		return err
	}

	input := application.UpdateCustomerInput{ID: *id}
	set := visited(fs)
	if set["name"] {
		input.Name = name
	}
	if set["email"] {
		input.Email = email
	}

	c, err := a.customers.UpdateCustomer(ctx, input)
	if err != nil {
		return err
	}
	return a.render(toCustomerResponse(c), fmt.Sprintf("顧客 %q を更新しました", c.ID))
}

func (a *App) deleteCustomer(ctx context.Context, args []string) error {
	fs := a.flagSet("customer delete")
	id := fs.String("id", "", "顧客ID")
	if err := a.parse(fs, args, "id"); err != nil {
		return err
	}

	if err := a.customers.DeleteCustomer(ctx, *id); err != nil {
		return err
	}
	return a.render(map[string]string{"deleted": *id}, fmt.Sprintf("顧客 %q を削除しました", *id))
}
