// Package command provides CLI command definitions for Payrail.
package command

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/payrail/payrail-cli/internal/cli/gateway"
	"github.com/payrail/payrail-cli/internal/cli/output"
)

// Recipient is a saved payout destination. Bank fields are nullable on
// the platform: email-only recipients carry no account details.
type Recipient struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Email         *string `json:"email"`
	AccountNumber *string `json:"account_number"`
	RoutingNumber *string `json:"routing_number"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
}

// recipientCreateBody is the typed POST /v1/recipients payload.
type recipientCreateBody struct {
	Name          string  `json:"name"`
	Email         *string `json:"email,omitempty"`
	AccountNumber *string `json:"account_number,omitempty"`
	RoutingNumber *string `json:"routing_number,omitempty"`
}

// recipientUpdateBody is the typed PATCH /v1/recipients/{id} payload.
// Only explicitly set flags are serialized, so a partial update never
// clobbers fields the caller did not mention.
type recipientUpdateBody struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

// RecipientsCommand returns the recipients subcommand group.
func RecipientsCommand() *cli.Command {
	return &cli.Command{
		Name:    "recipients",
		Aliases: []string{"rcpt"},
		Usage:   "Manage payout recipients",
		Action:  groupAction("recipients", nil),
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List recipients",
				Flags:  []cli.Flag{limitFlag(), cursorFlag()},
				Action: recipientsList,
			},
			{
				Name:      "get",
				Usage:     "Show one recipient",
				ArgsUsage: "RECIPIENT_ID",
				Action:    recipientsGet,
			},
			{
				Name:  "create",
				Usage: "Create a recipient",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "name",
						Usage:    "Recipient display name",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "email",
						Usage: "Recipient email",
					},
					&cli.StringFlag{
						Name:  "account-number",
						Usage: "Bank account number",
					},
					&cli.StringFlag{
						Name:  "routing-number",
						Usage: "Bank routing number",
					},
					idempotencyKeyFlag(),
				},
				Action: recipientsCreate,
			},
			{
				Name:      "update",
				Usage:     "Update a recipient",
				ArgsUsage: "RECIPIENT_ID",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "name",
						Usage: "New display name",
					},
					&cli.StringFlag{
						Name:  "email",
						Usage: "New email",
					},
					idempotencyKeyFlag(),
				},
				Action: recipientsUpdate,
			},
			{
				Name:      "delete",
				Usage:     "Delete a recipient",
				ArgsUsage: "RECIPIENT_ID",
				Flags:     []cli.Flag{forceFlag()},
				Action:    recipientsDelete,
			},
		},
	}
}

func recipientsTableSpec() output.TableSpec {
	return output.TableSpec{
		Resource: "recipients",
		Columns: []output.Column{
			{Key: "id", Header: "ID", Width: 20},
			{Key: "name", Header: "NAME", Width: 24},
			{Key: "email", Header: "EMAIL", Width: 28},
			{Key: "account_no", Header: "ACCOUNT NO", Width: 12},
			{Key: "status", Header: "STATUS", Width: 8},
		},
	}
}

func recipientRow(r Recipient) output.Row {
	return output.Row{
		"id":         r.ID,
		"name":       r.Name,
		"email":      deref(r.Email),
		"account_no": deref(r.AccountNumber),
		"status":     r.Status,
	}
}

func recipientSheet(r Recipient) *output.Sheet {
	sheet := &output.Sheet{}
	sheet.AddField("ID", r.ID)
	sheet.AddField("Name", r.Name)
	sheet.AddField("Email", deref(r.Email))
	sheet.AddField("Account No", deref(r.AccountNumber))
	sheet.AddField("Routing No", deref(r.RoutingNumber))
	sheet.AddField("Status", r.Status)
	sheet.AddField("Created At", r.CreatedAt)
	return sheet
}

func recipientsList(c *cli.Context) error {
	rt := runtime(c)

	req := gateway.Get("/v1/recipients")
	req.Query = listQuery(c)

	raw, err := rt.Client.Execute(c.Context, req)
	if err != nil {
		return err
	}
	page, err := gateway.DecodePage[Recipient](raw, "recipients", "items")
	if err != nil {
		return err
	}

	if rt.JSON {
		return rt.Formatter.Format(rt.Stdout, page)
	}

	table := &output.Table{Spec: recipientsTableSpec()}
	for _, recipient := range page.Items {
		table.AddRow(recipientRow(recipient))
	}
	if page.HasMore() {
		table.AddHint("", page.NextCursor)
	}
	return rt.Formatter.Format(rt.Stdout, table)
}

func recipientsGet(c *cli.Context) error {
	rt := runtime(c)

	id, err := requireArg(c, 0, "recipient ID")
	if err != nil {
		return err
	}

	recipient, err := gateway.Do[Recipient](c.Context, rt.Client, gateway.Get("/v1/recipients/"+id))
	if err != nil {
		return err
	}

	return renderRecipient(rt, recipient)
}

func recipientsCreate(c *cli.Context) error {
	rt := runtime(c)

	// Bank details travel as a pair; one without the other is not a
	// routable destination.
	if c.IsSet("account-number") != c.IsSet("routing-number") {
		return errors.New("--account-number and --routing-number must be provided together")
	}

	body := recipientCreateBody{Name: c.String("name")}
	if c.IsSet("email") {
		email := c.String("email")
		body.Email = &email
	}
	if c.IsSet("account-number") {
		accountNo := c.String("account-number")
		routingNo := c.String("routing-number")
		body.AccountNumber = &accountNo
		body.RoutingNumber = &routingNo
	}

	req := gateway.Post("/v1/recipients", body)
	if key := c.String("idempotency-key"); key != "" {
		req.IdempotencyKey = key
	}

	recipient, err := gateway.Do[Recipient](c.Context, rt.Client, req)
	if err != nil {
		return err
	}

	return renderRecipient(rt, recipient)
}

func recipientsUpdate(c *cli.Context) error {
	rt := runtime(c)

	id, err := requireArg(c, 0, "recipient ID")
	if err != nil {
		return err
	}

	if !c.IsSet("name") && !c.IsSet("email") {
		return errors.New("nothing to update: provide --name or --email")
	}

	var body recipientUpdateBody
	if c.IsSet("name") {
		name := c.String("name")
		body.Name = &name
	}
	if c.IsSet("email") {
		email := c.String("email")
		body.Email = &email
	}

	req := gateway.Patch("/v1/recipients/"+id, body)
	if key := c.String("idempotency-key"); key != "" {
		req.IdempotencyKey = key
	}

	recipient, err := gateway.Do[Recipient](c.Context, rt.Client, req)
	if err != nil {
		return err
	}

	return renderRecipient(rt, recipient)
}

func recipientsDelete(c *cli.Context) error {
	rt := runtime(c)

	id, err := requireArg(c, 0, "recipient ID")
	if err != nil {
		return err
	}

	if !c.Bool("force") {
		if !confirm(rt, fmt.Sprintf("Delete recipient %s?", id)) {
			fmt.Fprintln(rt.Stdout, "Cancelled.")
			return nil
		}
	}

	if _, err := rt.Client.Execute(c.Context, gateway.Delete("/v1/recipients/"+id)); err != nil {
		return err
	}

	if rt.JSON {
		return rt.Formatter.Format(rt.Stdout, struct {
			ID      string `json:"id"`
			Deleted bool   `json:"deleted"`
		}{id, true})
	}
	fmt.Fprintf(rt.Stdout, "Recipient %s deleted.\n", id)
	return nil
}

func renderRecipient(rt *Runtime, recipient Recipient) error {
	if rt.JSON {
		return rt.Formatter.Format(rt.Stdout, recipient)
	}
	return rt.Formatter.Format(rt.Stdout, recipientSheet(recipient))
}
